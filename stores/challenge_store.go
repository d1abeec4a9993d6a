package stores

import (
	"SWJTUCTF/models"
	"SWJTUCTF/utils"
	"sort"
	"sync"
	"time"
)

// GuestUserID 未登录访客的用户 ID，种子数据中运行中的靶机归属于访客
const GuestUserID = 0

// ChallengeFilter 题目筛选，零值表示不筛选
type ChallengeFilter struct {
	Category   models.ChallengeCategory
	Difficulty models.ChallengeDifficulty
}

// ContainerKey 靶机按题目和用户区分，每个用户在每道题上最多一个靶机
type ContainerKey struct {
	ChallengeID int
	UserID      int
}

// container 靶机的内部记录，Handle 为启动器返回的服务标识
type container struct {
	State     models.ContainerState
	IP        string
	Port      int
	Handle    string
	ExpiresAt time.Time
}

type ChallengeStore struct {
	mu         sync.RWMutex
	challenges []models.Challenge
	containers map[ContainerKey]container
	now        func() time.Time
}

// NewChallengeStore 使用种子数据初始化题目存储。
// 种子中处于 running 状态的题目会保留其连接信息并归属访客，剩余时间从当前时刻起算；
// 没有连接信息的 running 和所有 loading 状态都重置为 idle
func NewChallengeStore(seed []models.Challenge) *ChallengeStore {
	return newChallengeStore(seed, time.Now)
}

func newChallengeStore(seed []models.Challenge, now func() time.Time) *ChallengeStore {
	s := &ChallengeStore{
		challenges: make([]models.Challenge, 0, len(seed)),
		containers: make(map[ContainerKey]container),
		now:        now,
	}
	for _, ch := range seed {
		if ch.ContainerState == models.ContainerStateRunning && ch.ContainerInfo != nil {
			s.containers[ContainerKey{ChallengeID: ch.ID, UserID: GuestUserID}] = container{
				State:     models.ContainerStateRunning,
				IP:        ch.ContainerInfo.IP,
				Port:      ch.ContainerInfo.Port,
				ExpiresAt: s.now().Add(utils.ParseClock(ch.ContainerInfo.TimeLeft)),
			}
		}
		ch.ContainerState = models.ContainerStateIdle
		ch.ContainerInfo = nil
		s.challenges = append(s.challenges, ch)
	}
	return s
}

// List 按插入顺序返回题目，靶机状态为 userID 自己的靶机
func (s *ChallengeStore) List(filter ChallengeFilter, userID int) []models.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	result := make([]models.Challenge, 0, len(s.challenges))
	for _, ch := range s.challenges {
		if filter.Category != "" && ch.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && ch.Difficulty != filter.Difficulty {
			continue
		}
		result = append(result, s.view(ch, userID, now))
	}
	return result
}

// Get 按 ID 查询题目，userID 的靶机运行中时附带连接信息和剩余时间
func (s *ChallengeStore) Get(id, userID int) (models.Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.Challenge{}, false
	}
	return s.view(s.challenges[idx], userID, s.now()), true
}

// Len 题目数量
func (s *ChallengeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.challenges)
}

// BeginLaunch 为 userID 登记 loading 状态的靶机，题目不存在或该用户已有靶机时返回 false
func (s *ChallengeStore) BeginLaunch(id, userID int) (models.Challenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.Challenge{}, false
	}
	key := ContainerKey{ChallengeID: id, UserID: userID}
	if _, busy := s.containers[key]; busy {
		return models.Challenge{}, false
	}
	s.containers[key] = container{State: models.ContainerStateLoading}

	ch := s.challenges[idx]
	ch.ContainerState = models.ContainerStateLoading
	return ch, true
}

// CompleteLaunch loading -> running
func (s *ChallengeStore) CompleteLaunch(id, userID int, ip string, port int, handle string, expiresAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ContainerKey{ChallengeID: id, UserID: userID}
	c, ok := s.containers[key]
	if !ok || c.State != models.ContainerStateLoading {
		return false
	}
	s.containers[key] = container{
		State:     models.ContainerStateRunning,
		IP:        ip,
		Port:      port,
		Handle:    handle,
		ExpiresAt: expiresAt,
	}
	return true
}

// AbortLaunch loading -> idle，启动失败时回滚
func (s *ChallengeStore) AbortLaunch(id, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ContainerKey{ChallengeID: id, UserID: userID}
	c, ok := s.containers[key]
	if !ok || c.State != models.ContainerStateLoading {
		return false
	}
	delete(s.containers, key)
	return true
}

// Release running -> idle，只释放 userID 自己的靶机，返回句柄供调用方销毁
func (s *ChallengeStore) Release(id, userID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ContainerKey{ChallengeID: id, UserID: userID}
	c, ok := s.containers[key]
	if !ok || c.State != models.ContainerStateRunning {
		return "", false
	}
	delete(s.containers, key)
	return c.Handle, true
}

// Expired 返回到期仍在运行的靶机，按题目 ID 和用户 ID 排序
func (s *ChallengeStore) Expired(now time.Time) []ContainerKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []ContainerKey
	for key, c := range s.containers {
		if c.State == models.ContainerStateRunning && !now.Before(c.ExpiresAt) {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ChallengeID != keys[j].ChallengeID {
			return keys[i].ChallengeID < keys[j].ChallengeID
		}
		return keys[i].UserID < keys[j].UserID
	})
	return keys
}

func (s *ChallengeStore) view(ch models.Challenge, userID int, now time.Time) models.Challenge {
	c, ok := s.containers[ContainerKey{ChallengeID: ch.ID, UserID: userID}]
	if !ok {
		return ch
	}
	ch.ContainerState = c.State
	if c.State == models.ContainerStateRunning {
		ch.ContainerInfo = &models.ContainerInfo{
			IP:       c.IP,
			Port:     c.Port,
			TimeLeft: utils.FormatClock(c.ExpiresAt.Sub(now)),
		}
	}
	return ch
}

func (s *ChallengeStore) indexOf(id int) int {
	for i := range s.challenges {
		if s.challenges[i].ID == id {
			return i
		}
	}
	return -1
}

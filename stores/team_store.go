package stores

import (
	"SWJTUCTF/models"
	"SWJTUCTF/utils"
	"errors"
	"math/rand"
	"net/url"
	"sync"
)

const defaultAvatarURL = "https://api.dicebear.com/7.x/shapes/svg?seed="

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrNotTeamCreator = errors.New("user is not the team creator")
)

// TeamInput 创建队伍所需字段，创建者自动成为第一个成员
type TeamInput struct {
	Name            string
	Avatar          string
	Description     string
	CreatorID       int
	CreatorUsername string
	CreatorAvatar   string
}

// TeamPatch 部分更新，Members 非 nil 时整体替换成员列表
type TeamPatch struct {
	Name        *string
	Avatar      *string
	Description *string
	Members     []models.TeamMember
}

type TeamStore struct {
	mu    sync.RWMutex
	teams []models.Team
	maxID int
	rng   *rand.Rand
}

// NewTeamStore 使用种子数据初始化队伍存储，rng 为 nil 时按当前时间播种
func NewTeamStore(seed []models.Team, rng *rand.Rand) *TeamStore {
	if rng == nil {
		rng = utils.NewRand()
	}
	s := &TeamStore{
		teams: make([]models.Team, 0, len(seed)),
		rng:   rng,
	}
	for _, t := range seed {
		s.teams = append(s.teams, t.Clone())
	}
	s.maxID = maxTeamID(s.teams)
	return s
}

// Create 创建队伍并生成唯一邀请码
func (s *TeamStore) Create(in TeamInput) models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	avatar := in.Avatar
	if avatar == "" {
		avatar = defaultAvatarURL + url.QueryEscape(in.Name)
	}
	creatorID := in.CreatorID
	team := models.Team{
		ID:          s.maxID + 1,
		Name:        in.Name,
		Avatar:      avatar,
		Description: in.Description,
		Members: []models.TeamMember{{
			ID:       in.CreatorID,
			Username: in.CreatorUsername,
			Avatar:   in.CreatorAvatar,
		}},
		InviteCode: s.generateInviteCode(),
		CreatorID:  &creatorID,
	}
	s.teams = append(s.teams, team)
	s.maxID = team.ID
	return team.Clone()
}

// GenerateInviteCode 生成一个当前未被任何队伍使用的邀请码
func (s *TeamStore) GenerateInviteCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateInviteCode()
}

// generateInviteCode 调用方需持有写锁
func (s *TeamStore) generateInviteCode() string {
	return utils.GenerateUniqueInviteCode(s.rng, func(code string) bool {
		for _, t := range s.teams {
			if t.InviteCode == code {
				return true
			}
		}
		return false
	})
}

// JoinByInviteCode 通过邀请码加入队伍并返回加入后的队伍，邀请码无效或已是成员时返回 false
func (s *TeamStore) JoinByInviteCode(code string, userID int, username, avatar string) (models.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.teams {
		if s.teams[i].InviteCode != "" && s.teams[i].InviteCode == code {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Team{}, false
	}
	team := &s.teams[idx]
	if team.HasMember(userID) {
		return models.Team{}, false
	}
	team.Members = append(team.Members, models.TeamMember{
		ID:       userID,
		Username: username,
		Avatar:   avatar,
	})
	return team.Clone(), true
}

// Update 部分更新队伍，队伍不存在时返回 false
func (s *TeamStore) Update(id int, patch TeamPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return false
	}
	s.applyLocked(idx, patch)
	return true
}

// UpdateByCreator 创建者修改队伍，校验和修改在同一把锁内完成
func (s *TeamStore) UpdateByCreator(id, userID int, patch TeamPatch) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.Team{}, ErrTeamNotFound
	}
	if !s.teams[idx].IsCreator(userID) {
		return models.Team{}, ErrNotTeamCreator
	}
	s.applyLocked(idx, patch)
	return s.teams[idx].Clone(), nil
}

func (s *TeamStore) applyLocked(idx int, patch TeamPatch) {
	t := &s.teams[idx]
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Avatar != nil {
		t.Avatar = *patch.Avatar
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Members != nil {
		t.Members = append([]models.TeamMember(nil), patch.Members...)
	}
}

// Delete 删除队伍，不存在时返回 false
func (s *TeamStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(id)
}

// DeleteByCreator 只有创建者可以解散队伍
func (s *TeamStore) DeleteByCreator(id, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrTeamNotFound
	}
	if !s.teams[idx].IsCreator(userID) {
		return ErrNotTeamCreator
	}
	s.deleteLocked(id)
	return nil
}

func (s *TeamStore) deleteLocked(id int) bool {
	idx := s.indexOf(id)
	if idx == -1 {
		return false
	}
	s.teams = append(s.teams[:idx], s.teams[idx+1:]...)
	if id == s.maxID {
		s.maxID = maxTeamID(s.teams)
	}
	return true
}

// Get 按 ID 查询队伍
func (s *TeamStore) Get(id int) (models.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.Team{}, false
	}
	return s.teams[idx].Clone(), true
}

// GetUserTeams 返回用户所在的全部队伍，按插入顺序
func (s *TeamStore) GetUserTeams(userID int) []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Team, 0)
	for _, t := range s.teams {
		if t.HasMember(userID) {
			result = append(result, t.Clone())
		}
	}
	return result
}

// Leave 离开队伍。创建者离开时解散整个队伍
func (s *TeamStore) Leave(teamID, userID int) bool {
	_, ok := s.LeaveOrDissolve(teamID, userID)
	return ok
}

// LeaveOrDissolve 同 Leave，另外返回队伍是否因创建者离开而解散
func (s *TeamStore) LeaveOrDissolve(teamID, userID int) (dissolved bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(teamID)
	if idx == -1 {
		return false, false
	}
	if s.teams[idx].IsCreator(userID) {
		return true, s.deleteLocked(teamID)
	}
	return false, s.teams[idx].RemoveMember(userID)
}

// List 按插入顺序返回所有队伍
func (s *TeamStore) List() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t.Clone())
	}
	return result
}

// Len 返回队伍数量
func (s *TeamStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}

func (s *TeamStore) indexOf(id int) int {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return i
		}
	}
	return -1
}

func maxTeamID(teams []models.Team) int {
	highest := 0
	for _, t := range teams {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}

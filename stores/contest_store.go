// Package stores 提供比赛、队伍、题目、用户的内存存储。
// 每个 store 独占自己的集合，读写由一把 RWMutex 保护，对外只返回副本。
package stores

import (
	"SWJTUCTF/models"
	"SWJTUCTF/utils"
	"sync"
	"time"
)

// ContestInput 创建比赛所需字段
type ContestInput struct {
	Name          string
	Brief         string
	Description   string
	StartTime     string
	EndTime       string
	Type          models.ContestType
	ImageURL      string
	CountdownText string
}

// ContestPatch 部分更新，nil 字段保持不变。
// 修改起止时间不会重新计算状态
type ContestPatch struct {
	Name             *string
	Brief            *string
	Description      *string
	StartTime        *string
	EndTime          *string
	Status           *models.ContestStatus
	ImageURL         *string
	CountdownText    *string
	ParticipantCount *int
	Type             *models.ContestType
	IsActive         *bool
}

// ContestFilter 列表筛选，零值表示不筛选
type ContestFilter struct {
	Status      models.ContestStatus
	Type        models.ContestType
	VisibleOnly bool
}

type ContestStore struct {
	mu       sync.RWMutex
	contests []models.Contest
	maxID    int
	now      func() time.Time
}

// NewContestStore 使用种子数据初始化比赛存储
func NewContestStore(seed []models.Contest) *ContestStore {
	s := &ContestStore{
		contests: make([]models.Contest, 0, len(seed)),
		now:      time.Now,
	}
	for _, c := range seed {
		s.contests = append(s.contests, cloneContest(c))
	}
	s.maxID = maxContestID(s.contests)
	return s
}

// DeriveContestStatus 根据当前时间计算比赛状态。
// 无法解析的时间参与比较时恒为 false，与前端 Invalid Date 的行为一致
func DeriveContestStatus(now time.Time, startTime, endTime string) models.ContestStatus {
	start, startOK := utils.ParseContestTime(startTime)
	end, endOK := utils.ParseContestTime(endTime)

	if startOK && now.Before(start) {
		return models.ContestStatusUpcoming
	}
	if startOK && endOK && !now.Before(start) && !now.After(end) {
		return models.ContestStatusOngoing
	}
	return models.ContestStatusFinished
}

// Create 创建比赛，ID 为当前最大 ID + 1，参赛人数为 0
func (s *ContestStore) Create(in ContestInput) models.Contest {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := true
	contest := models.Contest{
		ID:               s.maxID + 1,
		Name:             in.Name,
		Brief:            in.Brief,
		Description:      in.Description,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		Status:           DeriveContestStatus(s.now(), in.StartTime, in.EndTime),
		ImageURL:         in.ImageURL,
		CountdownText:    in.CountdownText,
		ParticipantCount: 0,
		Type:             in.Type,
		IsActive:         &active,
	}
	s.contests = append(s.contests, contest)
	s.maxID = contest.ID
	return cloneContest(contest)
}

// Update 部分更新比赛，比赛不存在时返回 false
func (s *ContestStore) Update(id int, patch ContestPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return false
	}
	c := &s.contests[idx]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Brief != nil {
		c.Brief = *patch.Brief
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.StartTime != nil {
		c.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		c.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		c.ImageURL = *patch.ImageURL
	}
	if patch.CountdownText != nil {
		c.CountdownText = *patch.CountdownText
	}
	if patch.ParticipantCount != nil {
		c.ParticipantCount = *patch.ParticipantCount
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.IsActive != nil {
		active := *patch.IsActive
		c.IsActive = &active
	}
	return true
}

// UpdateDescription 仅更新比赛描述
func (s *ContestStore) UpdateDescription(id int, description string) bool {
	return s.Update(id, ContestPatch{Description: &description})
}

// Get 按 ID 查询比赛
func (s *ContestStore) Get(id int) (models.Contest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.Contest{}, false
	}
	return cloneContest(s.contests[idx]), true
}

// Delete 删除比赛，不存在时返回 false
func (s *ContestStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return false
	}
	s.contests = append(s.contests[:idx], s.contests[idx+1:]...)
	if id == s.maxID {
		s.maxID = maxContestID(s.contests)
	}
	return true
}

// List 按插入顺序返回满足筛选条件的比赛
func (s *ContestStore) List(filter ContestFilter) []models.Contest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Contest, 0, len(s.contests))
	for _, c := range s.contests {
		if filter.VisibleOnly && !c.Visible() {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		result = append(result, cloneContest(c))
	}
	return result
}

// Len 返回比赛数量
func (s *ContestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contests)
}

func (s *ContestStore) indexOf(id int) int {
	for i := range s.contests {
		if s.contests[i].ID == id {
			return i
		}
	}
	return -1
}

func maxContestID(contests []models.Contest) int {
	highest := 0
	for _, c := range contests {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest
}

func cloneContest(c models.Contest) models.Contest {
	if c.IsActive != nil {
		active := *c.IsActive
		c.IsActive = &active
	}
	return c
}

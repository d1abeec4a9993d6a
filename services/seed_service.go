package services

import (
	"SWJTUCTF/mock"
	"SWJTUCTF/models"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed 启动时加载到内存存储的初始数据
type Seed struct {
	Contests   []models.Contest
	Teams      []models.Team
	Challenges []models.Challenge
	Users      []models.User
	// UserPasswords 与 Users 对应的明文密码，为空表示 Users 已带密码哈希
	UserPasswords []string
}

// MockSeed 返回内置的演示数据
func MockSeed() Seed {
	seed := Seed{
		Contests:   mock.Contests(),
		Teams:      mock.Teams(),
		Challenges: mock.Challenges(),
	}
	for _, u := range mock.Users() {
		seed.Users = append(seed.Users, u.User)
		seed.UserPasswords = append(seed.UserPasswords, u.Password)
	}
	return seed
}

// LoadSeed 从数据库读取初始数据，空表使用内置数据代替
func LoadSeed(db *gorm.DB, logger *zap.Logger) (Seed, error) {
	fallback := MockSeed()
	seed := Seed{}

	if err := db.Order("id asc").Find(&seed.Contests).Error; err != nil {
		return Seed{}, fmt.Errorf("load contests: %w", err)
	}
	if len(seed.Contests) == 0 {
		logger.Info("contest table is empty, using built-in contests")
		seed.Contests = fallback.Contests
	}

	teams, err := loadTeams(db)
	if err != nil {
		return Seed{}, err
	}
	if len(teams) == 0 {
		logger.Info("team table is empty, using built-in teams")
		teams = fallback.Teams
	}
	seed.Teams = teams

	if err := db.Order("id asc").Find(&seed.Challenges).Error; err != nil {
		return Seed{}, fmt.Errorf("load challenges: %w", err)
	}
	if len(seed.Challenges) == 0 {
		logger.Info("challenge table is empty, using built-in challenges")
		seed.Challenges = fallback.Challenges
	}

	if err := db.Order("id asc").Find(&seed.Users).Error; err != nil {
		return Seed{}, fmt.Errorf("load users: %w", err)
	}
	if len(seed.Users) == 0 {
		logger.Info("user table is empty, using built-in users")
		seed.Users = fallback.Users
		seed.UserPasswords = fallback.UserPasswords
	}

	logger.Info("seed loaded from database",
		zap.Int("contests", len(seed.Contests)),
		zap.Int("teams", len(seed.Teams)),
		zap.Int("challenges", len(seed.Challenges)),
		zap.Int("users", len(seed.Users)),
	)
	return seed, nil
}

func loadTeams(db *gorm.DB) ([]models.Team, error) {
	var teams []models.Team
	if err := db.Order("id asc").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	if len(teams) == 0 {
		return nil, nil
	}

	var records []models.TeamMemberRecord
	if err := db.Order("team_id asc, position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load team members: %w", err)
	}
	byTeam := make(map[int][]models.TeamMember, len(teams))
	for _, r := range records {
		byTeam[r.TeamID] = append(byTeam[r.TeamID], models.TeamMember{
			ID:       r.UserID,
			Username: r.Username,
			Avatar:   r.Avatar,
		})
	}
	for i := range teams {
		teams[i].Members = byTeam[teams[i].ID]
		if teams[i].Members == nil {
			teams[i].Members = []models.TeamMember{}
		}
	}
	return teams, nil
}

package mock

import "SWJTUCTF/models"

// Teams 队伍种子数据。邀请码只使用邀请码字符集内的字符
func Teams() []models.Team {
	return []models.Team{
		{
			ID:          1,
			Name:        "0xSWJTU",
			Avatar:      "https://api.dicebear.com/7.x/shapes/svg?seed=0xSWJTU",
			Description: "校队主力，专注 Web 与 Pwn 方向。",
			Members: []models.TeamMember{
				{ID: 2, Username: "alice"},
				{ID: 3, Username: "bob"},
			},
			InviteCode: "SWJT-UCTF-2K25",
			CreatorID:  intPtr(2),
		},
		{
			ID:          2,
			Name:        "Crypto Cats",
			Avatar:      "https://api.dicebear.com/7.x/shapes/svg?seed=Crypto+Cats",
			Description: "密码学爱好者小组，欢迎对数论感兴趣的同学加入。",
			Members: []models.TeamMember{
				{ID: 4, Username: "carol"},
			},
			InviteCode: "CATS-M8QZ-7KPW",
			CreatorID:  intPtr(4),
		},
		{
			ID:          3,
			Name:        "新生互助组",
			Description: "新秀杯新生组队，一起入门。",
			Members: []models.TeamMember{
				{ID: 3, Username: "bob"},
				{ID: 5, Username: "dave"},
			},
		},
	}
}

// UserSeed 用户种子，Password 为明文，加载时哈希
type UserSeed struct {
	User     models.User
	Password string
}

// Users 用户种子数据
func Users() []UserSeed {
	return []UserSeed{
		{User: models.User{ID: 1, Username: "admin", Email: "admin@swjtuctf.local", RealName: "管理员", StudentID: "2020000000", Role: models.RoleAdmin}, Password: "admin123456"},
		{User: models.User{ID: 2, Username: "alice", Email: "alice@swjtuctf.local", RealName: "Alice", StudentID: "2023110001", Role: models.RoleUser}, Password: "password123"},
		{User: models.User{ID: 3, Username: "bob", Email: "bob@swjtuctf.local", RealName: "Bob", StudentID: "2023110002", Role: models.RoleUser}, Password: "password123"},
		{User: models.User{ID: 4, Username: "carol", Email: "carol@swjtuctf.local", RealName: "Carol", StudentID: "2024110003", Role: models.RoleUser}, Password: "password123"},
		{User: models.User{ID: 5, Username: "dave", Email: "dave@swjtuctf.local", RealName: "Dave", StudentID: "2024110004", Role: models.RoleUser}, Password: "password123"},
	}
}

func intPtr(v int) *int {
	return &v
}

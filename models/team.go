package models

// TeamMember 队伍成员，ID 即用户 ID
type TeamMember struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Team 队伍。成员列表保持加入顺序，邀请码在创建时生成
type Team struct {
	ID          int          `gorm:"primarykey;autoIncrement:false" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Avatar      string       `gorm:"size:255" json:"avatar,omitempty"`
	Members     []TeamMember `gorm:"-" json:"members"`
	Description string       `gorm:"type:text" json:"description"`
	InviteCode  string       `gorm:"size:20;index" json:"inviteCode,omitempty"`
	CreatorID   *int         `json:"creatorId,omitempty"`
}

func (Team) TableName() string {
	return "swjtuctf_team"
}

// HasMember 判断用户是否在队伍中
func (t Team) HasMember(userID int) bool {
	return t.memberIndex(userID) != -1
}

// IsCreator 判断用户是否为队伍创建者
func (t Team) IsCreator(userID int) bool {
	return t.CreatorID != nil && *t.CreatorID == userID
}

func (t Team) memberIndex(userID int) int {
	for i, m := range t.Members {
		if m.ID == userID {
			return i
		}
	}
	return -1
}

// RemoveMember 移除成员，返回是否移除成功
func (t *Team) RemoveMember(userID int) bool {
	idx := t.memberIndex(userID)
	if idx == -1 {
		return false
	}
	t.Members = append(t.Members[:idx], t.Members[idx+1:]...)
	return true
}

// Clone 深拷贝，成员切片不与原队伍共享
func (t Team) Clone() Team {
	if t.Members != nil {
		t.Members = append([]TeamMember(nil), t.Members...)
	}
	if t.CreatorID != nil {
		id := *t.CreatorID
		t.CreatorID = &id
	}
	return t
}

// TeamMemberRecord 对应成员表，仅用于从数据库加载种子数据
type TeamMemberRecord struct {
	RowID    uint   `gorm:"primarykey"`
	TeamID   int    `gorm:"uniqueIndex:unique_team_user;not null"`
	UserID   int    `gorm:"uniqueIndex:unique_team_user;not null"`
	Username string `gorm:"size:50;not null"`
	Avatar   string `gorm:"size:255"`
	Position int    `gorm:"default:0"`
}

func (TeamMemberRecord) TableName() string {
	return "swjtuctf_team_members"
}

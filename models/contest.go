package models

// ContestStatus 比赛状态，创建时根据当前时间与起止时间计算
type ContestStatus string

// ContestType 赛制
type ContestType string

const (
	ContestStatusUpcoming ContestStatus = "upcoming"
	ContestStatusOngoing  ContestStatus = "ongoing"
	ContestStatusFinished ContestStatus = "finished"

	ContestTypeIndividual ContestType = "individual"
	ContestTypeTeam       ContestType = "team"
)

// Valid 判断状态取值是否合法
func (s ContestStatus) Valid() bool {
	switch s {
	case ContestStatusUpcoming, ContestStatusOngoing, ContestStatusFinished:
		return true
	}
	return false
}

// Valid 判断赛制取值是否合法
func (t ContestType) Valid() bool {
	return t == ContestTypeIndividual || t == ContestTypeTeam
}

// Contest 比赛。StartTime / EndTime 保持前端使用的时间字符串格式
type Contest struct {
	ID               int           `gorm:"primarykey;autoIncrement:false" json:"id"`
	Name             string        `gorm:"size:100;not null" json:"name"`
	Brief            string        `gorm:"size:255" json:"brief"`
	Description      string        `gorm:"type:text" json:"description"`
	StartTime        string        `gorm:"size:32;not null" json:"startTime"`
	EndTime          string        `gorm:"size:32;not null" json:"endTime"`
	Status           ContestStatus `gorm:"size:16;not null" json:"status"`
	ImageURL         string        `gorm:"size:255" json:"imageUrl"`
	CountdownText    string        `gorm:"size:50" json:"countdownText,omitempty"`
	ParticipantCount int           `gorm:"default:0" json:"participantCount"`
	Type             ContestType   `gorm:"size:16;not null" json:"type"`
	IsActive         *bool         `json:"isActive,omitempty"`
}

func (Contest) TableName() string {
	return "swjtuctf_contest"
}

// Visible 未激活的比赛在用户端不显示，未设置 isActive 视为激活
func (c Contest) Visible() bool {
	return c.IsActive == nil || *c.IsActive
}

package models

type ChallengeCategory string
type ChallengeDifficulty string
type ChallengeStatus string
type ContainerState string

const (
	CategoryWeb        ChallengeCategory = "Web"
	CategoryPwn        ChallengeCategory = "Pwn"
	CategoryCrypto     ChallengeCategory = "Crypto"
	CategoryMisc       ChallengeCategory = "Misc"
	CategoryReverse    ChallengeCategory = "Reverse"
	CategoryMobile     ChallengeCategory = "Mobile"
	CategoryBlockchain ChallengeCategory = "Blockchain"
	CategoryAI         ChallengeCategory = "AI"

	DifficultyEasy   ChallengeDifficulty = "Easy"
	DifficultyMedium ChallengeDifficulty = "Medium"
	DifficultyHard   ChallengeDifficulty = "Hard"

	ChallengeSolved   ChallengeStatus = "solved"
	ChallengeUnsolved ChallengeStatus = "unsolved"

	ContainerStateIdle    ContainerState = "idle"
	ContainerStateLoading ContainerState = "loading"
	ContainerStateRunning ContainerState = "running"
)

// Categories 题目方向，顺序与训练页侧边栏一致
var Categories = []ChallengeCategory{
	CategoryPwn,
	CategoryMobile,
	CategoryBlockchain,
	CategoryReverse,
	CategoryAI,
	CategoryWeb,
	CategoryCrypto,
	CategoryMisc,
}

// Valid 判断方向是否合法
func (c ChallengeCategory) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Valid 判断难度是否合法
func (d ChallengeDifficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// ContainerInfo 靶机连接信息，TimeLeft 形如 00:58:20
type ContainerInfo struct {
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	TimeLeft string `json:"timeLeft"`
}

type Challenge struct {
	ID             int                 `gorm:"primarykey;autoIncrement:false" json:"id"`
	Title          string              `gorm:"size:100;unique;not null" json:"title"`
	Category       ChallengeCategory   `gorm:"size:16;not null" json:"category"`
	Description    string              `gorm:"type:text;not null" json:"description"`
	Points         int                 `gorm:"not null" json:"points"`
	SolvedCount    int                 `gorm:"default:0" json:"solvedCount"`
	Difficulty     ChallengeDifficulty `gorm:"size:16;default:'Medium'" json:"difficulty"`
	Status         ChallengeStatus     `gorm:"size:16;default:'unsolved'" json:"status"`
	ContainerState ContainerState      `gorm:"size:16;default:'idle'" json:"containerState"`
	ContainerInfo  *ContainerInfo      `gorm:"-" json:"containerInfo,omitempty"`
	DockerImage    string              `gorm:"size:255" json:"-"`
	DockerPort     int                 `gorm:"default:0" json:"-"`
}

func (Challenge) TableName() string {
	return "swjtuctf_challenge"
}

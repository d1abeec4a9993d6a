package dto

import "SWJTUCTF/models"

// ChallengeItemResp 题目列表项，不包含描述
type ChallengeItemResp struct {
	ID             int                        `json:"id"`
	Title          string                     `json:"title"`
	Category       models.ChallengeCategory   `json:"category"`
	Points         int                        `json:"points"`
	SolvedCount    int                        `json:"solvedCount"`
	Difficulty     models.ChallengeDifficulty `json:"difficulty"`
	Status         models.ChallengeStatus     `json:"status"`
	ContainerState models.ContainerState      `json:"containerState"`
}

type ChallengeDetailResp struct {
	models.Challenge
	DescriptionHTML string `json:"descriptionHtml"`
}

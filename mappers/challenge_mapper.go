package mappers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/models"
)

func MapChallengeToItemResp(ch models.Challenge) dto.ChallengeItemResp {
	return dto.ChallengeItemResp{
		ID:             ch.ID,
		Title:          ch.Title,
		Category:       ch.Category,
		Points:         ch.Points,
		SolvedCount:    ch.SolvedCount,
		Difficulty:     ch.Difficulty,
		Status:         ch.Status,
		ContainerState: ch.ContainerState,
	}
}

func MapChallengeToDetailResp(ch models.Challenge, html string) dto.ChallengeDetailResp {
	return dto.ChallengeDetailResp{
		Challenge:       ch,
		DescriptionHTML: html,
	}
}

package mappers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/models"
	"SWJTUCTF/stores"
)

func MapCreateContestReqToInput(req dto.CreateContestReq) stores.ContestInput {
	return stores.ContestInput{
		Name:          req.Name,
		Brief:         req.Brief,
		Description:   req.Description,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Type:          req.Type,
		ImageURL:      req.ImageURL,
		CountdownText: req.CountdownText,
	}
}

func MapUpdateContestReqToPatch(req dto.UpdateContestReq) stores.ContestPatch {
	return stores.ContestPatch{
		Name:             req.Name,
		Brief:            req.Brief,
		Description:      req.Description,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Status:           req.Status,
		ImageURL:         req.ImageURL,
		CountdownText:    req.CountdownText,
		ParticipantCount: req.ParticipantCount,
		Type:             req.Type,
		IsActive:         req.IsActive,
	}
}

func MapContestToDetailResp(c models.Contest, html string) dto.ContestDetailResp {
	return dto.ContestDetailResp{Contest: c, DescriptionHTML: html}
}

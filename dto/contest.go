package dto

import (
	"SWJTUCTF/models"
	"strings"
)

// ========== 请求 DTO ==========

type CreateContestReq struct {
	Name          string             `json:"name" binding:"required,max=100"`
	Brief         string             `json:"brief" binding:"max=255"`
	Description   string             `json:"description"`
	StartTime     string             `json:"startTime" binding:"required"`
	EndTime       string             `json:"endTime" binding:"required"`
	Type          models.ContestType `json:"type" binding:"required,oneof=individual team"`
	ImageURL      string             `json:"imageUrl"`
	CountdownText string             `json:"countdownText"`
}

// Normalize 去除首尾空白
func (r *CreateContestReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Brief = strings.TrimSpace(r.Brief)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// UpdateContestReq 未出现的字段保持不变
type UpdateContestReq struct {
	Name             *string               `json:"name" binding:"omitempty,max=100"`
	Brief            *string               `json:"brief" binding:"omitempty,max=255"`
	Description      *string               `json:"description"`
	StartTime        *string               `json:"startTime"`
	EndTime          *string               `json:"endTime"`
	Status           *models.ContestStatus `json:"status" binding:"omitempty,oneof=upcoming ongoing finished"`
	ImageURL         *string               `json:"imageUrl"`
	CountdownText    *string               `json:"countdownText"`
	ParticipantCount *int                  `json:"participantCount" binding:"omitempty,min=0"`
	Type             *models.ContestType   `json:"type" binding:"omitempty,oneof=individual team"`
	IsActive         *bool                 `json:"isActive"`
}

type UpdateDescriptionReq struct {
	Description *string `json:"description" binding:"required"`
}

// ========== 响应 DTO ==========

type ContestListResp struct {
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Contests []models.Contest `json:"contests"`
}

type ContestDetailResp struct {
	models.Contest
	DescriptionHTML string `json:"descriptionHtml"`
}

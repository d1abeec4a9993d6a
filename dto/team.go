package dto

import (
	"SWJTUCTF/models"
	"strings"
)

type CreateTeamReq struct {
	Name        string `json:"name" binding:"required,max=50"`
	Avatar      string `json:"avatar" binding:"omitempty,url"`
	Description string `json:"description" binding:"max=500"`
}

func (r *CreateTeamReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

type JoinTeamReq struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

// Normalize 邀请码统一转为大写
func (r *JoinTeamReq) Normalize() {
	r.InviteCode = strings.ToUpper(strings.TrimSpace(r.InviteCode))
}

type UpdateTeamReq struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=50"`
	Avatar      *string `json:"avatar"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// AdminUpdateTeamReq 管理员可以整体替换成员列表
type AdminUpdateTeamReq struct {
	UpdateTeamReq
	Members *[]models.TeamMember `json:"members"`
}

type AdminTeamItem struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar,omitempty"`
	CreatorUsername string `json:"creatorUsername,omitempty"`
	MemberCount     int    `json:"memberCount"`
	InviteCode      string `json:"inviteCode,omitempty"`
}

type AdminTeamListResp struct {
	Total int             `json:"total"`
	Teams []AdminTeamItem `json:"teams"`
}

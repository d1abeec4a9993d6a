package dto

import "SWJTUCTF/models"

type RegisterReq struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=8"`
	Email     string `json:"email" binding:"required,email"`
	RealName  string `json:"realName" binding:"max=50"`
	StudentID string `json:"studentId" binding:"max=50"`
}

// LoginReq Username 可以是用户名或邮箱
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type MeResp struct {
	User  models.User   `json:"user"`
	Teams []models.Team `json:"teams"`
}

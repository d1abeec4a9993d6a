package controllers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/models"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	Users     *stores.UserStore
	Teams     *stores.TeamStore
	JWTSecret []byte
	TokenTTL  time.Duration
	Logger    *zap.Logger
}

// --- 公开接口 ---

func (h *UserController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}

	user, err := h.Users.Add(models.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.TrimSpace(req.Email),
		RealName:  strings.TrimSpace(req.RealName),
		StudentID: strings.TrimSpace(req.StudentID),
		Role:      models.RoleUser,
	}, req.Password)
	if errors.Is(err, stores.ErrUserExists) {
		utils.Error(c, utils.CodeUserExists, "用户名或邮箱已被注册")
		return
	}
	if err != nil {
		h.Logger.Error("register user failed", zap.Error(err))
		utils.Error(c, utils.CodeInternal, "注册失败")
		return
	}

	h.Logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	utils.Success(c, "User registered successfully", user)
}

func (h *UserController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效")
		return
	}

	user, ok := h.Users.Authenticate(strings.TrimSpace(req.Username), req.Password)
	if !ok {
		utils.Error(c, utils.CodePermissionDenied, "用户名或密码错误")
		return
	}

	token, err := utils.GenerateToken(user, h.JWTSecret, h.TokenTTL)
	if err != nil {
		h.Logger.Error("generate token failed", zap.Int("user_id", user.ID), zap.Error(err))
		utils.Error(c, utils.CodeInternal, "生成 Token 失败")
		return
	}
	utils.Success(c, "Login successful", dto.LoginResp{Token: token, User: user})
}

// --- 登录后接口 ---

// Me 当前用户信息及所在队伍
func (h *UserController) Me(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	user, found := h.Users.Get(userID)
	if !found {
		utils.Error(c, utils.CodeNotFound, "用户不存在")
		return
	}
	utils.Success(c, "success", dto.MeResp{User: user, Teams: h.Teams.GetUserTeams(userID)})
}

// --- 管理员接口 ---

func (h *UserController) AdminGetUsers(c *gin.Context) {
	page, limit := pagination(c)
	users := h.Users.List()
	start, end := pageBounds(len(users), page, limit)
	utils.Success(c, "success", gin.H{
		"total": len(users),
		"users": users[start:end],
	})
}

package controllers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/mappers"
	"SWJTUCTF/models"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TeamController struct {
	Teams  *stores.TeamStore
	Users  *stores.UserStore
	Logger *zap.Logger
}

// currentUser 读取当前登录用户，失败时已写出响应
func (h *TeamController) currentUser(c *gin.Context) (models.User, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return models.User{}, false
	}
	user, found := h.Users.Get(userID)
	if !found {
		utils.Error(c, utils.CodeNotFound, "用户不存在")
		return models.User{}, false
	}
	return user, true
}

func (h *TeamController) CreateTeam(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	if req.Name == "" {
		utils.Error(c, utils.CodeInvalidParams, "队伍名称不能为空")
		return
	}

	team := h.Teams.Create(stores.TeamInput{
		Name:            req.Name,
		Avatar:          req.Avatar,
		Description:     req.Description,
		CreatorID:       user.ID,
		CreatorUsername: user.Username,
		CreatorAvatar:   user.Avatar,
	})
	h.Logger.Info("team created", zap.Int("team_id", team.ID), zap.Int("creator_id", user.ID))
	utils.Success(c, "Team created successfully", team)
}

func (h *TeamController) JoinTeam(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.JoinTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效")
		return
	}
	req.Normalize()

	team, joined := h.Teams.JoinByInviteCode(req.InviteCode, user.ID, user.Username, user.Avatar)
	if !joined {
		for _, t := range h.Teams.GetUserTeams(user.ID) {
			if t.InviteCode == req.InviteCode {
				utils.Error(c, utils.CodeAlreadyMember, "你已经是该队伍成员")
				return
			}
		}
		utils.Error(c, utils.CodeInvalidInvite, "Invalid invitation code")
		return
	}

	h.Logger.Info("user joined team", zap.Int("team_id", team.ID), zap.Int("user_id", user.ID))
	utils.Success(c, "Joined team successfully", team)
}

// MyTeams 当前用户所在的全部队伍
func (h *TeamController) MyTeams(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	utils.Success(c, "success", h.Teams.GetUserTeams(userID))
}

func (h *TeamController) GetTeam(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "无效的队伍ID")
	if !ok {
		return
	}
	team, found := h.Teams.Get(id)
	if !found {
		utils.Error(c, utils.CodeNotFound, "队伍不存在")
		return
	}
	utils.Success(c, "success", mappers.MapTeamForViewer(team, userID))
}

// UpdateTeam 只有创建者可以修改队伍信息
func (h *TeamController) UpdateTeam(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "无效的队伍ID")
	if !ok {
		return
	}
	var req dto.UpdateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}

	updated, err := h.Teams.UpdateByCreator(id, userID, mappers.MapUpdateTeamReqToPatch(req))
	switch {
	case errors.Is(err, stores.ErrTeamNotFound):
		utils.Error(c, utils.CodeNotFound, "队伍不存在")
	case errors.Is(err, stores.ErrNotTeamCreator):
		utils.Error(c, utils.CodePermissionDenied, "只有队长可以修改队伍信息")
	default:
		utils.Success(c, "Team updated successfully", updated)
	}
}

// LeaveTeam 离开队伍，队长离开时队伍解散
func (h *TeamController) LeaveTeam(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "无效的队伍ID")
	if !ok {
		return
	}

	if _, found := h.Teams.Get(id); !found {
		utils.Error(c, utils.CodeNotFound, "队伍不存在")
		return
	}
	dissolved, ok := h.Teams.LeaveOrDissolve(id, userID)
	if !ok {
		utils.Error(c, utils.CodeNotMember, "你不是该队伍成员")
		return
	}

	if dissolved {
		h.Logger.Info("team dissolved by creator", zap.Int("team_id", id), zap.Int("user_id", userID))
		utils.Success(c, "Team dissolved", gin.H{"dissolved": true})
		return
	}
	utils.Success(c, "Left team successfully", gin.H{"dissolved": false})
}

// DisbandTeam 解散队伍，只有队长可以操作
func (h *TeamController) DisbandTeam(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "无效的队伍ID")
	if !ok {
		return
	}

	switch err := h.Teams.DeleteByCreator(id, userID); {
	case errors.Is(err, stores.ErrTeamNotFound):
		utils.Error(c, utils.CodeNotFound, "队伍不存在")
		return
	case errors.Is(err, stores.ErrNotTeamCreator):
		utils.Error(c, utils.CodePermissionDenied, "只有队长可以解散队伍")
		return
	}
	h.Logger.Info("team disbanded", zap.Int("team_id", id), zap.Int("user_id", userID))
	utils.Success(c, "Team disbanded successfully", nil)
}

package controllers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/mappers"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminTeamController struct {
	Teams  *stores.TeamStore
	Logger *zap.Logger
}

// AdminGetTeams 队伍列表，search 按名称模糊匹配
func (h *AdminTeamController) AdminGetTeams(c *gin.Context) {
	page, limit := pagination(c)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	items := make([]dto.AdminTeamItem, 0)
	for _, team := range h.Teams.List() {
		if search != "" && !strings.Contains(strings.ToLower(team.Name), search) {
			continue
		}
		items = append(items, mappers.MapTeamToAdminItem(team))
	}

	start, end := pageBounds(len(items), page, limit)
	utils.Success(c, "success", dto.AdminTeamListResp{
		Total: len(items),
		Teams: items[start:end],
	})
}

// AdminUpdateTeam 管理员修改队伍，可以整体替换成员
func (h *AdminTeamController) AdminUpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的队伍ID")
	if !ok {
		return
	}
	var req dto.AdminUpdateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}

	if !h.Teams.Update(id, mappers.MapAdminUpdateTeamReqToPatch(req)) {
		utils.Error(c, utils.CodeNotFound, "队伍不存在")
		return
	}
	team, _ := h.Teams.Get(id)
	h.Logger.Info("team updated by admin", zap.Int("team_id", id), zap.Int("members", len(team.Members)))
	utils.Success(c, "Team updated successfully", team)
}

func (h *AdminTeamController) AdminDeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的队伍ID")
	if !ok {
		return
	}
	if !h.Teams.Delete(id) {
		utils.Error(c, utils.CodeNotFound, "队伍不存在")
		return
	}
	h.Logger.Info("team deleted by admin", zap.Int("team_id", id))
	utils.Success(c, "Team deleted successfully by admin", nil)
}

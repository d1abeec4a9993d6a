package controllers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/mappers"
	"SWJTUCTF/models"
	"SWJTUCTF/services"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContestController struct {
	Contests *stores.ContestStore
	Cache    *services.ContestCache
	Logger   *zap.Logger
}

// validateContestTimes 起止时间必须可解析且开始不晚于结束
func validateContestTimes(start, end string) error {
	s, ok := utils.ParseContestTime(start)
	if !ok {
		return fmt.Errorf("无法解析开始时间 %q", start)
	}
	e, ok := utils.ParseContestTime(end)
	if !ok {
		return fmt.Errorf("无法解析结束时间 %q", end)
	}
	if s.After(e) {
		return fmt.Errorf("开始时间不能晚于结束时间")
	}
	return nil
}

func readContestFilter(c *gin.Context) (stores.ContestFilter, bool) {
	filter := stores.ContestFilter{
		Status: models.ContestStatus(c.Query("status")),
		Type:   models.ContestType(c.Query("type")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		utils.Error(c, utils.CodeInvalidParams, "无效的比赛状态")
		return filter, false
	}
	if filter.Type != "" && !filter.Type.Valid() {
		utils.Error(c, utils.CodeInvalidParams, "无效的比赛类型")
		return filter, false
	}
	return filter, true
}

func (h *ContestController) list(c *gin.Context, filter stores.ContestFilter) dto.ContestListResp {
	page, limit := pagination(c)
	contests := h.Contests.List(filter)
	start, end := pageBounds(len(contests), page, limit)
	return dto.ContestListResp{
		Total:    len(contests),
		Page:     page,
		Limit:    limit,
		Contests: contests[start:end],
	}
}

// ListContests 用户端比赛列表，只包含已激活的比赛
func (h *ContestController) ListContests(c *gin.Context) {
	filter, ok := readContestFilter(c)
	if !ok {
		return
	}
	filter.VisibleOnly = true

	page, limit := pagination(c)
	key := fmt.Sprintf("list:%s:%s:%d:%d", filter.Status, filter.Type, page, limit)
	var resp dto.ContestListResp
	if h.Cache.Get(c.Request.Context(), key, &resp) {
		utils.Success(c, "success", resp)
		return
	}

	resp = h.list(c, filter)
	h.Cache.Set(c.Request.Context(), key, resp)
	utils.Success(c, "success", resp)
}

// GetContestDetail 比赛详情，描述额外渲染为 HTML
func (h *ContestController) GetContestDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的比赛ID")
	if !ok {
		return
	}
	contest, found := h.Contests.Get(id)
	if !found || !contest.Visible() {
		utils.Error(c, utils.CodeNotFound, "比赛不存在")
		return
	}

	html, err := services.RenderMarkdown(contest.Description)
	if err != nil {
		h.Logger.Warn("render contest description failed", zap.Int("contest_id", id), zap.Error(err))
	}
	utils.Success(c, "success", mappers.MapContestToDetailResp(contest, html))
}

// --- 管理员接口 ---

// AdminListContests 包含未激活比赛
func (h *ContestController) AdminListContests(c *gin.Context) {
	filter, ok := readContestFilter(c)
	if !ok {
		return
	}
	utils.Success(c, "success", h.list(c, filter))
}

func (h *ContestController) AdminCreateContest(c *gin.Context) {
	var req dto.CreateContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	if err := validateContestTimes(req.StartTime, req.EndTime); err != nil {
		utils.Error(c, utils.CodeInvalidParams, err.Error())
		return
	}

	contest := h.Contests.Create(mappers.MapCreateContestReqToInput(req))
	h.Cache.Invalidate(c.Request.Context())
	h.Logger.Info("contest created", zap.Int("contest_id", contest.ID), zap.String("name", contest.Name))
	utils.Success(c, "Contest created successfully", contest)
}

func (h *ContestController) AdminUpdateContest(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的比赛ID")
	if !ok {
		return
	}
	var req dto.UpdateContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}

	current, found := h.Contests.Get(id)
	if !found {
		utils.Error(c, utils.CodeNotFound, "比赛不存在")
		return
	}
	if req.StartTime != nil || req.EndTime != nil {
		start, end := current.StartTime, current.EndTime
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}
		if err := validateContestTimes(start, end); err != nil {
			utils.Error(c, utils.CodeInvalidParams, err.Error())
			return
		}
	}

	if !h.Contests.Update(id, mappers.MapUpdateContestReqToPatch(req)) {
		utils.Error(c, utils.CodeNotFound, "比赛不存在")
		return
	}
	h.Cache.Invalidate(c.Request.Context())
	updated, _ := h.Contests.Get(id)
	utils.Success(c, "Contest updated successfully", updated)
}

func (h *ContestController) AdminUpdateDescription(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的比赛ID")
	if !ok {
		return
	}
	var req dto.UpdateDescriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "参数无效: "+err.Error())
		return
	}
	if !h.Contests.UpdateDescription(id, *req.Description) {
		utils.Error(c, utils.CodeNotFound, "比赛不存在")
		return
	}
	h.Cache.Invalidate(c.Request.Context())
	utils.Success(c, "Contest description updated successfully", nil)
}

func (h *ContestController) AdminDeleteContest(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的比赛ID")
	if !ok {
		return
	}
	if !h.Contests.Delete(id) {
		utils.Error(c, utils.CodeNotFound, "比赛不存在")
		return
	}
	h.Cache.Invalidate(c.Request.Context())
	h.Logger.Info("contest deleted", zap.Int("contest_id", id))
	utils.Success(c, "Contest deleted successfully", nil)
}

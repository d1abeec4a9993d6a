package controllers

import (
	"SWJTUCTF/dto"
	"SWJTUCTF/mappers"
	"SWJTUCTF/middlewares"
	"SWJTUCTF/models"
	"SWJTUCTF/services"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChallengeController struct {
	Challenges *stores.ChallengeStore
	Logger     *zap.Logger
}

// ListChallenges 题目列表，可按 category / difficulty 筛选，已登录时附带自己的靶机状态
func (h *ChallengeController) ListChallenges(c *gin.Context) {
	filter := stores.ChallengeFilter{
		Category:   models.ChallengeCategory(c.Query("category")),
		Difficulty: models.ChallengeDifficulty(c.Query("difficulty")),
	}
	if filter.Category != "" && !filter.Category.Valid() {
		utils.Error(c, utils.CodeInvalidParams, "无效的题目分类")
		return
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		utils.Error(c, utils.CodeInvalidParams, "无效的题目难度")
		return
	}

	challenges := h.Challenges.List(filter, viewerID(c))
	items := make([]dto.ChallengeItemResp, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, mappers.MapChallengeToItemResp(ch))
	}
	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

func (h *ChallengeController) GetChallengeDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "无效的题目ID")
	if !ok {
		return
	}
	ch, found := h.Challenges.Get(id, viewerID(c))
	if !found {
		utils.Error(c, utils.CodeNotFound, "题目不存在")
		return
	}

	html, err := services.RenderMarkdown(ch.Description)
	if err != nil {
		h.Logger.Warn("render challenge description failed", zap.Int("challenge_id", id), zap.Error(err))
	}
	utils.Success(c, "success", mappers.MapChallengeToDetailResp(ch, html))
}

// viewerID 未登录时返回访客 ID
func viewerID(c *gin.Context) int {
	if id, ok := middlewares.CurrentUserID(c); ok {
		return id
	}
	return stores.GuestUserID
}

package controllers

import (
	"SWJTUCTF/services"
	"SWJTUCTF/utils"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContainerController struct {
	Containers *services.ContainerService
	Logger     *zap.Logger
}

// StartContainer 为当前用户申请靶机，每个用户在同一题目上只能运行一个
func (h *ContainerController) StartContainer(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "无效的题目ID")
	if !ok {
		return
	}

	ch, err := h.Containers.Start(c.Request.Context(), id, userID)
	switch {
	case errors.Is(err, services.ErrChallengeNotFound):
		utils.Error(c, utils.CodeNotFound, "题目不存在")
	case errors.Is(err, services.ErrContainerBusy):
		utils.Error(c, utils.CodeContainerBusy, "靶机已在运行或正在启动")
	case err != nil:
		h.Logger.Error("start container failed", zap.Int("challenge_id", id), zap.Error(err))
		utils.Error(c, utils.CodeInternal, "靶机启动失败")
	default:
		utils.Success(c, "Container created successfully", gin.H{
			"challengeId":    ch.ID,
			"containerState": ch.ContainerState,
			"containerInfo":  ch.ContainerInfo,
		})
	}
}

// StopContainer 销毁当前用户自己的靶机
func (h *ContainerController) StopContainer(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "无效的题目ID")
	if !ok {
		return
	}

	err := h.Containers.Stop(c.Request.Context(), id, userID)
	switch {
	case errors.Is(err, services.ErrChallengeNotFound):
		utils.Error(c, utils.CodeNotFound, "题目不存在")
	case errors.Is(err, services.ErrContainerNotRunning):
		utils.Error(c, utils.CodeContainerStopped, "靶机未运行")
	case err != nil:
		utils.Error(c, utils.CodeInternal, "靶机销毁失败")
	default:
		utils.Success(c, "Container destroyed successfully", nil)
	}
}

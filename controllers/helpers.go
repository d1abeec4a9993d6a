package controllers

import (
	"SWJTUCTF/middlewares"
	"SWJTUCTF/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// parseIDParam 解析路径中的 :id，失败时已写出响应
func parseIDParam(c *gin.Context, msg string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.Error(c, utils.CodeInvalidID, msg)
		return 0, false
	}
	return id, true
}

// pagination 读取 page / limit 参数，非法值回退为默认值
func pagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// pageBounds 返回分页在长度为 total 的切片中的区间
func pageBounds(total, page, limit int) (int, int) {
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

func mustUserID(c *gin.Context) (int, bool) {
	id, ok := middlewares.CurrentUserID(c)
	if !ok {
		utils.Error(c, utils.CodeAuthMissing, "未登录")
	}
	return id, ok
}

package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// 业务错误码，HTTP 状态码统一返回 200
const (
	CodeOK               = 0
	CodeInvalidParams    = 1001
	CodeInvalidID        = 1002
	CodeUserExists       = 2001
	CodeAlreadyMember    = 3001
	CodeInvalidInvite    = 3004
	CodeNotMember        = 3005
	CodeAuthMissing      = 4001
	CodeAuthMalformed    = 4002
	CodePermissionDenied = 4003
	CodeNotFound         = 4004
	CodeInternal         = 5000
	CodeContainerBusy    = 7001
	CodeContainerStopped = 7003
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: CodeOK, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}

package middlewares

import (
	"SWJTUCTF/models"
	"SWJTUCTF/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextUserRole = "user_role"
)

func bearerToken(c *gin.Context) (string, int, string) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		return "", utils.CodeAuthMissing, "请求头中 Authorization 为空"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", utils.CodeAuthMalformed, "Authorization 格式有误"
	}
	return parts[1], 0, ""
}

func setClaims(c *gin.Context, claims *utils.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextUserRole, claims.Role)
}

// JWTAuthMiddleware 验证用户是否登录
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, msg := bearerToken(c)
		if code != 0 {
			utils.Error(c, code, msg)
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token, secret)
		if err != nil {
			utils.Error(c, utils.CodePermissionDenied, "无效的 Token")
			c.Abort()
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// RoleAuthMiddleware 验证用户角色权限，需在 JWTAuthMiddleware 之后使用
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			utils.Error(c, utils.CodeAuthMissing, "无法获取用户角色信息")
			c.Abort()
			return
		}

		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				c.Next()
				return
			}
		}
		utils.Error(c, utils.CodePermissionDenied, "权限不足")
		c.Abort()
	}
}

// JWTTryAuthMiddleware 尝试解析 Token，即使失败也继续执行
func JWTTryAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, _ := bearerToken(c)
		if code == 0 {
			if claims, err := utils.ParseToken(token, secret); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// CurrentUserID 返回当前登录用户 ID
func CurrentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// CurrentRole 返回当前登录用户角色
func CurrentRole(c *gin.Context) (models.UserRole, bool) {
	v, exists := c.Get(ContextUserRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.UserRole)
	return role, ok
}

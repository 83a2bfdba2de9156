package middleware

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"crm-backend/internal/dto"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
)

// 会话中存储的键
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUsername = "username"
	SessionKeyNickname = "nickname"
	SessionKeyRole     = "role"
)

// 认证上下文在gin context中的键
const ContextKeyAuth = "auth"

// SessionAuth 会话认证中间件：校验session中的用户标识，
// 并将其还原为显式的AuthContext供后续handler使用
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(SessionKeyUserID).(int64)
		if !ok || userID <= 0 {
			responses.Error(c, responses.ErrUnauthorized)
			c.Abort()
			return
		}

		username, _ := session.Get(SessionKeyUsername).(string)
		role, _ := session.Get(SessionKeyRole).(string)

		c.Set(ContextKeyAuth, &dto.AuthContext{
			UserID:   userID,
			Username: username,
			Role:     role,
		})

		c.Next()
	}
}

// AdminRequired 管理员权限中间件；角色以数据库中的当前值为准，
// 会话创建后被降权的用户立即失去管理员访问权
func AdminRequired(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := CurrentAuth(c)
		if auth == nil {
			responses.Error(c, responses.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := userService.GetUserByID(auth.UserID)
		if err != nil {
			if errors.Is(err, responses.ErrRecordNotFound) {
				responses.Error(c, responses.ErrUnauthorized)
			} else {
				responses.Error(c, err)
			}
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			responses.Error(c, responses.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentAuth 获取当前请求的认证上下文，未登录时返回nil
func CurrentAuth(c *gin.Context) *dto.AuthContext {
	value, exists := c.Get(ContextKeyAuth)
	if !exists {
		return nil
	}
	auth, ok := value.(*dto.AuthContext)
	if !ok {
		return nil
	}
	return auth
}

package dto

import "crm-backend/internal/model"

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthContext 当前请求的认证上下文，由会话中间件从session还原
type AuthContext struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin 是否为管理员
func (a *AuthContext) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// UserInfo 用户摘要信息，密码字段永远不出现在响应中
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// NewUserInfo 从用户模型构建摘要信息
func NewUserInfo(u *model.User) *UserInfo {
	return &UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Role:     u.Role,
	}
}

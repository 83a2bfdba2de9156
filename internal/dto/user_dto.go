package dto

import "crm-backend/internal/model"

// UserCreateRequest 管理员创建用户请求
type UserCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserPatchRequest 管理员更新用户请求，字段缺省表示不修改
type UserPatchRequest struct {
	Nickname *string `json:"nickname"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// ProfilePatchRequest 修改个人信息请求，字段缺省表示不修改
type ProfilePatchRequest struct {
	Nickname *string `json:"nickname"`
	Password *string `json:"password"`
}

// UserResponse 用户列表条目
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewUserResponse 从用户模型构建响应
func NewUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(model.TimeFormat),
		UpdatedAt: u.UpdatedAt.Format(model.TimeFormat),
	}
}

package handler

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"crm-backend/internal/api/middleware"
	"crm-backend/internal/dto"
	"crm-backend/internal/pkg/crypto"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
	"crm-backend/pkg/utils"
)

type AuthHandler struct {
	userService service.UserService
}

func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Login 用户登录；成功后将用户身份写入session
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "用户名和密码不能为空", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Login(req.Username, req.Password)
	if err != nil {
		responses.Error(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyUserID, user.ID)
	session.Set(middleware.SessionKeyUsername, user.Username)
	session.Set(middleware.SessionKeyNickname, user.Nickname)
	session.Set(middleware.SessionKeyRole, user.Role)
	if err := session.Save(); err != nil {
		responses.Error(c, responses.Wrap(responses.CodeInternalError, "保存会话失败", err))
		return
	}

	responses.SuccessWithMessage(c, "登录成功", dto.NewUserInfo(user))
}

// Logout 用户退出；销毁session
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		responses.Error(c, responses.Wrap(responses.CodeInternalError, "销毁会话失败", err))
		return
	}

	responses.SuccessWithMessage(c, "退出成功", nil)
}

// GetUserInfo 获取当前用户信息
func (h *AuthHandler) GetUserInfo(c *gin.Context) {
	auth := middleware.CurrentAuth(c)

	user, err := h.userService.GetUserByID(auth.UserID)
	if err != nil {
		if errors.Is(err, responses.ErrRecordNotFound) {
			responses.Error(c, responses.ErrUserNotFound)
			return
		}
		responses.Error(c, err)
		return
	}

	responses.Success(c, dto.NewUserInfo(user))
}

// UpdateProfile 修改个人信息（昵称/密码），缺省字段不变
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	auth := middleware.CurrentAuth(c)

	var req dto.ProfilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.GetUserByID(auth.UserID)
	if err != nil {
		if errors.Is(err, responses.ErrRecordNotFound) {
			responses.Error(c, responses.ErrUserNotFound)
			return
		}
		responses.Error(c, err)
		return
	}

	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	// 空密码视为不修改
	if req.Password != nil && *req.Password != "" {
		user.Password = crypto.HashPassword(*req.Password)
	}

	if err := h.userService.UpdateUser(user); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "更新成功", nil)
}

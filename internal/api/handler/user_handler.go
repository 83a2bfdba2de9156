package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"crm-backend/internal/api/middleware"
	"crm-backend/internal/dto"
	"crm-backend/internal/model"
	"crm-backend/internal/pkg/crypto"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
	"crm-backend/pkg/utils"
)

// UserHandler 用户管理接口，仅管理员可用（由路由上的AdminRequired保证）
type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List 获取用户列表
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, users)
}

// Create 添加用户
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "用户名、密码、昵称和角色不能为空", utils.FormatValidationError(err))
		return
	}

	if _, err := h.userService.GetUserByUsername(req.Username); err == nil {
		responses.Error(c, responses.ErrUsernameExists)
		return
	} else if !errors.Is(err, responses.ErrRecordNotFound) {
		responses.Error(c, err)
		return
	}

	user := &model.User{
		Username: req.Username,
		Password: crypto.HashPassword(req.Password),
		Nickname: req.Nickname,
		Role:     req.Role,
	}
	if err := h.userService.AddUser(user); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "添加成功", nil)
}

// Update 更新用户信息（昵称/角色/密码），缺省字段不变
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的用户ID")
		return
	}

	var req dto.UserPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.GetUserByID(id)
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
	if req.Role != nil {
		user.Role = *req.Role
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

// Delete 删除用户；不允许删除自己
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的用户ID")
		return
	}

	auth := middleware.CurrentAuth(c)
	if id == auth.UserID {
		responses.Error(c, responses.ErrDeleteSelf)
		return
	}

	deleted, err := h.userService.DeleteUser(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	if !deleted {
		responses.Error(c, responses.ErrUserNotFound)
		return
	}

	responses.SuccessWithMessage(c, "删除成功", nil)
}

package service

import (
	"errors"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"crm-backend/internal/dto"
	"crm-backend/internal/model"
	"crm-backend/internal/pkg/crypto"
	"crm-backend/internal/pkg/logger"
	"crm-backend/internal/repository"
	pkgErrors "crm-backend/pkg/responses"
)

// 默认管理员账号
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123456"
	defaultAdminNickname = "系统管理员"
)

type UserService interface {
	// Login 登录验证；用户不存在与密码错误统一返回ErrInvalidCredentials
	Login(username, password string) (*model.User, error)
	// CreateDefaultAdmin 启动时保证admin账号存在。
	// 注意：账号已存在时其密码会被无条件重置为默认值，与既有系统行为保持一致。
	CreateDefaultAdmin() error
	AddUser(user *model.User) error
	UpdateUser(user *model.User) error
	DeleteUser(id int64) (bool, error)
	GetAllUsers() ([]*dto.UserResponse, error)
	GetUserByID(id int64) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	ChangePassword(id int64, newPassword string) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			// 不向调用方透露是用户不存在还是密码错误
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) CreateDefaultAdmin() error {
	admin, err := s.userRepo.FindByUsername(DefaultAdminUsername)
	if err != nil {
		if !errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return err
		}
		admin = &model.User{
			Username: DefaultAdminUsername,
			Password: crypto.HashPassword(DefaultAdminPassword),
			Nickname: defaultAdminNickname,
			Role:     model.RoleAdmin,
		}
		if err := s.userRepo.Create(admin); err != nil {
			return err
		}
		logger.Info("默认管理员账号创建成功", zap.String("username", DefaultAdminUsername))
		return nil
	}

	// 重置管理员密码为默认值
	admin.Password = crypto.HashPassword(DefaultAdminPassword)
	if err := s.userRepo.Update(admin); err != nil {
		return err
	}
	logger.Warn("管理员账号密码已重置为默认值", zap.String("username", DefaultAdminUsername))
	return nil
}

func (s *userService) AddUser(user *model.User) error {
	return s.userRepo.Create(user)
}

func (s *userService) UpdateUser(user *model.User) error {
	return s.userRepo.Update(user)
}

func (s *userService) DeleteUser(id int64) (bool, error) {
	return s.userRepo.DeleteByID(id)
}

func (s *userService) GetAllUsers() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u *model.User, _ int) *dto.UserResponse {
		return dto.NewUserResponse(u)
	}), nil
}

func (s *userService) GetUserByID(id int64) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userService) GetUserByUsername(username string) (*model.User, error) {
	return s.userRepo.FindByUsername(username)
}

func (s *userService) ChangePassword(id int64, newPassword string) (bool, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	user.Password = crypto.HashPassword(newPassword)
	if err := s.userRepo.Update(user); err != nil {
		return false, err
	}
	return true, nil
}

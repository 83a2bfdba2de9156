package repository

import (
	"errors"

	"gorm.io/gorm"

	"crm-backend/internal/model"
	pkgErrors "crm-backend/pkg/responses"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindAll() ([]*model.User, error)
	Update(user *model.User) error
	DeleteByID(id int64) (bool, error)
	ExistsByID(id int64) (bool, error)
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建用户失败", err)
	}
	return nil
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]*model.User, error) {
	var users []*model.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户列表失败", err)
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新用户失败", err)
	}
	return nil
}

func (r *userRepository) DeleteByID(id int64) (bool, error) {
	tx := r.db.Delete(&model.User{}, id)
	if tx.Error != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除用户失败", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *userRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return count > 0, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计用户数量失败", err)
	}
	return count, nil
}

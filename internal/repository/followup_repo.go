package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crm-backend/internal/model"
	pkgErrors "crm-backend/pkg/responses"
)

type FollowupRepository interface {
	Create(followup *model.Followup) error
	FindByID(id int64) (*model.Followup, error)
	DeleteByID(id int64) (bool, error)
	ExistsByID(id int64) (bool, error)
	Count() (int64, error)
	// Search 按客户筛选、按跟进时间倒序分页；customerID为0表示不筛选
	Search(customerID int64, page, limit int) ([]*model.Followup, int64, error)
	// CountByMethod 按跟进方式分组统计
	CountByMethod() (map[string]int64, error)
	// CountFollowedBetween 统计跟进时间落在[start, end)内的记录数量
	CountFollowedBetween(start, end time.Time) (int64, error)
}

type followupRepository struct {
	db *gorm.DB
}

func NewFollowupRepository(db *gorm.DB) FollowupRepository {
	return &followupRepository{db: db}
}

func (r *followupRepository) Create(followup *model.Followup) error {
	if err := r.db.Create(followup).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建跟进记录失败", err)
	}
	return nil
}

func (r *followupRepository) FindByID(id int64) (*model.Followup, error) {
	var followup model.Followup
	err := r.db.First(&followup, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询跟进记录失败", err)
	}
	return &followup, nil
}

func (r *followupRepository) DeleteByID(id int64) (bool, error) {
	tx := r.db.Delete(&model.Followup{}, id)
	if tx.Error != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除跟进记录失败", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *followupRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Followup{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询跟进记录失败", err)
	}
	return count > 0, nil
}

func (r *followupRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Followup{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计跟进记录数量失败", err)
	}
	return count, nil
}

func (r *followupRepository) Search(customerID int64, page, limit int) ([]*model.Followup, int64, error) {
	query := r.db.Model(&model.Followup{})
	if customerID > 0 {
		query = query.Where("customer_id = ?", customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计跟进记录数量失败", err)
	}

	query = query.Order("follow_time DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var followups []*model.Followup
	if err := query.Find(&followups).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询跟进记录列表失败", err)
	}
	return followups, total, nil
}

func (r *followupRepository) CountByMethod() (map[string]int64, error) {
	type methodCount struct {
		FollowMethod string
		Count        int64
	}
	var rows []methodCount
	err := r.db.Model(&model.Followup{}).
		Select("follow_method, COUNT(id) AS count").
		Group("follow_method").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计跟进方式分布失败", err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.FollowMethod] = row.Count
	}
	return result, nil
}

func (r *followupRepository) CountFollowedBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Followup{}).
		Where("follow_time >= ? AND follow_time < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计跟进记录数量失败", err)
	}
	return count, nil
}

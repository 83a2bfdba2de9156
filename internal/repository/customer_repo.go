package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crm-backend/internal/model"
	pkgErrors "crm-backend/pkg/responses"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindByID(id int64) (*model.Customer, error)
	Update(customer *model.Customer) error
	DeleteByID(id int64) (bool, error)
	ExistsByID(id int64) (bool, error)
	Count() (int64, error)
	// Search 按姓名/手机号模糊、来源精确筛选，按创建时间倒序分页。
	// 空的name/phone匹配全部；source为空时不参与筛选；limit<=0表示不分页（导出用）。
	Search(name, phone, source string, page, limit int) ([]*model.Customer, int64, error)
	// CountBySource 按来源分组统计客户数量，空来源不计入
	CountBySource() (map[string]int64, error)
	// CountCreatedBetween 统计创建时间落在[start, end)内的客户数量
	CountCreatedBetween(start, end time.Time) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *model.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建客户失败", err)
	}
	return nil
}

func (r *customerRepository) FindByID(id int64) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询客户失败", err)
	}
	return &customer, nil
}

func (r *customerRepository) Update(customer *model.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新客户失败", err)
	}
	return nil
}

func (r *customerRepository) DeleteByID(id int64) (bool, error) {
	tx := r.db.Delete(&model.Customer{}, id)
	if tx.Error != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除客户失败", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *customerRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询客户失败", err)
	}
	return count > 0, nil
}

func (r *customerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Customer{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计客户数量失败", err)
	}
	return count, nil
}

func (r *customerRepository) Search(name, phone, source string, page, limit int) ([]*model.Customer, int64, error) {
	query := r.db.Model(&model.Customer{}).
		Where("name LIKE ?", "%"+name+"%").
		Where("phone LIKE ?", "%"+phone+"%")
	if source != "" {
		query = query.Where("source = ?", source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计客户数量失败", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var customers []*model.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询客户列表失败", err)
	}
	return customers, total, nil
}

func (r *customerRepository) CountBySource() (map[string]int64, error) {
	type sourceCount struct {
		Source string
		Count  int64
	}
	var rows []sourceCount
	err := r.db.Model(&model.Customer{}).
		Select("source, COUNT(id) AS count").
		Where("source IS NOT NULL AND source <> ''").
		Group("source").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计客户来源分布失败", err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Source] = row.Count
	}
	return result, nil
}

func (r *customerRepository) CountCreatedBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Customer{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计客户数量失败", err)
	}
	return count, nil
}

package service

import (
	"time"

	"github.com/samber/lo"

	"crm-backend/internal/dto"
	"crm-backend/internal/model"
	"crm-backend/internal/repository"
)

type CustomerService interface {
	AddCustomer(customer *model.Customer) error
	GetCustomerByID(id int64) (*model.Customer, error)
	UpdateCustomer(customer *model.Customer) error
	DeleteCustomer(id int64) (bool, error)
	// GetCustomers 按创建时间倒序分页查询；name/phone模糊匹配，source精确匹配
	GetCustomers(page, limit int, name, phone, source string) ([]*dto.CustomerResponse, int64, error)
	// GetCustomersForExport 返回符合筛选条件的全部客户，不分页
	GetCustomersForExport(name, phone, source string) ([]*model.Customer, error)
	// GetCustomerSourceStatistics 客户来源分布，空来源不计入
	GetCustomerSourceStatistics() (map[string]int64, error)
	// GetCustomerCountStatistics 最近days个自然日（含今天）每天新增的客户数量，无数据的日期计0
	GetCustomerCountStatistics(days int) (map[string]int64, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) AddCustomer(customer *model.Customer) error {
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetCustomerByID(id int64) (*model.Customer, error) {
	return s.customerRepo.FindByID(id)
}

func (s *customerService) UpdateCustomer(customer *model.Customer) error {
	return s.customerRepo.Update(customer)
}

func (s *customerService) DeleteCustomer(id int64) (bool, error) {
	return s.customerRepo.DeleteByID(id)
}

func (s *customerService) GetCustomers(page, limit int, name, phone, source string) ([]*dto.CustomerResponse, int64, error) {
	customers, total, err := s.customerRepo.Search(name, phone, source, page, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := lo.Map(customers, func(c *model.Customer, _ int) *dto.CustomerResponse {
		return dto.NewCustomerResponse(c)
	})
	return resp, total, nil
}

func (s *customerService) GetCustomersForExport(name, phone, source string) ([]*model.Customer, error) {
	customers, _, err := s.customerRepo.Search(name, phone, source, 1, 0)
	return customers, err
}

func (s *customerService) GetCustomerSourceStatistics() (map[string]int64, error) {
	return s.customerRepo.CountBySource()
}

func (s *customerService) GetCustomerCountStatistics(days int) (map[string]int64, error) {
	return countByDay(days, s.customerRepo.CountCreatedBetween)
}

// countByDay 按自然日（服务器本地时区）统计最近days天的数量，键为 2006-01-02
func countByDay(days int, count func(start, end time.Time) (int64, error)) (map[string]int64, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result := make(map[string]int64, days)
	for i := days - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)
		n, err := count(start, end)
		if err != nil {
			return nil, err
		}
		result[start.Format("2006-01-02")] = n
	}
	return result, nil
}

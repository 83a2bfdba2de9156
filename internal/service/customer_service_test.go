package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-backend/internal/model"
	"crm-backend/internal/repository"
)

func newCustomerService(t *testing.T) (CustomerService, repository.CustomerRepository) {
	t.Helper()
	repo := repository.NewCustomerRepository(newTestDB(t))
	return NewCustomerService(repo), repo
}

func TestCustomerService_GetCustomers(t *testing.T) {
	svc, repo := newCustomerService(t)

	require.NoError(t, repo.Create(&model.Customer{Name: "张三", Phone: "13800001111", Source: "网站"}))
	require.NoError(t, repo.Create(&model.Customer{Name: "李四", Phone: "13900002222", Source: "展会"}))

	customers, total, err := svc.GetCustomers(1, 10, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, customers, 2)
	// 响应中的时间为格式化字符串
	_, err = time.Parse(model.TimeFormat, customers[0].CreatedAt)
	assert.NoError(t, err)

	// 筛选条件组合
	customers, total, err = svc.GetCustomers(1, 10, "张", "", "网站")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "张三", customers[0].Name)
}

func TestCustomerService_GetCustomersForExport(t *testing.T) {
	svc, repo := newCustomerService(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(&model.Customer{Name: "客户", Phone: "138"}))
	}

	// 导出不分页，返回全部
	customers, err := svc.GetCustomersForExport("", "", "")
	require.NoError(t, err)
	assert.Len(t, customers, 15)
}

func TestCustomerService_GetCustomerCountStatistics(t *testing.T) {
	svc, repo := newCustomerService(t)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 今天2个、前天1个、8天前1个（超出7天窗口）
	require.NoError(t, repo.Create(&model.Customer{Name: "a", Phone: "1", CreatedAt: today.Add(9 * time.Hour)}))
	require.NoError(t, repo.Create(&model.Customer{Name: "b", Phone: "2", CreatedAt: today.Add(10 * time.Hour)}))
	require.NoError(t, repo.Create(&model.Customer{Name: "c", Phone: "3", CreatedAt: today.AddDate(0, 0, -2).Add(time.Hour)}))
	require.NoError(t, repo.Create(&model.Customer{Name: "d", Phone: "4", CreatedAt: today.AddDate(0, 0, -8)}))

	stats, err := svc.GetCustomerCountStatistics(7)
	require.NoError(t, err)

	// 固定7个键，没有数据的日期计0
	require.Len(t, stats, 7)
	assert.Equal(t, int64(2), stats[today.Format("2006-01-02")])
	assert.Equal(t, int64(1), stats[today.AddDate(0, 0, -2).Format("2006-01-02")])
	assert.Equal(t, int64(0), stats[today.AddDate(0, 0, -1).Format("2006-01-02")])

	// 8天前的记录不在窗口内
	_, ok := stats[today.AddDate(0, 0, -8).Format("2006-01-02")]
	assert.False(t, ok)
}

func TestCustomerService_GetCustomerSourceStatistics(t *testing.T) {
	svc, repo := newCustomerService(t)

	require.NoError(t, repo.Create(&model.Customer{Name: "a", Phone: "1", Source: "网站"}))
	require.NoError(t, repo.Create(&model.Customer{Name: "b", Phone: "2", Source: "网站"}))
	require.NoError(t, repo.Create(&model.Customer{Name: "c", Phone: "3"}))

	stats, err := svc.GetCustomerSourceStatistics()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"网站": 2}, stats)
}

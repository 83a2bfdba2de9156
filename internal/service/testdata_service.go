package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"crm-backend/internal/model"
	"crm-backend/internal/pkg/crypto"
	"crm-backend/internal/pkg/logger"
	"crm-backend/internal/repository"
)

// 演示数据取值池
var (
	testCustomerSources = []string{"网站", "电话", "微信", "朋友介绍", "展会"}
	testFollowMethods   = []string{model.FollowMethodPhone, model.FollowMethodWeChat, model.FollowMethodMeeting}
	testFollowContents  = []string{
		"初次沟通，了解需求",
		"介绍产品功能",
		"讨论价格方案",
		"跟进合同签署",
		"售后服务跟进",
	}
	testNames = []string{
		"张三", "李四", "王五", "赵六", "钱七", "孙八", "周九", "吴十",
		"郑一", "王二", "陈三", "林四", "黄五", "杨六", "马七", "牛八",
	}
	testCompanies = []string{
		"阿里巴巴", "腾讯", "百度", "京东", "字节跳动",
		"美团", "拼多多", "小米", "华为", "OPPO",
	}
)

// TestDataService 演示数据生成器；各步骤均为幂等，已有数据时跳过
type TestDataService interface {
	Generate() error
}

type testDataService struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	followupRepo repository.FollowupRepository
}

func NewTestDataService(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	followupRepo repository.FollowupRepository,
) TestDataService {
	return &testDataService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		followupRepo: followupRepo,
	}
}

func (s *testDataService) Generate() error {
	if err := s.ensureAdminUser(); err != nil {
		return err
	}
	if err := s.generateCustomers(); err != nil {
		return err
	}
	return s.generateFollowups()
}

// ensureAdminUser 用户表为空时补一个管理员账号
func (s *testDataService) ensureAdminUser() error {
	count, err := s.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &model.User{
		Username: DefaultAdminUsername,
		Password: crypto.HashPassword(DefaultAdminPassword),
		Nickname: "管理员",
		Role:     model.RoleAdmin,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return err
	}
	logger.Info("创建管理员用户", zap.String("username", DefaultAdminUsername))
	return nil
}

// generateCustomers 生成30个客户，创建时间分布在最近30天内
func (s *testDataService) generateCustomers() error {
	count, err := s.customerRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("已有客户数据，跳过生成")
		return nil
	}

	adminID := int64(1)
	now := time.Now()
	for i := 0; i < 30; i++ {
		name := lo.Sample(testNames)
		customer := &model.Customer{
			Name:      name,
			Phone:     fmt.Sprintf("138%08d", rand.Intn(100000000)),
			Email:     name + "@example.com",
			Company:   lo.Sample(testCompanies),
			Position:  "经理",
			Source:    lo.Sample(testCustomerSources),
			Notes:     "测试客户",
			CreatedBy: &adminID,
			CreatedAt: now.AddDate(0, 0, -rand.Intn(30)),
		}
		if err := s.customerRepo.Create(customer); err != nil {
			return err
		}
	}

	logger.Info("客户演示数据生成完成", zap.Int("count", 30))
	return nil
}

// generateFollowups 为每个客户生成1-3条跟进记录，跟进时间在客户创建之后
func (s *testDataService) generateFollowups() error {
	count, err := s.followupRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("已有跟进记录数据，跳过生成")
		return nil
	}

	customers, _, err := s.customerRepo.Search("", "", "", 1, 0)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		logger.Warn("无客户数据，无法生成跟进记录")
		return nil
	}

	generated := 0
	for _, customer := range customers {
		n := 1 + rand.Intn(3)
		for i := 0; i < n; i++ {
			followTime := customer.CreatedAt.AddDate(0, 0, rand.Intn(10))
			followup := &model.Followup{
				CustomerID:   customer.ID,
				UserID:       1,
				FollowTime:   followTime,
				FollowMethod: lo.Sample(testFollowMethods),
				Content:      lo.Sample(testFollowContents),
			}
			if rand.Intn(2) == 0 {
				reminder := followTime.AddDate(0, 0, 7+rand.Intn(14))
				followup.NextFollowReminder = &reminder
			}
			if err := s.followupRepo.Create(followup); err != nil {
				return err
			}
			generated++
		}
	}

	logger.Info("跟进记录演示数据生成完成", zap.Int("count", generated))
	return nil
}

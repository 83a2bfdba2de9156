package handler

import (
	"github.com/gin-gonic/gin"

	"crm-backend/internal/dto"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
)

// StatisticsHandler 统计接口：客户来源/新增趋势、跟进方式/数量趋势
type StatisticsHandler struct {
	customerService service.CustomerService
	followupService service.FollowupService
}

func NewStatisticsHandler(customerService service.CustomerService, followupService service.FollowupService) *StatisticsHandler {
	return &StatisticsHandler{
		customerService: customerService,
		followupService: followupService,
	}
}

// CustomerSource 客户来源分布
func (h *StatisticsHandler) CustomerSource(c *gin.Context) {
	statistics, err := h.customerService.GetCustomerSourceStatistics()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, statistics)
}

// CustomerCount 最近N天每天新增客户数量
func (h *StatisticsHandler) CustomerCount(c *gin.Context) {
	var req dto.DaysQuery
	_ = c.ShouldBindQuery(&req)

	statistics, err := h.customerService.GetCustomerCountStatistics(req.GetDays())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, statistics)
}

// FollowupMethod 跟进方式分布
func (h *StatisticsHandler) FollowupMethod(c *gin.Context) {
	statistics, err := h.followupService.GetFollowupMethodStatistics()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, statistics)
}

// FollowupCount 最近N天每天的跟进记录数量
func (h *StatisticsHandler) FollowupCount(c *gin.Context) {
	var req dto.DaysQuery
	_ = c.ShouldBindQuery(&req)

	statistics, err := h.followupService.GetFollowupCountStatistics(req.GetDays())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, statistics)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crm-backend/internal/pkg/logger"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
)

// TestDataHandler 演示数据生成接口
type TestDataHandler struct {
	testDataService service.TestDataService
}

func NewTestDataHandler(testDataService service.TestDataService) *TestDataHandler {
	return &TestDataHandler{
		testDataService: testDataService,
	}
}

// Generate 生成演示数据；已有数据时为空操作
func (h *TestDataHandler) Generate(c *gin.Context) {
	if err := h.testDataService.Generate(); err != nil {
		logger.Error("生成测试数据失败", zap.Error(err))
		responses.ErrorWithCode(c, 500, "生成测试数据失败")
		return
	}

	responses.SuccessWithMessage(c, "测试数据生成成功", nil)
}

package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"crm-backend/internal/api/middleware"
	"crm-backend/internal/dto"
	"crm-backend/internal/model"
	"crm-backend/internal/pkg/logger"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
	"crm-backend/pkg/utils"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List 获取客户列表，支持分页和筛选
func (h *CustomerHandler) List(c *gin.Context) {
	var req dto.CustomerQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	page := req.GetPage()
	limit := req.GetLimit()
	customers, total, err := h.customerService.GetCustomers(page, limit, req.Name, req.Phone, req.Source)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, customers, total, page, limit)
}

// Create 添加客户，创建人为当前登录用户
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "姓名和手机号不能为空", utils.FormatValidationError(err))
		return
	}

	auth := middleware.CurrentAuth(c)
	customer := &model.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Company:   req.Company,
		Position:  req.Position,
		Source:    req.Source,
		Notes:     req.Notes,
		CreatedBy: &auth.UserID,
	}

	if err := h.customerService.AddCustomer(customer); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "添加成功", gin.H{"id": customer.ID})
}

// GetByID 获取客户详情
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的客户ID")
		return
	}

	customer, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, responses.ErrRecordNotFound) {
			responses.Error(c, responses.ErrCustomerNotFound)
			return
		}
		responses.Error(c, err)
		return
	}

	responses.Success(c, dto.NewCustomerResponse(customer))
}

// Update 更新客户信息，缺省字段不变；合并后姓名和手机号仍不能为空
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的客户ID")
		return
	}

	var req dto.CustomerPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	customer, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, responses.ErrRecordNotFound) {
			responses.Error(c, responses.ErrCustomerNotFound)
			return
		}
		responses.Error(c, err)
		return
	}

	req.Apply(customer)
	if customer.Name == "" || customer.Phone == "" {
		responses.ErrorWithCode(c, 400, "姓名和手机号不能为空")
		return
	}

	if err := h.customerService.UpdateCustomer(customer); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "更新成功", nil)
}

// Delete 删除客户；关联的跟进记录保留
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的客户ID")
		return
	}

	deleted, err := h.customerService.DeleteCustomer(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	if !deleted {
		responses.Error(c, responses.ErrCustomerNotFound)
		return
	}

	responses.SuccessWithMessage(c, "删除成功", nil)
}

// 导出表头与列宽
var exportColumns = []struct {
	Title string
	Width float64
}{
	{"ID", 8},
	{"姓名", 12},
	{"手机号", 16},
	{"邮箱", 24},
	{"公司", 20},
	{"职位", 12},
	{"来源", 12},
	{"备注", 28},
	{"创建时间", 20},
	{"创建人", 10},
}

// Export 导出客户列表为Excel文件，筛选条件与列表一致，不分页
func (h *CustomerHandler) Export(c *gin.Context) {
	var req dto.CustomerExportQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	customers, err := h.customerService.GetCustomersForExport(req.Name, req.Phone, req.Source)
	if err != nil {
		responses.Error(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "客户列表"
	index, err := f.NewSheet(sheet)
	if err != nil {
		logger.Error("创建导出工作表失败", zap.Error(err))
		responses.Error(c, responses.ErrInternalError)
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col.Title)
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, name, name, col.Width)
	}

	for rowIdx, customer := range customers {
		createdBy := ""
		if customer.CreatedBy != nil {
			createdBy = strconv.FormatInt(*customer.CreatedBy, 10)
		}
		values := []interface{}{
			customer.ID,
			customer.Name,
			customer.Phone,
			customer.Email,
			customer.Company,
			customer.Position,
			customer.Source,
			customer.Notes,
			customer.CreatedAt.Format(model.TimeFormat),
			createdBy,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("生成导出文件失败", zap.Error(err))
		responses.Error(c, responses.ErrInternalError)
		return
	}

	filename := fmt.Sprintf("customers_%d.xlsx", time.Now().UnixMilli())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/octet-stream", buf.Bytes())
}

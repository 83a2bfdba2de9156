package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"crm-backend/internal/api/middleware"
	"crm-backend/internal/dto"
	"crm-backend/internal/model"
	"crm-backend/internal/service"
	"crm-backend/pkg/responses"
	"crm-backend/pkg/utils"
)

type FollowupHandler struct {
	followupService service.FollowupService
}

func NewFollowupHandler(followupService service.FollowupService) *FollowupHandler {
	return &FollowupHandler{
		followupService: followupService,
	}
}

// List 获取跟进记录列表，支持分页和按客户筛选
func (h *FollowupHandler) List(c *gin.Context) {
	var req dto.FollowupQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	// 非数字的customer_id按未筛选处理
	var customerID int64
	if req.CustomerID != "" {
		if parsed, err := strconv.ParseInt(req.CustomerID, 10, 64); err == nil {
			customerID = parsed
		}
	}

	page := req.GetPage()
	limit := req.GetLimit()
	followups, total, err := h.followupService.GetFollowups(page, limit, customerID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, followups, total, page, limit)
}

// Create 添加跟进记录，记录人为当前登录用户
func (h *FollowupHandler) Create(c *gin.Context) {
	var req dto.FollowupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "客户ID、跟进时间、跟进方式和内容不能为空", utils.FormatValidationError(err))
		return
	}

	followTime, err := time.ParseInLocation(dto.FollowTimeFormat, req.FollowTime, time.Local)
	if err != nil {
		responses.ErrorWithCode(c, 400, "跟进时间格式错误")
		return
	}

	var nextFollowReminder *time.Time
	if req.NextFollowReminder != "" {
		reminder, err := time.ParseInLocation(dto.FollowTimeFormat, req.NextFollowReminder, time.Local)
		if err != nil {
			responses.ErrorWithCode(c, 400, "下次跟进提醒时间格式错误")
			return
		}
		nextFollowReminder = &reminder
	}

	auth := middleware.CurrentAuth(c)
	followup := &model.Followup{
		CustomerID:         req.CustomerID,
		UserID:             auth.UserID,
		FollowTime:         followTime,
		FollowMethod:       req.FollowMethod,
		Content:            req.Content,
		NextFollowReminder: nextFollowReminder,
	}

	if err := h.followupService.AddFollowup(followup); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "添加成功", gin.H{"id": followup.ID})
}

// Delete 删除跟进记录
func (h *FollowupHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的跟进记录ID")
		return
	}

	deleted, err := h.followupService.DeleteFollowup(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	if !deleted {
		responses.Error(c, responses.ErrFollowupNotFound)
		return
	}

	responses.SuccessWithMessage(c, "删除成功", nil)
}

package dto

import "crm-backend/internal/model"

// FollowTimeFormat 跟进时间的请求格式（前端datetime-local控件）
const FollowTimeFormat = "2006-01-02T15:04"

// FollowupCreateRequest 添加跟进记录请求
// follow_time与next_follow_reminder使用 2006-01-02T15:04 格式，在handler中解析
type FollowupCreateRequest struct {
	CustomerID         int64  `json:"customer_id" binding:"required"`
	FollowTime         string `json:"follow_time" binding:"required"`
	FollowMethod       string `json:"follow_method" binding:"required"`
	Content            string `json:"content" binding:"required"`
	NextFollowReminder string `json:"next_follow_reminder"`
}

// FollowupQuery 跟进记录列表查询参数
// customer_id按字符串接收：非数字值按未筛选处理，不报错
type FollowupQuery struct {
	PageQuery
	CustomerID string `form:"customer_id"`
}

// FollowupResponse 跟进记录响应
type FollowupResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customer_id"`
	UserID             int64   `json:"user_id"`
	FollowTime         string  `json:"follow_time"`
	FollowMethod       string  `json:"follow_method"`
	Content            string  `json:"content"`
	NextFollowReminder *string `json:"next_follow_reminder"`
	CreatedAt          string  `json:"created_at"`
}

// NewFollowupResponse 从跟进记录模型构建响应
func NewFollowupResponse(f *model.Followup) *FollowupResponse {
	resp := &FollowupResponse{
		ID:           f.ID,
		CustomerID:   f.CustomerID,
		UserID:       f.UserID,
		FollowTime:   f.FollowTime.Format(model.TimeFormat),
		FollowMethod: f.FollowMethod,
		Content:      f.Content,
		CreatedAt:    f.CreatedAt.Format(model.TimeFormat),
	}
	if f.NextFollowReminder != nil {
		reminder := f.NextFollowReminder.Format(model.TimeFormat)
		resp.NextFollowReminder = &reminder
	}
	return resp
}

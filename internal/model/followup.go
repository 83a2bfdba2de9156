package model

import "time"

// 常见跟进方式，follow_method为开放取值，不做枚举约束
const (
	FollowMethodPhone   = "电话"
	FollowMethodWeChat  = "微信"
	FollowMethodMeeting = "面谈"
)

// Followup 跟进记录模型
// 客户删除后跟进记录保留（不做级联删除），customer_id可能指向已删除的客户
type Followup struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID         int64      `gorm:"column:customer_id;not null;index" json:"customer_id"`
	UserID             int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	FollowTime         time.Time  `gorm:"not null;index" json:"follow_time"`
	FollowMethod       string     `gorm:"size:20;not null" json:"follow_method"`
	Content            string     `gorm:"type:text;not null" json:"content"`
	NextFollowReminder *time.Time `json:"next_follow_reminder"`
	CreatedAt          time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Followup) TableName() string {
	return "followups"
}

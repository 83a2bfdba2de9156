package model

import "time"

// Customer 客户模型
type Customer struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:50;not null;index:idx_customers_name_phone" json:"name"`
	Phone    string `gorm:"size:20;not null;index:idx_customers_name_phone" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Company  string `gorm:"size:100" json:"company"`
	Position string `gorm:"size:50" json:"position"`
	Source   string `gorm:"size:50;index" json:"source"`
	Notes    string `gorm:"type:text" json:"notes"`
	// 创建人，指向users.id；用户删除后保留原值，不做强外键约束
	CreatedBy *int64    `json:"created_by"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

package model

// 用户角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 用户模型
type User struct {
	BaseModel
	Username string `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"` // MD5摘要，不返回到前端
	Nickname string `gorm:"size:50;not null" json:"nickname"`
	Role     string `gorm:"size:20;not null;default:'user'" json:"role"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package dto

import "crm-backend/internal/model"

// CustomerCreateRequest 添加客户请求
type CustomerCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Source   string `json:"source"`
	Notes    string `json:"notes"`
}

// CustomerPatchRequest 更新客户请求，字段缺省表示不修改
type CustomerPatchRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Source   *string `json:"source"`
	Notes    *string `json:"notes"`
}

// Apply 将补丁应用到客户模型，只覆盖请求中出现的字段
func (r *CustomerPatchRequest) Apply(c *model.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Company != nil {
		c.Company = *r.Company
	}
	if r.Position != nil {
		c.Position = *r.Position
	}
	if r.Source != nil {
		c.Source = *r.Source
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
}

// CustomerQuery 客户列表查询参数
type CustomerQuery struct {
	PageQuery
	Name   string `form:"name"`
	Phone  string `form:"phone"`
	Source string `form:"source"`
}

// CustomerExportQuery 客户导出查询参数（与列表筛选一致，不分页）
type CustomerExportQuery struct {
	Name   string `form:"name"`
	Phone  string `form:"phone"`
	Source string `form:"source"`
}

// CustomerResponse 客户信息响应
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Source    string `json:"source"`
	Notes     string `json:"notes"`
	CreatedBy *int64 `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewCustomerResponse 从客户模型构建响应
func NewCustomerResponse(c *model.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Company:   c.Company,
		Position:  c.Position,
		Source:    c.Source,
		Notes:     c.Notes,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt.Format(model.TimeFormat),
		UpdatedAt: c.UpdatedAt.Format(model.TimeFormat),
	}
}

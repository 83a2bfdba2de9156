package dto

// PageQuery 分页查询参数
type PageQuery struct {
	Page  int `form:"page"`  // 可选：页码，不传默认为1
	Limit int `form:"limit"` // 可选：每页数量，不传默认为10，不设上限
}

// GetPage 获取页码
func (p *PageQuery) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// GetLimit 获取每页数量
func (p *PageQuery) GetLimit() int {
	if p.Limit < 1 {
		return 10
	}
	return p.Limit
}

// IDParam ID参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// DaysQuery 统计天数参数
type DaysQuery struct {
	Days int `form:"days"`
}

// GetDays 获取统计天数，默认最近7天
func (q *DaysQuery) GetDays() int {
	if q.Days < 1 {
		return 7
	}
	return q.Days
}

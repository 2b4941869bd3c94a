package dto

import "github.com/Payphone-Digital/landing-cms/pkg/query"

// ListQuery parameter list yang seragam di semua endpoint list.
// limit=0 atau > 100 ditolak dengan 400.
type ListQuery struct {
	Page   *int   `form:"page" json:"page" binding:"omitempty,min=1"`
	Limit  *int   `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search" json:"search" binding:"omitempty,max=255"`
	Filter string `form:"filter" json:"filter" binding:"omitempty,max=255"`
	SortBy string `form:"sortBy" json:"sortBy" binding:"omitempty,max=64"`
}

func (q ListQuery) Params(baseURL string) query.Params {
	p := query.Params{
		Search:  q.Search,
		Filter:  q.Filter,
		SortBy:  q.SortBy,
		BaseURL: baseURL,
	}
	if q.Page != nil {
		p.Page = *q.Page
	}
	if q.Limit != nil {
		p.Limit = *q.Limit
	}
	return p.Normalize()
}

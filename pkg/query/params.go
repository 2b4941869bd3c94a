package query

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params parameter list yang seragam di semua endpoint list.
type Params struct {
	Page    int
	Limit   int
	Search  string
	Filter  string
	SortBy  string
	BaseURL string
}

// Normalize mengisi default dan membatasi limit.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.Search = strings.TrimSpace(p.Search)
	p.Filter = strings.TrimSpace(p.Filter)
	p.SortBy = strings.TrimSpace(p.SortBy)
	return p
}

// Offset jumlah baris yang dilewati untuk halaman saat ini.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// URL membangun link halaman: baseURL?page=N&limit=L, ditambah search,
// filter dan sortBy bila ada supaya navigasi tetap pada result set yang sama.
func (p Params) URL(page int) string {
	var b strings.Builder
	b.WriteString(p.BaseURL)
	fmt.Fprintf(&b, "?page=%d&limit=%d", page, p.Limit)

	extra := url.Values{}
	if p.Search != "" {
		extra.Set("search", p.Search)
	}
	if p.Filter != "" {
		extra.Set("filter", p.Filter)
	}
	if p.SortBy != "" {
		extra.Set("sortBy", p.SortBy)
	}
	if len(extra) > 0 {
		b.WriteByte('&')
		b.WriteString(extra.Encode())
	}
	return b.String()
}

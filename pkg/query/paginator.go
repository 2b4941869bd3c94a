package query

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Source data access yang dipaginasi.
type Source[T any] interface {
	FindMany(ctx context.Context, offset, limit int) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

type Meta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

type Links struct {
	First    *string `json:"first"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Last     *string `json:"last"`
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// Paginate menjalankan FindMany dan Count secara paralel lalu menyusun
// meta dan link navigasi.
func Paginate[T any](ctx context.Context, src Source[T], params Params) (*Page[T], error) {
	params = params.Normalize()

	var (
		items []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = src.FindMany(gctx, params.Offset(), params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = src.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewPage(items, total, params), nil
}

// NewPage menyusun Page dari hasil yang sudah diambil.
func NewPage[T any](items []T, total int64, params Params) *Page[T] {
	params = params.Normalize()
	if items == nil {
		items = []T{}
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	page := &Page[T]{
		Data: items,
		Meta: Meta{
			CurrentPage: params.Page,
			PerPage:     params.Limit,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}

	link := func(n int) *string {
		u := params.URL(n)
		return &u
	}

	if total > 0 {
		page.Links.First = link(1)
		page.Links.Last = link(totalPages)
	}
	if params.Page > 1 {
		page.Links.Previous = link(params.Page - 1)
	}
	if params.Page < totalPages {
		page.Links.Next = link(params.Page + 1)
	}

	return page
}

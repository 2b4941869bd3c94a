package query

import (
	"context"

	"gorm.io/gorm"
)

// GormSource Source berbasis gorm. Count tidak pernah membawa ORDER BY
// maupun preload.
type GormSource[T any] struct {
	DB       *gorm.DB
	Scopes   []Scope
	Order    *Ordering
	Preloads []string
}

func (s GormSource[T]) base(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).Model(new(T)).Scopes(s.Scopes...)
}

func (s GormSource[T]) FindMany(ctx context.Context, offset, limit int) ([]T, error) {
	q := s.base(ctx)
	for _, preload := range s.Preloads {
		q = q.Preload(preload)
	}
	if s.Order != nil {
		q = q.Order(s.Order.Clause())
	} else {
		q = q.Order(Ordering{Column: "id"}.Clause())
	}

	var items []T
	if err := q.Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s GormSource[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.base(ctx).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindPage membangun predicate dan ordering dari params lalu memaginasi.
// extra berisi scope tambahan dari repository (mis. status=published).
func FindPage[T any](ctx context.Context, db *gorm.DB, params Params, spec Spec, extra []Scope, preloads ...string) (*Page[T], error) {
	scopes := append([]Scope{}, extra...)
	scopes = append(scopes, BuildPredicate(params, spec).Scope())

	src := GormSource[T]{DB: db, Scopes: scopes, Preloads: preloads, Order: spec.DefaultOrder}
	if ordering, ok := BuildOrdering(params.SortBy, spec); ok {
		src.Order = &ordering
	}

	return Paginate[T](ctx, src, params)
}

package repository

import (
	"context"
	"errors"
	"time"

	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// baseRepository operasi CRUD yang sama untuk semua entitas.
type baseRepository[T any] struct {
	db       *gorm.DB
	entity   string
	spec     query.Spec
	preloads []string
}

func newBase[T any](db *gorm.DB, entity string, spec query.Spec, preloads ...string) baseRepository[T] {
	return baseRepository[T]{db: db, entity: entity, spec: spec, preloads: preloads}
}

func (r *baseRepository[T]) conn(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db)
}

func (r *baseRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

func (r *baseRepository[T]) start(ctx context.Context, function string) context.Context {
	ctx = ctxutil.WithOperation(ctx, "repository", function)
	logger.DebugWithContext(ctx, "Executing query").
		String("entity", r.entity).
		Log()
	return ctx
}

func (r *baseRepository[T]) finish(ctx context.Context, started time.Time, err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.ErrorWithContext(ctx, "Query failed").
			String("entity", r.entity).
			Duration(time.Since(started)).
			Err(err).
			Log()
		return
	}
	logger.DebugWithContext(ctx, "Query finished").
		String("entity", r.entity).
		Duration(time.Since(started)).
		Log()
}

func (r *baseRepository[T]) Create(ctx context.Context, item *T) error {
	ctx = r.start(ctx, "Create")
	started := time.Now()

	err := r.conn(ctx).Omit(clause.Associations).Create(item).Error
	r.finish(ctx, started, err)
	return err
}

func (r *baseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx = r.start(ctx, "FindByID")
	started := time.Now()

	var item T
	err := r.withPreloads(r.conn(ctx)).First(&item, id).Error
	r.finish(ctx, started, err)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Exists true bila baris dengan id tersebut ada.
func (r *baseRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(new(T)).Where("id = ?", id).Limit(1).Count(&count).Error
	return count > 0, err
}

// Update menyimpan semua kolom item tanpa menyentuh relasi. Baris yang
// tidak ada mengembalikan gorm.ErrRecordNotFound.
func (r *baseRepository[T]) Update(ctx context.Context, item *T) error {
	ctx = r.start(ctx, "Update")
	started := time.Now()

	result := r.conn(ctx).Model(item).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(item)
	err := result.Error
	if err == nil && result.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
	}
	r.finish(ctx, started, err)
	return err
}

func (r *baseRepository[T]) Delete(ctx context.Context, id uint) error {
	ctx = r.start(ctx, "Delete")
	started := time.Now()

	result := r.conn(ctx).Delete(new(T), id)
	err := result.Error
	if err == nil && result.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
	}
	r.finish(ctx, started, err)
	return err
}

// List halaman data sesuai search, filter dan sortBy. scopes tambahan
// dipakai untuk batasan tetap seperti status=published.
func (r *baseRepository[T]) List(ctx context.Context, params query.Params, scopes ...query.Scope) (*query.Page[T], error) {
	ctx = r.start(ctx, "List")
	started := time.Now()

	page, err := query.FindPage[T](ctx, r.conn(ctx), params, r.spec, scopes, r.preloads...)
	r.finish(ctx, started, err)
	if err == nil {
		logger.DebugWithContext(ctx, "Page retrieved").
			String("entity", r.entity).
			Int("page", page.Meta.CurrentPage).
			Int64("total", page.Meta.TotalItems).
			Log()
	}
	return page, err
}

package service

import (
	"context"
	"errors"

	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
	"gorm.io/gorm"
)

// MsgNoFileUploaded endpoint upload dipanggil tanpa file.
const MsgNoFileUploaded = "No file uploaded."

// Transactor menjalankan fn dalam satu transaksi database.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CrudStore operasi repository yang dimiliki semua entitas.
type CrudStore[T any] interface {
	Create(ctx context.Context, item *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params query.Params, scopes ...query.Scope) (*query.Page[T], error)
}

// resource implementasi List/Get/Delete yang sama untuk semua service.
type resource[T any] struct {
	store    CrudStore[T]
	entity   string
	notFound string
}

func newResource[T any](store CrudStore[T], entity, notFound string) resource[T] {
	return resource[T]{store: store, entity: entity, notFound: notFound}
}

func (r resource[T]) List(ctx context.Context, params query.Params) (*query.Page[T], error) {
	ctx = ctxutil.WithOperation(ctx, "service", "List")

	page, err := r.store.List(ctx, params)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list "+r.entity).Err(err).Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return page, nil
}

func (r resource[T]) Get(ctx context.Context, id uint) (*T, error) {
	item, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, r.mapError(ctx, err)
	}
	return item, nil
}

func (r resource[T]) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "Delete")

	if err := r.store.Delete(ctx, id); err != nil {
		return r.mapError(ctx, err)
	}
	logger.InfoWithContext(ctx, r.entity+" deleted").Uint("id", id).Log()
	return nil
}

func (r resource[T]) mapError(ctx context.Context, err error) error {
	return mapError(ctx, err, r.notFound)
}

// mapError menerjemahkan error repository/storage ke DomainError.
func mapError(ctx context.Context, err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsDomainError(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFound(notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.WrapError(apperrors.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewBadRequest("Referenced resource does not exist")
	case storage.IsValidationError(err):
		return apperrors.NewBadRequest(err.Error())
	default:
		logger.ErrorWithContext(ctx, "Unexpected error").Err(err).Log()
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
}

func ptr[T any](v T) *T { return &v }

// setIf menyalin nilai pointer bila tidak nil.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

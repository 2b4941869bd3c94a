package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/slug"
)

const (
	msgCategoryNotFound = "Category not found"
	msgTagNotFound      = "Tag not found"
)

// SlugStore repository entitas ber-slug.
type SlugStore[T any] interface {
	CrudStore[T]
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

type NewsCategoryStore interface {
	SlugStore[model.NewsCategory]
	CountNews(ctx context.Context, categoryID uint) (int64, error)
}

type NewsCategoryService struct {
	resource[model.NewsCategory]
	repo NewsCategoryStore
}

func NewNewsCategoryService(repo NewsCategoryStore) *NewsCategoryService {
	return &NewsCategoryService{
		resource: newResource[model.NewsCategory](repo, "news category", msgCategoryNotFound),
		repo:     repo,
	}
}

func (s *NewsCategoryService) Create(ctx context.Context, actorID uint, req *dto.NewsCategoryRequest) (*model.NewsCategory, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateNewsCategory")

	title := strings.TrimSpace(req.Title)
	generated, err := slug.Unique(ctx, title, func(ctx context.Context, c string) (bool, error) {
		return s.repo.SlugExists(ctx, c, 0)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	category := &model.NewsCategory{
		Title:       title,
		Slug:        generated,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "News category created").
		Uint("category_id", category.ID).
		String("slug", category.Slug).
		Log()
	return category, nil
}

func (s *NewsCategoryService) Update(ctx context.Context, id, actorID uint, req *dto.NewsCategoryRequest) (*model.NewsCategory, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateNewsCategory")

	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title != category.Title {
		generated, err := slug.Unique(ctx, title, func(ctx context.Context, c string) (bool, error) {
			return s.repo.SlugExists(ctx, c, id)
		})
		if err != nil {
			return nil, s.mapError(ctx, err)
		}
		category.Title = title
		category.Slug = generated
	}
	category.UpdatedByID = &actorID

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return category, nil
}

// Delete ditolak selama kategori masih dipakai berita.
func (s *NewsCategoryService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteNewsCategory")

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountNews(ctx, id)
	if err != nil {
		return s.mapError(ctx, err)
	}
	if count > 0 {
		return apperrors.NewConflict(fmt.Sprintf("Category is still used by %d news", count))
	}
	return s.resource.Delete(ctx, id)
}

type TagStore interface {
	SlugStore[model.Tag]
	DeleteLinks(ctx context.Context, tagID uint) error
}

type TagService struct {
	resource[model.Tag]
	repo TagStore
	tx   Transactor
}

func NewTagService(repo TagStore, tx Transactor) *TagService {
	return &TagService{
		resource: newResource[model.Tag](repo, "tag", msgTagNotFound),
		repo:     repo,
		tx:       tx,
	}
}

func (s *TagService) Create(ctx context.Context, req *dto.TagRequest) (*model.Tag, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateTag")

	name := strings.TrimSpace(req.Name)
	generated, err := slug.Unique(ctx, name, func(ctx context.Context, c string) (bool, error) {
		return s.repo.SlugExists(ctx, c, 0)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	tag := &model.Tag{Name: name, Slug: generated}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, id uint, req *dto.TagRequest) (*model.Tag, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateTag")

	tag, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != tag.Name {
		generated, err := slug.Unique(ctx, name, func(ctx context.Context, c string) (bool, error) {
			return s.repo.SlugExists(ctx, c, id)
		})
		if err != nil {
			return nil, s.mapError(ctx, err)
		}
		tag.Name = name
		tag.Slug = generated
	}

	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return tag, nil
}

// Delete melepas tag dari semua berita lalu menghapusnya, satu transaksi.
func (s *TagService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteTag")

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteLinks(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "Tag deleted").Uint("tag_id", id).Log()
	return nil
}

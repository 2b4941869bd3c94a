package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var newsSpec = query.Spec{
	Searchable: []string{"title", "excerpt", "description", "slug"},
	Filterable: map[string]query.Field{
		"status":     query.Text("status"),
		"categoryId": query.Int("category_id"),
		"slug":       query.Text("slug"),
	},
	Sortable: map[string]string{
		"title":       "title",
		"status":      "status",
		"publishedAt": "published_at",
	},
}

var newsPreloads = []string{"Category", "Tags", "CreatedBy", "UpdatedBy"}

type NewsRepository struct {
	baseRepository[model.News]
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{baseRepository: newBase[model.News](db, "news", newsSpec, newsPreloads...)}
}

func published(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", model.NewsStatusPublished)
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string) (*model.News, error) {
	ctx = r.start(ctx, "FindBySlug")
	started := time.Now()

	var news model.News
	err := r.withPreloads(r.conn(ctx)).Where("slug = ?", slug).First(&news).Error
	r.finish(ctx, started, err)
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugExists[model.News](ctx, r.conn(ctx), slug, excludeID)
}

// ListPublished hanya berita berstatus published, dipakai endpoint publik.
func (r *NewsRepository) ListPublished(ctx context.Context, params query.Params) (*query.Page[model.News], error) {
	return r.List(ctx, params, published)
}

// ListByCategory berita dalam satu kategori; onlyPublished untuk endpoint publik.
func (r *NewsRepository) ListByCategory(ctx context.Context, categoryID uint, params query.Params, onlyPublished bool) (*query.Page[model.News], error) {
	scopes := []query.Scope{func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", categoryID)
	}}
	if onlyPublished {
		scopes = append(scopes, published)
	}
	return r.List(ctx, params, scopes...)
}

// ReplaceTags mengganti seluruh relasi tag berita.
func (r *NewsRepository) ReplaceTags(ctx context.Context, newsID uint, tagIDs []uint) error {
	ctx = r.start(ctx, "ReplaceTags")
	started := time.Now()

	err := r.conn(ctx).Where("news_id = ?", newsID).Delete(&model.NewsTag{}).Error
	if err == nil && len(tagIDs) > 0 {
		links := make([]model.NewsTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, model.NewsTag{NewsID: newsID, TagID: tagID})
		}
		err = r.conn(ctx).Create(&links).Error
	}
	r.finish(ctx, started, err)
	return err
}

func (r *NewsRepository) DeleteTagLinks(ctx context.Context, newsID uint) error {
	return r.conn(ctx).Where("news_id = ?", newsID).Delete(&model.NewsTag{}).Error
}

// slugExists dipakai bersama oleh entitas yang punya kolom slug.
func slugExists[T any](ctx context.Context, db *gorm.DB, slug string, excludeID uint) (bool, error) {
	var count int64
	q := db.WithContext(ctx).Model(new(T)).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

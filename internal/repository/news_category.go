package repository

import (
	"context"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var newsCategorySpec = query.Spec{
	Searchable: []string{"title", "slug"},
	Filterable: map[string]query.Field{
		"slug": query.Text("slug"),
	},
	Sortable: map[string]string{"title": "title"},
}

type NewsCategoryRepository struct {
	baseRepository[model.NewsCategory]
}

func NewNewsCategoryRepository(db *gorm.DB) *NewsCategoryRepository {
	return &NewsCategoryRepository{
		baseRepository: newBase[model.NewsCategory](db, "news_category", newsCategorySpec, "CreatedBy", "UpdatedBy"),
	}
}

func (r *NewsCategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugExists[model.NewsCategory](ctx, r.conn(ctx), slug, excludeID)
}

// CountNews jumlah berita di kategori, dicek sebelum kategori dihapus.
func (r *NewsCategoryRepository) CountNews(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&model.News{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

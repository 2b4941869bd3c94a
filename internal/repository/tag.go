package repository

import (
	"context"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var tagSpec = query.Spec{
	Searchable: []string{"name", "slug"},
	Filterable: map[string]query.Field{
		"slug": query.Text("slug"),
	},
	Sortable: map[string]string{"name": "name"},
}

type TagRepository struct {
	baseRepository[model.Tag]
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{baseRepository: newBase[model.Tag](db, "tag", tagSpec)}
}

func (r *TagRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugExists[model.Tag](ctx, r.conn(ctx), slug, excludeID)
}

// FindByIDs mengembalikan tag yang ditemukan; pemanggil membandingkan
// jumlahnya untuk mendeteksi id yang tidak ada.
func (r *TagRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.Tag
	err := r.conn(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *TagRepository) DeleteLinks(ctx context.Context, tagID uint) error {
	return r.conn(ctx).Where("tag_id = ?", tagID).Delete(&model.NewsTag{}).Error
}

package repository

import (
	"context"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var socialMediaSpec = query.Spec{
	Searchable: []string{"name", "link"},
	Filterable: map[string]query.Field{
		"name": query.Upper("name"),
	},
	Sortable: map[string]string{"name": "name"},
}

type SocialMediaRepository struct {
	baseRepository[model.SocialMedia]
}

func NewSocialMediaRepository(db *gorm.DB) *SocialMediaRepository {
	return &SocialMediaRepository{baseRepository: newBase[model.SocialMedia](db, "social_media", socialMediaSpec)}
}

// FindByName mencari platform (FACEBOOK, INSTAGRAM, ...).
func (r *SocialMediaRepository) FindByName(ctx context.Context, name string) (*model.SocialMedia, error) {
	var sm model.SocialMedia
	if err := r.conn(ctx).Where("name = ?", name).First(&sm).Error; err != nil {
		return nil, err
	}
	return &sm, nil
}

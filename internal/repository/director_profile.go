package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var directorProfileSpec = query.Spec{
	Searchable: []string{"name", "detail"},
	Filterable: map[string]query.Field{
		"beginYear": query.Int("begin_year"),
		"endYear":   query.Int("end_year"),
	},
	Sortable: map[string]string{
		"order":     "order",
		"beginYear": "begin_year",
		"endYear":   "end_year",
		"name":      "name",
	},
	DefaultOrder: query.Asc("order"),
}

type DirectorProfileRepository struct {
	baseRepository[model.DirectorProfile]
}

func NewDirectorProfileRepository(db *gorm.DB) *DirectorProfileRepository {
	return &DirectorProfileRepository{
		baseRepository: newBase[model.DirectorProfile](db, "director_profile", directorProfileSpec),
	}
}

// FindFromOrder profil dengan order >= from, kecuali excludeID, urut dari
// order terbesar supaya pergeseran +1 tidak pernah bentrok dengan unique index.
func (r *DirectorProfileRepository) FindFromOrder(ctx context.Context, from int, excludeID uint) ([]model.DirectorProfile, error) {
	ctx = r.start(ctx, "FindFromOrder")
	started := time.Now()

	q := r.conn(ctx).Where(clause.Gte{Column: clause.Column{Name: "order"}, Value: from})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var profiles []model.DirectorProfile
	err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}, Desc: true}).Find(&profiles).Error
	r.finish(ctx, started, err)
	return profiles, err
}

// UpdateOrder menulis order satu profil.
func (r *DirectorProfileRepository) UpdateOrder(ctx context.Context, id uint, order int) error {
	result := r.conn(ctx).Model(&model.DirectorProfile{}).
		Where("id = ?", id).
		UpdateColumn("order", order)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to shift director profile order").
			Uint("id", id).
			Int("order", order).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

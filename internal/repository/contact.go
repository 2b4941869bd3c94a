package repository

import (
	"context"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var contactSpec = query.Spec{
	Searchable: []string{"key", "value"},
	Filterable: map[string]query.Field{
		"key": query.Text("key"),
	},
	Sortable: map[string]string{"key": "key"},
}

type ContactRepository struct {
	baseRepository[model.Contact]
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		baseRepository: newBase[model.Contact](db, "contact", contactSpec, "CreatedBy", "UpdatedBy"),
	}
}

func (r *ContactRepository) FindByKey(ctx context.Context, key string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.withPreloads(r.conn(ctx)).Where("key = ?", key).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) FindByKeys(ctx context.Context, keys []string) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.conn(ctx).Where("key IN ?", keys).Order("id").Find(&contacts).Error
	return contacts, err
}

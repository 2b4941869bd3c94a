package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var userSpec = query.Spec{
	Searchable: []string{"name", "email"},
	Filterable: map[string]query.Field{
		"name":  query.Text("name"),
		"email": query.Text("email"),
	},
	Sortable: map[string]string{
		"name":  "name",
		"email": "email",
	},
}

type UserRepository struct {
	baseRepository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{baseRepository: newBase[model.User](db, "user", userSpec)}
}

// FindByEmail finds user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = r.start(ctx, "FindByEmail")
	started := time.Now()

	var user model.User
	err := r.conn(ctx).Where("email = ?", email).First(&user).Error
	r.finish(ctx, started, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken true bila email dipakai user lain selain excludeID.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// IncrementTokenVersion mencabut semua token yang sudah diterbitkan untuk user.
func (r *UserRepository) IncrementTokenVersion(ctx context.Context, id uint) error {
	ctx = r.start(ctx, "IncrementTokenVersion")
	started := time.Now()

	result := r.conn(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + 1"))
	err := result.Error
	if err == nil && result.RowsAffected == 0 {
		err = gorm.ErrRecordNotFound
	}
	r.finish(ctx, started, err)
	if err == nil {
		logger.InfoWithContext(ctx, "Token version incremented").Uint("user_id", id).Log()
	}
	return err
}

package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"gorm.io/gorm"
)

// SingletonRepository untuk tabel yang hanya berisi satu baris (hero,
// struktur organisasi, roles & responsibilities). Baris dibuat dengan
// nilai default saat pertama kali dibaca.
type SingletonRepository[T any] struct {
	baseRepository[T]
	defaults T
}

func newSingleton[T any](db *gorm.DB, entity string, defaults T) *SingletonRepository[T] {
	return &SingletonRepository[T]{
		baseRepository: newBase[T](db, entity, emptySpec),
		defaults:       defaults,
	}
}

func NewHeroRepository(db *gorm.DB) *SingletonRepository[model.HeroSection] {
	return newSingleton(db, "hero_section", model.HeroSection{
		Heading:    "Initial Heading",
		SubHeading: "Initial Sub Heading",
	})
}

func NewStructureRepository(db *gorm.DB) *SingletonRepository[model.Structure] {
	return newSingleton(db, "structure", model.Structure{})
}

func NewRolesResponsibilitiesRepository(db *gorm.DB) *SingletonRepository[model.RolesResponsibilities] {
	return newSingleton(db, "roles_responsibilities", model.RolesResponsibilities{
		Roles:            "Initial roles description",
		Responsibilities: "Initial responsibilities description",
	})
}

// Get mengembalikan baris pertama, membuatnya bila belum ada.
func (r *SingletonRepository[T]) Get(ctx context.Context) (*T, error) {
	ctx = r.start(ctx, "Get")
	started := time.Now()

	var item T
	err := r.conn(ctx).Attrs(r.defaults).FirstOrCreate(&item).Error
	r.finish(ctx, started, err)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

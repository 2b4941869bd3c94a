package database

import (
	"errors"
	"fmt"

	"github.com/Payphone-Digital/landing-cms/config"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SetupJoinTables harus dipanggil sebelum query many2many news <-> tags.
func SetupJoinTables(db *gorm.DB) error {
	return db.SetupJoinTable(&model.News{}, "Tags", &model.NewsTag{})
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}

	return db.AutoMigrate(
		&model.User{},
		&model.NewsCategory{},
		&model.Tag{},
		&model.News{},
		&model.NewsTag{},
		&model.Announcement{},
		&model.Regulation{},
		&model.Gallery{},
		&model.GalleryImage{},
		&model.Faq{},
		&model.History{},
		&model.DirectorProfile{},
		&model.StatisticCategory{},
		&model.Statistic{},
		&model.Contact{},
		&model.SocialMedia{},
		&model.SocialMediaPost{},
		&model.HeroSection{},
		&model.Structure{},
		&model.RolesResponsibilities{},
		&model.ServiceItem{},
		&model.ActivityLog{},
	)
}

// Seed membuat admin awal, singleton dan key kontak bawaan. Idempotent.
func Seed(db *gorm.DB, cfg config.SeedConfig) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var admin model.User
		err := tx.Where("email = ?", cfg.AdminEmail).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashed, hashErr := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if hashErr != nil {
				return fmt.Errorf("hash admin password: %w", hashErr)
			}
			admin = model.User{Name: cfg.AdminName, Email: cfg.AdminEmail, Password: string(hashed), TokenVersion: 1}
			if err := tx.Create(&admin).Error; err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
		} else if err != nil {
			return err
		}

		if err := tx.Attrs(model.HeroSection{
			Heading:    "Initial Heading",
			SubHeading: "Initial Sub Heading",
		}).FirstOrCreate(&model.HeroSection{}).Error; err != nil {
			return fmt.Errorf("seed hero: %w", err)
		}
		if err := tx.FirstOrCreate(&model.Structure{}).Error; err != nil {
			return fmt.Errorf("seed structure: %w", err)
		}
		if err := tx.Attrs(model.RolesResponsibilities{
			Roles:            "Initial roles description",
			Responsibilities: "Initial responsibilities description",
		}).FirstOrCreate(&model.RolesResponsibilities{}).Error; err != nil {
			return fmt.Errorf("seed roles responsibilities: %w", err)
		}

		for _, key := range []string{model.ContactKeyMapURL, model.ContactKeyAddress, model.ContactKeyContact} {
			var contact model.Contact
			if err := tx.Where(model.Contact{Key: key}).
				Attrs(model.Contact{CreatedByID: &admin.ID, UpdatedByID: &admin.ID}).
				FirstOrCreate(&contact).Error; err != nil {
				return fmt.Errorf("seed contact %s: %w", key, err)
			}
		}
		return nil
	})
}

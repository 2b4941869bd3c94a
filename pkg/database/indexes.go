package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// searchIndexes kolom yang dicari dengan ILIKE '%term%'. Index trigram membuat
// pencarian contains tetap memakai index.
var searchIndexes = map[string][]string{
	"news":                 {"title", "excerpt", "slug"},
	"news_categories":      {"title"},
	"tags":                 {"name"},
	"announcements":        {"title"},
	"regulations":          {"title"},
	"galleries":            {"title"},
	"faqs":                 {"question"},
	"director_profiles":    {"name"},
	"statistics":           {"name"},
	"statistic_categories": {"name"},
	"contacts":             {"value"},
	"social_media_posts":   {"post_link"},
	"services":             {"title"},
	"users":                {"name", "email"},
	"activity_logs":        {"path"},
}

// EnsureSearchIndexes membuat extension pg_trgm dan index GIN trigram.
// Kegagalan hanya di-log; tanpa index query tetap benar, hanya lebih lambat.
func EnsureSearchIndexes(db *gorm.DB, log *zap.Logger) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error; err != nil {
		log.Warn("pg_trgm extension unavailable, skipping search indexes", zap.Error(err))
		return nil
	}

	created := 0
	for table, columns := range searchIndexes {
		for _, column := range columns {
			name := fmt.Sprintf("idx_%s_%s_trgm", table, column)
			stmt := fmt.Sprintf(
				`CREATE INDEX IF NOT EXISTS %s ON %s USING GIN (%s gin_trgm_ops)`,
				name, table, column,
			)
			if err := db.Exec(stmt).Error; err != nil {
				log.Warn("Failed to create search index",
					zap.String("index", name),
					zap.Error(err),
				)
				continue
			}
			created++
		}
	}

	log.Info("Search indexes ensured", zap.Int("count", created))
	return nil
}

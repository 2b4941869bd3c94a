package repository

import (
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

// Repository untuk entitas yang hanya butuh CRUD standar.

var documentSpec = query.Spec{
	Searchable: []string{"title", "description"},
	Sortable:   map[string]string{"title": "title"},
}

type AnnouncementRepository struct {
	baseRepository[model.Announcement]
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		baseRepository: newBase[model.Announcement](db, "announcement", documentSpec, "CreatedBy", "UpdatedBy"),
	}
}

type RegulationRepository struct {
	baseRepository[model.Regulation]
}

func NewRegulationRepository(db *gorm.DB) *RegulationRepository {
	return &RegulationRepository{
		baseRepository: newBase[model.Regulation](db, "regulation", documentSpec, "CreatedBy", "UpdatedBy"),
	}
}

var faqSpec = query.Spec{
	Searchable: []string{"question", "answer"},
	Sortable:   map[string]string{"question": "question"},
}

type FaqRepository struct {
	baseRepository[model.Faq]
}

func NewFaqRepository(db *gorm.DB) *FaqRepository {
	return &FaqRepository{baseRepository: newBase[model.Faq](db, "faq", faqSpec, "CreatedBy", "UpdatedBy")}
}

var historySpec = query.Spec{
	Searchable: []string{"description", "detail"},
	Filterable: map[string]query.Field{
		"year": query.Int("year"),
	},
	Sortable: map[string]string{"year": "year"},
}

type HistoryRepository struct {
	baseRepository[model.History]
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{baseRepository: newBase[model.History](db, "history", historySpec)}
}

var serviceItemSpec = query.Spec{
	Searchable: []string{"title", "description"},
	Sortable:   map[string]string{"title": "title"},
}

type ServiceItemRepository struct {
	baseRepository[model.ServiceItem]
}

func NewServiceItemRepository(db *gorm.DB) *ServiceItemRepository {
	return &ServiceItemRepository{
		baseRepository: newBase[model.ServiceItem](db, "service", serviceItemSpec, "CreatedBy", "UpdatedBy"),
	}
}

var statisticCategorySpec = query.Spec{
	Searchable: []string{"name"},
	Sortable:   map[string]string{"name": "name"},
}

type StatisticCategoryRepository struct {
	baseRepository[model.StatisticCategory]
}

func NewStatisticCategoryRepository(db *gorm.DB) *StatisticCategoryRepository {
	return &StatisticCategoryRepository{
		baseRepository: newBase[model.StatisticCategory](db, "statistic_category", statisticCategorySpec),
	}
}

var statisticSpec = query.Spec{
	Searchable: []string{"name"},
	Filterable: map[string]query.Field{
		"categoryId": query.Int("category_id"),
	},
	Sortable: map[string]string{
		"name":   "name",
		"number": "number",
	},
}

type StatisticRepository struct {
	baseRepository[model.Statistic]
}

func NewStatisticRepository(db *gorm.DB) *StatisticRepository {
	return &StatisticRepository{baseRepository: newBase[model.Statistic](db, "statistic", statisticSpec, "Category")}
}

var socialMediaPostSpec = query.Spec{
	Searchable: []string{"post_link"},
	Filterable: map[string]query.Field{
		"platform": query.Upper("platform"),
	},
	Sortable: map[string]string{"platform": "platform"},
}

type SocialMediaPostRepository struct {
	baseRepository[model.SocialMediaPost]
}

func NewSocialMediaPostRepository(db *gorm.DB) *SocialMediaPostRepository {
	return &SocialMediaPostRepository{
		baseRepository: newBase[model.SocialMediaPost](db, "social_media_post", socialMediaPostSpec, "CreatedBy", "UpdatedBy"),
	}
}

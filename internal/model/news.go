package model

import "time"

const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
	NewsStatusArchived  = "archived"
)

type NewsCategory struct {
	Base
	Title       string `gorm:"column:title;not null" json:"title"`
	Slug        string `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	CreatedByID *uint  `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint  `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User  `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

func (NewsCategory) TableName() string { return "news_categories" }

type Tag struct {
	Base
	Name string `gorm:"column:name;not null" json:"name"`
	Slug string `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
}

type News struct {
	Base
	Title       string        `gorm:"column:title;not null" json:"title"`
	Slug        string        `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Excerpt     string        `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	Description string        `gorm:"column:description;type:text;not null" json:"description"`
	Image       *string       `gorm:"column:image" json:"image"`
	Status      string        `gorm:"column:status;type:varchar(20);default:draft;not null;index" json:"status"`
	PublishedAt *time.Time    `gorm:"column:published_at" json:"publishedAt"`
	CategoryID  uint          `gorm:"column:category_id;not null;index" json:"categoryId"`
	Category    *NewsCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags        []Tag         `gorm:"many2many:news_tags;joinForeignKey:NewsID;joinReferences:TagID" json:"tags"`
	CreatedByID *uint         `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedBy   *User         `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint         `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User         `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

func (News) TableName() string { return "news" }

// NewsTag join table news <-> tags.
type NewsTag struct {
	NewsID    uint      `gorm:"column:news_id;primaryKey"`
	TagID     uint      `gorm:"column:tag_id;primaryKey;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

package model

type Gallery struct {
	Base
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description *string        `gorm:"column:description;type:text" json:"description"`
	Images      []GalleryImage `gorm:"foreignKey:GalleryID" json:"images"`
}

func (Gallery) TableName() string { return "galleries" }

type GalleryImage struct {
	Base
	GalleryID uint   `gorm:"column:gallery_id;not null;index" json:"galleryId"`
	Image     string `gorm:"column:image;not null" json:"image"`
}

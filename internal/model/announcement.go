package model

// Document kolom bersama pengumuman dan regulasi.
type Document struct {
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	Attachment  *string `gorm:"column:attachment" json:"attachment"`
	CreatedByID *uint   `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedBy   *User   `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint   `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User   `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

type Announcement struct {
	Base
	Document
}

func (a *Announcement) Doc() *Document { return &a.Document }

type Regulation struct {
	Base
	Document
}

func (r *Regulation) Doc() *Document { return &r.Document }

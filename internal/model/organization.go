package model

// HeroSection, Structure dan RolesResponsibilities adalah singleton:
// satu baris dibuat saat pertama kali dibaca.

type HeroSection struct {
	Base
	Heading    string  `gorm:"column:heading;not null" json:"heading"`
	SubHeading string  `gorm:"column:sub_heading;not null" json:"subHeading"`
	Banner     string  `gorm:"column:banner;not null;default:''" json:"banner"`
	PathVideo  *string `gorm:"column:path_video" json:"pathVideo"`
}

type Structure struct {
	Base
	Image string `gorm:"column:image;not null;default:''" json:"image"`
}

type RolesResponsibilities struct {
	Base
	Roles            string `gorm:"column:roles;type:text;not null" json:"roles"`
	Responsibilities string `gorm:"column:responsibilities;type:text;not null" json:"responsibilities"`
}

func (RolesResponsibilities) TableName() string { return "roles_responsibilities" }

// ServiceItem layanan publik yang ditampilkan di landing page.
type ServiceItem struct {
	Base
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	Icon        string  `gorm:"column:icon;not null;default:''" json:"icon"`
	Link        *string `gorm:"column:link" json:"link"`
	CreatedByID *uint   `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedBy   *User   `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint   `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User   `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

func (ServiceItem) TableName() string { return "services" }

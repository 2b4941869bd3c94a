package model

// Key kontak yang diperbarui bersama lewat PUT /contacts.
const (
	ContactKeyMapURL  = "map_url"
	ContactKeyAddress = "address"
	ContactKeyContact = "contact"
)

type Contact struct {
	Base
	Key         string `gorm:"column:key;uniqueIndex;not null" json:"key"`
	Value       string `gorm:"column:value;type:text;not null" json:"value"`
	CreatedByID *uint  `gorm:"column:created_by_id" json:"createdById"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint  `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User  `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

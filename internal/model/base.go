package model

import "time"

// Base menggantikan gorm.Model tanpa soft delete, karena slug, order dan
// key unik harus bisa dipakai ulang setelah baris dihapus.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

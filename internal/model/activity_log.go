package model

import "gorm.io/datatypes"

// ActivityLog jejak audit setiap mutasi admin yang berhasil.
type ActivityLog struct {
	Base
	ActorID  *uint          `gorm:"column:actor_id;index" json:"actorId"`
	Method   string         `gorm:"column:method;type:varchar(10);not null" json:"method"`
	Path     string         `gorm:"column:path;not null" json:"path"`
	Entity   string         `gorm:"column:entity;type:varchar(64);index" json:"entity"`
	Status   int            `gorm:"column:status;not null" json:"status"`
	ClientIP string         `gorm:"column:client_ip" json:"clientIp"`
	Payload  datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`
}

package model

type User struct {
	Base
	Name         string `gorm:"column:name;not null" json:"name"`
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password     string `gorm:"column:password;not null" json:"-"`
	TokenVersion int    `gorm:"column:token_version;default:1;not null" json:"-"`
}

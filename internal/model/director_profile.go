package model

type DirectorProfile struct {
	Base
	Order     int    `gorm:"column:order;uniqueIndex;not null" json:"order"`
	BeginYear int    `gorm:"column:begin_year;not null" json:"beginYear"`
	EndYear   int    `gorm:"column:end_year;not null" json:"endYear"`
	Name      string `gorm:"column:name;not null" json:"name"`
	Detail    string `gorm:"column:detail;type:text;not null" json:"detail"`
	Picture   string `gorm:"column:picture;not null;default:''" json:"picture"`
}

package model

type History struct {
	Base
	Year        int    `gorm:"column:year;not null;index" json:"year"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	Detail      string `gorm:"column:detail;type:text;not null" json:"detail"`
}

func (History) TableName() string { return "histories" }

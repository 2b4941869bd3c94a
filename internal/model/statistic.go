package model

type StatisticCategory struct {
	Base
	Name string  `gorm:"column:name;not null" json:"name"`
	Link *string `gorm:"column:link" json:"link"`
}

func (StatisticCategory) TableName() string { return "statistic_categories" }

type Statistic struct {
	Base
	Name       string             `gorm:"column:name;not null" json:"name"`
	Number     int                `gorm:"column:number;not null" json:"number"`
	Link       *string            `gorm:"column:link" json:"link"`
	CategoryID uint               `gorm:"column:category_id;not null;index" json:"categoryId"`
	Category   *StatisticCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

package model

type Faq struct {
	Base
	Question    string `gorm:"column:question;not null" json:"question"`
	Answer      string `gorm:"column:answer;type:text;not null" json:"answer"`
	CreatedByID *uint  `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint  `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User  `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

func (Faq) TableName() string { return "faqs" }

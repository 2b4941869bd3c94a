package model

const (
	SocialMediaFacebook  = "FACEBOOK"
	SocialMediaInstagram = "INSTAGRAM"
	SocialMediaLinkedIn  = "LINKEDIN"
	SocialMediaTiktok    = "TIKTOK"
	SocialMediaYoutube   = "YOUTUBE"
)

// SocialMediaTypes daftar platform yang valid.
var SocialMediaTypes = []string{
	SocialMediaFacebook,
	SocialMediaInstagram,
	SocialMediaLinkedIn,
	SocialMediaTiktok,
	SocialMediaYoutube,
}

type SocialMedia struct {
	Base
	Name string `gorm:"column:name;type:varchar(20);uniqueIndex;not null" json:"name"`
	Link string `gorm:"column:link;not null" json:"link"`
}

func (SocialMedia) TableName() string { return "social_medias" }

type SocialMediaPost struct {
	Base
	Platform    string `gorm:"column:platform;type:varchar(20);not null;index" json:"platform"`
	PostLink    string `gorm:"column:post_link;not null" json:"postLink"`
	Image       string `gorm:"column:image;not null" json:"image"`
	CreatedByID *uint  `gorm:"column:created_by_id;index" json:"createdById"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	UpdatedByID *uint  `gorm:"column:updated_by_id" json:"updatedById"`
	UpdatedBy   *User  `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
}

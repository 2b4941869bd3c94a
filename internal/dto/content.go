package dto

// DocumentRequest dipakai pengumuman dan regulasi. Lampiran dikirim
// sebagai multipart field "file".
type DocumentRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=255"`
	Description string `json:"description" form:"description" binding:"required"`
}

type UpdateDocumentRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" form:"description" binding:"omitempty,min=1"`
}

type GalleryRequest struct {
	Title       string  `json:"title" form:"title" binding:"required,max=255"`
	Description *string `json:"description" form:"description"`
}

type UpdateGalleryRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" form:"description"`
}

type FaqRequest struct {
	Question string `json:"question" form:"question" binding:"required,max=500"`
	Answer   string `json:"answer" form:"answer" binding:"required"`
}

type UpdateFaqRequest struct {
	Question *string `json:"question" form:"question" binding:"omitempty,min=1,max=500"`
	Answer   *string `json:"answer" form:"answer" binding:"omitempty,min=1"`
}

type HistoryRequest struct {
	Year        *int   `json:"year" form:"year" binding:"required,gte=0"`
	Description string `json:"description" form:"description" binding:"required"`
	Detail      string `json:"detail" form:"detail" binding:"required"`
}

type UpdateHistoryRequest struct {
	Year        *int    `json:"year" form:"year" binding:"omitempty,gte=0"`
	Description *string `json:"description" form:"description" binding:"omitempty,min=1"`
	Detail      *string `json:"detail" form:"detail" binding:"omitempty,min=1"`
}

// DirectorProfileRequest endYear nil berarti tahun berjalan. order boleh 0.
type DirectorProfileRequest struct {
	Order     *int   `json:"order" form:"order" binding:"required,gte=0"`
	BeginYear int    `json:"beginYear" form:"beginYear" binding:"required,gte=1900"`
	EndYear   *int   `json:"endYear" form:"endYear" binding:"omitempty,gte=1900"`
	Name      string `json:"name" form:"name" binding:"required,max=255"`
	Detail    string `json:"detail" form:"detail" binding:"required"`
}

type UpdateDirectorProfileRequest struct {
	Order     *int    `json:"order" form:"order" binding:"omitempty,gte=0"`
	BeginYear *int    `json:"beginYear" form:"beginYear" binding:"omitempty,gte=1900"`
	EndYear   *int    `json:"endYear" form:"endYear" binding:"omitempty,gte=1900"`
	Name      *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Detail    *string `json:"detail" form:"detail" binding:"omitempty,min=1"`
}

type StatisticCategoryRequest struct {
	Name string  `json:"name" form:"name" binding:"required,max=255"`
	Link *string `json:"link" form:"link" binding:"omitempty,url"`
}

type UpdateStatisticCategoryRequest struct {
	Name *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Link *string `json:"link" form:"link" binding:"omitempty,url"`
}

type StatisticRequest struct {
	Name       string  `json:"name" form:"name" binding:"required,max=255"`
	Number     *int    `json:"number" form:"number" binding:"required"`
	Link       *string `json:"link" form:"link" binding:"omitempty,url"`
	CategoryID uint    `json:"categoryId" form:"categoryId" binding:"required"`
}

type UpdateStatisticRequest struct {
	Name       *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	Number     *int    `json:"number" form:"number"`
	Link       *string `json:"link" form:"link" binding:"omitempty,url"`
	CategoryID *uint   `json:"categoryId" form:"categoryId" binding:"omitempty,min=1"`
}

type ContactRequest struct {
	Key   string `json:"key" form:"key" binding:"required,max=100"`
	Value string `json:"value" form:"value" binding:"required"`
}

type UpdateContactRequest struct {
	Key   *string `json:"key" form:"key" binding:"omitempty,min=1,max=100"`
	Value *string `json:"value" form:"value" binding:"omitempty,min=1"`
}

// UpdateContactsByKeyRequest memperbarui beberapa kontak bawaan sekaligus.
type UpdateContactsByKeyRequest struct {
	MapURL  *string `json:"map_url" form:"map_url" binding:"omitempty,min=1"`
	Address *string `json:"address" form:"address" binding:"omitempty,min=1"`
	Contact *string `json:"contact" form:"contact" binding:"omitempty,min=1"`
}

type SocialMediaRequest struct {
	Name string `json:"name" form:"name" binding:"required,socialmedia"`
	Link string `json:"link" form:"link" binding:"required,url"`
}

type UpdateSocialMediaRequest struct {
	Name *string `json:"name" form:"name" binding:"omitempty,socialmedia"`
	Link *string `json:"link" form:"link" binding:"omitempty,url"`
}

type SocialMediaPostRequest struct {
	Platform string `json:"platform" form:"platform" binding:"required,socialmedia"`
	PostLink string `json:"postLink" form:"postLink" binding:"required,url"`
	Image    string `json:"image" form:"image" binding:"omitempty,max=2048"`
}

type UpdateSocialMediaPostRequest struct {
	Platform *string `json:"platform" form:"platform" binding:"omitempty,socialmedia"`
	PostLink *string `json:"postLink" form:"postLink" binding:"omitempty,url"`
	Image    *string `json:"image" form:"image" binding:"omitempty,max=2048"`
}

type HeroRequest struct {
	Heading    *string `json:"heading" form:"heading" binding:"omitempty,min=1,max=255"`
	SubHeading *string `json:"subHeading" form:"subHeading" binding:"omitempty,min=1,max=500"`
	PathVideo  *string `json:"pathVideo" form:"pathVideo" binding:"omitempty,max=2048"`
}

type RolesResponsibilitiesRequest struct {
	Roles            *string `json:"roles" form:"roles" binding:"omitempty,min=1"`
	Responsibilities *string `json:"responsibilities" form:"responsibilities" binding:"omitempty,min=1"`
}

type ServiceItemRequest struct {
	Title       string  `json:"title" form:"title" binding:"required,max=255"`
	Description string  `json:"description" form:"description" binding:"required"`
	Link        *string `json:"link" form:"link" binding:"omitempty,url"`
}

type UpdateServiceItemRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" form:"description" binding:"omitempty,min=1"`
	Link        *string `json:"link" form:"link" binding:"omitempty,url"`
}

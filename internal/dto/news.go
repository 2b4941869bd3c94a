package dto

type CreateNewsRequest struct {
	Title       string  `json:"title" form:"title" binding:"required,max=255"`
	Excerpt     string  `json:"excerpt" form:"excerpt" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Image       *string `json:"image" form:"image" binding:"omitempty,max=2048"`
	Status      string  `json:"status" form:"status" binding:"omitempty,newsstatus"`
	CategoryID  uint    `json:"categoryId" form:"categoryId" binding:"required"`
	TagIDs      []uint  `json:"tagIds" form:"tagIds" binding:"omitempty,unique,dive,min=1"`
}

// UpdateNewsRequest field nil tidak diubah. tagIds kosong ([]) menghapus
// semua tag, tagIds yang tidak dikirim membiarkan tag apa adanya.
type UpdateNewsRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Excerpt     *string `json:"excerpt" form:"excerpt" binding:"omitempty,min=1"`
	Description *string `json:"description" form:"description" binding:"omitempty,min=1"`
	Image       *string `json:"image" form:"image" binding:"omitempty,max=2048"`
	Status      *string `json:"status" form:"status" binding:"omitempty,newsstatus"`
	CategoryID  *uint   `json:"categoryId" form:"categoryId" binding:"omitempty,min=1"`
	TagIDs      []uint  `json:"tagIds" form:"tagIds" binding:"omitempty,unique,dive,min=1"`
}

type NewsCategoryRequest struct {
	Title string `json:"title" form:"title" binding:"required,max=255"`
}

type TagRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=100"`
}

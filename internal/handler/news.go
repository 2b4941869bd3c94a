package handler

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) List() gin.HandlerFunc {
	return listHandler[model.News](h.newsService, "ListNews")
}

func (h *NewsHandler) Get() gin.HandlerFunc {
	return getHandler[model.News](h.newsService, "GetNews", "News fetched successfully")
}

func (h *NewsHandler) Delete() gin.HandlerFunc { return deleteHandler(h.newsService, "DeleteNews") }

// Create menerima JSON atau multipart; gambar opsional di field file.
func (h *NewsHandler) Create(c *gin.Context) {
	ctx := requestContext(c, "CreateNews")

	var req dto.CreateNewsRequest
	if !bindBody(c, ctx, &req) {
		return
	}

	news, err := h.newsService.Create(ctx, actorID(c), &req, optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	logger.InfoWithContext(ctx, "News created successfully").
		Uint("news_id", news.ID).
		String("slug", news.Slug).
		Log()
	respondData(c, http.StatusCreated, "News created successfully", news)
}

func (h *NewsHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateNews")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateNewsRequest
	if !bindBody(c, ctx, &req) {
		return
	}

	news, err := h.newsService.Update(ctx, id, actorID(c), &req, optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "News updated successfully", news)
}

func (h *NewsHandler) UploadImage(c *gin.Context) {
	ctx := requestContext(c, "UploadNewsImage")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}

	news, err := h.newsService.UploadImage(ctx, id, actorID(c), optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Image uploaded successfully", news)
}

func (h *NewsHandler) GetBySlug(c *gin.Context) {
	ctx := requestContext(c, "GetNewsBySlug")

	news, err := h.newsService.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "News fetched successfully", news)
}

// Endpoint publik: hanya berita published.

func (h *NewsHandler) PublicList(c *gin.Context) {
	ctx := requestContext(c, "PublicListNews")

	params, ok := bindListQuery(c, ctx)
	if !ok {
		return
	}
	page, err := h.newsService.ListPublished(ctx, params)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) PublicGet(c *gin.Context) {
	ctx := requestContext(c, "PublicGetNews")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	news, err := h.newsService.GetPublished(ctx, id)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "News fetched successfully", news)
}

func (h *NewsHandler) PublicGetBySlug(c *gin.Context) {
	ctx := requestContext(c, "PublicGetNewsBySlug")

	news, err := h.newsService.GetPublishedBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "News fetched successfully", news)
}

// ListByCategory dipakai admin (semua status) dan publik (published saja).
func (h *NewsHandler) ListByCategory(publishedOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, "ListNewsByCategory")

		id, ok := parseID(c, ctx, "id")
		if !ok {
			return
		}
		params, ok := bindListQuery(c, ctx)
		if !ok {
			return
		}
		page, err := h.newsService.ListByCategory(ctx, id, params, publishedOnly)
		if err != nil {
			respondError(c, ctx, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

type NewsCategoryHandler struct {
	categoryService *service.NewsCategoryService
}

func NewNewsCategoryHandler(categoryService *service.NewsCategoryService) *NewsCategoryHandler {
	return &NewsCategoryHandler{categoryService: categoryService}
}

func (h *NewsCategoryHandler) List() gin.HandlerFunc {
	return listHandler[model.NewsCategory](h.categoryService, "ListNewsCategories")
}

func (h *NewsCategoryHandler) Get() gin.HandlerFunc {
	return getHandler[model.NewsCategory](h.categoryService, "GetNewsCategory", "Category fetched successfully")
}

func (h *NewsCategoryHandler) Delete() gin.HandlerFunc {
	return deleteHandler(h.categoryService, "DeleteNewsCategory")
}

func (h *NewsCategoryHandler) Create(c *gin.Context) {
	ctx := requestContext(c, "CreateNewsCategory")

	var req dto.NewsCategoryRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	category, err := h.categoryService.Create(ctx, actorID(c), &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusCreated, "Category created successfully", category)
}

func (h *NewsCategoryHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateNewsCategory")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	var req dto.NewsCategoryRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	category, err := h.categoryService.Update(ctx, id, actorID(c), &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Category updated successfully", category)
}

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) List() gin.HandlerFunc { return listHandler[model.Tag](h.tagService, "ListTags") }

func (h *TagHandler) Get() gin.HandlerFunc {
	return getHandler[model.Tag](h.tagService, "GetTag", "Tag fetched successfully")
}

func (h *TagHandler) Delete() gin.HandlerFunc { return deleteHandler(h.tagService, "DeleteTag") }

func (h *TagHandler) Create(c *gin.Context) {
	ctx := requestContext(c, "CreateTag")

	var req dto.TagRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	tag, err := h.tagService.Create(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusCreated, "Tag created successfully", tag)
}

func (h *TagHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateTag")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	var req dto.TagRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	tag, err := h.tagService.Update(ctx, id, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Tag updated successfully", tag)
}

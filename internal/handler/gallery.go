package handler

import (
	"context"
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
}

func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func (h *GalleryHandler) List() gin.HandlerFunc {
	return listHandler[model.Gallery](h.galleryService, "ListGalleries")
}

func (h *GalleryHandler) Get() gin.HandlerFunc {
	return getHandler[model.Gallery](h.galleryService, "GetGallery", "Gallery fetched successfully")
}

func (h *GalleryHandler) Delete() gin.HandlerFunc {
	return deleteHandler(h.galleryService, "DeleteGallery")
}

func (h *GalleryHandler) Create() gin.HandlerFunc {
	return createHandler("CreateGallery", "Gallery created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.GalleryRequest) (*model.Gallery, error) {
			return h.galleryService.Create(ctx, req, formFiles(c, constants.FormFieldFiles))
		})
}

func (h *GalleryHandler) Update() gin.HandlerFunc {
	return updateHandler("UpdateGallery", "Gallery updated successfully",
		func(_ *gin.Context, ctx context.Context, id uint, req *dto.UpdateGalleryRequest) (*model.Gallery, error) {
			return h.galleryService.Update(ctx, id, req)
		})
}

func (h *GalleryHandler) ListImages(c *gin.Context) {
	ctx := requestContext(c, "ListGalleryImages")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	images, err := h.galleryService.ListImages(ctx, id)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Gallery images fetched successfully", images)
}

func (h *GalleryHandler) AddImages(c *gin.Context) {
	ctx := requestContext(c, "AddGalleryImages")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	gallery, err := h.galleryService.AddImages(ctx, id, formFiles(c, constants.FormFieldFiles))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Images uploaded successfully", gallery)
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	ctx := requestContext(c, "DeleteGalleryImage")

	galleryID, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	imageID, ok := parseID(c, ctx, "imageId")
	if !ok {
		return
	}
	if err := h.galleryService.DeleteImage(ctx, galleryID, imageID); err != nil {
		respondError(c, ctx, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Gambar berhasil dihapus."))
}

package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"github.com/gin-gonic/gin"
)

// DocumentService kontrak service pengumuman dan regulasi.
type DocumentService[T any] interface {
	List(ctx context.Context, params query.Params) (*query.Page[T], error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, actorID uint, req *dto.DocumentRequest, file *multipart.FileHeader) (*T, error)
	Update(ctx context.Context, id, actorID uint, req *dto.UpdateDocumentRequest, file *multipart.FileHeader) (*T, error)
	UploadAttachment(ctx context.Context, id, actorID uint, file *multipart.FileHeader) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type DocumentHandler[T any] struct {
	svc   DocumentService[T]
	label string
}

// NewDocumentHandler label dipakai di pesan sukses, misalnya "Announcement".
func NewDocumentHandler[T any](svc DocumentService[T], label string) *DocumentHandler[T] {
	return &DocumentHandler[T]{svc: svc, label: label}
}

func (h *DocumentHandler[T]) List() gin.HandlerFunc { return listHandler[T](h.svc, "List"+h.label) }

func (h *DocumentHandler[T]) Get() gin.HandlerFunc {
	return getHandler[T](h.svc, "Get"+h.label, h.label+" fetched successfully")
}

func (h *DocumentHandler[T]) Delete() gin.HandlerFunc { return deleteHandler(h.svc, "Delete"+h.label) }

func (h *DocumentHandler[T]) Create() gin.HandlerFunc {
	return createHandler("Create"+h.label, h.label+" created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.DocumentRequest) (*T, error) {
			return h.svc.Create(ctx, actorID(c), req, optionalFile(c, constants.FormFieldFile))
		})
}

func (h *DocumentHandler[T]) Update() gin.HandlerFunc {
	return updateHandler("Update"+h.label, h.label+" updated successfully",
		func(c *gin.Context, ctx context.Context, id uint, req *dto.UpdateDocumentRequest) (*T, error) {
			return h.svc.Update(ctx, id, actorID(c), req, optionalFile(c, constants.FormFieldFile))
		})
}

func (h *DocumentHandler[T]) UploadAttachment(c *gin.Context) {
	ctx := requestContext(c, "Upload"+h.label+"Attachment")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	item, err := h.svc.UploadAttachment(ctx, id, actorID(c), optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Attachment uploaded successfully", item)
}

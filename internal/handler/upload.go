package handler

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	ctx := requestContext(c, "UploadImage")

	url, err := h.uploadService.UploadImage(ctx, optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	logger.InfoWithContext(ctx, "Image uploaded").String("url", url).Log()
	respondData(c, http.StatusCreated, "File uploaded successfully", gin.H{"url": url})
}

// ActivityLogList GET /activity-logs.
func ActivityLogList(svc *service.ActivityLogService) gin.HandlerFunc {
	return listHandler[model.ActivityLog](svc, "ListActivityLogs")
}

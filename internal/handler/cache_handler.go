package handler

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CacheHandler struct {
	cacheService *service.CacheService
}

func NewCacheHandler(cacheService *service.CacheService) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
	}
}

// ClearPublicCache DELETE /cache, menghapus semua respons publik yang di-cache.
func (h *CacheHandler) ClearPublicCache(c *gin.Context) {
	ctx := requestContext(c, "ClearPublicCache")

	if !h.cacheService.Enabled() {
		c.JSON(http.StatusOK, constants.BuildDataResponse("Cache is disabled", gin.H{"deleted": 0}))
		return
	}

	deleted, err := h.cacheService.Flush(ctx)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to clear public cache").Err(err).Log()
		c.JSON(http.StatusInternalServerError, constants.BuildErrorResponse("Failed to clear cache", nil))
		return
	}

	logger.WarnWithContext(ctx, "Public cache cleared by admin").
		Uint("user_id", actorID(c)).
		Int("deleted", deleted).
		Log()

	c.JSON(http.StatusOK, constants.BuildDataResponse("Cache cleared successfully", gin.H{"deleted": deleted}))
}

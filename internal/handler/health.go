package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/pkg/circuit"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pinger dependency yang bisa dicek kesehatannya, misalnya redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

// breakerReporter diimplementasikan storage.Guarded (driver s3).
type breakerReporter interface {
	Breaker() *circuit.Breaker
}

type HealthHandler struct {
	db      *gorm.DB
	redis   Pinger
	storage any
}

type HealthCheckResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthHandler redis boleh nil bila cache memakai memory.
func NewHealthHandler(db *gorm.DB, redis Pinger, fs any) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redis,
		storage: fs,
	}
}

// HealthCheck GET /api/health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthCheckResponse{
		Status:    "healthy",
		Version:   constants.AppVersion,
		Timestamp: time.Now(),
		Checks:    make(map[string]HealthCheck),
	}

	dbStatus := h.checkDatabase(ctx)
	response.Checks["database"] = dbStatus
	if dbStatus.Status != "healthy" {
		response.Status = "unhealthy"
	}

	// redis opsional, tidak mempengaruhi status keseluruhan
	response.Checks["redis"] = h.checkRedis(ctx)

	storageStatus := h.checkStorage()
	response.Checks["storage"] = storageStatus
	if storageStatus.Status == "unhealthy" {
		response.Status = "degraded"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	logger.GetLogger().Debug("Health check performed",
		zap.String("overall_status", response.Status),
		zap.Int("status_code", statusCode),
	)

	c.JSON(statusCode, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) HealthCheck {
	if h.db == nil {
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Database connection not initialized",
		}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		logger.GetLogger().Error("Failed to get DB instance for health check", zap.Error(err))
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Failed to get database instance",
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.GetLogger().Error("Database ping failed", zap.Error(err))
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Database ping failed: " + err.Error(),
		}
	}

	stats := sqlDB.Stats()
	return HealthCheck{
		Status:  "healthy",
		Message: fmt.Sprintf("Database connection is healthy (open: %d, idle: %d)", stats.OpenConnections, stats.Idle),
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) HealthCheck {
	if h.redis == nil {
		return HealthCheck{
			Status:  "disabled",
			Message: "Redis cache is disabled",
		}
	}

	if err := h.redis.Ping(ctx); err != nil {
		logger.GetLogger().Warn("Redis ping failed", zap.Error(err))
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Redis ping failed: " + err.Error(),
		}
	}

	return HealthCheck{
		Status:  "healthy",
		Message: "Redis connection is healthy",
	}
}

func (h *HealthHandler) checkStorage() HealthCheck {
	guarded, ok := h.storage.(breakerReporter)
	if !ok {
		return HealthCheck{Status: "healthy", Message: "Local storage"}
	}
	state := guarded.Breaker().State()
	if state == circuit.StateOpen {
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Object storage circuit is open",
		}
	}
	return HealthCheck{
		Status:  "healthy",
		Message: "Object storage circuit is " + state.String(),
	}
}

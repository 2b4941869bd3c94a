package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestContext memberi setiap request X-Request-ID dan mengisi context
// dengan request id, client ip dan user agent untuk ContextLogBuilder.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := ctxutil.WithRequestID(c.Request.Context(), requestID)
		ctx = ctxutil.NewContextWithRequest(ctx, c.Request, "http", c.FullPath())
		c.Request = c.Request.WithContext(ctx)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}

// LoggingMiddleware access log lewat zap.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		logger.LogRequest(
			ctxutil.GetRequestID(c.Request.Context()),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency.Milliseconds(),
			c.ClientIP(),
			c.Request.UserAgent(),
		)

		if len(c.Errors) > 0 {
			logger.GetLogger().Error("Request error",
				zap.String("error", c.Errors.String()),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status_code", c.Writer.Status()),
			)
		}

		if latency > time.Second*2 {
			logger.GetLogger().Warn("Slow request detected",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
				zap.String("client_ip", c.ClientIP()),
			)
		}
	}
}

// RequestResponseMiddleware log body request di mode debug. Password disamarkan.
func RequestResponseMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if gin.Mode() != gin.DebugMode || !isJSON(c.Request) {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil && c.Request.ContentLength < 1024*1024 {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		if len(requestBody) == 0 {
			return
		}
		logger.GetLogger().Debug("Request body",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status_code", c.Writer.Status()),
			zap.ByteString("request_body", redactJSON(requestBody)),
		)
	}
}

// RecoveryMiddleware recovers from panics and logs them
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.LogPanic(recovered,
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", ctxutil.GetRequestID(c.Request.Context())),
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, constants.BuildErrorResponse(constants.MsgInternalError, nil))
	})
}

// SecurityLoggingMiddleware mencatat 401/403, percobaan login dan user agent
// scanner.
func SecurityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		userAgent := c.Request.UserAgent()

		if isSuspiciousUserAgent(userAgent) {
			logger.GetLogger().Warn("Suspicious user agent detected",
				zap.String("client_ip", clientIP),
				zap.String("user_agent", userAgent),
				zap.String("path", c.Request.URL.Path),
			)
		}

		c.Next()

		status := c.Writer.Status()
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			logger.GetLogger().Warn("Access denied",
				zap.Int("status_code", status),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", clientIP),
				zap.String("user_agent", userAgent),
			)
		}
	}
}

func isSuspiciousUserAgent(userAgent string) bool {
	suspiciousPatterns := []string{
		"sqlmap", "nikto", "nmap", "masscan", "burp", "scanner",
	}

	ua := strings.ToLower(userAgent)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(ua, pattern) {
			return true
		}
	}
	return false
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(constants.HeaderContentType), constants.ContentTypeJSON)
}

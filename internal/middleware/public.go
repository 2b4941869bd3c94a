package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/sanitize"
	"github.com/gin-gonic/gin"
)

// bufferedWriter menahan body respons supaya bisa diolah sebelum dikirim.
type bufferedWriter struct {
	gin.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferedWriter) WriteHeader(code int) { w.status = code }

func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Write(b []byte) (int, error) { return w.body.Write(b) }

func (w *bufferedWriter) WriteString(s string) (int, error) { return w.body.WriteString(s) }

func (w *bufferedWriter) Status() int { return w.status }

func (w *bufferedWriter) Size() int { return w.body.Len() }

func (w *bufferedWriter) Written() bool { return w.body.Len() > 0 }

// PublicResponse dipasang di grup /public. Respons JSON dibersihkan dari
// email dan password user sebelum dikirim, lalu respons 200 disimpan di
// cache. cache boleh nil.
func PublicResponse(cache *service.CacheService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var key string
		if cache.Enabled() && c.Request.Method == http.MethodGet {
			key = cache.GenerateCacheKey(ctxutil.RequestOrigin(c.Request), c.Request.URL.Path, c.Request.URL.Query())
			if data, ok := cache.GetCachedResponse(ctx, key); ok {
				c.Header(constants.HeaderXCache, "HIT")
				c.Data(http.StatusOK, constants.ContentTypeJSON+"; charset=utf-8", data)
				c.Abort()
				return
			}
		}

		original := c.Writer
		buf := &bufferedWriter{ResponseWriter: original, status: http.StatusOK}
		c.Writer = buf
		func() {
			// writer asli dipulihkan juga saat panic, supaya respons 500
			// dari recovery tidak tertahan di buffer
			defer func() { c.Writer = original }()
			c.Next()
		}()

		body := buf.body.Bytes()
		if len(body) > 0 && json.Valid(body) {
			if clean, err := stripUserData(body); err == nil {
				body = clean
			} else {
				logger.WarnWithContext(ctx, "Failed to sanitize public response").Err(err).Log()
			}
		}

		if key != "" {
			c.Header(constants.HeaderXCache, "MISS")
			if cache.ShouldCache(buf.status, len(body)) {
				cache.SetCachedResponse(ctx, key, buf.status, body)
			}
		}

		original.WriteHeader(buf.status)
		_, _ = original.Write(body)
	}
}

func stripUserData(body []byte) ([]byte, error) {
	clean, err := sanitize.UserData(json.RawMessage(body))
	if err != nil {
		return nil, err
	}
	return json.Marshal(clean)
}

// InvalidatePublicCache mengosongkan cache publik setelah mutasi admin
// yang berhasil.
func InvalidatePublicCache(cache *service.CacheService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !cache.Enabled() || !isMutation(c.Request.Method) || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if _, err := cache.Flush(c.Request.Context()); err != nil {
			logger.WarnWithContext(c.Request.Context(), "Public cache not invalidated").Err(err).Log()
		}
	}
}

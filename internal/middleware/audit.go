package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const (
	auditTimeout    = 5 * time.Second
	auditMaxPayload = 64 << 10
	redacted        = "[REDACTED]"
)

// ActivityRecorder tujuan penulisan audit trail.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *model.ActivityLog) error
}

// AuditTrail mencatat setiap mutasi yang berhasil (status < 400) ke
// activity_logs. Penulisan berjalan di goroutine terpisah dan tidak ikut
// batal saat request selesai.
func AuditTrail(recorder ActivityRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isMutation(c.Request.Method) {
			c.Next()
			return
		}

		var body []byte
		if isJSON(c.Request) && c.Request.ContentLength > 0 && c.Request.ContentLength <= auditMaxPayload {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			return
		}

		entry := &model.ActivityLog{
			Method:   c.Request.Method,
			Path:     c.Request.URL.Path,
			Entity:   entityFromPath(c.Request.URL.Path),
			Status:   status,
			ClientIP: c.ClientIP(),
			Payload:  auditPayload(c, body),
		}
		if id, ok := c.Get(constants.GinKeyUserID); ok {
			if uid, ok := id.(uint); ok {
				entry.ActorID = &uid
			}
		}

		ctx := context.WithoutCancel(c.Request.Context())
		go func() {
			ctx, cancel := context.WithTimeout(ctx, auditTimeout)
			defer cancel()
			if err := recorder.Record(ctx, entry); err != nil {
				logger.WarnWithContext(ctx, "Audit trail not recorded").Err(err).Log()
			}
		}()
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// entityFromPath /api/v1/news/categories/3 -> news.
func entityFromPath(path string) string {
	path = strings.TrimPrefix(path, "/api/v1/")
	entity, _, _ := strings.Cut(path, "/")
	return entity
}

// auditPayload body JSON atau field form multipart (tanpa file), password
// disamarkan.
func auditPayload(c *gin.Context, body []byte) datatypes.JSON {
	if len(body) > 0 {
		return datatypes.JSON(redactJSON(body))
	}

	form := c.Request.MultipartForm
	if form == nil || len(form.Value) == 0 {
		return nil
	}
	fields := make(map[string]any, len(form.Value))
	for k, v := range form.Value {
		if len(v) == 1 {
			fields[k] = v[0]
		} else {
			fields[k] = v
		}
	}
	for k := range form.File {
		fields[k] = "[FILE]"
	}
	raw, err := json.Marshal(redact(fields))
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// redactJSON mengganti nilai password di semua kedalaman. Body yang bukan
// JSON valid tidak dicatat.
func redactJSON(body []byte) []byte {
	var tree any
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil
	}
	out, err := json.Marshal(redact(tree))
	if err != nil {
		return nil
	}
	return out
}

func redact(node any) any {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if strings.Contains(strings.ToLower(k), "password") {
				n[k] = redacted
				continue
			}
			n[k] = redact(v)
		}
	case []any:
		for i, v := range n {
			n[i] = redact(v)
		}
	}
	return node
}

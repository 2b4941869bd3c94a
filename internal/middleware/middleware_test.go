package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/cache"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"allowed origin", []string{"https://web.example.com"}, http.MethodGet, "https://web.example.com", http.StatusOK, "https://web.example.com"},
		{"allowed preflight", []string{"https://web.example.com"}, http.MethodOptions, "https://web.example.com", http.StatusNoContent, "https://web.example.com"},
		{"rejected preflight", []string{"https://web.example.com"}, http.MethodOptions, "https://evil.example.com", http.StatusForbidden, ""},
		{"rejected simple request passes without headers", []string{"https://web.example.com"}, http.MethodGet, "https://evil.example.com", http.StatusOK, ""},
		{"wildcard reflects origin", []string{"*"}, http.MethodGet, "https://any.example.com", http.StatusOK, "https://any.example.com"},
		{"no origin", []string{"https://web.example.com"}, http.MethodGet, "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.allowed))
			r.Any("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := do(r, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllowed != "" {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	ok, remaining, _ := rl.Allow("1.1.1.1")
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	ok, remaining, _ = rl.Allow("1.1.1.1")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	ok, _, reset := rl.Allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, now.Add(time.Minute), reset)

	// IP lain punya kuota sendiri
	ok, _, _ = rl.Allow("2.2.2.2")
	assert.True(t, ok)

	now = now.Add(time.Minute + time.Second)
	ok, _, _ = rl.Allow("1.1.1.1")
	assert.True(t, ok)
}

func TestRateLimit_Middleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(1, time.Hour))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), constants.MsgTooManyRequests)
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(0, time.Hour))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
}

func TestEntityFromPath(t *testing.T) {
	tests := map[string]string{
		"/api/v1/news":              "news",
		"/api/v1/news/categories/3": "news",
		"/api/v1/director-profiles": "director-profiles",
		"/api/v1/auth/logout":       "auth",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, entityFromPath(path))
		})
	}
}

func TestRedactJSON(t *testing.T) {
	out := redactJSON([]byte(`{"name":"A","password":"secret","nested":[{"newPassword":"x","ok":1}]}`))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, redacted, got["password"])
	assert.Equal(t, "A", got["name"])
	nested := got["nested"].([]any)[0].(map[string]any)
	assert.Equal(t, redacted, nested["newPassword"])
	assert.Equal(t, float64(1), nested["ok"])

	assert.Nil(t, redactJSON([]byte("not json")))
}

type recorderFunc func(ctx context.Context, entry *model.ActivityLog) error

func (f recorderFunc) Record(ctx context.Context, entry *model.ActivityLog) error {
	return f(ctx, entry)
}

func TestAuditTrail(t *testing.T) {
	entries := make(chan *model.ActivityLog, 4)
	rec := recorderFunc(func(_ context.Context, e *model.ActivityLog) error {
		entries <- e
		return nil
	})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.GinKeyUserID, uint(5))
		c.Next()
	})
	r.Use(AuditTrail(rec))
	r.POST("/api/v1/users", func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusCreated, body)
	})
	r.PUT("/api/v1/users/:id", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/api/v1/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	body := `{"name":"Budi","password":"rahasia123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := do(r, req)
	require.Equal(t, http.StatusCreated, w.Code)
	// handler tetap menerima body utuh
	assert.Contains(t, w.Body.String(), "rahasia123")

	select {
	case e := <-entries:
		assert.Equal(t, http.MethodPost, e.Method)
		assert.Equal(t, "users", e.Entity)
		assert.Equal(t, http.StatusCreated, e.Status)
		require.NotNil(t, e.ActorID)
		assert.Equal(t, uint(5), *e.ActorID)
		assert.Contains(t, string(e.Payload), redacted)
		assert.NotContains(t, string(e.Payload), "rahasia123")
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry not recorded")
	}

	// gagal dan GET tidak dicatat
	req = httptest.NewRequest(http.MethodPut, "/api/v1/users/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	do(r, req)
	do(r, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	select {
	case e := <-entries:
		t.Fatalf("unexpected audit entry %s %s", e.Method, e.Path)
	case <-time.After(100 * time.Millisecond):
	}
}

func newPublicRouter(cacheService *service.CacheService, calls *int) *gin.Engine {
	r := gin.New()
	public := r.Group("/api/v1/public", PublicResponse(cacheService))
	public.GET("/news", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{
			"data": []gin.H{{
				"id":    1,
				"title": "Berita",
				"createdBy": gin.H{
					"id":       2,
					"name":     "Admin",
					"email":    "admin@example.com",
					"password": "hash",
				},
			}},
		})
	})
	public.GET("/missing", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
	return r
}

func TestPublicResponse_StripsUserData(t *testing.T) {
	calls := 0
	r := newPublicRouter(nil, &calls)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/v1/public/news", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "admin@example.com")
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"name":"Admin"`)
	assert.Empty(t, w.Header().Get(constants.HeaderXCache))
}

func TestPublicResponse_CachesOK(t *testing.T) {
	mem := cache.NewMemory(time.Hour)
	t.Cleanup(mem.Close)
	cacheService := service.NewCacheService(mem, time.Minute)

	calls := 0
	r := newPublicRouter(cacheService, &calls)

	first := do(r, httptest.NewRequest(http.MethodGet, "/api/v1/public/news?page=1", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(constants.HeaderXCache))

	second := do(r, httptest.NewRequest(http.MethodGet, "/api/v1/public/news?page=1", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get(constants.HeaderXCache))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.NotContains(t, second.Body.String(), "admin@example.com")
	assert.Equal(t, 1, calls)

	// 404 tidak disimpan
	do(r, httptest.NewRequest(http.MethodGet, "/api/v1/public/missing", nil))
	w := do(r, httptest.NewRequest(http.MethodGet, "/api/v1/public/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MISS", w.Header().Get(constants.HeaderXCache))
	assert.Equal(t, 3, calls)
}

func TestPublicResponse_CacheKeyedByOrigin(t *testing.T) {
	mem := cache.NewMemory(time.Hour)
	t.Cleanup(mem.Close)
	calls := 0
	r := newPublicRouter(service.NewCacheService(mem, time.Minute), &calls)

	request := func(host, proto string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/public/news?page=1", nil)
		req.Host = host
		if proto != "" {
			req.Header.Set(constants.HeaderXForwardedProto, proto)
		}
		return do(r, req)
	}

	tests := []struct {
		name  string
		host  string
		proto string
		want  string
	}{
		{"first host", "cms.example.com", "", "MISS"},
		{"other host", "api.example.com", "", "MISS"},
		{"same host behind https proxy", "cms.example.com", "https", "MISS"},
		{"first host again", "cms.example.com", "", "HIT"},
	}
	for _, tt := range tests {
		w := request(tt.host, tt.proto)
		require.Equal(t, http.StatusOK, w.Code, tt.name)
		assert.Equal(t, tt.want, w.Header().Get(constants.HeaderXCache), tt.name)
	}
	assert.Equal(t, 3, calls)
}

func TestPublicResponse_PanicReachesRecovery(t *testing.T) {
	tests := []struct {
		name  string
		cache bool
	}{
		{"without cache", false},
		{"with cache", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := cache.NewMemory(time.Hour)
			t.Cleanup(mem.Close)
			var cacheService *service.CacheService
			if tt.cache {
				cacheService = service.NewCacheService(mem, time.Minute)
			}

			r := gin.New()
			r.Use(RecoveryMiddleware())
			public := r.Group("/api/v1/public", PublicResponse(cacheService))
			public.GET("/news", func(c *gin.Context) {
				c.Status(http.StatusOK)
				_, _ = c.Writer.WriteString(`{"partial":`)
				panic("boom")
			})

			w := do(r, httptest.NewRequest(http.MethodGet, "/api/v1/public/news", nil))
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), constants.MsgInternalError)
			assert.NotContains(t, w.Body.String(), "partial")
			assert.Zero(t, mem.Len())
		})
	}
}

func TestInvalidatePublicCache(t *testing.T) {
	mem := cache.NewMemory(time.Hour)
	t.Cleanup(mem.Close)
	cacheService := service.NewCacheService(mem, time.Minute)
	ctx := context.Background()

	seed := func() {
		key := cacheService.GenerateCacheKey("http://example.com", "/api/v1/public/news", nil)
		cacheService.SetCachedResponse(ctx, key, http.StatusOK, []byte(`{"data":[]}`))
	}

	r := gin.New()
	r.Use(InvalidatePublicCache(cacheService))
	r.POST("/api/v1/news", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.PUT("/api/v1/news/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	seed()
	do(r, httptest.NewRequest(http.MethodPut, "/api/v1/news/1", nil))
	assert.Equal(t, 1, mem.Len())

	do(r, httptest.NewRequest(http.MethodPost, "/api/v1/news", nil))
	assert.Equal(t, 0, mem.Len())
}

func TestValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerOn(v))

	type payload struct {
		Type   string `json:"type" validate:"socialmedia"`
		Status string `json:"status" validate:"omitempty,newsstatus"`
	}

	tests := []struct {
		name    string
		in      payload
		wantErr string
	}{
		{"valid", payload{Type: "instagram", Status: model.NewsStatusPublished}, ""},
		{"type case insensitive", payload{Type: " YouTube "}, ""},
		{"unknown platform", payload{Type: "myspace"}, "type"},
		{"unknown status", payload{Type: "instagram", Status: "deleted"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantErr, verrs[0].Field())
		})
	}
}

func TestIsJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	assert.True(t, isJSON(req))

	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	assert.False(t, isJSON(req))
}

package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContextWithRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/news", nil)
	req.Header.Set("X-Request-ID", "req-123")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "cms-test")

	ctx := NewContextWithRequest(context.Background(), req, "handler", "ListNews")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, "203.0.113.7", GetClientIP(ctx))
	assert.Equal(t, "cms-test", GetUserAgent(ctx))
	assert.Equal(t, "handler", GetModule(ctx))
	assert.Equal(t, "ListNews", GetFunction(ctx))
	assert.False(t, GetStartTime(ctx).IsZero())
}

func TestNewContextWithRequest_KeepsExistingValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "from-header")

	ctx := WithRequestID(context.Background(), "from-middleware")
	ctx = NewContextWithRequest(ctx, req, "handler", "Get")

	assert.Equal(t, "from-middleware", GetRequestID(ctx))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "1.1.1.1"}, "9.9.9.9:1234", "1.1.1.1"},
		{"real ip", map[string]string{"X-Real-IP": "2.2.2.2"}, "9.9.9.9:1234", "2.2.2.2"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}

func TestRequestOrigin(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		proto string
		want  string
	}{
		{"plain", "http://cms.example.com/api/v1/faq", "", "http://cms.example.com"},
		{"tls", "https://cms.example.com/api/v1/faq", "", "https://cms.example.com"},
		{"forwarded proto", "http://cms.example.com:8080/api/v1/faq", "https", "https://cms.example.com:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			assert.Equal(t, tt.want, RequestOrigin(req))
		})
	}
}

func TestGetUserID(t *testing.T) {
	_, ok := GetUserID(context.Background())
	assert.False(t, ok)

	id, ok := GetUserID(WithUserID(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
}

package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "landing-cms", cfg.App.Name)
	assert.Equal(t, "access_token", cfg.Cookie.Name)
	assert.False(t, cfg.Cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cfg.Cookie.SameSite)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "http://localhost:9090", cfg.Storage.PublicBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoadConfig_AllowedOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "missing cookie secret",
			env:     map[string]string{"APP_ENV": "production", "JWT_SECRET": "s3cret"},
			wantErr: true,
		},
		{
			name:    "default jwt secret",
			env:     map[string]string{"APP_ENV": "production", "COOKIE_SECRET": "0123456789abcdef0123456789abcdef"},
			wantErr: true,
		},
		{
			name: "complete",
			env: map[string]string{
				"APP_ENV":       "production",
				"COOKIE_SECRET": "0123456789abcdef0123456789abcdef",
				"JWT_SECRET":    "s3cret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.Cookie.Secure)
		})
	}
}

func TestDatabaseConnectionString_PrefersURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{URL: "postgres://u:p@db:5432/cms"}}
	assert.Equal(t, "postgres://u:p@db:5432/cms", cfg.DatabaseConnectionString())
}

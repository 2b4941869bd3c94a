package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Storage   StorageConfig
	Log       LogConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Name          string
	Environment   string
	Debug         bool
	Timeout       time.Duration
	Port          string
	AllowRegister bool
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

// CookieConfig mengatur cookie sesi yang membawa access token.
type CookieConfig struct {
	Name     string
	HashKey  string
	BlockKey string
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         int
	Password     string
	Database     int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	CacheTTL     time.Duration
}

type RateLimitConfig struct {
	Request       int
	Duration      int
	LoginRequest  int
	LoginDuration int
}

// StorageConfig memilih driver penyimpanan file (local atau s3).
type StorageConfig struct {
	Driver        string
	LocalRoot     string
	PublicBaseURL string
	URLTemplate   string
	S3            S3Config
}

type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

type LogConfig struct {
	Path string
}

type SeedConfig struct {
	Enabled       bool
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() (*Config, error) {
	// .env opsional, environment tetap dipakai
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")
	port := getEnv("APP_PORT", "8080")

	config := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "landing-cms"),
			Environment:   env,
			Port:          port,
			Debug:         getEnvAsBool("APP_DEBUG", env != "production"),
			Timeout:       getEnvAsDuration("APP_TIMEOUT", 30*time.Second),
			AllowRegister: getEnvAsBool("AUTH_ALLOW_REGISTER", false),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			Name:            getEnv("DB_NAME", "landing_cms"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:      getEnvAsBool("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnvAsInt("REDIS_PORT", 6379),
			Password:     getEnv("REDIS_PASSWORD", ""),
			Database:     getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvAsDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getEnvAsDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
			CacheTTL:     getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "default_secret_key_change_in_production"),
			ExpirationTime: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Cookie: CookieConfig{
			Name:     getEnv("COOKIE_NAME", "access_token"),
			HashKey:  getEnv("COOKIE_SECRET", ""),
			BlockKey: getEnv("COOKIE_BLOCK_KEY", ""),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
			Path:     getEnv("COOKIE_PATH", "/"),
			Secure:   getEnvAsBool("COOKIE_SECURE", env == "production"),
			SameSite: parseSameSite(getEnv("COOKIE_SAME_SITE", "lax")),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		RateLimit: RateLimitConfig{
			Request:       getEnvAsInt("RATE_LIMIT_MAX_REQUEST", 120),
			Duration:      getEnvAsInt("RATE_LIMIT_DURATION", 60),
			LoginRequest:  getEnvAsInt("RATE_LIMIT_LOGIN_MAX_REQUEST", 5),
			LoginDuration: getEnvAsInt("RATE_LIMIT_LOGIN_DURATION", 60),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "local"),
			LocalRoot:     getEnv("UPLOAD_DEST", "uploads"),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),
			URLTemplate:   getEnv("STORAGE_URL_TEMPLATE", ""),
			S3: S3Config{
				Endpoint:     getEnv("S3_ENDPOINT", ""),
				Region:       getEnv("S3_REGION", "us-east-1"),
				Bucket:       getEnv("S3_BUCKET", ""),
				AccessKey:    getEnv("S3_ACCESS_KEY", ""),
				SecretKey:    getEnv("S3_SECRET_KEY", ""),
				UsePathStyle: getEnvAsBool("S3_USE_PATH_STYLE", true),
			},
		},
		Log: LogConfig{
			Path: getEnv("LOGS_PATH", "./logs"),
		},
		Seed: SeedConfig{
			Enabled:       getEnvAsBool("SEED_ENABLED", true),
			AdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin12345"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate memastikan secret wajib tersedia di luar development.
func (c *Config) Validate() error {
	if c.App.Environment == "development" || c.App.Environment == "test" {
		return nil
	}
	if c.Cookie.HashKey == "" {
		return errors.New("COOKIE_SECRET is required outside development")
	}
	if c.JWT.Secret == "" || c.JWT.Secret == "default_secret_key_change_in_production" {
		return errors.New("JWT_SECRET must be set outside development")
	}
	if c.Storage.Driver == "s3" && c.Storage.S3.Bucket == "" {
		return errors.New("S3_BUCKET is required when STORAGE_DRIVER=s3")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) DatabaseConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

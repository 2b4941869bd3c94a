package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PerformanceConfig konfigurasi untuk performa logger
type PerformanceConfig struct {
	MinLogLevel     zapcore.Level
	MaxLogPerSecond int
	EnableRateLimit bool
}

// ProductionConfig konfigurasi untuk production
func ProductionConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.InfoLevel,
		MaxLogPerSecond: 500,
		EnableRateLimit: true,
	}
}

// DevelopmentConfig konfigurasi untuk development
func DevelopmentConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.DebugLevel,
		MaxLogPerSecond: 10000,
		EnableRateLimit: false,
	}
}

// OptimizedLogger membungkus zap dengan filter level dan rate limit.
type OptimizedLogger struct {
	config      PerformanceConfig
	logger      *zap.Logger
	rateLimiter *RateLimiter
}

// RateLimiter untuk membatasi jumlah log per detik
type RateLimiter struct {
	maxLogs   int
	current   int
	lastReset time.Time
	mu        sync.Mutex
}

func NewRateLimiter(maxLogs int) *RateLimiter {
	return &RateLimiter{
		maxLogs:   maxLogs,
		lastReset: time.Now(),
	}
}

func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= time.Second {
		rl.current = 0
		rl.lastReset = now
	}

	if rl.current >= rl.maxLogs {
		return false
	}

	rl.current++
	return true
}

func newOptimizedLoggerFrom(base *zap.Logger, config PerformanceConfig) *OptimizedLogger {
	return &OptimizedLogger{
		config:      config,
		logger:      base.WithOptions(zap.AddCallerSkip(1)),
		rateLimiter: NewRateLimiter(config.MaxLogPerSecond),
	}
}

// ShouldLog menentukan apakah log harus ditulis. Error tidak pernah di-rate-limit.
func (ol *OptimizedLogger) ShouldLog(level zapcore.Level) bool {
	if level < ol.config.MinLogLevel {
		return false
	}

	if level < zapcore.ErrorLevel && ol.config.EnableRateLimit && !ol.rateLimiter.Allow() {
		return false
	}

	return true
}

var (
	optimizedLogger *OptimizedLogger
	fallbackOnce    sync.Once
	fallbackLogger  *OptimizedLogger
)

// GetOptimizedLogger mengembalikan logger hasil InitLogger, atau no-op
// bila belum diinisialisasi (mis. di unit test).
func GetOptimizedLogger() *OptimizedLogger {
	if optimizedLogger != nil {
		return optimizedLogger
	}
	fallbackOnce.Do(func() {
		fallbackLogger = newOptimizedLoggerFrom(zap.NewNop(), DevelopmentConfig())
	})
	return fallbackLogger
}

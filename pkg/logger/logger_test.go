package logger

import (
	"context"
	"testing"

	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(cfg PerformanceConfig) (*OptimizedLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return newOptimizedLoggerFrom(zap.New(core), cfg), logs
}

func TestContextLogBuilder_ExtractsContextFields(t *testing.T) {
	ol, logs := newObserved(DevelopmentConfig())

	ctx := ctxutil.WithRequestID(context.Background(), "req-1")
	ctx = ctxutil.WithUserID(ctx, 42)
	ctx = ctxutil.WithOperation(ctx, "service", "CreateNews")

	ol.WithContext(ctx).Info("news created").Uint("id", 3).Log()

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "news created", entries[0].Message)
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, uint64(42), fields["user_id"])
		assert.Equal(t, "service", fields["module"])
		assert.Equal(t, "CreateNews", fields["function"])
		assert.Equal(t, uint64(3), fields["id"])
	}
}

func TestContextLogBuilder_RespectsMinLevel(t *testing.T) {
	ol, logs := newObserved(ProductionConfig())

	ol.WithContext(context.Background()).Debug("hidden").String("k", "v").Log()
	ol.WithContext(context.Background()).Error("shown").Log()

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2)
	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())
}

func TestGetOptimizedLogger_FallbackIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		InfoWithContext(context.Background(), "no init").String("a", "b").Log()
	})
}

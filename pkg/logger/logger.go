package logger

import (
	"os"
	"path/filepath"

	"github.com/Payphone-Digital/landing-cms/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger
)

// InitLogger menyiapkan zap dengan tiga file (info, error, debug) plus console.
func InitLogger(cfg *config.Config) error {
	logsPath := cfg.Log.Path
	if err := os.MkdirAll(logsPath, 0o755); err != nil {
		return err
	}

	zapLevel := zapcore.DebugLevel
	if cfg.App.Environment == "production" {
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	files := make(map[string]*os.File, 3)
	for _, name := range []string{"info.log", "error.log", "debug.log"} {
		f, err := os.OpenFile(filepath.Join(logsPath, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return err
		}
		files[name] = f
	}

	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)

	consoleConfig := encoderConfig
	consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if cfg.App.Environment == "production" {
		consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewTee(
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(files["info.log"]), zapLevel),
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(files["error.log"]), zapcore.ErrorLevel),
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(files["debug.log"]), zapcore.DebugLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stdout), zapLevel),
	)

	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Environment))
	Sugar = Logger.Sugar()

	perf := DevelopmentConfig()
	if cfg.App.Environment == "production" {
		perf = ProductionConfig()
	}
	optimizedLogger = newOptimizedLoggerFrom(Logger, perf)

	return nil
}

// GetLogger returns the structured logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}

// Sync syncs all logs (call this before application exits)
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogRequest logs HTTP request information
func LogRequest(requestID, method, path string, statusCode int, durationMs int64, clientIP, userAgent string) {
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Int64("duration_ms", durationMs),
		zap.String("client_ip", clientIP),
		zap.String("user_agent", userAgent),
	}

	switch {
	case statusCode >= 500:
		GetLogger().Error("HTTP Request", fields...)
	case statusCode >= 400:
		GetLogger().Warn("HTTP Request", fields...)
	default:
		GetLogger().Info("HTTP Request", fields...)
	}
}

// LogPanic logs panic and recovers
func LogPanic(recovered any, fields ...zap.Field) {
	GetLogger().Error("Panic recovered",
		append(fields, zap.Any("panic", recovered), zap.Stack("stack"))...,
	)
}

// LogAuth logs authentication events
func LogAuth(email, action string, success bool, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("email", email),
		zap.String("action", action),
		zap.Bool("success", success),
	}, fields...)

	if success {
		GetLogger().Info("Authentication success", allFields...)
	} else {
		GetLogger().Warn("Authentication failure", allFields...)
	}
}

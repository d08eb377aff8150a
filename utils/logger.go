package utils

import (
	"log"

	"detailify/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger. Main initializes it
// once at startup; GetLogger builds it lazily for code paths that run
// before that.
var Logger *zap.Logger

// InitializeLogger builds the global zap logger: JSON in production,
// colored console everywhere else, at the configured LOG_LEVEL. The
// logger is also installed as zap's global so zap.L() works in
// middleware.
func InitializeLogger() {
	built, err := loggerConfig().Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = built
	zap.ReplaceGlobals(built)
}

func loggerConfig() zap.Config {
	if config.IsProduction() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(configuredLevel(zap.InfoLevel))
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(configuredLevel(zap.DebugLevel))
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

func configuredLevel(fallback zapcore.Level) zapcore.Level {
	raw := config.AppConfig.LogLevel
	if raw == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return fallback
	}
	return level
}

// GetLogger returns the global logger, building it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger for environment: JSON with ISO8601 timestamps in
// production, colored console output otherwise.
func New(environment string) (*zap.Logger, error) {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}

// Must is New that falls back to a development logger on error.
func Must(environment string) *zap.Logger {
	log, err := New(environment)
	if err != nil {
		log, _ = zap.NewDevelopment()
		log.Warn("logger config failed, using development logger", zap.Error(err))
	}
	return log
}

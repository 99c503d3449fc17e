package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logLevelEnvVar = "LOG_LEVEL"

// NewProductionLogger builds a json logger whose level can be overridden with LOG_LEVEL.
func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

func levelFromEnv() zapcore.Level {
	level := zapcore.InfoLevel
	if value, ok := os.LookupEnv(logLevelEnvVar); ok {
		if err := level.Set(value); err != nil {
			return zapcore.InfoLevel
		}
	}
	return level
}

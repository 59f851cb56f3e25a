package log

import (
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// Emit writes msg with the given fields to logger at level.
// Unknown levels are logged at info.
func Emit(logger *zap.Logger, level LogLevel, msg string, fields map[string]any) {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zfields...)
	case LogWarn:
		logger.Warn(msg, zfields...)
	case LogError:
		logger.Error(msg, zfields...)
	case LogDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}

// Sync flushes logger, reporting a failed flush on the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}

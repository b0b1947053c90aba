package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// Environment variables that control logging
const (
	// LogLevelEnvVar selects the level. When unset or empty, logging is silent.
	LogLevelEnvVar = "MENUCONFIG_LOG_LEVEL"
	// LogFileEnvVar overrides the log file path
	LogFileEnvVar = "MENUCONFIG_LOG_FILE"
)

// Rotation limits for the log file
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Initialize creates the logger.
// An empty level falls back to MENUCONFIG_LOG_LEVEL; if that is empty too the
// logger is a no-op. An empty path falls back to MENUCONFIG_LOG_FILE and then
// to menuconfig.log in the working directory.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = "menuconfig.log"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	})

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, ParseLevel(level))
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return nil
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSchemaLoad logs the outcome of reading a schema file
func LogSchemaLoad(path string, loaded, skipped, truncated int) {
	fields := []zap.Field{
		zap.String("path", path),
		zap.Int("loaded", loaded),
		zap.Int("skipped", skipped),
	}
	if truncated > 0 {
		Warn("Schema truncated at option limit", append(fields, zap.Int("truncated", truncated))...)
		return
	}
	Info("Schema loaded", fields...)
}

// LogSave logs a save attempt
func LogSave(path string, options int, err error) {
	if err != nil {
		Error("Save failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	Info("Configuration saved",
		zap.String("path", path),
		zap.Int("options", options),
	)
}

// LogDiskScan logs a disk enumeration
func LogDiskScan(dir string, found int, fallback bool) {
	Debug("Disk scan",
		zap.String("dir", dir),
		zap.Int("found", found),
		zap.Bool("fallback", fallback),
	)
}

// LogTransition logs an editor state change
func LogTransition(from, to string) {
	Debug("State transition",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

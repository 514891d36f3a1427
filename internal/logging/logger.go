package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "INFOHUB_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file. The interactive screens own
// stdout, so logging there would corrupt the rendered frame.
const LogFileEnvVar = "INFOHUB_LOG_FILE"

// secretFields are never written to the log, only their length.
var secretFields = map[string]bool{
	"senha":          true,
	"confirmarSenha": true,
	"password":       true,
}

// Initialize creates a new logger with the specified level.
// If level is empty, it checks INFOHUB_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := os.Getenv(LogFileEnvVar)
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the INFOHUB_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
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

// LogNavigation logs a route change
func LogNavigation(from, to string) {
	Info("Navigation",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogSubmission logs the end of a form submission
func LogSubmission(formName string, status string, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("form", formName),
		zap.String("status", status),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Error("Form submission error", fields...)
		return
	}
	Info("Form submission", fields...)
}

// LogFieldChange logs a single field edit at debug level
func LogFieldChange(formName, field, value string) {
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		return
	}
	Debug("Field changed",
		zap.String("form", formName),
		zap.String("field", field),
		FieldValue(field, value),
	)
}

// FieldValue returns a zap field for a form value, masking secret fields.
func FieldValue(field, value string) zap.Field {
	if secretFields[field] {
		return zap.Int("value_length", len(value))
	}
	return zap.String("value", value)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

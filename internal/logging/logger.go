package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SHEET_LOG_LEVEL"

// DefaultLogFile is where logs go when a level is set but no file is given.
// The terminal belongs to the grid, so logs never go to stdout.
const DefaultLogFile = "sheet.log"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks SHEET_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = DefaultLogFile
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
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

func parseLevel(level string) zapcore.Level {
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
		// Unknown level - use info as default when explicitly set to something
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

// LogIntent logs a user intent forwarded by the header, footer or actions column
func LogIntent(name string, fields ...zap.Field) {
	Info("User intent", append([]zap.Field{zap.String("intent", name)}, fields...)...)
}

// LogCellEdit logs a write into the record store
func LogCellEdit(rowID int, field string, promoted bool) {
	Debug("Cell edited",
		zap.Int("row_id", rowID),
		zap.String("field", field),
		zap.Bool("promoted", promoted),
	)
}

// LogStateChange logs an editor state transition
func LogStateChange(from, to, trigger string) {
	Debug("Editor state",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("trigger", trigger),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

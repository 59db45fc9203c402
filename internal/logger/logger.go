package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatJSON selects the production JSON encoder
	FormatJSON = "json"
	// FormatConsole selects the human-readable development encoder
	FormatConsole = "console"
)

// New creates a logger for the given format ("json" or "console")
func New(format string, debugMode bool) (*zap.Logger, error) {
	switch format {
	case FormatJSON, "":
		return NewProductionLogger(debugMode)
	case FormatConsole:
		return NewDevelopmentLogger(debugMode)
	default:
		return nil, fmt.Errorf("unknown log format: %s (must be 'json' or 'console')", format)
	}
}

func level(debugMode bool) zap.AtomicLevel {
	if debugMode {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zapcore.InfoLevel)
}

// NewProductionLogger creates a logger with JSON encoding written to stderr,
// leaving stdout free for command output.
func NewProductionLogger(debugMode bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = level(debugMode)

	config.Encoding = "json"
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	return config.Build()
}

// NewDevelopmentLogger creates a logger with console encoding (for local use)
func NewDevelopmentLogger(debugMode bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = level(debugMode)

	return config.Build()
}

// Sync flushes any buffered log entries. Safe to call with a nil logger.
func Sync(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}
	return logger.Sync()
}

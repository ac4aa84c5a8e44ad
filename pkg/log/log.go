package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// InitLogger builds the process logger writing to stderr. Debug mode
// switches to the development encoder and enables debug level.
func InitLogger(debug bool) {
	InitLoggerTo(debug, "stderr")
}

// InitLoggerTo is InitLogger with explicit zap output paths. The TUI uses it
// to keep log lines off the screen it draws on.
func InitLoggerTo(debug bool, outputs ...string) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = outputs
	cfg.ErrorOutputPaths = outputs

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	SetLogger(l)
}

// SetLogger replaces the process logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger().Fatal(msg, fields...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = Logger().Sync()
}

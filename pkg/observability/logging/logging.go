// Package logging provides the process-wide structured logger.
//
// It wraps a zap SugaredLogger behind package-level functions so callers
// never carry a logger handle around. The level is taken from the LOG_LEVEL
// environment variable (debug, info, warn, error) and defaults to info.
package logging

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   atomic.Pointer[zap.SugaredLogger]
	initOnce sync.Once
)

func init() {
	// A usable logger exists even before InitLoggerFromEnv runs, so early
	// package init paths can log.
	l, _ := zap.NewProduction()
	logger.Store(l.Sugar())
}

// InitLoggerFromEnv builds the global logger from the environment and
// replaces the default one. Safe to call more than once; only the first
// call takes effect.
func InitLoggerFromEnv() (*zap.SugaredLogger, error) {
	var initErr error
	initOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(os.Getenv("LOG_LEVEL")))
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		l, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			initErr = err
			return
		}
		logger.Store(l.Sugar())
	})
	return logger.Load(), initErr
}

// SetLogger replaces the global logger. Used by tests to capture output.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger.Store(l)
	}
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = logger.Load().Sync()
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debugf logs at debug level with Printf formatting.
func Debugf(format string, args ...interface{}) {
	logger.Load().Debugf(format, args...)
}

// Infof logs at info level with Printf formatting.
func Infof(format string, args ...interface{}) {
	logger.Load().Infof(format, args...)
}

// Warnf logs at warn level with Printf formatting.
func Warnf(format string, args ...interface{}) {
	logger.Load().Warnf(format, args...)
}

// Errorf logs at error level with Printf formatting.
func Errorf(format string, args ...interface{}) {
	logger.Load().Errorf(format, args...)
}

// Fatalf logs at fatal level and exits.
func Fatalf(format string, args ...interface{}) {
	logger.Load().Fatalf(format, args...)
}

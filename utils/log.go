package utils

import (
	"sync"

	"go.uber.org/zap"
)

// LogLevel of the controller's ambient logger.
type LogLevel uint8

const (
	// LogLevelDebug enables debug logs (e.g. per-ACK ledger bookkeeping)
	LogLevelDebug LogLevel = iota
	// LogLevelInfo enables info logs (e.g. dominance rotation, FQ detection)
	LogLevelInfo
	// LogLevelError enables err logs
	LogLevelError
	// LogLevelNothing disables logging entirely
	LogLevelNothing
)

var (
	mu       sync.RWMutex
	logLevel = LogLevelNothing
	logger   = zap.NewNop().Sugar()
)

// SetLogLevel sets the log level and, for any level other than
// LogLevelNothing, builds a fresh zap logger at that level, replacing the
// current one. Tests (and hosts that don't want logging) never pay for a
// zap.Logger construction.
func SetLogLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	logLevel = level
	if level == LogLevelNothing {
		logger = zap.NewNop().Sugar()
		return
	}
	cfg := zap.NewProductionConfig()
	switch level {
	case LogLevelDebug:
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than failing the controller
		// over a logging misconfiguration.
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// SetLogger lets a host plug in its own pre-configured zap logger (e.g. one
// already carrying connection-scoped fields) instead of the package default.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

func currentLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Logger returns the package's current zap logger, for callers (like the
// congestion Controller) that want structured fields beyond what
// Debugf/Infof/Errorf's printf-style API offers.
func Logger() *zap.SugaredLogger {
	return current()
}

// Debugf logs something at debug level.
func Debugf(format string, args ...interface{}) {
	if currentLevel() == LogLevelDebug {
		current().Debugf(format, args...)
	}
}

// Infof logs something at info level.
func Infof(format string, args ...interface{}) {
	if currentLevel() <= LogLevelInfo {
		current().Infof(format, args...)
	}
}

// Errorf logs something at error level.
func Errorf(format string, args ...interface{}) {
	if currentLevel() <= LogLevelError {
		current().Errorf(format, args...)
	}
}

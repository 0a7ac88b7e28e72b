package simd

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the package logger. It is a no-op logger until SetLogger
// is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger replaces the package logger and reports the kernel selection
// made at init through it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()

	if rejectedOverride != "" {
		l.Warn("ignoring unusable SIMD override",
			zap.String("env", OverrideEnv),
			zap.String("value", rejectedOverride),
			zap.Stringer("isa", activeISA))
	}
	l.Debug("polyline kernel selected",
		zap.Stringer("isa", activeISA),
		zap.Bool("override", hasOverride),
		zap.Int("lanes", Lanes))
}

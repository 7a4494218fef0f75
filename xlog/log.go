package xlog

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the narrow structured-logging surface used across apt3d.
// Subsystems depend on this interface, not on zap directly, so a caller
// embedding apt3d can swap in their own sink via SetLogger.
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
}

var (
	mu     sync.RWMutex
	root   *zap.Logger
	active Logger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig = zap.NewProductionEncoderConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = rfc3339TimeEncoder

	var err error
	root, err = cfg.Build()
	if err != nil {
		panic(err)
	}
	active = root.Sugar()
}

func rfc3339TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(time.RFC3339Nano))
}

// Named returns a Logger scoped to the given component name (e.g. "cluster",
// "cache"), so log lines can be filtered by subsystem. It derives from the
// logger installed by SetLogger; a Logger that is not a *zap.SugaredLogger
// is returned as is, without the component name.
func Named(component string) Logger {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := active.(*zap.SugaredLogger); ok {
		return s.Named(component)
	}
	return active
}

// SetLogger replaces the package-level logger returned by Default and
// used by Named.
// Intended for embedders who want apt3d's diagnostics routed into their
// own zap core; tests may also install a no-op logger.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	active = l
}

// Default returns the current package-level logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

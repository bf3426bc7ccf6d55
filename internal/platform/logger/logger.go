package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const requestIDKey ctxKey = "req_id"

var global atomic.Pointer[zap.SugaredLogger]

func init() {
	global.Store(zap.NewNop().Sugar())
}

// Init builds the process-wide logger. Development mode switches to the
// human-readable console encoder.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	global.Store(l.Sugar())
	return nil
}

// Set replaces the process-wide logger, mainly for tests.
func Set(l *zap.Logger) {
	global.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

func Sync() {
	_ = global.Load().Sync()
}

// WithRequestID stores a request id that every log line written with ctx will carry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func from(ctx context.Context) *zap.SugaredLogger {
	l := global.Load()
	if ctx == nil {
		return l
	}
	if id := RequestID(ctx); id != "" {
		return l.With("req_id", id)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...any) { from(ctx).Debugf(format, args...) }
func Infof(ctx context.Context, format string, args ...any)  { from(ctx).Infof(format, args...) }
func Warnf(ctx context.Context, format string, args ...any)  { from(ctx).Warnf(format, args...) }
func Errorf(ctx context.Context, format string, args ...any) { from(ctx).Errorf(format, args...) }

// Infow logs a message with structured key/value pairs.
func Infow(ctx context.Context, msg string, kv ...any) { from(ctx).Infow(msg, kv...) }
func Warnw(ctx context.Context, msg string, kv ...any) { from(ctx).Warnw(msg, kv...) }

func Error(ctx context.Context, msg string) { from(ctx).Error(msg) }

func Fatal(ctx context.Context, err error) { from(ctx).Fatal(err) }

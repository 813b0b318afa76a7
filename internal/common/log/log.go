// Package log is a thin wrapper around zap that carries per-run fields on the
// context, so every layer logs with the same run identity without passing a
// logger around.
package log

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var base = zap.NewNop()

type fieldsKey struct{}

type InitOption func(*zap.Config)

func WithLevel(level string) InitOption {
	return func(cfg *zap.Config) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(l)
		}
	}
}

func WithDevelopment() InitOption {
	return func(cfg *zap.Config) {
		*cfg = zap.NewDevelopmentConfig()
	}
}

func Init(appName string, opts ...InitOption) error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	for _, opt := range opts {
		opt(&cfg)
	}

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	base = logger.With(zap.String("app", appName))
	return nil
}

// InitForTest swaps the global logger for a no-op one.
func InitForTest() {
	base = zap.NewNop()
}

func Sync() {
	_ = base.Sync()
}

// WithFields returns a context whose subsequent log calls carry the given
// fields in addition to whatever the context already holds.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	return context.WithValue(ctx, fieldsKey{}, append(fromContext(ctx), fields...))
}

func fromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]Field)
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	base.Debug(msg, append(fromContext(ctx), fields...)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	base.Info(msg, append(fromContext(ctx), fields...)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	base.Warn(msg, append(fromContext(ctx), fields...)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	base.Error(msg, append(fromContext(ctx), fields...)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Debugf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Fatalf(format, args...)
}

func String(key, val string) Field            { return zap.String(key, val) }
func Int(key string, val int) Field           { return zap.Int(key, val) }
func Int64(key string, val int64) Field       { return zap.Int64(key, val) }
func Duration(key string, d time.Duration) Field { return zap.Duration(key, d) }
func Any(key string, val interface{}) Field   { return zap.Any(key, val) }
func Err(err error) Field                     { return zap.Error(err) }

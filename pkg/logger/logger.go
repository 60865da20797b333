// Package logger carries zap loggers through context.Context.
//
// The process-wide default is installed with Setup. Middlewares and the
// resolver derive scoped loggers with WithFields; everything else logs
// through the package-level helpers, which pick the logger out of ctx.
// All output goes to standard error so it never mixes with command output.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environments understood by New.
const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// New builds a logger for environment: colored console output at debug level
// in development, unsampled JSON at info level otherwise. A non-empty level
// overrides the environment's level.
func New(environment, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch environment {
	case ProductionEnvironment:
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build logger: %w", err)
	}

	return l, nil
}

// Setup builds a logger with New and installs it as the default.
func Setup(environment, level string) error {
	l, err := New(environment, level)
	if err != nil {
		return err
	}
	ReplaceDefault(l)

	return nil
}

// ReplaceDefault installs l as the default logger and returns a func that
// restores the previous one.
func ReplaceDefault(l *zap.Logger) func() {
	prev := defaultLogger
	defaultLogger = l

	return func() { defaultLogger = prev }
}

// Sync flushes the default logger.
func Sync() {
	_ = defaultLogger.Sync()
}

type ctxKey struct{}

// Get returns the logger carried by ctx, falling back to the default.
func Get(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithFields returns a copy of ctx whose logger adds fields to every entry.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Enabled reports whether the logger in ctx writes entries at lvl.
func Enabled(ctx context.Context, lvl zapcore.Level) bool {
	return Get(ctx).Core().Enabled(lvl)
}

// Debug, Info, Warn and Error write to the logger carried by ctx.
func Debug(ctx context.Context, msg string, fields ...zap.Field) { Get(ctx).Debug(msg, fields...) }
func Info(ctx context.Context, msg string, fields ...zap.Field)  { Get(ctx).Info(msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...zap.Field)  { Get(ctx).Warn(msg, fields...) }
func Error(ctx context.Context, msg string, fields ...zap.Field) { Get(ctx).Error(msg, fields...) }

package logger_test

import (
	"context"
	"testing"
	"themeconf/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "unknown environment is development", environment: "staging", debug: true},
		{name: "production", environment: logger.ProductionEnvironment, debug: false},
		{name: "production with debug level", environment: logger.ProductionEnvironment, level: "debug", debug: true},
		{name: "development with warn level", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.environment, tt.level)
			require.NoError(t, err)
			require.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := logger.New(logger.DevelopmentEnvironment, "loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
	require.Error(t, logger.Setup(logger.ProductionEnvironment, "loud"))
}

func TestDefaultLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := logger.ReplaceDefault(zap.New(core))
	defer restore()

	ctx := context.Background()
	logger.Info(ctx, "from default")
	require.Equal(t, 1, logs.FilterMessage("from default").Len())
	require.False(t, logger.Enabled(ctx, zapcore.DebugLevel))

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("theme", "dark"))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message", zap.String("role", "info"))
	logger.Error(ctx, "error message")

	entries := logs.All()
	require.Len(t, entries, 4)
	for _, e := range entries {
		require.Equal(t, "dark", e.ContextMap()["theme"])
	}
	require.Equal(t, "info", entries[2].ContextMap()["role"])
	require.Equal(t, zap.WarnLevel, entries[2].Level)
	require.True(t, logger.Enabled(ctx, zapcore.DebugLevel))
}

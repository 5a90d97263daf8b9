package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/planittesting/jupiter-e2e/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantLevel   zapcore.Level
	}{
		{name: "development debug", environment: logger.DevelopmentEnvironment, level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "production warn", environment: logger.ProductionEnvironment, level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "unknown level falls back to info", environment: logger.ProductionEnvironment, level: "loud", wantLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.environment, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, l.Level())
		})
	}
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("browser", "chromium"))

	logger.Get(ctx).Info("step passed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "step passed", entries[0].Message)
	assert.Equal(t, "chromium", entries[0].ContextMap()["browser"])
}

func TestGet_WithoutLogger(t *testing.T) {
	l := logger.Get(context.Background())
	require.NotNil(t, l)
	l.Info("discarded")
}

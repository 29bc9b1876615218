package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapAppLogger(t *testing.T) {
	t.Run("builds with defaults", func(t *testing.T) {
		logger, err := NewZapAppLogger()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := NewZapAppLogger(WithLevel("verbose"))
		assert.Error(t, err)
	})
}

func TestZapAppLoggerFields(t *testing.T) {
	logger, logs := NewObservedAppLogger(zapcore.DebugLevel)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	logger.Info(ctx, "todo saved", map[string]interface{}{"id": "42"})
	logger.Error(ctx, "todo failed", map[string]interface{}{"error": errors.New("boom")})
	logger.Trace(context.Background(), "trace line", nil)
	logger.Warn(context.Background(), "slow", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	info := entries[0].ContextMap()
	assert.Equal(t, "42", info["id"])
	assert.Equal(t, "req-1", info["requestID"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.NotContains(t, entries[2].ContextMap(), "requestID")

	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}

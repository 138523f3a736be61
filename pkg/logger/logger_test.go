package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development with debug level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("production with empty level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.NewLogger(logger.Production, "loudest")
		assert.Error(t, err)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("success when logger exists in context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		retrieved, err := logger.FromContext(ctx)
		assert.NoError(t, err)
		assert.Same(t, testLogger, retrieved)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		retrieved, err := logger.FromContext(context.Background())
		assert.Error(t, err)
		assert.Nil(t, retrieved)
		assert.True(t, errors.Is(err, logger.ErrLoggerNotFound))
	})
}

func TestLog_NeverReturnsNil(t *testing.T) {
	assert.NotNil(t, logger.Log(context.Background()))

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx := logger.NewContext(context.Background(), testLogger)
	assert.Same(t, testLogger, logger.Log(ctx))
}

func TestRequestIDContext(t *testing.T) {
	t.Run("generates id when empty", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("keeps provided id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")

		id, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("absent without context value", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}

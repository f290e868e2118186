package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithUser_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	userID := uuid.New()

	ctx := WithLogger(WithRequestID(context.Background(), "req-1"), logger)
	ctx = WithUser(ctx, userID)

	got, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, got)
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	GetLoggerOrDefault(ctx, nil).Info("Navigation session started")
	assert.Contains(t, buf.String(), `"user_id":"`+userID.String()+`"`)
}

func TestWithUser_WithoutLogger(t *testing.T) {
	ctx := WithUser(context.Background(), uuid.New())

	assert.Nil(t, GetLogger(ctx))
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}

func TestGetUserIDFromContext_Anonymous(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(WithUser(context.Background(), uuid.Nil))
	assert.False(t, ok)
}

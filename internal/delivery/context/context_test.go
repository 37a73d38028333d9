package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestScopedValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, RequestID(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	_, ok := Session(ctx)
	assert.False(t, ok)

	scoped := fallback.With("request_id", "abc")
	claims := &entity.SessionClaims{AccountID: uuid.New(), Source: entity.AuthSourceGitHub}

	ctx = WithRequestID(ctx, "abc")
	ctx = WithLogger(ctx, scoped)
	ctx = WithSession(ctx, claims)

	assert.Equal(t, "abc", RequestID(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	got, ok := Session(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAdminID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAdminID(c)
	assert.False(t, ok)

	SetAdminID(c, uuid.Nil)
	_, ok = GetAdminID(c)
	assert.False(t, ok)

	adminID := uuid.New()
	SetAdminID(c, adminID)
	got, ok := GetAdminID(c)
	assert.True(t, ok)
	assert.Equal(t, adminID, got)

	SetRoles(c, []string{"admin"})
	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"admin"}, roles)
}

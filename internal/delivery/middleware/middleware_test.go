package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"activator/config"
	deliverycontext "activator/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return cfg
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantHeader bool
	}{
		{name: "keeps client request ID", header: "client-req-1", wantHeader: true},
		{name: "generates when missing"},
		{name: "replaces oversized IDs", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var fromEcho, fromCtx string
			e.Use(mw.Process)
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, fromEcho)
			assert.Equal(t, fromEcho, fromCtx)
			assert.Equal(t, fromEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.wantHeader {
				assert.Equal(t, tt.header, fromEcho)
			} else {
				assert.NotEqual(t, tt.header, fromEcho)
				assert.LessOrEqual(t, len(fromEcho), maxRequestIDLength)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:  "quiet outside debug mode",
			debug: false,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
		{
			name:  "logs every request in debug mode",
			debug: true,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantLog: "level=INFO",
		},
		{
			name:  "logs server errors with the rendered status",
			debug: false,
			handler: func(echo.Context) error {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
			},
			wantLog: "status=503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), newDebugConfig(tt.debug))
			e.Use(mw.Handle)
			e.GET("/api/device/:macId", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/device/CPU-1", nil))

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "route=/api/device/:macId")
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"activator/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveFrom(e *echo.Echo, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/sadmin/activate", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestNewDeviceRateLimiter_LimitsPerClientIP(t *testing.T) {
	cfg := &config.Config{DeviceAPI: &config.DeviceAPIConfig{RateLimit: 0.001, Burst: 2}}

	e := echo.New()
	e.POST("/api/sadmin/activate", okHandler, NewDeviceRateLimiter(cfg, newDiscardLogger()))

	assert.Equal(t, http.StatusNoContent, serveFrom(e, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusNoContent, serveFrom(e, "10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(e, "10.0.0.1:1002"))

	// Another client has its own bucket
	assert.Equal(t, http.StatusNoContent, serveFrom(e, "10.0.0.2:1000"))
}

func TestNewDeviceRateLimiter_DisabledWithoutLimit(t *testing.T) {
	e := echo.New()
	e.POST("/api/sadmin/activate", okHandler, NewDeviceRateLimiter(&config.Config{}, newDiscardLogger()))

	for range 10 {
		assert.Equal(t, http.StatusNoContent, serveFrom(e, "10.0.0.1:1000"))
	}
}

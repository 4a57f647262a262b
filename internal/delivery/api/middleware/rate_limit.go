package middleware

import (
	"log/slog"
	"time"

	"activator/config"
	"activator/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimiterExpiry is how long an idle client's bucket is kept.
const rateLimiterExpiry = 3 * time.Minute

// NewDeviceRateLimiter limits the device-facing routes per client IP.
// It returns a pass-through middleware when no limit is configured.
func NewDeviceRateLimiter(cfg *config.Config, logger *slog.Logger) echo.MiddlewareFunc {
	if cfg.DeviceAPI == nil || cfg.DeviceAPI.RateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	burst := cfg.DeviceAPI.Burst
	if burst <= 0 {
		burst = int(cfg.DeviceAPI.RateLimit)
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.DeviceAPI.RateLimit),
		Burst:     max(burst, 1),
		ExpiresIn: rateLimiterExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Forbidden(c, "FORBIDDEN", "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("Device API rate limit exceeded",
				slog.String("remote_ip", identifier),
				slog.String("path", c.Path()),
			)

			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please try again later")
		},
	})
}

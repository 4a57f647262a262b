// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"activator/config"
	"activator/internal/delivery/api/middleware"
	"activator/internal/delivery/api/router/handler"
	"activator/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AdminHandler      *handler.AdminHandler
	DeviceHandler     *handler.DeviceHandler
	ActivationHandler *handler.ActivationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Registry          *prometheus.Registry
	Config            *config.Config
	Logger            *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	adminHandler      *handler.AdminHandler
	deviceHandler     *handler.DeviceHandler
	activationHandler *handler.ActivationHandler
	authMiddleware    *middleware.AuthMiddleware
	registry          *prometheus.Registry
	config            *config.Config
	logger            *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		adminHandler:      params.AdminHandler,
		deviceHandler:     params.DeviceHandler,
		activationHandler: params.ActivationHandler,
		authMiddleware:    params.AuthMiddleware,
		registry:          params.Registry,
		config:            params.Config,
		logger:            params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	// Admin routes require a valid access token and the admin role
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/add-device", r.adminHandler.AddDevice)
		adminGroup.DELETE("/delete-device/:macId", r.adminHandler.DeleteDeviceByMacID)
		adminGroup.POST("/delete-device", r.adminHandler.DeleteDevices)
		adminGroup.GET("/get-devices", r.adminHandler.GetDevices)
		adminGroup.POST("/renew-device", r.adminHandler.RenewDevice)
		adminGroup.GET("/devices/:id/qr", r.adminHandler.GetActivationQR)
		adminGroup.GET("/devices/:id/events", r.adminHandler.GetDeviceEvents)
	}

	// Routes called by installed applications are public and rate limited per client IP
	rateLimiter := middleware.NewDeviceRateLimiter(r.config, r.logger)

	deviceGroup := e.Group("/api/device", rateLimiter)
	{
		deviceGroup.POST("/verify-device", r.deviceHandler.VerifyDevice)
		deviceGroup.GET("/details", r.deviceHandler.GetDeviceDetails)
		deviceGroup.POST("/details", r.deviceHandler.GetDeviceDetails)
		deviceGroup.GET("/:macId", r.deviceHandler.GetDeviceByMacID)
	}

	activationGroup := e.Group("/api/sadmin", rateLimiter)
	{
		activationGroup.POST("/check-activation", r.activationHandler.CheckActivation)
		activationGroup.POST("/activate", r.activationHandler.Activate)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.registry == nil {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = defaultMetricsPath
	}

	e.GET(path, echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		Registry: r.registry,
	})))
}

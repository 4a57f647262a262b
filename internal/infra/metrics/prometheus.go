// Package metrics records activation and HTTP metrics in a Prometheus registry.
package metrics

import (
	"strconv"
	"time"

	"activator/internal/domain/entity"
	"activator/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const namespace = "activator"

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Module provides the registry and the recorder.
var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		NewRecorder,
		func(r *Recorder) service.ActivationMetrics { return r },
	),
)

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Recorder implements service.ActivationMetrics and instruments HTTP handlers.
type Recorder struct {
	devicesRegistered   *prometheus.CounterVec
	devicesDeleted      *prometheus.CounterVec
	devicesExpired      *prometheus.CounterVec
	activationChecks    *prometheus.CounterVec
	activationAttempts  *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder registers the collectors on registry.
func NewRecorder(registry *prometheus.Registry) (*Recorder, error) {
	r := &Recorder{
		devicesRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_registered_total",
			Help:      "Devices registered by admins",
		}, []string{"app"}),
		devicesDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_deleted_total",
			Help:      "Devices deleted by admins",
		}, []string{"app"}),
		devicesExpired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_expired_total",
			Help:      "Devices moved to inactive because their license lapsed",
		}, []string{"app"}),
		activationChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activation_checks_total",
			Help:      "Activation status checks by outcome",
		}, []string{"app", "outcome"}),
		activationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activation_attempts_total",
			Help:      "Activation attempts by outcome",
		}, []string{"app", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
	}

	for _, collector := range []prometheus.Collector{
		r.devicesRegistered,
		r.devicesDeleted,
		r.devicesExpired,
		r.activationChecks,
		r.activationAttempts,
		r.httpRequests,
		r.httpRequestDuration,
	} {
		if err := registry.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return r, nil
}

// DeviceRegistered counts a new device.
func (r *Recorder) DeviceRegistered(app entity.AppName) {
	r.devicesRegistered.WithLabelValues(appLabel(app)).Inc()
}

// DeviceDeleted counts a removed device.
func (r *Recorder) DeviceDeleted(app entity.AppName) {
	r.devicesDeleted.WithLabelValues(appLabel(app)).Inc()
}

// DeviceExpired counts a device flipped to inactive.
func (r *Recorder) DeviceExpired(app entity.AppName) {
	r.devicesExpired.WithLabelValues(appLabel(app)).Inc()
}

// ActivationChecked counts an activation status check.
func (r *Recorder) ActivationChecked(app entity.AppName, outcome string) {
	r.activationChecks.WithLabelValues(appLabel(app), outcome).Inc()
}

// ActivationAttempted counts an activation attempt.
func (r *Recorder) ActivationAttempted(app entity.AppName, outcome string) {
	r.activationAttempts.WithLabelValues(appLabel(app), outcome).Inc()
}

// Middleware records request count and latency per route template.
func (r *Recorder) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)

		r.httpRequests.WithLabelValues(c.Request().Method, route, status).Inc()
		r.httpRequestDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())

		return nil
	}
}

// appLabel keeps label cardinality bounded when clients send arbitrary app names.
func appLabel(app entity.AppName) string {
	if app.IsValid() {
		return app.String()
	}

	return "unknown"
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"activator/internal/domain/entity"
	"activator/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsActivationOutcomes(t *testing.T) {
	recorder, err := NewRecorder(NewRegistry())
	require.NoError(t, err)

	recorder.DeviceRegistered(entity.AppWABomb)
	recorder.DeviceRegistered(entity.AppWABomb)
	recorder.DeviceExpired(entity.AppCubiView)
	recorder.DeviceDeleted(entity.AppEmailStorm)
	recorder.ActivationAttempted(entity.AppWABomb, service.OutcomeSuccess)
	recorder.ActivationAttempted(entity.AppWABomb, service.OutcomeInvalidKey)
	recorder.ActivationChecked("Not An App", service.OutcomeNotFound)

	assert.InDelta(t, 2, testutil.ToFloat64(recorder.devicesRegistered.WithLabelValues("WA BOMB")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.devicesExpired.WithLabelValues("Cubi-View")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.devicesDeleted.WithLabelValues("Email Storm")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.activationAttempts.WithLabelValues("WA BOMB", service.OutcomeInvalidKey)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.activationChecks.WithLabelValues("unknown", service.OutcomeNotFound)), 0)
}

func TestNewRecorder_RejectsDuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	_, err := NewRecorder(registry)
	require.NoError(t, err)

	_, err = NewRecorder(registry)
	require.Error(t, err)
}

func TestRecorder_Middleware(t *testing.T) {
	recorder, err := NewRecorder(NewRegistry())
	require.NoError(t, err)

	e := echo.New()
	e.Use(recorder.Middleware)
	e.GET("/api/device/:macId", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/device/ABC", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, 3, testutil.ToFloat64(recorder.httpRequests.WithLabelValues(http.MethodGet, "/api/device/:macId", "204")), 0)
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "activator/internal/delivery/api/middleware"
	"activator/internal/delivery/api/validator"
	"activator/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

type errorBody struct {
	Success   bool              `json:"success"`
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details"`
	RequestID string            `json:"requestId"`
}

func newTestDevice(adminID uuid.UUID) *entity.Device {
	return &entity.Device{
		ID: uuid.New(),
		Identity: entity.Identity{
			Scheme:            entity.IdentitySchemeHardware,
			MacID:             "BFEBFBFF000906EA",
			MotherboardSerial: "MB-001",
		},
		ActivationKey:  "WAB-AAAAA-BBBBB-CCCCC-DDDDD-EEEEE",
		Name:           "Front desk",
		AdminID:        adminID,
		Status:         entity.DeviceStatusActive,
		ExpirationDate: time.Date(2026, time.April, 15, 23, 59, 59, 999000000, time.UTC),
		AppName:        entity.AppWABomb,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

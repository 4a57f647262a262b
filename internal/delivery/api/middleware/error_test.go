package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"activator/internal/delivery/api/response"
	deliverycontext "activator/internal/delivery/context"
	domainerrors "activator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrDeviceNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "DEVICE_NOT_FOUND",
			wantMsg:    "Device not found",
		},
		{
			name:       "database error keeps its cause private",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "register device"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
			wantMsg:    "Server Error",
		},
		{
			name:       "echo route error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "ROUTE_NOT_FOUND",
			wantMsg:    "Not Found",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-42")

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, "req-42", body.RequestID)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

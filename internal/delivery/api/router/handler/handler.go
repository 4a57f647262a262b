// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"activator/internal/delivery/api/response"
	"activator/internal/delivery/api/validator"
	domainerrors "activator/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and validates it.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.FieldErrors(err),
		)
	}

	return true, nil
}

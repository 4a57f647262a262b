package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	custom := ErrDuplicateDevice.WithMessage("Device with System ID 'S1' and App 'WA BOMB' already exists.")

	assert.ErrorIs(t, custom, ErrDuplicateDevice)
	assert.NotErrorIs(t, custom, ErrDuplicateActivationKey)
	assert.Equal(t, http.StatusBadRequest, custom.HTTPCode())
	assert.Equal(t, "DUPLICATE_DEVICE", custom.ErrorCode())
	assert.Contains(t, custom.Message(), "S1")
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrDeviceInactive.WrapMessage("activate")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "DEVICE_INACTIVE", appErr.ErrorCode())
	assert.ErrorIs(t, wrapped, ErrDeviceInactive)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create device")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create device", err.Details())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

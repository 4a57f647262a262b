package handler

import (
	"net/http"
	"testing"
	"time"

	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	mockUsecase "activator/internal/mocks/usecase"
	"activator/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestActivationHandler(t *testing.T) (*ActivationHandler, *mockUsecase.MockActivationUsecase) {
	activationUC := mockUsecase.NewMockActivationUsecase(t)

	return NewActivationHandler(ActivationHandlerParams{ActivationUC: activationUC, Logger: newDiscardLogger()}), activationUC
}

func TestActivationHandler_CheckActivation_AcceptsProcessorID(t *testing.T) {
	h, activationUC := createTestActivationHandler(t)
	e := newTestEcho()
	expiration := time.Date(2026, time.April, 15, 23, 59, 59, 999000000, time.UTC)

	activationUC.EXPECT().
		CheckActivation(mock.Anything, &usecase.CheckActivationInput{
			DeviceLookupInput: usecase.DeviceLookupInput{
				MacID:             "BFEBFBFF000906EA",
				MotherboardSerial: "MB-001",
				AppName:           "WA BOMB",
			},
			ActivationKey: "WAB-AAAAA-BBBBB-CCCCC-DDDDD-EEEEE",
		}).
		Return(&usecase.CheckActivationOutput{
			Status:         entity.DeviceStatusActive,
			Activated:      true,
			ExpirationDate: expiration,
		}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/sadmin/check-activation",
		`{"processorId":"BFEBFBFF000906EA","motherboardSerial":"MB-001","activationKey":"WAB-AAAAA-BBBBB-CCCCC-DDDDD-EEEEE","appName":"WA BOMB"}`)

	require.NoError(t, h.CheckActivation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[CheckActivationResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, entity.DeviceStatusActive, body.ActivationStatus)
	assert.True(t, body.DeviceActivation)
	assert.True(t, expiration.Equal(body.ExpirationDate))
}

func TestActivationHandler_CheckActivation_ReportsInactive(t *testing.T) {
	h, activationUC := createTestActivationHandler(t)
	e := newTestEcho()

	activationUC.EXPECT().CheckActivation(mock.Anything, mock.Anything).
		Return(&usecase.CheckActivationOutput{Status: entity.DeviceStatusInactive}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/sadmin/check-activation", `{"systemId":"SYS-1","appName":"Cubi-View"}`)

	require.NoError(t, h.CheckActivation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[CheckActivationResponse](t, rec)
	assert.Equal(t, entity.DeviceStatusInactive, body.ActivationStatus)
	assert.False(t, body.DeviceActivation)
}

func TestActivationHandler_CheckActivation_RequiresAppName(t *testing.T) {
	h, _ := createTestActivationHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/sadmin/check-activation", `{"systemId":"SYS-1"}`)

	require.NoError(t, h.CheckActivation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", decodeBody[errorBody](t, rec).Details["appName"])
}

func TestActivationHandler_Activate(t *testing.T) {
	h, activationUC := createTestActivationHandler(t)
	e := newTestEcho()
	device := newTestDevice(uuid.New())
	device.Activated = true

	activationUC.EXPECT().
		Activate(mock.Anything, &usecase.ActivateInput{
			DeviceLookupInput: usecase.DeviceLookupInput{SystemID: "SYS-1", AppName: "WA BOMB"},
			ActivationKey:     device.ActivationKey,
		}).
		Return(&usecase.ActivateOutput{Device: device}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/sadmin/activate",
		`{"systemId":"SYS-1","activationKey":"`+device.ActivationKey+`","appName":"WA BOMB"}`)

	require.NoError(t, h.Activate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Device activated successfully","deviceActivation":true}`, rec.Body.String())
}

func TestActivationHandler_Activate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "inactive device",
			err:        domainerrors.ErrDeviceInactive,
			wantStatus: http.StatusBadRequest,
			wantCode:   "DEVICE_INACTIVE",
			wantMsg:    "Device is inactive. Please renew your license.",
		},
		{
			name:       "wrong key",
			err:        domainerrors.ErrInvalidActivationKey,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ACTIVATION_KEY",
			wantMsg:    "Invalid activation key",
		},
		{
			name:       "unknown device",
			err:        domainerrors.ErrDeviceNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "DEVICE_NOT_FOUND",
			wantMsg:    "Device not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, activationUC := createTestActivationHandler(t)
			e := newTestEcho()

			activationUC.EXPECT().Activate(mock.Anything, mock.Anything).Return(nil, tt.err)

			c, rec := newJSONContext(e, http.MethodPost, "/api/sadmin/activate",
				`{"systemId":"SYS-1","activationKey":"WAB-X","appName":"WA BOMB"}`)

			require.NoError(t, h.Activate(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody[errorBody](t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestActivationHandler_Activate_UnexpectedErrorIsDelegated(t *testing.T) {
	h, activationUC := createTestActivationHandler(t)
	e := newTestEcho()

	activationUC.EXPECT().Activate(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	c, rec := newJSONContext(e, http.MethodPost, "/api/sadmin/activate",
		`{"systemId":"SYS-1","activationKey":"WAB-X","appName":"WA BOMB"}`)

	err := h.Activate(c)
	require.ErrorIs(t, err, assert.AnError)

	e.HTTPErrorHandler(err, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeBody[errorBody](t, rec).Code)
}

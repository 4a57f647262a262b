package handler

import (
	"net/http"
	"testing"

	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	mockUsecase "activator/internal/mocks/usecase"
	"activator/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockActivationUsecase) {
	activationUC := mockUsecase.NewMockActivationUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{ActivationUC: activationUC, Logger: newDiscardLogger()}), activationUC
}

func TestDeviceHandler_VerifyDevice(t *testing.T) {
	h, activationUC := createTestDeviceHandler(t)
	e := newTestEcho()
	device := newTestDevice(uuid.New())

	activationUC.EXPECT().
		VerifyDevice(mock.Anything, &usecase.ActivateInput{
			DeviceLookupInput: usecase.DeviceLookupInput{
				MacID:             "BFEBFBFF000906EA",
				MotherboardSerial: "MB-001",
			},
			ActivationKey: device.ActivationKey,
		}).
		Return(&usecase.ActivateOutput{Device: device}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/device/verify-device",
		`{"macId":"BFEBFBFF000906EA","motherboardSerial":"MB-001","activationKey":"`+device.ActivationKey+`"}`)

	require.NoError(t, h.VerifyDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Device verified successfully"}`, rec.Body.String())
}

func TestDeviceHandler_VerifyDevice_InvalidKey(t *testing.T) {
	h, activationUC := createTestDeviceHandler(t)
	e := newTestEcho()

	activationUC.EXPECT().VerifyDevice(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidDeviceOrKey)

	c, rec := newJSONContext(e, http.MethodPost, "/api/device/verify-device",
		`{"systemId":"SYS-1","activationKey":"EMS-WRONG","appName":"Email Storm"}`)

	require.NoError(t, h.VerifyDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid device or activation key", decodeBody[errorBody](t, rec).Message)
}

func TestDeviceHandler_VerifyDevice_MissingKey(t *testing.T) {
	h, _ := createTestDeviceHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/device/verify-device", `{"systemId":"SYS-1"}`)

	require.NoError(t, h.VerifyDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", decodeBody[errorBody](t, rec).Details["activationKey"])
}

func TestDeviceHandler_GetDeviceByMacID_HidesKeyAndOwner(t *testing.T) {
	h, activationUC := createTestDeviceHandler(t)
	e := newTestEcho()
	device := newTestDevice(uuid.New())

	activationUC.EXPECT().
		GetDeviceDetails(mock.Anything, entity.DeviceSelector{MacID: "BFEBFBFF000906EA"}).
		Return([]*entity.Device{device}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/api/device/BFEBFBFF000906EA", "")
	c.SetParamNames("macId")
	c.SetParamValues("BFEBFBFF000906EA")

	require.NoError(t, h.GetDeviceByMacID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "activationKey")
	assert.NotContains(t, rec.Body.String(), "adminId")

	body := decodeBody[PublicDeviceResponse](t, rec)
	assert.Equal(t, device.ID, body.ID)
	assert.Equal(t, entity.DeviceStatusActive, body.DeviceStatus)
}

func TestDeviceHandler_GetDeviceDetails_SeveralMatches(t *testing.T) {
	h, activationUC := createTestDeviceHandler(t)
	e := newTestEcho()
	adminID := uuid.New()
	first := newTestDevice(adminID)
	second := newTestDevice(adminID)
	second.AppName = entity.AppEmailStorm

	activationUC.EXPECT().
		GetDeviceDetails(mock.Anything, entity.DeviceSelector{MacID: "BFEBFBFF000906EA", MotherboardSerial: "MB-001"}).
		Return([]*entity.Device{first, second}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/device/details",
		`{"macId":"BFEBFBFF000906EA","motherboardSerial":"MB-001"}`)

	require.NoError(t, h.GetDeviceDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]PublicDeviceResponse](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, entity.AppEmailStorm, body[1].AppName)
}

func TestDeviceHandler_GetDeviceDetails_FromQuery(t *testing.T) {
	h, activationUC := createTestDeviceHandler(t)
	e := newTestEcho()

	activationUC.EXPECT().
		GetDeviceDetails(mock.Anything, entity.DeviceSelector{SystemID: "SYS-1", AppName: entity.AppCubiView}).
		Return(nil, domainerrors.ErrDeviceNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/api/device/details?systemId=SYS-1&appName=Cubi-View", "")

	require.NoError(t, h.GetDeviceDetails(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Device not found", decodeBody[errorBody](t, rec).Message)
}

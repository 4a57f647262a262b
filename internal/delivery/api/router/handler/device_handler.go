package handler

import (
	"log/slog"
	"net/http"

	"activator/internal/delivery/api/response"
	"activator/internal/domain/entity"
	"activator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	ActivationUC usecase.ActivationUsecase
	Logger       *slog.Logger
}

// DeviceHandler serves the public routes installed applications use to identify themselves
type DeviceHandler struct {
	activationUC usecase.ActivationUsecase
	logger       *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		activationUC: params.ActivationUC,
		logger:       params.Logger,
	}
}

// VerifyDevice activates a device located by its identity and activation key
func (h *DeviceHandler) VerifyDevice(c echo.Context) error {
	var req VerifyDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	_, err := h.activationUC.VerifyDevice(c.Request().Context(), &usecase.ActivateInput{
		DeviceLookupInput: req.lookupInput(req.AppName),
		ActivationKey:     req.ActivationKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Device verified successfully")
}

// GetDeviceDetails looks a device up by the identifiers in the body or query string
func (h *DeviceHandler) GetDeviceDetails(c echo.Context) error {
	var req DeviceDetailsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return h.respondWithDetails(c, req.selector(req.AppName))
}

// GetDeviceByMacID looks a device up by the processor ID in the path
func (h *DeviceHandler) GetDeviceByMacID(c echo.Context) error {
	return h.respondWithDetails(c, entity.DeviceSelector{MacID: c.Param("macId")})
}

// respondWithDetails writes a single match as an object and several matches as an array.
func (h *DeviceHandler) respondWithDetails(c echo.Context, selector entity.DeviceSelector) error {
	devices, err := h.activationUC.GetDeviceDetails(c.Request().Context(), selector)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(devices) == 1 {
		return response.Success(c, http.StatusOK, newPublicDeviceResponse(devices[0]))
	}

	result := make([]*PublicDeviceResponse, 0, len(devices))
	for _, device := range devices {
		result = append(result, newPublicDeviceResponse(device))
	}

	return response.Success(c, http.StatusOK, result)
}

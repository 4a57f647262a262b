package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"activator/internal/delivery/api/response"
	deliverycontext "activator/internal/delivery/context"
	"activator/internal/domain/entity"
	"activator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// AdminHandler serves the authenticated device inventory routes
type AdminHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// AddDevice registers a device for the authenticated admin
func (h *AdminHandler) AddDevice(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req AddDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), adminID, &usecase.RegisterDeviceInput{
		SystemID:           req.SystemID,
		MacID:              req.macID(),
		MotherboardSerial:  req.MotherboardSerial,
		Name:               req.Name,
		AppName:            strings.TrimSpace(req.AppName),
		ValidityType:       strings.TrimSpace(req.ValidityType),
		CustomValidityDate: strings.TrimSpace(req.CustomValidityDate),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, DeviceEnvelope{Device: newDeviceResponse(device)})
}

// DeleteDeviceByMacID deletes the admin's devices registered with the processor ID in the path
func (h *AdminHandler) DeleteDeviceByMacID(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	return h.deleteDevices(c, adminID, entity.DeviceSelector{
		MacID:   c.Param("macId"),
		AppName: entity.AppName(strings.TrimSpace(c.QueryParam("appName"))),
	})
}

// DeleteDevices deletes the admin's devices matching the identity in the body
func (h *AdminHandler) DeleteDevices(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req DeleteDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return h.deleteDevices(c, adminID, req.selector(req.AppName))
}

func (h *AdminHandler) deleteDevices(c echo.Context, adminID uuid.UUID, selector entity.DeviceSelector) error {
	deleted, err := h.deviceUC.DeleteDevices(c.Request().Context(), adminID, selector)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Device deleted successfully"
	if deleted > 1 {
		message = fmt.Sprintf("%d devices deleted successfully", deleted)
	}

	return response.Message(c, http.StatusOK, message)
}

// GetDevices lists the admin's devices, optionally filtered
func (h *AdminHandler) GetDevices(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var query ListDevicesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), adminID, entity.DeviceFilter{
		Search:  query.Search,
		Status:  entity.DeviceStatus(strings.TrimSpace(query.Status)),
		AppName: entity.AppName(strings.TrimSpace(query.AppName)),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDeviceResponses(devices))
}

// RenewDevice grants an owned device a new validity period
func (h *AdminHandler) RenewDevice(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req RenewDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.RenewDevice(c.Request().Context(), adminID, &usecase.RenewDeviceInput{
		DeviceID:           deviceID,
		ValidityType:       strings.TrimSpace(req.ValidityType),
		CustomValidityDate: strings.TrimSpace(req.CustomValidityDate),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeviceEnvelope{Device: newDeviceResponse(device)})
}

// GetActivationQR returns the activation QR code of an owned device as a PNG image
func (h *AdminHandler) GetActivationQR(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	png, err := h.deviceUC.GetActivationQR(c.Request().Context(), adminID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetDeviceEvents lists the lifecycle events of an owned device
func (h *AdminHandler) GetDeviceEvents(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	events, err := h.deviceUC.GetDeviceEvents(c.Request().Context(), adminID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDeviceEventResponses(events))
}

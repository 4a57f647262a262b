package handler

import (
	"log/slog"
	"net/http"

	"activator/internal/delivery/api/response"
	"activator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivationHandlerParams holds dependencies for ActivationHandler, injected by Fx.
type ActivationHandlerParams struct {
	fx.In

	ActivationUC usecase.ActivationUsecase
	Logger       *slog.Logger
}

// ActivationHandler serves the activation check and activation routes
type ActivationHandler struct {
	activationUC usecase.ActivationUsecase
	logger       *slog.Logger
}

// NewActivationHandler is the constructor for ActivationHandler
func NewActivationHandler(params ActivationHandlerParams) *ActivationHandler {
	return &ActivationHandler{
		activationUC: params.ActivationUC,
		logger:       params.Logger,
	}
}

// CheckActivation reports the license status of a device
func (h *ActivationHandler) CheckActivation(c echo.Context) error {
	var req CheckActivationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.activationUC.CheckActivation(c.Request().Context(), &usecase.CheckActivationInput{
		DeviceLookupInput: req.lookupInput(req.AppName),
		ActivationKey:     req.ActivationKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CheckActivationResponse{
		Success:          true,
		ActivationStatus: output.Status,
		DeviceActivation: output.Activated,
		ExpirationDate:   output.ExpirationDate,
	})
}

// Activate activates a device with its activation key
func (h *ActivationHandler) Activate(c echo.Context) error {
	var req ActivateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.activationUC.Activate(c.Request().Context(), &usecase.ActivateInput{
		DeviceLookupInput: req.lookupInput(req.AppName),
		ActivationKey:     req.ActivationKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ActivateResponse{
		Success:          true,
		Message:          "Device activated successfully",
		DeviceActivation: output.Device.Activated,
	})
}

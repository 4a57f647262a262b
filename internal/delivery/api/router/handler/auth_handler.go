package handler

import (
	"log/slog"
	"net/http"

	"activator/internal/delivery/api/response"
	"activator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AuthHandler serves admin registration, login and token refresh
type AuthHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// Register creates an admin account
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterAdminRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	admin, err := h.adminUC.Register(c.Request().Context(), &usecase.RegisterAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, AdminEnvelope{Admin: newAdminResponse(admin)})
}

// Login issues a token pair for valid credentials
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.adminUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Admin:        newAdminResponse(output.Admin),
	})
}

// RefreshToken rotates the token pair
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.adminUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

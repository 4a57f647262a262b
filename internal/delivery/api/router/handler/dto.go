package handler

import (
	"strings"
	"time"

	"activator/internal/domain/entity"
	"activator/internal/usecase"

	"github.com/google/uuid"
)

// IdentityRequest carries the identifier fields shared by every device request.
// Older clients send the processor ID as processorId instead of macId.
type IdentityRequest struct {
	MacID             string `json:"macId" query:"macId"`
	ProcessorID       string `json:"processorId" query:"processorId"`
	MotherboardSerial string `json:"motherboardSerial" query:"motherboardSerial"`
	SystemID          string `json:"systemId" query:"systemId"`
}

func (r IdentityRequest) macID() string {
	if macID := strings.TrimSpace(r.MacID); macID != "" {
		return macID
	}

	return strings.TrimSpace(r.ProcessorID)
}

func (r IdentityRequest) lookupInput(appName string) usecase.DeviceLookupInput {
	return usecase.DeviceLookupInput{
		SystemID:          r.SystemID,
		MacID:             r.macID(),
		MotherboardSerial: r.MotherboardSerial,
		AppName:           appName,
	}
}

func (r IdentityRequest) selector(appName string) entity.DeviceSelector {
	return entity.DeviceSelector{
		MacID:             r.macID(),
		MotherboardSerial: strings.TrimSpace(r.MotherboardSerial),
		SystemID:          strings.TrimSpace(r.SystemID),
		AppName:           entity.AppName(strings.TrimSpace(appName)),
	}
}

// AddDeviceRequest represents the request body for registering a device
type AddDeviceRequest struct {
	IdentityRequest
	Name               string `json:"name" validate:"omitempty,max=255"`
	AppName            string `json:"appName" validate:"required"`
	ValidityType       string `json:"validityType" validate:"required"`
	CustomValidityDate string `json:"customValidityDate"`
}

// DeleteDeviceRequest represents the request body for deleting devices by identity
type DeleteDeviceRequest struct {
	IdentityRequest
	AppName string `json:"appName"`
}

// RenewDeviceRequest represents the request body for renewing a device license
type RenewDeviceRequest struct {
	DeviceID           string `json:"deviceId" validate:"required,uuid"`
	ValidityType       string `json:"validityType" validate:"required"`
	CustomValidityDate string `json:"customValidityDate"`
}

// ListDevicesQuery represents the filters of the device listing
type ListDevicesQuery struct {
	Search  string `query:"search"`
	Status  string `query:"status"`
	AppName string `query:"appName"`
}

// VerifyDeviceRequest represents the request body of the device verification
type VerifyDeviceRequest struct {
	IdentityRequest
	ActivationKey string `json:"activationKey" validate:"required"`
	AppName       string `json:"appName"`
}

// DeviceDetailsRequest represents the lookup of a device's public details
type DeviceDetailsRequest struct {
	IdentityRequest
	AppName string `json:"appName" query:"appName"`
}

// CheckActivationRequest represents the request body of the activation status check
type CheckActivationRequest struct {
	IdentityRequest
	ActivationKey string `json:"activationKey"`
	AppName       string `json:"appName" validate:"required"`
}

// ActivateRequest represents the request body of the activation
type ActivateRequest struct {
	IdentityRequest
	ActivationKey string `json:"activationKey" validate:"required"`
	AppName       string `json:"appName" validate:"required"`
}

// RegisterAdminRequest represents the request body for creating an admin account
type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request body for rotating tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// DeviceResponse is the admin view of a device
type DeviceResponse struct {
	ID                uuid.UUID             `json:"id"`
	IdentityScheme    entity.IdentityScheme `json:"identityScheme"`
	MacID             string                `json:"macId,omitempty"`
	MotherboardSerial string                `json:"motherboardSerial,omitempty"`
	SystemID          string                `json:"systemId,omitempty"`
	ActivationKey     string                `json:"activationKey"`
	Name              string                `json:"name,omitempty"`
	AdminID           uuid.UUID             `json:"adminId"`
	DeviceStatus      entity.DeviceStatus   `json:"deviceStatus"`
	DeviceActivation  bool                  `json:"deviceActivation"`
	ActivatedAt       *time.Time            `json:"activatedAt,omitempty"`
	ExpirationDate    time.Time             `json:"expirationDate"`
	AppName           entity.AppName        `json:"appName"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// PublicDeviceResponse is the unauthenticated view of a device, without its key or owner
type PublicDeviceResponse struct {
	ID                uuid.UUID           `json:"id"`
	MacID             string              `json:"macId,omitempty"`
	MotherboardSerial string              `json:"motherboardSerial,omitempty"`
	SystemID          string              `json:"systemId,omitempty"`
	Name              string              `json:"name,omitempty"`
	DeviceStatus      entity.DeviceStatus `json:"deviceStatus"`
	DeviceActivation  bool                `json:"deviceActivation"`
	ExpirationDate    time.Time           `json:"expirationDate"`
	AppName           entity.AppName      `json:"appName"`
}

// DeviceEnvelope wraps a single device the way legacy clients expect
type DeviceEnvelope struct {
	Device *DeviceResponse `json:"device"`
}

// CheckActivationResponse reports the license state of a device
type CheckActivationResponse struct {
	Success          bool                `json:"success"`
	ActivationStatus entity.DeviceStatus `json:"activationStatus"`
	DeviceActivation bool                `json:"deviceActivation"`
	ExpirationDate   time.Time           `json:"expirationDate"`
}

// ActivateResponse reports a successful activation
type ActivateResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	DeviceActivation bool   `json:"deviceActivation"`
}

// AdminResponse is the public view of an admin account
type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminEnvelope wraps a single admin
type AdminEnvelope struct {
	Admin *AdminResponse `json:"admin"`
}

// LoginResponse carries the issued token pair
type LoginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Admin        *AdminResponse `json:"admin"`
}

// TokenResponse carries a rotated token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// DeviceEventResponse is an audit entry of a device
type DeviceEventResponse struct {
	ID           uuid.UUID              `json:"id"`
	Type         entity.DeviceEventType `json:"type"`
	DeviceStatus entity.DeviceStatus    `json:"deviceStatus"`
	RequestID    string                 `json:"requestId,omitempty"`
	OccurredAt   time.Time              `json:"occurredAt"`
}

func newDeviceResponse(device *entity.Device) *DeviceResponse {
	return &DeviceResponse{
		ID:                device.ID,
		IdentityScheme:    device.Scheme,
		MacID:             device.MacID,
		MotherboardSerial: device.MotherboardSerial,
		SystemID:          device.SystemID,
		ActivationKey:     device.ActivationKey,
		Name:              device.Name,
		AdminID:           device.AdminID,
		DeviceStatus:      device.Status,
		DeviceActivation:  device.Activated,
		ActivatedAt:       device.ActivatedAt,
		ExpirationDate:    device.ExpirationDate,
		AppName:           device.AppName,
		CreatedAt:         device.CreatedAt,
		UpdatedAt:         device.UpdatedAt,
	}
}

func newDeviceResponses(devices []*entity.Device) []*DeviceResponse {
	result := make([]*DeviceResponse, 0, len(devices))
	for _, device := range devices {
		result = append(result, newDeviceResponse(device))
	}

	return result
}

func newPublicDeviceResponse(device *entity.Device) *PublicDeviceResponse {
	return &PublicDeviceResponse{
		ID:                device.ID,
		MacID:             device.MacID,
		MotherboardSerial: device.MotherboardSerial,
		SystemID:          device.SystemID,
		Name:              device.Name,
		DeviceStatus:      device.Status,
		DeviceActivation:  device.Activated,
		ExpirationDate:    device.ExpirationDate,
		AppName:           device.AppName,
	}
}

func newAdminResponse(admin *entity.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		CreatedAt: admin.CreatedAt,
	}
}

func newDeviceEventResponses(events []*entity.DeviceEvent) []*DeviceEventResponse {
	result := make([]*DeviceEventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, &DeviceEventResponse{
			ID:           event.ID,
			Type:         event.Type,
			DeviceStatus: event.Status,
			RequestID:    event.RequestID,
			OccurredAt:   event.OccurredAt,
		})
	}

	return result
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"activator/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data an admin supplies to register a device.
type RegisterDeviceInput struct {
	SystemID           string
	MacID              string
	MotherboardSerial  string
	Name               string
	AppName            string
	ValidityType       string
	CustomValidityDate string
}

// RenewDeviceInput defines a new validity period for an existing device.
type RenewDeviceInput struct {
	DeviceID           uuid.UUID
	ValidityType       string
	CustomValidityDate string
}

// DeviceUsecase defines the admin-side device inventory operations.
type DeviceUsecase interface {
	// RegisterDevice creates a device with a freshly generated activation key.
	RegisterDevice(ctx context.Context, adminID uuid.UUID, input *RegisterDeviceInput) (*entity.Device, error)

	// ListDevices enforces expiration on the admin's devices and returns those matching filter.
	ListDevices(ctx context.Context, adminID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error)

	// DeleteDevices removes the admin's devices matching selector and reports how many were removed.
	DeleteDevices(ctx context.Context, adminID uuid.UUID, selector entity.DeviceSelector) (int, error)

	// RenewDevice grants a new validity period and reactivates the device's license.
	RenewDevice(ctx context.Context, adminID uuid.UUID, input *RenewDeviceInput) (*entity.Device, error)

	// GetActivationQR renders the activation QR code of an owned device.
	GetActivationQR(ctx context.Context, adminID, deviceID uuid.UUID) ([]byte, error)

	// GetDeviceEvents lists the lifecycle events of an owned device.
	GetDeviceEvents(ctx context.Context, adminID, deviceID uuid.UUID) ([]*entity.DeviceEvent, error)
}

package usecase

import (
	"context"
	"time"

	"activator/internal/domain/entity"
)

// DeviceLookupInput identifies a device from the client side.
type DeviceLookupInput struct {
	SystemID          string
	MacID             string
	MotherboardSerial string
	AppName           string
}

// CheckActivationInput asks for the activation state of a device.
type CheckActivationInput struct {
	DeviceLookupInput
	ActivationKey string // Optional; when set it must match the stored key.
}

// CheckActivationOutput reports the activation state of a device.
type CheckActivationOutput struct {
	Status         entity.DeviceStatus
	Activated      bool
	ExpirationDate time.Time
}

// ActivateInput carries the key a client presents to activate itself.
type ActivateInput struct {
	DeviceLookupInput
	ActivationKey string
}

// ActivateOutput reports a successful activation.
type ActivateOutput struct {
	Device *entity.Device
}

// ActivationUsecase defines the operations installed client applications call.
type ActivationUsecase interface {
	// GetDeviceDetails returns every device matching the supplied identifiers.
	GetDeviceDetails(ctx context.Context, selector entity.DeviceSelector) ([]*entity.Device, error)

	// CheckActivation enforces expiration and returns the current status.
	CheckActivation(ctx context.Context, input *CheckActivationInput) (*CheckActivationOutput, error)

	// Activate marks the device as activated when it is active and the key matches.
	Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)

	// VerifyDevice activates a device located by identity and key; the application is optional.
	VerifyDevice(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"activator/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the identity is already registered for the application.
	ErrDuplicateDevice = errors.New("device already exists")
	// ErrDuplicateActivationKey is returned when the activation key is already taken.
	ErrDuplicateActivationKey = errors.New("activation key already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevice retrieves the device registered with identity for app.
	FindDevice(ctx context.Context, identity entity.Identity, app entity.AppName) (*entity.Device, error)

	// FindDevices retrieves every device matching the selector, regardless of owner.
	FindDevices(ctx context.Context, selector entity.DeviceSelector) ([]*entity.Device, error)

	// FindDevicesByAdmin retrieves the devices owned by an admin, newest first.
	FindDevicesByAdmin(ctx context.Context, adminID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error)

	// UpdateDeviceState persists status, activation and expiration fields of a device.
	UpdateDeviceState(ctx context.Context, device *entity.Device) error

	// ExpireDevices marks every active device of the admin expiring before cutoff as inactive.
	ExpireDevices(ctx context.Context, adminID uuid.UUID, cutoff time.Time) ([]*entity.Device, error)

	// DeleteDevices removes the admin's devices matching the selector and returns them.
	DeleteDevices(ctx context.Context, adminID uuid.UUID, selector entity.DeviceSelector) ([]*entity.Device, error)
}

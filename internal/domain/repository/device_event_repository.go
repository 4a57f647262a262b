package repository

import (
	"context"

	"activator/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceEventRepository stores the device lifecycle audit trail.
type DeviceEventRepository interface {
	// SaveEvent stores an event; saving an event ID twice is a no-op.
	SaveEvent(ctx context.Context, event *entity.DeviceEvent) error

	// FindEventsByDevice retrieves the events of a device, newest first.
	FindEventsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceEvent, error)
}

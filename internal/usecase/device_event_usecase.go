package usecase

import (
	"context"

	"activator/internal/domain/entity"
)

// DeviceEventUsecase consumes device lifecycle events delivered by the message queue.
type DeviceEventUsecase interface {
	// RecordEvent validates and stores an event in the audit trail.
	RecordEvent(ctx context.Context, event *entity.DeviceEvent) error
}

package service

import (
	"context"

	"activator/internal/domain/entity"
)

// EventPublisher defines the interface for publishing device lifecycle events to a message queue
type EventPublisher interface {
	// PublishDeviceEvent publishes a device event for asynchronous processing
	PublishDeviceEvent(ctx context.Context, event *entity.DeviceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

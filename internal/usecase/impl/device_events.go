package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "activator/internal/delivery/context"
	"activator/internal/domain/entity"
	"activator/internal/domain/service"
)

// eventEmitter publishes device lifecycle events without failing the calling operation.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, logger: logger}
}

func (e *eventEmitter) emit(ctx context.Context, eventType entity.DeviceEventType, device *entity.Device, at time.Time) {
	if e.publisher == nil {
		return
	}

	event := entity.NewDeviceEvent(eventType, device, deliverycontext.GetRequestIDFromContext(ctx), at)
	if err := e.publisher.PublishDeviceEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish device event",
			slog.String("event_type", string(eventType)),
			slog.String("device_id", device.ID.String()),
			slog.Any("error", err),
		)
	}
}

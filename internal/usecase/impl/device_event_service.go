package impl

import (
	"context"
	"log/slog"

	deliverycontext "activator/internal/delivery/context"
	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	"activator/internal/domain/repository"
	"activator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceEventService implements the DeviceEventUsecase interface.
type deviceEventService struct {
	eventRepo repository.DeviceEventRepository
	logger    *slog.Logger
}

// NewDeviceEventService creates a new device event service.
func NewDeviceEventService(eventRepo repository.DeviceEventRepository, logger *slog.Logger) usecase.DeviceEventUsecase {
	return &deviceEventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// RecordEvent stores a delivered event; redeliveries of the same event are absorbed by the repository.
func (srv *deviceEventService) RecordEvent(ctx context.Context, event *entity.DeviceEvent) error {
	if event == nil || event.ID == uuid.Nil || event.DeviceID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("event id and device id are required")
	}
	if !event.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type " + string(event.Type))
	}

	if err := srv.eventRepo.SaveEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to save device event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Device event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.String("device_id", event.DeviceID.String()),
	)

	return nil
}

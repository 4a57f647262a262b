package impl

import (
	"context"
	"testing"

	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	mockRepo "activator/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceEventService_RecordEvent(t *testing.T) {
	device := &entity.Device{ID: uuid.New(), AdminID: uuid.New(), AppName: entity.AppEmailStorm}

	t.Run("stores a valid event", func(t *testing.T) {
		eventRepo := mockRepo.NewMockDeviceEventRepository(t)
		service := NewDeviceEventService(eventRepo, newDiscardLogger())
		ctx := context.Background()
		event := entity.NewDeviceEvent(entity.DeviceEventActivated, device, "req-1", testNow)

		eventRepo.EXPECT().SaveEvent(ctx, event).Return(nil)

		require.NoError(t, service.RecordEvent(ctx, event))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		eventRepo := mockRepo.NewMockDeviceEventRepository(t)
		service := NewDeviceEventService(eventRepo, newDiscardLogger())
		event := entity.NewDeviceEvent("suspended", device, "", testNow)

		err := service.RecordEvent(context.Background(), event)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects events without ids", func(t *testing.T) {
		eventRepo := mockRepo.NewMockDeviceEventRepository(t)
		service := NewDeviceEventService(eventRepo, newDiscardLogger())

		err := service.RecordEvent(context.Background(), &entity.DeviceEvent{Type: entity.DeviceEventExpired})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		eventRepo := mockRepo.NewMockDeviceEventRepository(t)
		service := NewDeviceEventService(eventRepo, newDiscardLogger())
		ctx := context.Background()
		event := entity.NewDeviceEvent(entity.DeviceEventDeleted, device, "", testNow)

		eventRepo.EXPECT().SaveEvent(ctx, event).Return(errors.New("db down"))

		err := service.RecordEvent(ctx, event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

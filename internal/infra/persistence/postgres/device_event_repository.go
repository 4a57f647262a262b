package postgres

import (
	"context"

	"activator/internal/domain/entity"
	"activator/internal/domain/repository"
	"activator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceEventRepository implements the repository.DeviceEventRepository interface.
type deviceEventRepository struct {
	db *gorm.DB
}

// NewDeviceEventRepository is the constructor for deviceEventRepository.
func NewDeviceEventRepository(db *gorm.DB) repository.DeviceEventRepository {
	return &deviceEventRepository{
		db: db,
	}
}

// SaveEvent stores an event. Push redeliveries carry the same event ID and are ignored.
func (repo *deviceEventRepository) SaveEvent(ctx context.Context, event *entity.DeviceEvent) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(fromDeviceEventDomain(event)).Error; err != nil {
		return errors.Wrap(err, "failed to save device event")
	}

	return nil
}

// FindEventsByDevice retrieves the most recent events of a device.
func (repo *deviceEventRepository) FindEventsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceEvent, error) {
	var eventModels []*model.DeviceEventModel

	query := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device events")
	}

	events := make([]*entity.DeviceEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toDeviceEventDomain(eventM))
	}

	return events, nil
}

func toDeviceEventDomain(data *model.DeviceEventModel) *entity.DeviceEvent {
	return &entity.DeviceEvent{
		ID:          data.ID,
		Type:        entity.DeviceEventType(data.Type),
		DeviceID:    data.DeviceID,
		AdminID:     data.AdminID,
		AppName:     entity.AppName(data.AppName),
		IdentityKey: data.IdentityKey,
		Status:      entity.DeviceStatus(data.Status),
		RequestID:   data.RequestID,
		OccurredAt:  data.OccurredAt,
	}
}

func fromDeviceEventDomain(data *entity.DeviceEvent) *model.DeviceEventModel {
	return &model.DeviceEventModel{
		ID:          data.ID,
		Type:        string(data.Type),
		DeviceID:    data.DeviceID,
		AdminID:     data.AdminID,
		AppName:     string(data.AppName),
		IdentityKey: data.IdentityKey,
		Status:      string(data.Status),
		RequestID:   data.RequestID,
		OccurredAt:  data.OccurredAt,
	}
}

package postgres

import (
	"context"
	"strings"
	"time"

	"activator/internal/domain/entity"
	"activator/internal/domain/repository"
	"activator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper escapes the LIKE wildcards of a user supplied search term.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == constraintDeviceActivation {
				return repository.ErrDuplicateActivationKey
			}

			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevice retrieves the device registered with the identity for the application.
func (repo *deviceRepository) FindDevice(ctx context.Context, identity entity.Identity, app entity.AppName) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("identity_key = ? AND app_name = ?", identity.Key(), string(app)).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by identity")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevices retrieves every device matching the selector, oldest registration first.
func (repo *deviceRepository) FindDevices(ctx context.Context, selector entity.DeviceSelector) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := applySelector(repo.db.WithContext(ctx), selector).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindDevicesByAdmin retrieves the admin's devices, newest first.
func (repo *deviceRepository) FindDevicesByAdmin(ctx context.Context, adminID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	query := repo.db.WithContext(ctx).Where("admin_id = ?", adminID)
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		query = query.Where(
			"(mac_id ILIKE ? OR motherboard_serial ILIKE ? OR system_id ILIKE ? OR name ILIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.AppName != "" {
		query = query.Where("app_name = ?", string(filter.AppName))
	}

	if err := query.Order("created_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by admin")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateDeviceState persists the status, activation and expiration fields of a device.
func (repo *deviceRepository) UpdateDeviceState(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"status":          string(device.Status),
			"activated":       device.Activated,
			"activated_at":    device.ActivatedAt,
			"expiration_date": device.ExpirationDate,
			"updated_at":      device.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ExpireDevices flips the admin's active devices that expired before cutoff and returns them.
func (repo *deviceRepository) ExpireDevices(ctx context.Context, adminID uuid.UUID, cutoff time.Time) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Model(&deviceModels).
		Clauses(clause.Returning{}).
		Where("admin_id = ? AND status = ? AND expiration_date < ?", adminID, string(entity.DeviceStatusActive), cutoff).
		Updates(map[string]any{
			"status": string(entity.DeviceStatusInactive),
		}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to expire devices")
	}

	return toDeviceDomains(deviceModels), nil
}

// DeleteDevices removes the admin's devices matching the selector and returns the removed rows.
func (repo *deviceRepository) DeleteDevices(ctx context.Context, adminID uuid.UUID, selector entity.DeviceSelector) ([]*entity.Device, error) {
	if selector.IsEmpty() {
		return nil, nil
	}

	var deviceModels []*model.DeviceModel

	if err := applySelector(repo.db.WithContext(ctx), selector).
		Clauses(clause.Returning{}).
		Where("admin_id = ?", adminID).
		Delete(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete devices")
	}

	return toDeviceDomains(deviceModels), nil
}

// applySelector constrains the query by every identifier the selector sets.
func applySelector(db *gorm.DB, selector entity.DeviceSelector) *gorm.DB {
	if selector.MacID != "" {
		db = db.Where("mac_id = ?", selector.MacID)
	}
	if selector.MotherboardSerial != "" {
		db = db.Where("motherboard_serial = ?", selector.MotherboardSerial)
	}
	if selector.SystemID != "" {
		db = db.Where("system_id = ?", selector.SystemID)
	}
	if selector.AppName != "" {
		db = db.Where("app_name = ?", string(selector.AppName))
	}

	return db
}

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID: data.ID,
		Identity: entity.Identity{
			Scheme:            entity.IdentityScheme(data.IdentityScheme),
			MacID:             data.MacID,
			MotherboardSerial: data.MotherboardSerial,
			SystemID:          data.SystemID,
		},
		ActivationKey:  data.ActivationKey,
		Name:           data.Name,
		AdminID:        data.AdminID,
		Status:         entity.DeviceStatus(data.Status),
		Activated:      data.Activated,
		ActivatedAt:    data.ActivatedAt,
		ExpirationDate: data.ExpirationDate.UTC(),
		AppName:        entity.AppName(data.AppName),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toDeviceDomains(models []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                data.ID,
		IdentityScheme:    string(data.Identity.Scheme),
		IdentityKey:       data.Identity.Key(),
		MacID:             data.MacID,
		MotherboardSerial: data.MotherboardSerial,
		SystemID:          data.SystemID,
		ActivationKey:     data.ActivationKey,
		Name:              data.Name,
		AdminID:           data.AdminID,
		Status:            string(data.Status),
		Activated:         data.Activated,
		ActivatedAt:       data.ActivatedAt,
		ExpirationDate:    data.ExpirationDate,
		AppName:           string(data.AppName),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

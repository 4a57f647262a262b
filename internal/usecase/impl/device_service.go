// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"activator/config"
	deliverycontext "activator/internal/delivery/context"
	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	"activator/internal/domain/repository"
	"activator/internal/domain/service"
	"activator/internal/usecase"
	"activator/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const deviceEventsLimit = 100

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	eventRepo  repository.DeviceEventRepository
	keyGen     service.KeyGenerator
	qrCodeSvc  service.QRCodeService
	metrics    service.ActivationMetrics
	clock      service.Clock
	events     *eventEmitter
	policy     expirationPolicy
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DeviceRepo     repository.DeviceRepository
	EventRepo      repository.DeviceEventRepository
	KeyGenerator   service.KeyGenerator
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Metrics        service.ActivationMetrics
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDeviceService creates a new device service.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	fixedTermMonths := 0
	if params.Config != nil && params.Config.License != nil {
		fixedTermMonths = params.Config.License.FixedTermMonths
	}

	return &deviceService{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		eventRepo:  params.EventRepo,
		keyGen:     params.KeyGenerator,
		qrCodeSvc:  params.QRCodeService,
		metrics:    params.Metrics,
		clock:      params.Clock,
		events:     newEventEmitter(params.EventPublisher, params.Logger),
		policy:     newExpirationPolicy(fixedTermMonths),
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice validates the request, generates the activation key and stores the device.
func (srv *deviceService) RegisterDevice(ctx context.Context, adminID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	identity, err := entity.NewIdentity(input.SystemID, input.MacID, input.MotherboardSerial)
	if err != nil {
		return nil, domainerrors.ErrInvalidIdentity.WithDetails(err.Error())
	}

	app := entity.AppName(input.AppName)
	if !app.IsValid() {
		return nil, domainerrors.ErrInvalidAppName
	}

	validity := entity.ValidityType(input.ValidityType)
	if !validity.IsValid() {
		return nil, domainerrors.ErrInvalidValidityType
	}

	now := srv.clock.Now()
	expiration, err := srv.policy.expirationFor(validity, input.CustomValidityDate, now)
	if err != nil {
		return nil, err
	}

	activationKey, err := srv.keyGen.Generate(app, identity)
	if err != nil || activationKey == "" {
		srv.log(ctx).Error("Failed to generate activation key",
			slog.String("app_name", app.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrKeyGenerationFailed
	}

	device := &entity.Device{
		ID:             uuid.New(),
		Identity:       identity,
		ActivationKey:  activationKey,
		Name:           strings.TrimSpace(input.Name),
		AdminID:        adminID,
		Status:         entity.DeviceStatusActive,
		Activated:      false,
		ExpirationDate: expiration,
		AppName:        app,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		existing, findErr := deviceRepo.FindDevice(ctx, identity, app)
		if findErr != nil && !errors.Is(findErr, repository.ErrDeviceNotFound) {
			return errors.Wrap(findErr, "failed to check existing device")
		}
		if existing != nil {
			return repository.ErrDuplicateDevice
		}

		return deviceRepo.CreateDevice(ctx, device)
	})
	if err != nil {
		return nil, srv.mapRegisterError(ctx, err, identity, app)
	}

	srv.log(ctx).Info("Device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("admin_id", adminID.String()),
		slog.String("app_name", app.String()),
	)
	srv.metrics.DeviceRegistered(app)
	srv.events.emit(ctx, entity.DeviceEventRegistered, device, now)

	return device, nil
}

func (srv *deviceService) mapRegisterError(ctx context.Context, err error, identity entity.Identity, app entity.AppName) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateDevice):
		return domainerrors.ErrDuplicateDevice.WithMessage(
			fmt.Sprintf("Device with %s and App '%s' already exists.", identity, app),
		)
	case errors.Is(err, repository.ErrDuplicateActivationKey):
		return domainerrors.ErrDuplicateActivationKey
	default:
		srv.log(ctx).Error("Failed to register device", slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "register device")
	}
}

// ListDevices flips the admin's overdue devices to inactive, then returns the filtered inventory.
func (srv *deviceService) ListDevices(ctx context.Context, adminID uuid.UUID, filter entity.DeviceFilter) ([]*entity.Device, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be 'active' or 'inactive'")
	}
	if filter.AppName != "" && !filter.AppName.IsValid() {
		return nil, domainerrors.ErrInvalidAppName
	}
	filter.Search = strings.TrimSpace(filter.Search)

	now := srv.clock.Now()
	expired, err := srv.deviceRepo.ExpireDevices(ctx, adminID, util.StartOfDay(now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to expire devices")
	}
	for _, device := range expired {
		srv.metrics.DeviceExpired(device.AppName)
		srv.events.emit(ctx, entity.DeviceEventExpired, device, now)
	}
	if len(expired) > 0 {
		srv.log(ctx).Info("Expired overdue devices",
			slog.String("admin_id", adminID.String()),
			slog.Int("count", len(expired)),
		)
	}

	devices, err := srv.deviceRepo.FindDevicesByAdmin(ctx, adminID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// DeleteDevices removes every device of the admin that matches the selector.
func (srv *deviceService) DeleteDevices(ctx context.Context, adminID uuid.UUID, selector entity.DeviceSelector) (int, error) {
	selector.MacID = strings.TrimSpace(selector.MacID)
	selector.MotherboardSerial = strings.TrimSpace(selector.MotherboardSerial)
	selector.SystemID = strings.TrimSpace(selector.SystemID)
	if selector.IsEmpty() {
		return 0, domainerrors.ErrInvalidIdentity
	}
	if selector.AppName != "" && !selector.AppName.IsValid() {
		return 0, domainerrors.ErrInvalidAppName
	}

	deleted, err := srv.deviceRepo.DeleteDevices(ctx, adminID, selector)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete devices")
	}
	if len(deleted) == 0 {
		return 0, domainerrors.ErrDeviceNotFound
	}

	now := srv.clock.Now()
	for _, device := range deleted {
		srv.metrics.DeviceDeleted(device.AppName)
		srv.events.emit(ctx, entity.DeviceEventDeleted, device, now)
	}

	srv.log(ctx).Info("Devices deleted",
		slog.String("admin_id", adminID.String()),
		slog.Int("count", len(deleted)),
	)

	return len(deleted), nil
}

// RenewDevice recomputes the expiration date and restores the license to active.
func (srv *deviceService) RenewDevice(ctx context.Context, adminID uuid.UUID, input *usecase.RenewDeviceInput) (*entity.Device, error) {
	validity := entity.ValidityType(input.ValidityType)
	if !validity.IsValid() {
		return nil, domainerrors.ErrInvalidValidityType
	}

	device, err := srv.findOwnedDevice(ctx, adminID, input.DeviceID)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	expiration, err := srv.policy.expirationFor(validity, input.CustomValidityDate, now)
	if err != nil {
		return nil, err
	}

	device.ExpirationDate = expiration
	device.Status = entity.DeviceStatusActive
	device.UpdatedAt = now

	if err := srv.deviceRepo.UpdateDeviceState(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to renew device")
	}

	srv.log(ctx).Info("Device renewed",
		slog.String("device_id", device.ID.String()),
		slog.Time("expiration_date", expiration),
	)
	srv.events.emit(ctx, entity.DeviceEventRenewed, device, now)

	return device, nil
}

// GetActivationQR renders the activation QR code of an owned device.
func (srv *deviceService) GetActivationQR(ctx context.Context, adminID, deviceID uuid.UUID) ([]byte, error) {
	device, err := srv.findOwnedDevice(ctx, adminID, deviceID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeSvc.GenerateActivationQR(device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate activation QR code")
	}

	return png, nil
}

// GetDeviceEvents lists the most recent lifecycle events of an owned device.
func (srv *deviceService) GetDeviceEvents(ctx context.Context, adminID, deviceID uuid.UUID) ([]*entity.DeviceEvent, error) {
	if _, err := srv.findOwnedDevice(ctx, adminID, deviceID); err != nil {
		return nil, err
	}

	events, err := srv.eventRepo.FindEventsByDevice(ctx, deviceID, deviceEventsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device events")
	}

	return events, nil
}

// findOwnedDevice hides devices of other admins behind the not-found error.
func (srv *deviceService) findOwnedDevice(ctx context.Context, adminID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}
	if device.AdminID != adminID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}

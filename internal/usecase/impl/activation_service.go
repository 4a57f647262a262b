package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	deliverycontext "activator/internal/delivery/context"
	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	"activator/internal/domain/repository"
	"activator/internal/domain/service"
	"activator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activationService implements the ActivationUsecase interface.
type activationService struct {
	deviceRepo repository.DeviceRepository
	metrics    service.ActivationMetrics
	clock      service.Clock
	events     *eventEmitter
	logger     *slog.Logger
}

// ActivationServiceParams holds dependencies for ActivationService, injected by Fx.
type ActivationServiceParams struct {
	fx.In

	DeviceRepo     repository.DeviceRepository
	EventPublisher service.EventPublisher
	Metrics        service.ActivationMetrics
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewActivationService creates a new activation service.
func NewActivationService(params ActivationServiceParams) usecase.ActivationUsecase {
	return &activationService{
		deviceRepo: params.DeviceRepo,
		metrics:    params.Metrics,
		clock:      params.Clock,
		events:     newEventEmitter(params.EventPublisher, params.Logger),
		logger:     params.Logger,
	}
}

func (srv *activationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDeviceDetails returns the devices matching the selector with expiration enforced.
func (srv *activationService) GetDeviceDetails(ctx context.Context, selector entity.DeviceSelector) ([]*entity.Device, error) {
	selector.MacID = strings.TrimSpace(selector.MacID)
	selector.MotherboardSerial = strings.TrimSpace(selector.MotherboardSerial)
	selector.SystemID = strings.TrimSpace(selector.SystemID)
	if selector.IsEmpty() {
		return nil, domainerrors.ErrInvalidIdentity
	}
	if selector.AppName != "" && !selector.AppName.IsValid() {
		return nil, domainerrors.ErrInvalidAppName
	}

	devices, err := srv.deviceRepo.FindDevices(ctx, selector)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}
	if len(devices) == 0 {
		return nil, domainerrors.ErrDeviceNotFound
	}

	now := srv.clock.Now()
	for _, device := range devices {
		if err := srv.enforceExpiration(ctx, device, now); err != nil {
			return nil, err
		}
	}

	return devices, nil
}

// CheckActivation reports the device's status after enforcing expiration.
func (srv *activationService) CheckActivation(ctx context.Context, input *usecase.CheckActivationInput) (*usecase.CheckActivationOutput, error) {
	app := entity.AppName(input.AppName)

	device, err := srv.lookupDevice(ctx, &input.DeviceLookupInput)
	if err != nil {
		srv.metrics.ActivationChecked(app, outcomeOf(err))

		return nil, err
	}

	// A supplied key takes part in the lookup.
	if input.ActivationKey != "" && !keysEqual(input.ActivationKey, device.ActivationKey) {
		srv.metrics.ActivationChecked(app, service.OutcomeNotFound)

		return nil, domainerrors.ErrDeviceNotFound
	}

	if err := srv.enforceExpiration(ctx, device, srv.clock.Now()); err != nil {
		srv.metrics.ActivationChecked(app, service.OutcomeError)

		return nil, err
	}

	outcome := service.OutcomeSuccess
	if device.Status == entity.DeviceStatusInactive {
		outcome = service.OutcomeInactive
	}
	srv.metrics.ActivationChecked(app, outcome)

	return &usecase.CheckActivationOutput{
		Status:         device.Status,
		Activated:      device.Activated,
		ExpirationDate: device.ExpirationDate,
	}, nil
}

// Activate marks the device activated when its license is active and the key matches.
func (srv *activationService) Activate(ctx context.Context, input *usecase.ActivateInput) (*usecase.ActivateOutput, error) {
	app := entity.AppName(input.AppName)

	if strings.TrimSpace(input.ActivationKey) == "" {
		srv.metrics.ActivationAttempted(app, service.OutcomeInvalidKey)

		return nil, domainerrors.ErrValidationFailed.WithMessage("Activation key is required")
	}

	device, err := srv.lookupDevice(ctx, &input.DeviceLookupInput)
	if err != nil {
		srv.metrics.ActivationAttempted(app, outcomeOf(err))

		return nil, err
	}

	if err := srv.activate(ctx, device, input.ActivationKey); err != nil {
		srv.metrics.ActivationAttempted(app, outcomeOf(err))

		return nil, err
	}
	srv.metrics.ActivationAttempted(app, service.OutcomeSuccess)

	return &usecase.ActivateOutput{Device: device}, nil
}

// VerifyDevice locates the device by identity and key and applies the activation rules.
// When no application is given the key selects among the identity's registrations.
func (srv *activationService) VerifyDevice(ctx context.Context, input *usecase.ActivateInput) (*usecase.ActivateOutput, error) {
	app := entity.AppName(input.AppName)

	device, err := srv.findVerifiableDevice(ctx, input)
	if err != nil {
		srv.metrics.ActivationAttempted(app, outcomeOf(err))

		return nil, err
	}

	if err := srv.activate(ctx, device, input.ActivationKey); err != nil {
		srv.metrics.ActivationAttempted(device.AppName, outcomeOf(err))

		return nil, err
	}
	srv.metrics.ActivationAttempted(device.AppName, service.OutcomeSuccess)

	return &usecase.ActivateOutput{Device: device}, nil
}

func (srv *activationService) findVerifiableDevice(ctx context.Context, input *usecase.ActivateInput) (*entity.Device, error) {
	identity, err := entity.NewIdentity(input.SystemID, input.MacID, input.MotherboardSerial)
	if err != nil || strings.TrimSpace(input.ActivationKey) == "" {
		return nil, domainerrors.ErrInvalidDeviceOrKey
	}

	var candidates []*entity.Device
	if input.AppName != "" {
		device, findErr := srv.deviceRepo.FindDevice(ctx, identity, entity.AppName(input.AppName))
		if findErr != nil && !errors.Is(findErr, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(findErr, "failed to find device")
		}
		if device != nil {
			candidates = append(candidates, device)
		}
	} else {
		candidates, err = srv.deviceRepo.FindDevices(ctx, entity.DeviceSelector{
			MacID:             identity.MacID,
			MotherboardSerial: identity.MotherboardSerial,
			SystemID:          identity.SystemID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to find devices")
		}
	}

	for _, device := range candidates {
		if keysEqual(input.ActivationKey, device.ActivationKey) {
			return device, nil
		}
	}

	return nil, domainerrors.ErrInvalidDeviceOrKey
}

// activate applies the activation rules to a located device.
func (srv *activationService) activate(ctx context.Context, device *entity.Device, activationKey string) error {
	now := srv.clock.Now()
	if err := srv.enforceExpiration(ctx, device, now); err != nil {
		return err
	}

	if device.Status == entity.DeviceStatusInactive {
		return domainerrors.ErrDeviceInactive
	}

	if !keysEqual(activationKey, device.ActivationKey) {
		return domainerrors.ErrInvalidActivationKey
	}

	device.Activated = true
	device.Status = entity.DeviceStatusActive
	device.ActivatedAt = &now
	device.UpdatedAt = now

	if err := srv.deviceRepo.UpdateDeviceState(ctx, device); err != nil {
		return errors.Wrap(err, "failed to activate device")
	}

	srv.log(ctx).Info("Device activated",
		slog.String("device_id", device.ID.String()),
		slog.String("app_name", device.AppName.String()),
	)
	srv.events.emit(ctx, entity.DeviceEventActivated, device, now)

	return nil
}

func (srv *activationService) lookupDevice(ctx context.Context, input *usecase.DeviceLookupInput) (*entity.Device, error) {
	identity, err := entity.NewIdentity(input.SystemID, input.MacID, input.MotherboardSerial)
	if err != nil {
		return nil, domainerrors.ErrInvalidIdentity.WithDetails(err.Error())
	}

	app := entity.AppName(input.AppName)
	if !app.IsValid() {
		return nil, domainerrors.ErrInvalidAppName
	}

	device, err := srv.deviceRepo.FindDevice(ctx, identity, app)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// enforceExpiration persists the flip to inactive when the device is overdue.
func (srv *activationService) enforceExpiration(ctx context.Context, device *entity.Device, now time.Time) error {
	if !device.EnforceExpiration(now) {
		return nil
	}

	device.UpdatedAt = now
	if err := srv.deviceRepo.UpdateDeviceState(ctx, device); err != nil {
		return errors.Wrap(err, "failed to persist expiration")
	}

	srv.log(ctx).Info("Device license expired",
		slog.String("device_id", device.ID.String()),
		slog.Time("expiration_date", device.ExpirationDate),
	)
	srv.metrics.DeviceExpired(device.AppName)
	srv.events.emit(ctx, entity.DeviceEventExpired, device, now)

	return nil
}

func keysEqual(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}

// outcomeOf maps an activation error to its metrics label.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrDeviceNotFound):
		return service.OutcomeNotFound
	case errors.Is(err, domainerrors.ErrDeviceInactive):
		return service.OutcomeInactive
	case errors.Is(err, domainerrors.ErrInvalidActivationKey), errors.Is(err, domainerrors.ErrInvalidDeviceOrKey):
		return service.OutcomeInvalidKey
	default:
		return service.OutcomeError
	}
}

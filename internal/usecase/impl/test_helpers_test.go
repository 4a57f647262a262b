package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"activator/config"
	"activator/internal/domain/entity"
	mockSvc "activator/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(fixedTermMonths int) *config.Config {
	return &config.Config{
		License: &config.LicenseConfig{
			FixedTermMonths: fixedTermMonths,
		},
	}
}

// eventRecorder collects the events handed to a mock publisher.
type eventRecorder struct {
	mu     sync.Mutex
	events []*entity.DeviceEvent
}

func (r *eventRecorder) types() []entity.DeviceEventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]entity.DeviceEventType, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}

	return types
}

func (r *eventRecorder) all() []*entity.DeviceEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.DeviceEvent(nil), r.events...)
}

func newRecordingPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) (*mockSvc.MockEventPublisher, *eventRecorder) {
	recorder := &eventRecorder{}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *entity.DeviceEvent) error {
			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			recorder.events = append(recorder.events, event)

			return nil
		}).
		Maybe()

	return publisher, recorder
}

func newPermissiveMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockSvc.MockActivationMetrics {
	metrics := mockSvc.NewMockActivationMetrics(t)
	metrics.EXPECT().DeviceRegistered(mock.Anything).Maybe()
	metrics.EXPECT().DeviceDeleted(mock.Anything).Maybe()
	metrics.EXPECT().DeviceExpired(mock.Anything).Maybe()
	metrics.EXPECT().ActivationChecked(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().ActivationAttempted(mock.Anything, mock.Anything).Maybe()

	return metrics
}

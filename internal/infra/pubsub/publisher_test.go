package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"activator/config"
	"activator/internal/domain/constants"
	"activator/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent(requestID string) *entity.DeviceEvent {
	device := &entity.Device{
		ID:      uuid.New(),
		AdminID: uuid.New(),
		Identity: entity.Identity{
			Scheme:   entity.IdentitySchemeSystem,
			SystemID: "SYS-1",
		},
		Status:  entity.DeviceStatusActive,
		AppName: entity.AppCubiView,
	}

	return entity.NewDeviceEvent(entity.DeviceEventActivated, device, requestID, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	event := newTestEvent("req-7")

	var received PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishDeviceEvent(context.Background(), event))

	assert.Equal(t, "req-7", requestIDHeader)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, event.DeviceID.String(), received.Message.OrderingKey)
	assert.Equal(t, string(entity.DeviceEventActivated), received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "req-7", received.Message.Attributes[constants.AttrRequestID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded entity.DeviceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.DeviceID, decoded.DeviceID)
	assert.Equal(t, "sys:SYS-1", decoded.IdentityKey)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishDeviceEvent(context.Background(), newTestEvent(""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attributes := eventAttributes(newTestEvent(""))

	_, ok := attributes[constants.AttrRequestID]
	assert.False(t, ok)
	assert.NotEmpty(t, attributes[constants.AttrDeviceID])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		wantNop bool
	}{
		{
			name:    "unconfigured falls back to no-op",
			wantNop: true,
		},
		{
			name: "local provider",
			cfg: &config.PubSubConfig{
				Provider:      constants.PubSubProviderLocal,
				LocalEndpoint: "http://localhost:5001/push",
			},
		},
		{
			name:    "local provider without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google provider without project",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "device-events"},
			wantErr: "project ID is required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)

			_, isNop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNop, isNop)
			if isNop {
				assert.NoError(t, publisher.PublishDeviceEvent(context.Background(), newTestEvent("")))
			}
		})
	}
}

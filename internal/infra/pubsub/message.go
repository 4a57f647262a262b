package pubsub

import (
	"encoding/json"

	"activator/internal/domain/constants"
	"activator/internal/domain/entity"

	"github.com/pkg/errors"
)

// deviceEventMessage is the transport independent form of a device event.
type deviceEventMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeDeviceEvent serializes the event and builds the attributes used for filtering and tracing.
// Events of one device share an ordering key so the worker sees them in lifecycle order.
func encodeDeviceEvent(event *entity.DeviceEvent) (*deviceEventMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode device event")
	}

	return &deviceEventMessage{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.DeviceID.String(),
	}, nil
}

func eventAttributes(event *entity.DeviceEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventID:   event.ID.String(),
		constants.AttrEventType: string(event.Type),
		constants.AttrDeviceID:  event.DeviceID.String(),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}

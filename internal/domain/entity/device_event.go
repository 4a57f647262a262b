package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceEventType names a change in a device's lifecycle.
type DeviceEventType string

const (
	DeviceEventRegistered DeviceEventType = "registered"
	DeviceEventActivated  DeviceEventType = "activated"
	DeviceEventExpired    DeviceEventType = "expired"
	DeviceEventRenewed    DeviceEventType = "renewed"
	DeviceEventDeleted    DeviceEventType = "deleted"
)

// IsValid checks if the DeviceEventType is a known value.
func (t DeviceEventType) IsValid() bool {
	switch t {
	case DeviceEventRegistered, DeviceEventActivated, DeviceEventExpired, DeviceEventRenewed, DeviceEventDeleted:
		return true
	default:
		return false
	}
}

// DeviceEvent is an audit record of a device lifecycle change.
type DeviceEvent struct {
	ID          uuid.UUID       `json:"id"`
	Type        DeviceEventType `json:"type"`
	DeviceID    uuid.UUID       `json:"deviceId"`
	AdminID     uuid.UUID       `json:"adminId"`
	AppName     AppName         `json:"appName"`
	IdentityKey string          `json:"identityKey"`
	Status      DeviceStatus    `json:"deviceStatus"`
	RequestID   string          `json:"requestId,omitempty"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// NewDeviceEvent snapshots a device into an event of the given type.
func NewDeviceEvent(eventType DeviceEventType, device *Device, requestID string, at time.Time) *DeviceEvent {
	return &DeviceEvent{
		ID:          uuid.New(),
		Type:        eventType,
		DeviceID:    device.ID,
		AdminID:     device.AdminID,
		AppName:     device.AppName,
		IdentityKey: device.Identity.Key(),
		Status:      device.Status,
		RequestID:   requestID,
		OccurredAt:  at,
	}
}

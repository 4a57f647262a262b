package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceEventModel mirrors the 'device_events' audit table.
// Rows outlive their device, so DeviceID carries no foreign key.
type DeviceEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type        string    `gorm:"type:varchar(32);not null"`
	DeviceID    uuid.UUID `gorm:"type:uuid;not null;index:idx_device_events_device_occurred,priority:1"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null"`
	AppName     string    `gorm:"type:varchar(64);not null"`
	IdentityKey string    `gorm:"type:varchar(512);not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	RequestID   string    `gorm:"type:varchar(128)"`
	OccurredAt  time.Time `gorm:"not null;index:idx_device_events_device_occurred,priority:2,sort:desc"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceEventModel) TableName() string {
	return "device_events"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'devices' table.
// An identity is registered at most once per application, enforced by idx_devices_identity_app.
type DeviceModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityScheme    string    `gorm:"type:varchar(16);not null"`
	IdentityKey       string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_devices_identity_app,priority:1"`
	MacID             string    `gorm:"type:varchar(255);index"`
	MotherboardSerial string    `gorm:"type:varchar(255);index"`
	SystemID          string    `gorm:"type:varchar(255);index"`
	ActivationKey     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_activation_key"`
	Name              string    `gorm:"type:varchar(255)"`
	AdminID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(16);not null;default:inactive"`
	Activated         bool      `gorm:"not null;default:false"`
	ActivatedAt       *time.Time
	ExpirationDate    time.Time `gorm:"not null"`
	AppName           string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_devices_identity_app,priority:2"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_admins_email"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Devices []DeviceModel `gorm:"foreignKey:AdminID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

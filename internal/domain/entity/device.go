// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"activator/internal/util"

	"github.com/google/uuid"
)

// DeviceStatus reports whether a device's license is currently usable.
type DeviceStatus string

const (
	// DeviceStatusActive marks a device whose license has not expired.
	DeviceStatusActive DeviceStatus = "active"
	// DeviceStatusInactive marks a device that needs a renewal before it can be activated again.
	DeviceStatusInactive DeviceStatus = "inactive"
)

// IsValid checks if the DeviceStatus is a known value.
func (s DeviceStatus) IsValid() bool {
	return s == DeviceStatusActive || s == DeviceStatusInactive
}

// LifetimeExpiration is the sentinel expiration date of a license that never expires.
var LifetimeExpiration = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Device is a registered client installation licensed for one application.
type Device struct {
	ID uuid.UUID `json:"id"`
	Identity
	ActivationKey  string       `json:"activationKey"`
	Name           string       `json:"name,omitempty"`
	AdminID        uuid.UUID    `json:"adminId"`
	Status         DeviceStatus `json:"deviceStatus"`
	Activated      bool         `json:"deviceActivation"` // Set only by a successful activation call.
	ActivatedAt    *time.Time   `json:"activatedAt,omitempty"`
	ExpirationDate time.Time    `json:"expirationDate"`
	AppName        AppName      `json:"appName"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// IsExpiredAt reports whether the license has lapsed at now.
// The comparison uses the start of now's day, so a device stays usable through its whole expiration day.
func (d *Device) IsExpiredAt(now time.Time) bool {
	return util.StartOfDay(now).After(d.ExpirationDate)
}

// EnforceExpiration moves an expired active device to inactive.
// It never moves a device forward to active and reports whether the status changed.
func (d *Device) EnforceExpiration(now time.Time) bool {
	if d.Status != DeviceStatusActive || !d.IsExpiredAt(now) {
		return false
	}
	d.Status = DeviceStatusInactive

	return true
}

// IsLifetime reports whether the device carries the never-expiring sentinel date.
func (d *Device) IsLifetime() bool {
	return d.ExpirationDate.Equal(LifetimeExpiration)
}

// DeviceFilter narrows a device listing.
type DeviceFilter struct {
	Search  string       // Case-insensitive substring over the identifiers and the name.
	Status  DeviceStatus // Empty matches every status.
	AppName AppName      // Empty matches every application.
}

// DeviceSelector picks devices by whichever identifier fields are set. Empty fields are not constrained.
type DeviceSelector struct {
	MacID             string
	MotherboardSerial string
	SystemID          string
	AppName           AppName
}

// IsEmpty reports whether the selector has no identifying field.
func (s DeviceSelector) IsEmpty() bool {
	return s.MacID == "" && s.MotherboardSerial == "" && s.SystemID == ""
}

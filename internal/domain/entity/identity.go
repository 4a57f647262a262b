package entity

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IdentityScheme tells which identifier fields a device was registered with.
type IdentityScheme string

const (
	// IdentitySchemeHardware identifies a device by processor ID and motherboard serial.
	IdentitySchemeHardware IdentityScheme = "hardware"
	// IdentitySchemeSystem identifies a device by a single system identifier.
	IdentitySchemeSystem IdentityScheme = "system"
)

var (
	// ErrIncompleteIdentity is returned when neither identity scheme is fully specified.
	ErrIncompleteIdentity = errors.New("either systemId or processorId with motherboardSerial is required")
	// ErrMixedIdentity is returned when fields from both schemes are supplied.
	ErrMixedIdentity = errors.New("systemId cannot be combined with processorId or motherboardSerial")
)

// Identity is the tagged identifier of a device.
type Identity struct {
	Scheme            IdentityScheme `json:"identityScheme"`
	MacID             string         `json:"macId,omitempty"` // Processor ID, historically named macId.
	MotherboardSerial string         `json:"motherboardSerial,omitempty"`
	SystemID          string         `json:"systemId,omitempty"`
}

// NewIdentity builds an Identity from raw request fields.
func NewIdentity(systemID, macID, motherboardSerial string) (Identity, error) {
	systemID = strings.TrimSpace(systemID)
	macID = strings.TrimSpace(macID)
	motherboardSerial = strings.TrimSpace(motherboardSerial)

	if systemID != "" {
		if macID != "" || motherboardSerial != "" {
			return Identity{}, ErrMixedIdentity
		}

		return Identity{Scheme: IdentitySchemeSystem, SystemID: systemID}, nil
	}

	if macID == "" || motherboardSerial == "" {
		return Identity{}, ErrIncompleteIdentity
	}

	return Identity{
		Scheme:            IdentitySchemeHardware,
		MacID:             macID,
		MotherboardSerial: motherboardSerial,
	}, nil
}

// Key returns the canonical lookup key of the identity.
// Hardware keys carry the processor ID's byte length, since either part may contain ':'.
func (i Identity) Key() string {
	if i.Scheme == IdentitySchemeSystem {
		return "sys:" + i.SystemID
	}

	return "hw:" + strconv.Itoa(len(i.MacID)) + ":" + i.MacID + ":" + i.MotherboardSerial
}

// String returns a human readable form used in messages.
func (i Identity) String() string {
	if i.Scheme == IdentitySchemeSystem {
		return "System ID '" + i.SystemID + "'"
	}

	return "Processor ID '" + i.MacID + "', Motherboard Serial '" + i.MotherboardSerial + "'"
}

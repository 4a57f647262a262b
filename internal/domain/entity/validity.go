package entity

// ValidityType selects how a device's expiration date is computed.
type ValidityType string

const (
	// ValidityFixedTerm grants a fixed number of calendar months from today.
	ValidityFixedTerm ValidityType = "1_MONTH"
	// ValidityCustom expires at the end of an admin-chosen date.
	ValidityCustom ValidityType = "CUSTOM"
	// ValidityLifetime never expires.
	ValidityLifetime ValidityType = "LIFETIME"
)

// IsValid checks if the ValidityType is a known value.
func (v ValidityType) IsValid() bool {
	switch v {
	case ValidityFixedTerm, ValidityCustom, ValidityLifetime:
		return true
	default:
		return false
	}
}

package service

import "activator/internal/domain/entity"

// Outcome labels recorded by ActivationMetrics.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeInactive   = "inactive"
	OutcomeInvalidKey = "invalid_key"
	OutcomeError      = "error"
)

// ActivationMetrics records business counters for the activation flow.
type ActivationMetrics interface {
	DeviceRegistered(app entity.AppName)
	DeviceDeleted(app entity.AppName)
	DeviceExpired(app entity.AppName)
	ActivationChecked(app entity.AppName, outcome string)
	ActivationAttempted(app entity.AppName, outcome string)
}

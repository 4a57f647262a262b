package service

import "activator/internal/domain/entity"

// KeyGenerator derives activation keys from device identities, one variant per application.
type KeyGenerator interface {
	// Generate returns the activation key of identity for app, or an error when no key can be produced.
	Generate(app entity.AppName, identity entity.Identity) (string, error)
}

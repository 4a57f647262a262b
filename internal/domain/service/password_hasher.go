// Package service declares the ports the use cases depend on: hashing, tokens, keys,
// QR codes, event publishing, metrics and the clock.
package service

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}

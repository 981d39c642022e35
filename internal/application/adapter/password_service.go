// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/rewards-hub/backend/internal/domain/valueobject"

// PasswordService defines the interface for password hashing, verification
// and strength validation.
type PasswordService interface {
	// HashPassword derives a stored credential from a plain text password
	// using a slow salted one-way function. Two calls with the same input
	// produce different credentials.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether the plain text password matches the
	// stored credential. It never returns an error: empty input, a malformed
	// credential or an internal failure all yield false.
	VerifyPassword(password, hashedPassword string) bool

	// ValidateStrength evaluates a plain text password against the strength
	// rule set and returns the resulting report.
	ValidateStrength(password string) valueobject.PasswordStrength
}

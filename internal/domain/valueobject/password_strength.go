// Package valueobject defines immutable value objects for the domain layer.
package valueobject

// PasswordStrength is the result of evaluating a plaintext password against
// the strength rule set. Score is in the range [0, 100]; IsValid is true
// only when no rule produced an error.
type PasswordStrength struct {
	IsValid bool
	Errors  []string
	Score   int
}

// Package error defines domain-specific errors for the Rewards Hub application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email or username.
	ErrEmailAlreadyExists = errors.New("email or username already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is returned when the provided password fails the strength rules.
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrEmptyPassword is returned when the provided password is empty or whitespace only.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooShort is returned when the provided password is shorter than the minimum length.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrHashingFailed is returned when the underlying hash computation fails.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrIncorrectPassword is returned when the current password does not match on password change.
	ErrIncorrectPassword = errors.New("current password is incorrect")
)

// UserErrorCode defines error codes for user account errors.
// Format: USER-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeWeakPassword     UserErrorCode = "USER-010001"
	ErrCodeEmptyPassword    UserErrorCode = "USER-010002"
	ErrCodePasswordTooShort UserErrorCode = "USER-010003"
	ErrCodeHashingFailure   UserErrorCode = "USER-010004"
	ErrCodeCreationFailed   UserErrorCode = "USER-010005"
	ErrCodeMissingFields    UserErrorCode = "USER-010006"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials UserErrorCode = "USER-020001"
	ErrCodeUserNotFound       UserErrorCode = "USER-020002"

	// Password change errors (03XXXX)
	ErrCodeIncorrectPassword UserErrorCode = "USER-030001"
	ErrCodePasswordChange    UserErrorCode = "USER-030002"
)

// UserError represents a user account error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

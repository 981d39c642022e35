// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/rewards-hub/backend/internal/application/adapter"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
	"github.com/rewards-hub/backend/internal/domain/valueobject"
)

const (
	// bcryptCost is the fixed work factor for bcrypt hashing. Cost 12 keeps
	// a single hash in the ~100-300ms range on commodity hardware.
	bcryptCost = 12
	// minPasswordLength is the minimum required password length.
	minPasswordLength = 8
	// lengthBonusThreshold is the length at which the score bonus applies.
	lengthBonusThreshold = 12
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	// commonPatterns are substrings that make a password invalid regardless
	// of its score.
	commonPatterns = []string{"123", "abc", "password", "qwerty"}
)

// passwordService implements the adapter.PasswordService interface using bcrypt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password using bcrypt with cost 12.
// bcrypt generates a fresh random salt per call, so hashing the same
// password twice yields different credentials.
func (s *passwordService) HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", domainerror.NewUserError(
			domainerror.ErrCodeEmptyPassword,
			"Password cannot be empty",
			domainerror.ErrEmptyPassword,
		)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return "", domainerror.NewUserError(
			domainerror.ErrCodePasswordTooShort,
			"Password must be at least 8 characters long",
			domainerror.ErrPasswordTooShort,
		)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", domainerror.NewUserError(
			domainerror.ErrCodeHashingFailure,
			"Error hashing password: "+err.Error(),
			err,
		)
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a stored credential.
// It never returns an error: a wrong password, an empty or malformed
// credential and any internal failure all report false. Non-mismatch
// failures are logged so a corrupt stored hash remains observable.
func (s *passwordService) VerifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Error("Password verification failed", "error", err)
		}
		return false
	}
	return true
}

// ValidateStrength evaluates a password against the strength rule set.
// Each satisfied rule adds to the score; the common-pattern check subtracts
// from it and appends its error last. The final score is clamped to [0, 100].
func (s *passwordService) ValidateStrength(password string) valueobject.PasswordStrength {
	var errs []string
	score := 0

	// Length rules count characters, not bytes, so multibyte passwords are
	// measured the way users perceive them.
	length := utf8.RuneCountInString(password)

	if length < minPasswordLength {
		errs = append(errs, "Password must be at least 8 characters long")
	} else {
		score += 20
	}

	if !lowercaseRegex.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	} else {
		score += 15
	}

	if !uppercaseRegex.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	} else {
		score += 15
	}

	if !digitRegex.MatchString(password) {
		errs = append(errs, "Password must contain at least one number")
	} else {
		score += 15
	}

	if !specialRegex.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character")
	} else {
		score += 15
	}

	if length >= lengthBonusThreshold {
		score += 10
	}

	lowered := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lowered, pattern) {
			score -= 20
			errs = append(errs, "Password contains common patterns")
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return valueobject.PasswordStrength{
		IsValid: len(errs) == 0,
		Errors:  errs,
		Score:   score,
	}
}

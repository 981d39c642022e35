package adapters

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/rewards-hub/backend/internal/domain/error"
)

func TestValidateStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name       string
		password   string
		wantValid  bool
		wantScore  int
		wantErrors []string
	}{
		{
			name:      "strong password with all character classes",
			password:  "ReallySecurePa1!",
			wantValid: true,
			wantScore: 90,
		},
		{
			name:      "strong password without length bonus",
			password:  "Secure1!Pw",
			wantValid: true,
			wantScore: 80,
		},
		{
			name:      "common word only",
			password:  "password",
			wantValid: false,
			wantScore: 15, // 20 length + 15 lowercase - 20 pattern
			wantErrors: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one number",
				"Password must contain at least one special character",
				"Password contains common patterns",
			},
		},
		{
			name:      "common word with digits",
			password:  "password123",
			wantValid: false,
			wantScore: 30,
			wantErrors: []string{
				"Password must contain at least one uppercase letter",
				"Password must contain at least one special character",
				"Password contains common patterns",
			},
		},
		{
			name:      "empty password",
			password:  "",
			wantValid: false,
			wantScore: 0,
			wantErrors: []string{
				"Password must be at least 8 characters long",
				"Password must contain at least one lowercase letter",
				"Password must contain at least one uppercase letter",
				"Password must contain at least one number",
				"Password must contain at least one special character",
			},
		},
		{
			name:      "short but varied",
			password:  "Ab1!xyz",
			wantValid: false,
			wantScore: 60,
			wantErrors: []string{
				"Password must be at least 8 characters long",
			},
		},
		{
			name:      "multibyte characters count once for the length rule",
			password:  "Aé1!xyz", // 7 characters, 8 bytes
			wantValid: false,
			wantScore: 60,
			wantErrors: []string{
				"Password must be at least 8 characters long",
			},
		},
		{
			name:      "length bonus requires 12 characters, not 12 bytes",
			password:  "Aäbcdef1!xy", // 11 characters, 12 bytes
			wantValid: true,
			wantScore: 80,
		},
		{
			name:      "banned substring invalidates despite full variety",
			password:  "Qwerty#Strong9",
			wantValid: false,
			wantScore: 70, // 20+15+15+15+15+10-20, banned substring
			wantErrors: []string{
				"Password contains common patterns",
			},
		},
		{
			name:      "pattern check is case-insensitive",
			password:  "MyPASSWORDIs1!",
			wantValid: false,
			wantScore: 70,
			wantErrors: []string{
				"Password contains common patterns",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ValidateStrength(tt.password)

			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", got.IsValid, tt.wantValid, got.Errors)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if len(got.Errors) != len(tt.wantErrors) {
				t.Fatalf("Errors = %v, want %v", got.Errors, tt.wantErrors)
			}
			for i, wantErr := range tt.wantErrors {
				if got.Errors[i] != wantErr {
					t.Errorf("Errors[%d] = %q, want %q", i, got.Errors[i], wantErr)
				}
			}
		})
	}
}

func TestValidateStrengthScoreBounds(t *testing.T) {
	service := NewPasswordService()

	// 123 triggers the pattern penalty from a zero-ish base; the score must
	// not go below zero.
	report := service.ValidateStrength("123")
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("Score = %d, want within [0, 100]", report.Score)
	}
	if report.IsValid {
		t.Error("IsValid = true for a banned pattern, want false")
	}
}

func TestHashPassword(t *testing.T) {
	service := NewPasswordService()

	t.Run("round trip", func(t *testing.T) {
		hash, err := service.HashPassword("ReallySecurePa1!")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		if hash == "ReallySecurePa1!" {
			t.Fatal("hash equals the plaintext")
		}
		if !strings.HasPrefix(hash, "$2") {
			t.Errorf("hash %q is not a bcrypt credential", hash)
		}
		if !service.VerifyPassword("ReallySecurePa1!", hash) {
			t.Error("VerifyPassword() = false for the original plaintext")
		}
		if service.VerifyPassword("WrongPassword1!", hash) {
			t.Error("VerifyPassword() = true for a different plaintext")
		}
	})

	t.Run("fresh salt per call", func(t *testing.T) {
		first, err := service.HashPassword("ReallySecurePa1!")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		second, err := service.HashPassword("ReallySecurePa1!")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		if first == second {
			t.Error("two hashes of the same plaintext are identical")
		}
		if !service.VerifyPassword("ReallySecurePa1!", first) || !service.VerifyPassword("ReallySecurePa1!", second) {
			t.Error("both hashes must verify against the plaintext")
		}
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := service.HashPassword("")
		assertUserError(t, err, domainerror.ErrCodeEmptyPassword, "Password cannot be empty")
	})

	t.Run("whitespace only password", func(t *testing.T) {
		_, err := service.HashPassword("   ")
		assertUserError(t, err, domainerror.ErrCodeEmptyPassword, "Password cannot be empty")
	})

	t.Run("short password", func(t *testing.T) {
		_, err := service.HashPassword("short")
		assertUserError(t, err, domainerror.ErrCodePasswordTooShort, "Password must be at least 8 characters long")
	})

	t.Run("multibyte password shorter than 8 characters", func(t *testing.T) {
		// 7 characters but 9 bytes; the length check must count characters.
		_, err := service.HashPassword("Pä55wö!")
		assertUserError(t, err, domainerror.ErrCodePasswordTooShort, "Password must be at least 8 characters long")
	})
}

func TestVerifyPasswordNeverFails(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("ReallySecurePa1!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{"empty plaintext", "", hash},
		{"empty credential", "ReallySecurePa1!", ""},
		{"both empty", "", ""},
		{"malformed credential", "ReallySecurePa1!", "not-a-bcrypt-hash"},
		{"truncated credential", "ReallySecurePa1!", hash[:10]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if service.VerifyPassword(tt.password, tt.hash) {
				t.Error("VerifyPassword() = true, want false")
			}
		})
	}
}

func assertUserError(t *testing.T, err error, wantCode domainerror.UserErrorCode, wantMessage string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var userErr *domainerror.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("error %T is not a *UserError", err)
	}
	if userErr.Code != wantCode {
		t.Errorf("Code = %s, want %s", userErr.Code, wantCode)
	}
	if userErr.Message != wantMessage {
		t.Errorf("Message = %q, want %q", userErr.Message, wantMessage)
	}
}

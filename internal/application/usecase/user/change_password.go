package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/rewards-hub/backend/internal/application/adapter"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordOutput represents the output of a password change.
type ChangePasswordOutput struct {
	Success bool
	Message string
}

// ChangePasswordUseCase handles password change logic.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute replaces the user's stored credential after verifying the current
// password and validating the new one. No password history is retained.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"User not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, domainerror.NewUserError(
			domainerror.ErrCodePasswordChange,
			"Failed to change password: "+err.Error(),
			err,
		)
	}

	if !uc.passwordService.VerifyPassword(input.CurrentPassword, user.PasswordHash) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeIncorrectPassword,
			"Current password is incorrect",
			domainerror.ErrIncorrectPassword,
		)
	}

	strength := uc.passwordService.ValidateStrength(input.NewPassword)
	if !strength.IsValid {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeWeakPassword,
			"New password validation failed: "+strings.Join(strength.Errors, ", "),
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdatePassword(ctx, input.UserID, passwordHash); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodePasswordChange,
			"Failed to change password: "+err.Error(),
			err,
		)
	}

	return &ChangePasswordOutput{
		Success: true,
		Message: "Password updated successfully",
	}, nil
}

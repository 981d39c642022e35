package user

import (
	"context"
	"errors"

	"github.com/rewards-hub/backend/internal/application/adapter"
	"github.com/rewards-hub/backend/internal/domain/entity"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
)

// AuthenticateUserInput represents the input for user login.
type AuthenticateUserInput struct {
	Email    string
	Password string
}

// AuthenticateUserOutput represents the output of user login.
type AuthenticateUserOutput struct {
	User *entity.User
}

// AuthenticateUserUseCase handles user login logic.
type AuthenticateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewAuthenticateUserUseCase creates a new AuthenticateUserUseCase instance.
func NewAuthenticateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user login. An unknown email and a wrong password
// produce the identical "Invalid credentials" message to prevent account
// enumeration.
func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, input AuthenticateUserInput) (*AuthenticateUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidCredentials,
				"Invalid credentials",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidCredentials,
			"Authentication failed: "+err.Error(),
			err,
		)
	}

	if !uc.passwordService.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidCredentials,
			"Invalid credentials",
			domainerror.ErrInvalidCredentials,
		)
	}

	return &AuthenticateUserOutput{
		User: user.WithoutCredential(),
	}, nil
}

// Package user contains user account use cases.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/rewards-hub/backend/internal/application/adapter"
	"github.com/rewards-hub/backend/internal/domain/entity"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
)

// CreateUserInput represents the input for user registration.
type CreateUserInput struct {
	Username  string
	Name      string
	Email     string
	Password  string
	Birthdate time.Time
}

// CreateUserOutput represents the output of user registration.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user registration logic.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user registration. The password is validated and
// hashed before any store write happens; the returned user never carries
// the stored credential.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	// Validate password strength
	strength := uc.passwordService.ValidateStrength(input.Password)
	if !strength.IsValid {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeWeakPassword,
			"Password validation failed: "+strings.Join(strength.Errors, ", "),
			domainerror.ErrWeakPassword,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	// Create user entity with its default reward record
	user := entity.NewUser(input.Username, input.Name, input.Email, passwordHash, input.Birthdate)

	// Save user to database (user + reward in one transaction)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeCreationFailed,
			"Failed to create user: "+err.Error(),
			err,
		)
	}

	return &CreateUserOutput{
		User: user.WithoutCredential(),
	}, nil
}

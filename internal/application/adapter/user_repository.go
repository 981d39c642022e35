package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rewards-hub/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user together with its reward record in a
	// single transaction.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns domain ErrUserNotFound
	// when no user exists with the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID. Returns domain ErrUserNotFound when
	// no user exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdatePassword replaces the stored credential of an existing user.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

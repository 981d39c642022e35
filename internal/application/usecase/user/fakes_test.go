package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rewards-hub/backend/internal/domain/entity"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
	"github.com/rewards-hub/backend/internal/domain/valueobject"
)

// fakeUserRepository is an in-memory UserRepository for use case tests.
type fakeUserRepository struct {
	byID        map[uuid.UUID]*entity.User
	byEmail     map[string]*entity.User
	createErr   error
	findErr     error
	updateErr   error
	createCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return domainerror.ErrEmailAlreadyExists
	}
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *fakeUserRepository) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	user, ok := r.byID[id]
	if !ok {
		return domainerror.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// fakePasswordService derives credentials by prefixing the plaintext, which
// keeps use case tests fast and deterministic. Strength validation applies
// only the minimum-length rule unless weak is forced.
type fakePasswordService struct {
	hashErr   error
	forceWeak bool
}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}
	return hashedPassword == "hashed:"+password
}

func (s *fakePasswordService) ValidateStrength(password string) valueobject.PasswordStrength {
	if s.forceWeak || len(password) < 8 {
		return valueobject.PasswordStrength{
			IsValid: false,
			Errors:  []string{"Password must be at least 8 characters long"},
			Score:   0,
		}
	}
	return valueobject.PasswordStrength{IsValid: true, Score: 80}
}

func assertUserErrorMessage(errMsg string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(errMsg, part) {
			return false
		}
	}
	return true
}

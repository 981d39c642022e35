package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rewards-hub/backend/internal/domain/entity"
	domainerror "github.com/rewards-hub/backend/internal/domain/error"
	"github.com/rewards-hub/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.RewardModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newStoredUser(email, username string) *entity.User {
	return entity.NewUser(
		username,
		"Jane Doe",
		email,
		"$2a$12$notarealhashnotarealhashnotarealhashnotarealhash",
		time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	)
}

func TestUserRepositoryCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newStoredUser("jane@example.com", "jdoe")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("reward record is created with the account", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "jane@example.com")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if found.Reward == nil {
			t.Fatal("stored user has no reward record")
		}
		if found.Reward.TotalPoints != 0 || found.Reward.Level != entity.RewardLevelBronze {
			t.Errorf("reward = %d points at %s, want 0 points at BRONZE",
				found.Reward.TotalPoints, found.Reward.Level)
		}
		if found.Reward.UserID != user.ID {
			t.Errorf("reward UserID = %s, want %s", found.Reward.UserID, user.ID)
		}
	})

	t.Run("duplicate email is reported as such", func(t *testing.T) {
		duplicate := newStoredUser("jane@example.com", "jdoe2")
		err := repo.Create(ctx, duplicate)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("Create() error = %v, want %v", err, domainerror.ErrEmailAlreadyExists)
		}
	})

	t.Run("duplicate username is reported as such", func(t *testing.T) {
		duplicate := newStoredUser("other@example.com", "jdoe")
		err := repo.Create(ctx, duplicate)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("Create() error = %v, want %v", err, domainerror.ErrEmailAlreadyExists)
		}
	})
}

func TestUserRepositoryFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newStoredUser("jane@example.com", "jdoe")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "jane@example.com")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("ID = %s, want %s", found.ID, user.ID)
		}
		if found.PasswordHash != user.PasswordHash {
			t.Error("stored credential does not round-trip")
		}
	})

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Email != "jane@example.com" {
			t.Errorf("Email = %q, want %q", found.Email, "jane@example.com")
		}
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("FindByEmail() error = %v, want %v", err, domainerror.ErrUserNotFound)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("FindByID() error = %v, want %v", err, domainerror.ErrUserNotFound)
		}
	})
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newStoredUser("jane@example.com", "jdoe")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("replaces the credential", func(t *testing.T) {
		newHash := "$2a$12$replacementhashreplacementhashreplacementhashrepl"
		if err := repo.UpdatePassword(ctx, user.ID, newHash); err != nil {
			t.Fatalf("UpdatePassword() error = %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.PasswordHash != newHash {
			t.Errorf("PasswordHash = %q, want the replacement hash", found.PasswordHash)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		err := repo.UpdatePassword(ctx, uuid.New(), "whatever")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("UpdatePassword() error = %v, want %v", err, domainerror.ErrUserNotFound)
		}
	})
}

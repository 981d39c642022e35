// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role in the system.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered account in the Rewards Hub system.
// PasswordHash holds the stored credential; it is cleared before the entity
// leaves the application layer.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Birthdate    time.Time
	Reward       *Reward
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values and a default reward record.
func NewUser(username, name, email, passwordHash string, birthdate time.Time) *User {
	now := time.Now().UTC()
	id := uuid.New()
	return &User{
		ID:           id,
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Birthdate:    birthdate,
		Reward:       NewDefaultReward(id),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WithoutCredential returns a copy of the user with the stored credential
// cleared. Responses must never carry the password hash.
func (u *User) WithoutCredential() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	return &sanitized
}

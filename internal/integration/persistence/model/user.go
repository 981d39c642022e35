// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rewards-hub/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Username     string       `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name         string       `gorm:"type:varchar(100);not null"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	Role         string       `gorm:"type:varchar(20);default:'USER';not null"`
	Birthdate    time.Time    `gorm:"not null"`
	Reward       *RewardModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// RewardModel represents the rewards table in the database.
type RewardModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	TotalPoints int            `gorm:"not null;default:0"`
	Level       string         `gorm:"type:varchar(20);not null;default:'BRONZE'"`
	Badges      pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for the RewardModel.
func (RewardModel) TableName() string {
	return "rewards"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Birthdate:    m.Birthdate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Reward != nil {
		user.Reward = m.Reward.ToEntity()
	}
	return user
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	userModel := &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Birthdate:    user.Birthdate,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.Reward != nil {
		userModel.Reward = FromRewardEntity(user.Reward)
	}
	return userModel
}

// ToEntity converts a RewardModel to a domain Reward entity.
func (m *RewardModel) ToEntity() *entity.Reward {
	return &entity.Reward{
		ID:          m.ID,
		UserID:      m.UserID,
		TotalPoints: m.TotalPoints,
		Level:       entity.RewardLevel(m.Level),
		Badges:      []string(m.Badges),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromRewardEntity creates a RewardModel from a domain Reward entity.
func FromRewardEntity(reward *entity.Reward) *RewardModel {
	return &RewardModel{
		ID:          reward.ID,
		UserID:      reward.UserID,
		TotalPoints: reward.TotalPoints,
		Level:       string(reward.Level),
		Badges:      pq.StringArray(reward.Badges),
		CreatedAt:   reward.CreatedAt,
		UpdatedAt:   reward.UpdatedAt,
	}
}

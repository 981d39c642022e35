// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/rewards-hub/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
// All fields are required; no format validation happens at the binding
// layer, so a bind failure always means a field is missing.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Birthdate string `json:"birthdate" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// RegisterResponse represents the response for user registration.
type RegisterResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *UserResponse `json:"user,omitempty"`
}

// LoginResponse represents the response for user login.
type LoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// MessageResponse represents a generic success/failure response.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
// It intentionally has no field for the stored credential.
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Birthdate string          `json:"birthdate"`
	Reward    *RewardResponse `json:"reward,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RewardResponse represents the reward data in API responses.
type RewardResponse struct {
	ID          string   `json:"id"`
	TotalPoints int      `json:"total_points"`
	Level       string   `json:"level"`
	Badges      []string `json:"badges"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) *UserResponse {
	response := &UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Birthdate: user.Birthdate.Format("2006-01-02"),
		CreatedAt: user.CreatedAt,
	}
	if user.Reward != nil {
		response.Reward = &RewardResponse{
			ID:          user.Reward.ID.String(),
			TotalPoints: user.Reward.TotalPoints,
			Level:       string(user.Reward.Level),
			Badges:      user.Reward.Badges,
		}
	}
	return response
}

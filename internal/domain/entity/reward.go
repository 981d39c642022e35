package entity

import (
	"time"

	"github.com/google/uuid"
)

// RewardLevel represents the tier of a user's reward record.
type RewardLevel string

const (
	RewardLevelBronze RewardLevel = "BRONZE"
	RewardLevelSilver RewardLevel = "SILVER"
	RewardLevelGold   RewardLevel = "GOLD"
)

// Reward represents the reward record attached to a user account.
// It is created together with the account and never mutated by this service.
type Reward struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalPoints int
	Level       RewardLevel
	Badges      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDefaultReward creates the initial reward record for a new user:
// zero points at the lowest tier, no badges.
func NewDefaultReward(userID uuid.UUID) *Reward {
	now := time.Now().UTC()
	return &Reward{
		ID:          uuid.New(),
		UserID:      userID,
		TotalPoints: 0,
		Level:       RewardLevelBronze,
		Badges:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

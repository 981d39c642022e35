// Package mock provides test doubles for the integration test suite.
package mock

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rewards-hub/backend/internal/integration/persistence/model"
)

// NewDB opens a fresh in-memory SQLite database with the application schema
// migrated. Each scenario gets its own database, so no cleanup between
// scenarios is needed.
func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.RewardModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

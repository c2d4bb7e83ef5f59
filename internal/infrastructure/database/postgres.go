package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/you/ytstudio/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is enabled so
// driver-specific unique violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// AutoMigrate creates or updates the users and generations tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	if err := db.AutoMigrate(&repositories.DBGeneration{}); err != nil {
		return fmt.Errorf("failed to migrate generations table: %w", err)
	}
	return nil
}

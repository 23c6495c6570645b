package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"retroexchange/backend/internal/logging"
	"retroexchange/backend/internal/models"
)

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logging.GormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Info().Msg("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Msg("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the users and games tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Game{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

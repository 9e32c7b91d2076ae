package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// Open creates a new database connection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the tables for every entity the service
// persists. Casbin policy tables are created separately by its gorm adapter.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.UserOTP{},
		&domain.Appointment{},
		&domain.Patient{},
		&domain.ClinicService{},
		&domain.ContactMessage{},
		&domain.ContentBlock{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

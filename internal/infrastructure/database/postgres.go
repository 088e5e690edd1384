package database

import (
	"fmt"

	"github.com/clinicbook/receipts-api/internal/config"
	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.UserRole{},
		&entity.Profile{},
		&entity.Receipt{},
		&entity.ReceiptTemplate{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// SeedDefaultData seeds the database with the stock receipt template
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.ReceiptTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stock := entity.ReceiptTemplate{
		Name:      "Classic",
		IsDefault: true,
	}
	stock.ApplyDefaults()

	if err := db.Create(&stock).Error; err != nil {
		return fmt.Errorf("failed to seed default template: %w", err)
	}

	logrus.Info("Seeded default receipt template")
	return nil
}

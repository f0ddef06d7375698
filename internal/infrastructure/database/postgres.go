package database

import (
	"fmt"
	"log"

	"github.com/primeretail/billing-api/internal/config"
	"github.com/primeretail/billing-api/internal/domain/entity"
	"github.com/primeretail/billing-api/internal/infrastructure/repository"
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

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Item{},
		&entity.Bill{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData seeds the starter catalog when the items table is empty.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Item{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i, item := range repository.DefaultCatalog() {
		item.ID = i + 1
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("seed item %s: %w", item.Name, err)
		}
	}
	log.Println("Seeded default catalog")
	return nil
}

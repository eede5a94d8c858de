package database

import (
	"fmt"
	"log"

	"github.com/omsai/pos-backend/internal/config"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Settings{},
		&entity.MenuItem{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Counter{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the bill number counter, the restaurant profile and
// the admin account.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	// The counter owns the bill number sequence. Seed it to the highest
	// number already stored so restored databases keep counting from where
	// they left off.
	var counter entity.Counter
	if err := db.Where("name = ?", entity.BillNumberCounter).First(&counter).Error; err != nil {
		var maxNumber int64
		if err := db.Raw("SELECT COALESCE(MAX(bill_number), 0) FROM bills").Scan(&maxNumber).Error; err != nil {
			return fmt.Errorf("failed to read max bill number: %w", err)
		}
		counter = entity.Counter{Name: entity.BillNumberCounter, Value: maxNumber}
		if err := db.Create(&counter).Error; err != nil {
			return fmt.Errorf("failed to create bill number counter: %w", err)
		}
	}

	// Restaurant profile printed on receipts
	var settings entity.Settings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.Settings{
			Name:     cfg.Restaurant.Name,
			Tagline1: cfg.Restaurant.Tagline1,
			Tagline2: cfg.Restaurant.Tagline2,
			Footer:   cfg.Restaurant.Footer,
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to create restaurant settings: %w", err)
		}
	}

	// Admin account, only when a password is configured
	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		var existing entity.User
		if err := db.Where("username = ?", cfg.Admin.Username).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			admin := entity.User{
				Username: cfg.Admin.Username,
				Password: string(hashed),
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			log.Printf("Admin user created: %s", cfg.Admin.Username)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

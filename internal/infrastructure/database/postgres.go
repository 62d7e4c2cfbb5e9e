package database

import (
	"fmt"
	"log"

	"github.com/praveenkm/medistock-api/internal/config"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

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

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User entities
		&entity.User{},

		// Inventory entities
		&entity.Category{},
		&entity.Medicine{},
		&entity.Supplier{},

		// Procurement entities
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderItem{},

		// Sales entities
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.InvoiceSequence{},
		&entity.Transaction{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.PharmacySettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (categories, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default medicine categories
	categories := []entity.Category{
		{Name: "Tablet"},
		{Name: "Syrup"},
		{Name: "Injection"},
		{Name: "Ointment"},
		{Name: "Drops"},
	}

	for i := range categories {
		var existing entity.Category
		if err := db.Where("name = ?", categories[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", categories[i].Name, err)
			}
		}
	}

	// Create default admin user if it doesn't exist
	adminEmail := viper.GetString("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@medistock.local"
	}

	var adminUser entity.User
	if err := db.Where("email = ?", adminEmail).First(&adminUser).Error; err != nil {
		adminPassword := viper.GetString("ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "ChangeMe123!"
			log.Println("Warning: using default admin password, change it immediately")
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		adminUser = entity.User{
			FirstName: "Admin",
			Email:     adminEmail,
			Password:  string(hashedPassword),
			Role:      enum.RoleAdmin,
		}
		if err := db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Printf("Created default admin user: %s", adminEmail)
	}

	log.Println("Default data seeding completed")
	return nil
}

package database

import (
	"fmt"
	"log/slog"
	"time"

	"hackhub-api/internal/config"
	"hackhub-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init connects to the PostgreSQL database, tunes the connection pool and
// runs auto-migrations.
func Init(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err, "host", cfg.DBHost)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	slog.Info("Successfully connected to PostgreSQL", "host", cfg.DBHost, "db", cfg.DBName)

	slog.Info("Running auto-migrations")
	err = db.AutoMigrate(&models.Hackathon{}, &models.Admin{})
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("Database schema synchronized")
	return db, nil
}

// SeedAdmins upserts the configured admin emails into the allow-list.
// Existing rows are left alone, so admins provisioned directly in the
// table survive restarts with a different ADMIN_EMAILS value.
func SeedAdmins(db *gorm.DB, emails []string) error {
	for _, email := range emails {
		var admin models.Admin
		err := db.Where("email = ?", email).
			Attrs(models.Admin{Email: email}).
			FirstOrCreate(&admin).Error
		if err != nil {
			return fmt.Errorf("seed admin %s: %w", email, err)
		}
	}
	if len(emails) > 0 {
		slog.Info("Admin allow-list seeded", "count", len(emails))
	}
	return nil
}

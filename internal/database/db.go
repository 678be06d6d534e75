package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"unit-codex/internal/config"
	"unit-codex/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and runs migrations. Postgres
// connections are retried because the server may still be starting.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "postgres":
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			logrus.Infof("connecting to database (attempt %d/%d)", i, maxAttempts)
			db, err = gorm.Open(postgres.Open(cfg.DBDSN), gormConfig())
			if err == nil {
				break
			}
			logrus.Warnf("database connection failed: %v", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
	case "sqlite":
		if dir := filepath.Dir(cfg.DBDSN); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(cfg.DBDSN), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
		_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.Session{},
		&models.Unit{},
		&models.Model{},
		&models.EquipmentOption{},
		&models.ModelEquipment{},
		&models.Keyword{},
		&models.UnitKeyword{},
	)
}

// EnsureAdmin creates the admin account on first boot. It does nothing when
// an admin already exists or when no password is configured.
func EnsureAdmin(db *gorm.DB, username, password string) error {
	if password == "" {
		logrus.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.Infof("created admin user %q", username)
	return nil
}

package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/winhire/interview-engine/internal/config"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/models"
)

// Open connects to Postgres, tunes the pool and, when enabled, migrates
// the schema.
func Open(cfg config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if !cfg.AutoMigrate {
		return db, nil
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Candidate{},
		&models.Job{},
		&models.Application{},
		&models.Interview{},
		&models.PanelistAvailability{},
		&models.Feedback{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("schema migrated", nil)

	return db, nil
}

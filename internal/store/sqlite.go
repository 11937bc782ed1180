package store

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emrekoc/jobboard/backend/internal/models"
)

// Open connects to the sqlite database file, creating it if absent. The
// returned handle is the single store connection for the whole process;
// Close releases it at shutdown.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	return db, nil
}

// Close returns the underlying connection to the pool and closes it.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate ensures the users, jobs and messages tables exist. Repeated
// startups against an existing file are no-ops for existing rows; schema
// changes between versions add columns but never migrate data.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Message{},
	)
}

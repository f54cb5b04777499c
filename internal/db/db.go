package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/finrecords/financial-records-api/internal/config"
	"github.com/finrecords/financial-records-api/internal/models"
)

// New opens the Postgres connection pool and runs migrations. Excess
// acquisitions beyond DBPoolSize queue inside database/sql instead of
// failing, which is the pooling contract the API relies on.
func New(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.DBPoolSize)
	sqlDB.SetMaxIdleConns(cfg.DBPoolSize / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.AuditLog{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// Ping verifies database connectivity for the health endpoint.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

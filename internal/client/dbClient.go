package client

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"donation-backend/internal/model"
)

func dialector(driver, databaseURL string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(databaseURL), nil
	case "mysql":
		return mysql.Open(databaseURL), nil
	case "postgres":
		return postgres.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// gormLogWriter forwards gorm's slow-query and error lines to zerolog.
type gormLogWriter struct {
	log zerolog.Logger
}

func (w gormLogWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// InitDBClient opens the database, sizes the pool and migrates every model.
func InitDBClient(driver, databaseURL string, log zerolog.Logger) (*gorm.DB, error) {
	d, err := dialector(driver, databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.New(gormLogWriter{log: log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// Connection pool (important for webhooks)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(model.Models()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

func CloseDBClient(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

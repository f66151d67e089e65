package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/srgjo27/tour_wizard/internal/platform/config"
)

const (
	maxRetries = 10
	retryDelay = 2 * time.Second
)

func NewPostgresDB(cfg config.DBConfig, log *zap.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		log.Info("connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxRetries))
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Info("database connected")
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		if db != nil {
			db.Close()
		}
		log.Warn("database not ready", zap.Error(err), zap.Duration("retry_in", retryDelay))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("connect database: %w", err)
}

// Migrate applies pending migrations from dir.
func Migrate(db *sql.DB, dir string, log *zap.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	log.Info("migrations applied", zap.String("dir", dir))
	return nil
}

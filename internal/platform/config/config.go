package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type StoreBackend string

const (
	StoreRedis  StoreBackend = "redis"
	StoreMemory StoreBackend = "memory"
)

type Config struct {
	HTTPAddr string
	LogLevel string
	Store    StoreBackend

	RedisAddr  string
	RedisDB    int
	SessionTTL time.Duration

	DB            DBConfig
	MigrationsDir string

	DownPaymentFloor int64
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Load reads .env when present, then the environment. Unset values fall back
// to local development defaults.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Store:     StoreBackend(getEnv("STORE_BACKEND", string(StoreRedis))),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "tour_wizard"),
		},
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.DownPaymentFloor, err = strconv.ParseInt(getEnv("DOWN_PAYMENT_FLOOR", "500"), 10, 64); err != nil {
		return nil, fmt.Errorf("DOWN_PAYMENT_FLOOR: %w", err)
	}

	switch cfg.Store {
	case StoreRedis, StoreMemory:
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be redis or memory, got %q", cfg.Store)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

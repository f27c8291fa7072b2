package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"workify/internal/jobs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrJWTSecretRequired is returned when the HTTP server is started without AUTH_JWT_SECRET.
var ErrJWTSecretRequired = errors.New("AUTH_JWT_SECRET must be set")

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"workify"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	JWTSecret string `env:"AUTH_JWT_SECRET"`

	// CategorySyncSchedule is a six-field cron spec; "off" disables the job.
	CategorySyncSchedule string     `env:"CATEGORY_SYNC_SCHEDULE" envDefault:"0 */15 * * * *"`
	LogLevel             slog.Level `env:"LOG_LEVEL"              envDefault:"info"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SyncSchedule returns the category resync schedule, or "" when disabled.
func (c Config) SyncSchedule() string {
	s := strings.TrimSpace(c.CategorySyncSchedule)
	if strings.EqualFold(s, "off") {
		return ""
	}
	if s == "" {
		return jobs.DefaultCategorySyncSchedule
	}
	return s
}

// ValidateServer checks the settings only the HTTP server needs.
func (c Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return ErrJWTSecretRequired
	}
	return nil
}

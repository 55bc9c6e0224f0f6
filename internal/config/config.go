// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DisplayTimezone string        `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PSQL PSQLConfig
	S3   S3Settings

	location *time.Location
}

// PSQLConfig is only consulted when DATABASE_URL is empty.
type PSQLConfig struct {
	Host     string `env:"PSQL_HOST" envDefault:"localhost"`
	Port     string `env:"PSQL_PORT" envDefault:"5432"`
	User     string `env:"PSQL_USER" envDefault:"postgres"`
	Password string `env:"PSQL_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"PSQL_DB_NAME" envDefault:"fyyur"`
}

type S3Settings struct {
	Region          string `env:"AWS_REGION"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Bucket          string `env:"S3_BUCKET_NAME"`
	PublicBaseURL   string `env:"S3_PUBLIC_BASE_URL"`
}

// Load reads an optional .env file from the working directory and then
// parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = cfg.PSQL.URL()
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}
	cfg.location = loc

	return &cfg, nil
}

// Location is the zone start times are displayed in. UTC unless Load
// resolved DISPLAY_TIMEZONE.
func (c *Config) Location() *time.Location {
	if c == nil || c.location == nil {
		return time.UTC
	}
	return c.location
}

// URL builds a postgres connection URL with sslmode disabled.
func (p PSQLConfig) URL() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   p.Host + ":" + p.Port,
		Path:   p.DBName,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

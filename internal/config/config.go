package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Mistral  MistralConfig
	Digest   DigestConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	FrontendURL   string
	DefaultLocale string
}

type MistralConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DigestConfig controls the scheduled attendance post. An empty WebhookURL
// disables it. PostAt is the local "HH:MM" before which ticks are skipped.
type DigestConfig struct {
	WebhookURL string
	Interval   time.Duration
	PostAt     string
}

// PostAtOffset returns PostAt as a duration since local midnight.
func (d DigestConfig) PostAtOffset() time.Duration {
	t, err := time.Parse("15:04", d.PostAt)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "daily_report"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "ja"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	config.Mistral = MistralConfig{
		APIKey:  getEnv("MISTRAL_API_KEY", ""),
		Model:   getEnv("MISTRAL_MODEL", "mistral-medium"),
		BaseURL: getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai"),
	}

	digestInterval, err := time.ParseDuration(getEnv("ATTENDANCE_DIGEST_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DIGEST_INTERVAL: %w", err)
	}
	config.Digest = DigestConfig{
		WebhookURL: getEnv("ATTENDANCE_WEBHOOK_URL", ""),
		Interval:   digestInterval,
		PostAt:     getEnv("ATTENDANCE_DIGEST_AT", "10:00"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Digest.WebhookURL != "" && c.Digest.Interval <= 0 {
		return fmt.Errorf("ATTENDANCE_DIGEST_INTERVAL must be positive")
	}
	if c.Digest.WebhookURL != "" && !validator.IsValidClock(c.Digest.PostAt) {
		return fmt.Errorf("invalid ATTENDANCE_DIGEST_AT %q, expected HH:MM", c.Digest.PostAt)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Database.SSLMode),
	}
	return u.String()
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

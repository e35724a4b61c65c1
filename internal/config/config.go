package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackNotifyChannel string
	DatabasePath       string
	Port               string
	ShiftCatalogPath   string
	AdminPasscode      string
	JWTSecret          string
	AdminTokenTTL      time.Duration
	TickInterval       time.Duration
	DisplayLocale      string
	Timezone           string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackNotifyChannel: getEnv("SLACK_NOTIFY_CHANNEL", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./breaks.db"),
		Port:               getEnv("PORT", "3000"),
		ShiftCatalogPath:   getEnv("SHIFT_CATALOG_PATH", ""),
		AdminPasscode:      getEnv("ADMIN_PASSCODE", "12345"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminTokenTTL:      getEnvDuration("ADMIN_TOKEN_TTL", 30*time.Minute),
		TickInterval:       getEnvDuration("TICK_INTERVAL", time.Second),
		DisplayLocale:      getEnv("DISPLAY_LOCALE", "ar"),
		Timezone:           getEnv("TIMEZONE", "Local"),
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
	}
	if c.SlackSigningSecret == "" {
		errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("TICK_INTERVAL must be positive, got %s", c.TickInterval))
	}
	if c.AdminTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ADMIN_TOKEN_TTL must be positive, got %s", c.AdminTokenTTL))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location resolves TIMEZONE; slot times are wall-clock times in this zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

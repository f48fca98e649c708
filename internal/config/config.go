package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Reminder ReminderConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// JWTConfig holds JWT signing settings
type JWTConfig struct {
	PrivateKeyPath string
	PublicKeyPath  string
	ExpirationMins int
	Issuer         string
}

// ReminderConfig holds the daily event reminder scan settings
type ReminderConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Load builds the configuration from environment variables, falling back to
// development defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Server = ServerConfig{
		Port:           envString("SERVER_PORT", "8080"),
		Env:            envString("SERVER_ENV", "development"),
		ReadTimeout:    envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   envDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	cfg.Database = DatabaseConfig{
		Host:      envString("DB_HOST", "localhost"),
		Port:      envString("DB_PORT", "8000"),
		Namespace: envString("DB_NAMESPACE", "clubhub"),
		Database:  envString("DB_DATABASE", "main"),
		User:      envString("DB_USER", "root"),
		Password:  envString("DB_PASSWORD", "root"),
	}

	cfg.JWT = JWTConfig{
		PrivateKeyPath: envString("JWT_PRIVATE_KEY_PATH", "./keys/private.pem"),
		PublicKeyPath:  envString("JWT_PUBLIC_KEY_PATH", "./keys/public.pem"),
		ExpirationMins: envInt("JWT_EXPIRATION_MINS", 15),
		Issuer:         envString("JWT_ISSUER", "clubhub.forgo.software"),
	}

	cfg.Reminder = ReminderConfig{
		Enabled:  envBool("REMINDER_ENABLED", true),
		Interval: envDuration("REMINDER_INTERVAL", 24*time.Hour),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate collects every configuration problem into one joined error so a
// misconfigured deployment reports all failures at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	switch c.Server.Env {
	case "development", "production", "test":
	default:
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	for _, required := range []struct {
		name  string
		value string
	}{
		{"DB_HOST", c.Database.Host},
		{"DB_PORT", c.Database.Port},
		{"DB_NAMESPACE", c.Database.Namespace},
		{"DB_DATABASE", c.Database.Database},
	} {
		if required.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", required.name))
		}
	}

	// Development can mint throwaway keys; production must bring its own.
	if c.IsProduction() {
		if c.JWT.PrivateKeyPath == "" {
			errs = append(errs, errors.New("JWT_PRIVATE_KEY_PATH is required in production"))
		}
		if c.JWT.PublicKeyPath == "" {
			errs = append(errs, errors.New("JWT_PUBLIC_KEY_PATH is required in production"))
		}
	}
	if c.JWT.ExpirationMins <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_MINS must be positive"))
	}

	if c.Reminder.Enabled && c.Reminder.Interval <= 0 {
		errs = append(errs, errors.New("REMINDER_INTERVAL must be positive when REMINDER_ENABLED is true"))
	}

	return errors.Join(errs...)
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envList(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}

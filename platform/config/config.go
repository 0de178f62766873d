// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// StoreConfig provides document store connection settings.
type StoreConfig interface {
	GetDatabaseURL() string
	GetDatabaseName() string
}

// HTTPConfig provides settings for the HTTP server and CORS.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// NotificationConfig provides settings for submission notifications.
type NotificationConfig interface {
	GetAdminEmail() string
}

// RateLimitConfig provides settings for the public form rate limiter.
type RateLimitConfig interface {
	GetFormRateLimit() int
	GetRedisURL() string
}

// Config holds all application configuration.
type Config struct {
	Env             string
	HTTPAddr        string
	DatabaseURL     string
	DatabaseName    string
	CORSAllowAll    bool
	CORSOrigins     []string
	CORSAllowCreds  bool
	AdminEmail      string
	FormRateLimit   int
	RedisURL        string
	ShutdownTimeout time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// StoreConfig implementation
func (c *Config) GetDatabaseURL() string  { return c.DatabaseURL }
func (c *Config) GetDatabaseName() string { return c.DatabaseName }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// NotificationConfig implementation
func (c *Config) GetAdminEmail() string { return c.AdminEmail }

// RateLimitConfig implementation
func (c *Config) GetFormRateLimit() int { return c.FormRateLimit }
func (c *Config) GetRedisURL() string   { return c.RedisURL }

// Load reads configuration from the environment, after loading a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := containsWildcard(corsOrigins) || len(corsOrigins) == 0

	databaseURL := getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		databaseURL = getEnv("MONGO_URL", "")
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:     databaseURL,
		DatabaseName:    getEnv("DB_NAME", ""),
		CORSAllowAll:    corsAllowAll,
		CORSOrigins:     corsOrigins,
		CORSAllowCreds:  !corsAllowAll && strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "hello@gadgethavenabuja.com"),
		FormRateLimit:   mustInt(getEnv("FORM_RATE_LIMIT", "0")),
		RedisURL:        getEnv("REDIS_URL", ""),
		ShutdownTimeout: mustDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL (or MONGO_URL) is required")
	}
	if isMongoURL(cfg.DatabaseURL) && cfg.DatabaseName == "" {
		return nil, fmt.Errorf("DB_NAME is required for a MongoDB connection string")
	}
	if cfg.FormRateLimit < 0 {
		return nil, fmt.Errorf("FORM_RATE_LIMIT must not be negative")
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

func isMongoURL(value string) bool {
	return strings.HasPrefix(value, "mongodb://") || strings.HasPrefix(value, "mongodb+srv://")
}

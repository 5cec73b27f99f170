// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, database, auth, and email

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Database contains durable storage configuration
	Database DatabaseConfig

	// Auth contains token signing configuration
	Auth AuthConfig

	// Email contains outbound email configuration
	Email EmailConfig

	// LogLevel controls logging verbosity
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// DatabaseConfig holds durable storage configuration
type DatabaseConfig struct {
	// Path is the SQLite database file path
	Path string
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	// JWTSecret signs and verifies access tokens
	JWTSecret string

	// TokenTTLMinutes is the access token lifetime in minutes
	TokenTTLMinutes int

	// ResetURL is the base URL embedded in password reset emails
	ResetURL string
}

// EmailConfig holds outbound email configuration
type EmailConfig struct {
	// Mode selects the mailer backend (smtp/log)
	Mode string

	// SMTPHost is the SMTP relay host
	SMTPHost string

	// SMTPPort is the SMTP relay port
	SMTPPort int

	// SMTPUser is the SMTP auth username (optional)
	SMTPUser string

	// SMTPPassword is the SMTP auth password
	SMTPPassword string

	// From is the sender address
	From string

	// Workers is the delivery worker pool size
	Workers int

	// QueueSize is the delivery queue capacity
	QueueSize int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Database: DatabaseConfig{
			Path: getEnvOrDefault("DATABASE_PATH", "inkwell.db"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnvOrDefault("JWT_SECRET", ""),
			TokenTTLMinutes: getEnvAsIntOrDefault("TOKEN_TTL_MINUTES", 60),
			ResetURL:        getEnvOrDefault("PASSWORD_RESET_URL", "http://localhost:8000/reset"),
		},
		Email: EmailConfig{
			Mode:         getEnvOrDefault("EMAIL_MODE", "log"),
			SMTPHost:     getEnvOrDefault("SMTP_HOST", ""),
			SMTPPort:     getEnvAsIntOrDefault("SMTP_PORT", 587),
			SMTPUser:     getEnvOrDefault("SMTP_USER", ""),
			SMTPPassword: getEnvOrDefault("SMTP_PASSWORD", ""),
			From:         getEnvOrDefault("EMAIL_FROM", "noreply@example.com"),
			Workers:      getEnvAsIntOrDefault("EMAIL_WORKERS", 4),
			QueueSize:    getEnvAsIntOrDefault("EMAIL_QUEUE_SIZE", 100),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("jwt secret cannot be empty")
	}

	if c.Auth.TokenTTLMinutes < 1 {
		return errors.New("token ttl must be at least 1 minute")
	}

	if c.Email.Mode != "smtp" && c.Email.Mode != "log" {
		return errors.New("email mode must be 'smtp' or 'log'")
	}

	if c.Email.Mode == "smtp" && c.Email.SMTPHost == "" {
		return errors.New("smtp host cannot be empty when using smtp email")
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Auth contains authentication configuration
	Auth AuthConfig
	// Database contains database configuration
	Database DatabaseConfig
	// Janitor contains background cleanup configuration
	Janitor JanitorConfig

	// Rate Limiting Configuration
	RateLimit struct {
		Requests int // Number of requests allowed per window
		Window   int // Time window in seconds
		Burst    int // Maximum burst size
	}
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname
	Host string
	// Port is the database server port
	Port int
	// User is the database username
	User string
	// Password is the database password
	Password string
	// DBName is the database name
	DBName string
	// SSLMode is the SSL mode for the database connection
	SSLMode string
	// MigrationsPath is the path to database migrations
	MigrationsPath string
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	// JWTSecret is the secret key used to sign JWT tokens
	JWTSecret string
	// MaxLoginAttempts is the failed-attempt threshold that locks an account
	MaxLoginAttempts int
	// LockoutMinutes is the length of the lockout window in minutes
	LockoutMinutes int
	// AtomicLockout switches the failure counter to a single-statement
	// SQL increment instead of read-modify-write
	AtomicLockout bool
	// RegistrationOpen determines if new user registration is allowed
	RegistrationOpen bool
}

// JanitorConfig contains background cleanup settings
type JanitorConfig struct {
	// Schedule is the cron expression for cleanup runs
	Schedule string
	// AuditRetentionDays is how long audit log rows are kept
	AuditRetentionDays int
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port: getEnvOrDefault("API_PORT", "8080"),
	}
	c.Database = DatabaseConfig{
		Host:           getEnvOrDefault("DB_HOST", "localhost"),
		Port:           getEnvAsInt("DB_PORT", 5432),
		User:           getEnvOrDefault("DB_USER", "postgres"),
		Password:       getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getEnvOrDefault("DB_NAME", "hrhub"),
		SSLMode:        getEnvOrDefault("DB_SSL_MODE", "disable"),
		MigrationsPath: getEnvOrDefault("DB_MIGRATIONS_PATH", "migrations"),
	}
	c.Auth = AuthConfig{
		JWTSecret:        os.Getenv("JWT_SECRET"),
		MaxLoginAttempts: getEnvAsInt("AUTH_MAX_LOGIN_ATTEMPTS", 5),
		LockoutMinutes:   getEnvAsInt("AUTH_LOCKOUT_MINUTES", 15),
		AtomicLockout:    getEnvAsBool("AUTH_ATOMIC_LOCKOUT", false),
		RegistrationOpen: getEnvAsBool("REGISTRATION_OPEN", true),
	}
	c.Janitor = JanitorConfig{
		Schedule:           getEnvOrDefault("JANITOR_SCHEDULE", "0 3 * * *"),
		AuditRetentionDays: getEnvAsInt("JANITOR_AUDIT_RETENTION_DAYS", 90),
	}

	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.MaxLoginAttempts < 1 {
		return fmt.Errorf("AUTH_MAX_LOGIN_ATTEMPTS must be at least 1")
	}
	if c.Auth.LockoutMinutes < 1 {
		return fmt.Errorf("AUTH_LOCKOUT_MINUTES must be at least 1")
	}

	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

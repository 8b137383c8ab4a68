package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadFromEnv tests loading configuration from environment variables
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.NoError(t, err)

	// Defaults
	require.Equal(t, "8080", cfg.API.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, "test_secret_key", cfg.Auth.JWTSecret)
	require.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	require.Equal(t, 15, cfg.Auth.LockoutMinutes)
	require.False(t, cfg.Auth.AtomicLockout)
	require.True(t, cfg.Auth.RegistrationOpen)
	require.Equal(t, "0 3 * * *", cfg.Janitor.Schedule)
	require.Equal(t, 90, cfg.Janitor.AuditRetentionDays)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key")
	t.Setenv("AUTH_MAX_LOGIN_ATTEMPTS", "3")
	t.Setenv("AUTH_LOCKOUT_MINUTES", "30")
	t.Setenv("AUTH_ATOMIC_LOCKOUT", "true")
	t.Setenv("DB_NAME", "hrhub_test")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
	require.Equal(t, 30, cfg.Auth.LockoutMinutes)
	require.True(t, cfg.Auth.AtomicLockout)
	require.Equal(t, "hrhub_test", cfg.Database.DBName)
}

func TestLoadFromEnv_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadFromEnv_InvalidThreshold(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret_key")
	t.Setenv("AUTH_MAX_LOGIN_ATTEMPTS", "0")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "AUTH_MAX_LOGIN_ATTEMPTS")
}

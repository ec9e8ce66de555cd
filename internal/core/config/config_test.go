package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("BACKEND_URL")
	os.Unsetenv("BACKEND_API_KEY")
	os.Unsetenv("BACKEND_TIMEOUT_SECONDS")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	// No backend configured by default.
	assert.Equal(t, "", cfg.Backend.URL)
	assert.Equal(t, 10, cfg.Backend.TimeoutSeconds)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://redis.internal:6379/1")
	os.Setenv("BACKEND_URL", "https://backend.example.com")
	os.Setenv("BACKEND_API_KEY", "sk_test_123")
	os.Setenv("BACKEND_TIMEOUT_SECONDS", "30")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("BACKEND_URL")
		os.Unsetenv("BACKEND_API_KEY")
		os.Unsetenv("BACKEND_TIMEOUT_SECONDS")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://redis.internal:6379/1", cfg.Redis.URL)
	assert.Equal(t, "https://backend.example.com", cfg.Backend.URL)
	assert.Equal(t, "sk_test_123", cfg.Backend.APIKey)
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
REDIS_URL=redis://staging-redis:6379/0
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "redis://staging-redis:6379/0", cfg.Redis.URL)
}

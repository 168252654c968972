package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "pos")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pos")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadConfig_DefaultPort(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	os.Unsetenv("APP_PORT")
	t.Setenv("APP_PORT", "")

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.AppPort)
}

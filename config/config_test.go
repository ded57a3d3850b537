package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	os.Setenv("ENV", "test")
	os.Setenv("PLATEFULL_DATABASE_HOST", "db.internal")
	os.Setenv("PLATEFULL_DATABASE_PORT", "5433")
	os.Setenv("PLATEFULL_DATABASE_NAME", "platefull_test")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("LLM_API_KEY", "test-key")
	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("PLATEFULL_DATABASE_HOST")
		os.Unsetenv("PLATEFULL_DATABASE_PORT")
		os.Unsetenv("PLATEFULL_DATABASE_NAME")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("LLM_API_KEY")
	}()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "platefull_test", cfg.Database.Name)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "dbname=platefull_test")
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("ENV", "test")
	defer os.Unsetenv("ENV")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
}

func TestValidateRejectsBadRateLimit(t *testing.T) {
	os.Setenv("ENV", "test")
	defer os.Unsetenv("ENV")

	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		Database:  DatabaseConfig{Host: "localhost", Name: "platefull"},
		RateLimit: RateLimitConfig{Requests: 0, Window: time.Hour},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit.requests: must be positive")
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{Field: "jwt.secret", Message: "is required"}
	assert.Equal(t, "jwt.secret: is required", err.Error())
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")

	assert.True(t, IsDevelopment())
	assert.False(t, IsProduction())
	assert.False(t, IsTest())
}

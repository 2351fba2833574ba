package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "ENV", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_ACCESS_TTL", "CORS_ALLOWED_ORIGINS", "PUBLIC_BASE_URL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "bookify.db", cfg.DatabaseURL)
	assert.Equal(t, 12*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://bookify@localhost/bookify")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("PUBLIC_BASE_URL", "https://api.bookify.example")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://bookify@localhost/bookify", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "https://api.bookify.example", cfg.PublicBaseURL)
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_ACCESS_TTL", "soon")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_ACCESS_TTL")
}

func TestFromEnvRejectsNonPositiveDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "0s")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
}

func TestFromEnvProdRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

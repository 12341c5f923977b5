package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/cde/python-api/internal/vault"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ENVIRONMENT", "PORT", "LOG_LEVEL", "LOG_FORMAT", "VAULT_SECRET_PATH",
		"RATE_LIMIT", "REDIS_URL", "CORS_ALLOWED_ORIGINS", "TRUSTED_PROXIES", "METRICS_ENABLED", "SWAGGER_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, vault.DefaultSecretPath, cfg.VaultSecretPath)
	assert.Empty(t, cfg.RateLimit)
	assert.False(t, cfg.RateLimitEnabled())
	assert.Nil(t, cfg.TrustedProxies)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.RedisURL)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.SwaggerEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("VAULT_SECRET_PATH", "/tmp/secrets/config")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SWAGGER_ENABLED", "1")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/secrets/config", cfg.VaultSecretPath)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.TrustedProxies)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.SwaggerEnabled)
}

func TestLoadEnvironmentVariables_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		msg  string
	}{
		{"environment", "ENVIRONMENT", "staging", "Environment"},
		{"port", "PORT", "http", "Port"},
		{"log level", "LOG_LEVEL", "verbose", "LogLevel"},
		{"log format", "LOG_FORMAT", "xml", "LogFormat"},
		{"rate limit", "RATE_LIMIT", "lots", "RATE_LIMIT"},
		{"bool", "METRICS_ENABLED", "maybe", "METRICS_ENABLED"},
		{"redis url", "REDIS_URL", "not a url", "RedisURL"},
		{"cors empty", "CORS_ALLOWED_ORIGINS", " , ", "CORSAllowedOrigins"},
		{"trusted proxies", "TRUSTED_PROXIES", "10.0.0.0/8,proxy.internal", "TrustedProxies"},
		{"cors scheme", "CORS_ALLOWED_ORIGINS", "app.example", "CORS_ALLOWED_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadEnvironmentVariables()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

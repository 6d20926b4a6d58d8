package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envKeys {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Database.RunMigrations)
	assert.Equal(t, 60*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, "offers", cfg.Storage.KeyPrefix)
	assert.Equal(t, "eur", cfg.Stripe.Currency)
	assert.Equal(t, 10*time.Second, cfg.Stripe.Timeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:market.db")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("S3_BUCKET", "pictures")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test")
	t.Setenv("STRIPE_CURRENCY", "usd")
	t.Setenv("PAYMENT_TIMEOUT", "2s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:market.db", cfg.Database.URL)
	assert.False(t, cfg.Database.RunMigrations)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, "pictures", cfg.Storage.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "sk_test", cfg.Stripe.SecretKey)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 2*time.Second, cfg.Stripe.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Server.Port = "3000"
		c.Database.Driver = "postgres"
		c.Database.URL = "postgres://localhost/market"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing database url", func(c *Config) { c.Database.URL = " " }, "DATABASE_URL is required"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, `DATABASE_DRIVER "mysql" is not supported`},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

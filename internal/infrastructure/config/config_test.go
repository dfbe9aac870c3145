package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "playbase-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "playbase", cfg.Database.DBName)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sq", cfg.Shop.DefaultLanguage)
	assert.Equal(t, "0", cfg.Shop.ShippingFee)
	assert.NotEmpty(t, cfg.JWT.Secret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PB_APP_ENV", "staging")
	t.Setenv("PB_DATABASE_HOST", "db.internal")
	t.Setenv("PB_DATABASE_PORT", "5433")
	t.Setenv("PB_SHOP_SHIPPING_FEE", "5.00")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "5.00", cfg.Shop.ShippingFee)
}

func TestProductionValidation(t *testing.T) {
	t.Run("missing jwt secret rejected", func(t *testing.T) {
		t.Setenv("PB_APP_ENV", "production")
		t.Setenv("PB_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("short jwt secret rejected", func(t *testing.T) {
		t.Setenv("PB_APP_ENV", "production")
		t.Setenv("PB_JWT_SECRET", "too-short")
		t.Setenv("PB_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("missing database password rejected", func(t *testing.T) {
		t.Setenv("PB_APP_ENV", "production")
		t.Setenv("PB_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("complete production config accepted", func(t *testing.T) {
		t.Setenv("PB_APP_ENV", "production")
		t.Setenv("PB_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("PB_DATABASE_PASSWORD", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pw",
		DBName:   "playbase",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=playbase sslmode=disable", db.DSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}

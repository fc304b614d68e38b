package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/config"
	"recipeshare/pkg/logger"
)

func TestLoad(t *testing.T) {
	err := logger.InitGlobalLoggerWithLevel(logger.Development, "info")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load(ctx)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.GetAddress())
		assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
		assert.Equal(t, "HS256", cfg.JWT.Algorithm)
		assert.Equal(t, 30, cfg.JWT.AccessTokenExpireMinutes)
		assert.Equal(t, 30*time.Minute, cfg.JWT.GetAccessTokenTTL())
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("API_HTTP_PORT", "9090")
		t.Setenv("API_POSTGRES_HOST", "testhost")
		t.Setenv("API_POSTGRES_PORT", "5555")
		t.Setenv("API_POSTGRES_DB", "testdb")
		t.Setenv("SECRET_KEY", "override-secret")
		t.Setenv("ALGORITHM", "HS256")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
		t.Setenv("API_REDIS_ENABLED", "true")
		t.Setenv("API_LOGGER_MODE", "production")

		cfg, err := config.Load(ctx)

		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.Equal(t, "testhost", cfg.Postgres.Host)
		assert.Equal(t, 5555, cfg.Postgres.Port)
		assert.Contains(t, cfg.Postgres.GetDSN(), "dbname=testdb")
		assert.Contains(t, cfg.Postgres.GetConnectionURL(), "testhost:5555/testdb")
		assert.Equal(t, "override-secret", cfg.JWT.SecretKey)
		assert.Equal(t, 45*time.Minute, cfg.JWT.GetAccessTokenTTL())
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
	})

	t.Run("non-positive token lifetime falls back to the default", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")

		cfg, err := config.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.JWT.GetAccessTokenTTL())
	})
}

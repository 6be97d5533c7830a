package config_test

import (
	"testing"

	"hotel/config"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "50")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")

	cfg := config.Get()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.True(t, cfg.App.RateLimiter.Enable)
	assert.Equal(t, 50, cfg.App.RateLimiter.MaxRequests)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)

	// defaults
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "hotel-booking", cfg.App.Name)
	assert.Equal(t, 10, cfg.DB.Postgres.MaxOpenConns)

	assert.Same(t, cfg, config.Get(), "expected Get to return the same instance")
}

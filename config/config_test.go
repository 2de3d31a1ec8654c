package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MONGO_URI", "MONGO_DB", "REDIS_URL", "CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "APP_ENV"} {
		t.Setenv(k, "")
	}

	cfg, _ := Load()
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "gourmet", cfg.MongoDB)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.Development())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_BURST", "nope")
	t.Setenv("APP_ENV", "development")

	cfg, _ := Load()
	assert.Equal(t, ":3000", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.True(t, cfg.Development())
}

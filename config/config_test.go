package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "CACHE_BACKEND", "DATABASE_PATH", "JWT_SECRET", "AUTH_REQUIRED", "CACHE_TTL"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "8080")

	LoadConfig()
	require.NotNil(t, Cfg)

	assert.Equal(t, "8080", Cfg.Port)
	assert.Equal(t, CacheBackendMemory, Cfg.CacheBackend)
	assert.Equal(t, 10*time.Minute, Cfg.CacheTTL)
	assert.Empty(t, Cfg.DatabasePath)
	assert.False(t, Cfg.AuthRequired)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_BACKEND", "REDIS")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("PRODUCT_SERVICE_URL", "http://products:8084/api/products/")
	t.Setenv("RATE_LIMIT_CAPACITY", "25")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AUTH_REQUIRED", "true")

	LoadConfig()

	assert.Equal(t, "9090", Cfg.Port)
	assert.Equal(t, CacheBackendRedis, Cfg.CacheBackend)
	assert.Equal(t, "cache:6379", Cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, Cfg.CacheTTL)
	assert.Equal(t, 2*time.Second, Cfg.UpstreamTimeout)
	assert.Equal(t, "http://products:8084/api/products", Cfg.ProductServiceURL)
	assert.Equal(t, 25, Cfg.RateLimitCapacity)
	assert.True(t, Cfg.AuthRequired)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CACHE_BACKEND", "memcached")
	t.Setenv("CACHE_TTL", "ten minutes")
	t.Setenv("RATE_LIMIT_CAPACITY", "-3")
	t.Setenv("AUTH_REQUIRED", "maybe")
	t.Setenv("JWT_SECRET", "")

	LoadConfig()

	assert.Equal(t, CacheBackendMemory, Cfg.CacheBackend)
	assert.Equal(t, 10*time.Minute, Cfg.CacheTTL)
	assert.Equal(t, 10, Cfg.RateLimitCapacity)
	assert.False(t, Cfg.AuthRequired)
}

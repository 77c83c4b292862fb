package repository

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the single-process CacheRepository used when no Redis is
// configured.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache expires entries after ttl; 0 keeps them until deleted.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	expiration := ttl
	cleanup := ttl * 2
	if ttl <= 0 {
		expiration = gocache.NoExpiration
		cleanup = 0
	}
	return &MemoryCache{
		items: gocache.New(expiration, cleanup),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.items.Get(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.items.SetDefault(key, value)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *MemoryCache) Len() int {
	return m.items.ItemCount()
}

package tenantresolver

import (
	"sync"
	"time"

	"github.com/onespirit/onespirit/internal/pkg/cache"
)

// Cache is the lookup cache used by the resolver. Get reports a miss through
// its second return value; writes are best effort and must never fail the
// lookup itself.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Delete(key string)
}

// redisCache adapts the shared Redis cache to the resolver Cache interface.
type redisCache struct{}

// NewRedisCache returns a Cache backed by the application Redis client.
func NewRedisCache() Cache {
	return redisCache{}
}

func (redisCache) Get(key string) (string, bool) {
	val, err := cache.Get(key)
	if err != nil {
		return "", false
	}
	return val, true
}

func (redisCache) Set(key string, value string, ttl time.Duration) {
	// Lookup caching is best effort; a write failure only costs a re-read.
	_ = cache.Set(key, value, ttl)
}

func (redisCache) Delete(key string) {
	_ = cache.Delete(key)
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process Cache used in tests and single-node setups.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(key string, value string, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
}

func (m *MemoryCache) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

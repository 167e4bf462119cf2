package news_cache_gateway

import (
	"sync"
	"time"
)

// memoryCache is the in-process fallback tier. It mirrors the TTL semantics
// of the external store so callers cannot tell which tier served them.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func newMemoryCache(now func() time.Time) *memoryCache {
	if now == nil {
		now = time.Now
	}
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (m *memoryCache) get(key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *memoryCache) set(key, value string, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	m.mu.Unlock()
}

func (m *memoryCache) del(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// Package news_cache_gateway implements the two-tier cache layer: an
// external TTL store first, an in-process map when the store is missing or
// failing. The fallback is silent; callers only see get/set/invalidate.
package news_cache_gateway

import (
	"context"
	"encoding/json"
	"time"

	"ainews/domain"
	"ainews/driver/redis_driver"
	"ainews/utils/logger"
)

// NewsCacheGateway implements news_cache_port.NewsCachePort and
// news_cache_port.PostedStorePort.
type NewsCacheGateway struct {
	redis     *redis_driver.RedisDriver // nil when the external store is disabled
	memory    *memoryCache
	newsKey   string
	postedKey string
	newsTTL   time.Duration
	postedTTL time.Duration
	postedMax int
}

// Options configures key namespaces and TTLs.
type Options struct {
	KeyPrefix string
	NewsTTL   time.Duration
	PostedTTL time.Duration
	PostedMax int
	// Now overrides the clock for the in-process tier. Tests only.
	Now func() time.Time
}

// NewNewsCacheGateway builds the gateway. A nil redis driver is valid: the
// gateway then runs entirely on the in-process tier.
func NewNewsCacheGateway(redis *redis_driver.RedisDriver, opts Options) *NewsCacheGateway {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "ainews"
	}
	return &NewsCacheGateway{
		redis:     redis,
		memory:    newMemoryCache(opts.Now),
		newsKey:   prefix + ":news:items",
		postedKey: prefix + ":social:posted",
		newsTTL:   opts.NewsTTL,
		postedTTL: opts.PostedTTL,
		postedMax: opts.PostedMax,
	}
}

// cachedNews is the wholesale-replaced cache value. Readers never observe a
// partially written list.
type cachedNews struct {
	Items    []domain.NewsItem `json:"items"`
	CachedAt time.Time         `json:"cachedAt"`
}

// GetItems returns the cached aggregated list and true on a fresh hit.
func (g *NewsCacheGateway) GetItems(ctx context.Context) ([]domain.NewsItem, bool) {
	raw, ok := g.load(ctx, g.newsKey)
	if !ok {
		return nil, false
	}

	var cached cachedNews
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		logger.Logger.Warn("discarding undecodable news cache entry", "error", err)
		g.Invalidate(ctx)
		return nil, false
	}
	return cached.Items, true
}

// SetItems unconditionally overwrites the cached list and resets freshness.
func (g *NewsCacheGateway) SetItems(ctx context.Context, items []domain.NewsItem) {
	payload, err := json.Marshal(cachedNews{
		Items:    items,
		CachedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Logger.Error("failed to encode news cache entry", "error", err)
		return
	}
	g.store(ctx, g.newsKey, string(payload), g.newsTTL)
}

// Invalidate forces the next GetItems to miss.
func (g *NewsCacheGateway) Invalidate(ctx context.Context) {
	if g.redis != nil {
		if err := g.redis.Del(ctx, g.newsKey); err != nil {
			logger.Logger.Warn("redis delete failed, falling back to memory tier", "error", err)
		}
	}
	g.memory.del(g.newsKey)
}

// GetPostedIDs returns the already-posted article IDs, oldest first.
func (g *NewsCacheGateway) GetPostedIDs(ctx context.Context) []string {
	raw, ok := g.load(ctx, g.postedKey)
	if !ok {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Logger.Warn("discarding undecodable posted-id entry", "error", err)
		return nil
	}
	return ids
}

// AddPostedID appends id to the posted set, dropping the oldest entries past
// the hard cap. Each write refreshes the long TTL.
func (g *NewsCacheGateway) AddPostedID(ctx context.Context, id string) {
	ids := g.GetPostedIDs(ctx)
	for _, existing := range ids {
		if existing == id {
			return
		}
	}

	ids = append(ids, id)
	if len(ids) > g.postedMax {
		ids = ids[len(ids)-g.postedMax:]
	}

	payload, err := json.Marshal(ids)
	if err != nil {
		logger.Logger.Error("failed to encode posted-id entry", "error", err)
		return
	}
	g.store(ctx, g.postedKey, string(payload), g.postedTTL)
}

// load tries the external store first and degrades to the memory tier on any
// error. Store errors never surface to callers.
func (g *NewsCacheGateway) load(ctx context.Context, key string) (string, bool) {
	if g.redis != nil {
		value, err := g.redis.Get(ctx, key)
		if err == nil {
			return value, true
		}
		if redis_driver.IsNil(err) {
			return "", false
		}
		logger.Logger.Warn("redis get failed, falling back to memory tier",
			"key", key,
			"error", err,
		)
	}
	return g.memory.get(key)
}

func (g *NewsCacheGateway) store(ctx context.Context, key, value string, ttl time.Duration) {
	if g.redis != nil {
		err := g.redis.Set(ctx, key, value, ttl)
		if err == nil {
			// Keep the memory tier coherent for later degraded reads.
			g.memory.set(key, value, ttl)
			return
		}
		logger.Logger.Warn("redis set failed, falling back to memory tier",
			"key", key,
			"error", err,
		)
	}
	g.memory.set(key, value, ttl)
}

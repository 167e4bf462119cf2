package news_cache_port

import (
	"ainews/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache_port.go -destination=../../mocks/mock_news_cache_port.go -package=mocks

// NewsCachePort holds the last fully-aggregated item list. Store failures
// degrade to an in-process fallback and are never surfaced to callers.
type NewsCachePort interface {
	// GetItems returns the cached list and true on a fresh hit.
	GetItems(ctx context.Context) ([]domain.NewsItem, bool)
	// SetItems overwrites the cached list wholesale and resets freshness.
	SetItems(ctx context.Context, items []domain.NewsItem)
	// Invalidate forces the next GetItems to miss.
	Invalidate(ctx context.Context)
}

// PostedStorePort records article IDs already pushed to the social platform.
// The stored set is FIFO-capped and expires on its own long TTL.
type PostedStorePort interface {
	GetPostedIDs(ctx context.Context) []string
	AddPostedID(ctx context.Context, id string)
}

package fetch_feed_port

import (
	"ainews/domain"
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort retrieves and normalizes one feed. Failures are per-feed and
// non-fatal: a timeout or parse error yields an empty slice, never an error.
type FetchFeedPort interface {
	FetchFeed(ctx context.Context, descriptor domain.FeedDescriptor) []domain.NewsItem
}

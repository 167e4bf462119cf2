// Package feed_driver handles the actual network access to RSS/Atom sources.
package feed_driver

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedDriver fetches and parses remote feeds with a bounded timeout.
type FeedDriver struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewFeedDriver creates a driver with a shared HTTP client. The timeout
// bounds every fetch; a feed that cannot answer in time is skipped.
func NewFeedDriver(timeout time.Duration) *FeedDriver {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "ainews-aggregator/1.0"

	return &FeedDriver{
		parser:  parser,
		timeout: timeout,
	}
}

// ParseURL fetches one feed. The context carries the per-feed deadline; the
// caller treats any error as "zero items from this feed".
func (d *FeedDriver) ParseURL(ctx context.Context, url string) (*gofeed.Feed, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	return d.parser.ParseURLWithContext(url, fetchCtx)
}

// Package aggregate_news_usecase runs the fetch-translate-classify-sort-cache
// cycle over the feed registry.
package aggregate_news_usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ainews/classifier"
	"ainews/domain"
	"ainews/port/fetch_feed_port"
	"ainews/port/news_cache_port"
	"ainews/port/translate_port"
	"ainews/utils/htmlutil"
	"ainews/utils/logger"
)

const (
	titleMaxRunes   = 120
	summaryMaxRunes = 200
)

// AggregateNewsUsecase owns the news cache: it is the only writer.
type AggregateNewsUsecase struct {
	registry   []domain.FeedDescriptor
	fetcher    fetch_feed_port.FetchFeedPort
	translator translate_port.TranslatePort
	cache      news_cache_port.NewsCachePort
	batchSize  int
}

func NewAggregateNewsUsecase(
	registry []domain.FeedDescriptor,
	fetcher fetch_feed_port.FetchFeedPort,
	translator translate_port.TranslatePort,
	cache news_cache_port.NewsCachePort,
	batchSize int,
) *AggregateNewsUsecase {
	if batchSize < 1 {
		batchSize = 1
	}
	return &AggregateNewsUsecase{
		registry:   registry,
		fetcher:    fetcher,
		translator: translator,
		cache:      cache,
		batchSize:  batchSize,
	}
}

// Execute returns the aggregated item list, served from cache when fresh.
func (u *AggregateNewsUsecase) Execute(ctx context.Context) ([]domain.NewsItem, error) {
	if items, ok := u.cache.GetItems(ctx); ok {
		logger.Logger.Debug("aggregation served from cache", "items", len(items))
		return items, nil
	}
	return u.Refresh(ctx)
}

// Refresh bypasses the cache check: it always re-fetches every feed and
// rewrites the cached list. Used by the cron trigger to keep the cache warm.
func (u *AggregateNewsUsecase) Refresh(ctx context.Context) ([]domain.NewsItem, error) {
	start := time.Now()

	items := u.fetchAll(ctx, u.registry)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u.processItems(ctx, items)

	// Stable sort keeps relative feed order on publish-date ties, so a
	// cycle's output order is deterministic.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	u.cache.SetItems(ctx, items)

	logger.Logger.Info("aggregation cycle completed",
		"feeds", len(u.registry),
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return items, nil
}

// FetchBySource returns cached items whose source name contains name
// (case-insensitive). When nothing matches from the cache, the matching
// registry feeds are fetched live.
func (u *AggregateNewsUsecase) FetchBySource(ctx context.Context, name string) ([]domain.NewsItem, error) {
	needle := strings.ToLower(name)

	if cached, ok := u.cache.GetItems(ctx); ok {
		var matched []domain.NewsItem
		for _, item := range cached {
			if strings.Contains(strings.ToLower(item.SourceName), needle) {
				matched = append(matched, item)
			}
		}
		if len(matched) > 0 {
			return matched, nil
		}
	}

	var descriptors []domain.FeedDescriptor
	for _, d := range u.registry {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			descriptors = append(descriptors, d)
		}
	}
	if len(descriptors) == 0 {
		return []domain.NewsItem{}, nil
	}

	items := u.fetchAll(ctx, descriptors)
	u.processItems(ctx, items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

// fetchAll runs the batched parallel fetch. The concurrency cap bounds
// in-flight fetches; one feed's failure contributes zero items and never
// fails the cycle. Results keep registry order before sorting.
func (u *AggregateNewsUsecase) fetchAll(ctx context.Context, descriptors []domain.FeedDescriptor) []domain.NewsItem {
	results := make([][]domain.NewsItem, len(descriptors))

	g := new(errgroup.Group)
	g.SetLimit(u.batchSize)
	for i, descriptor := range descriptors {
		i, descriptor := i, descriptor
		g.Go(func() error {
			results[i] = u.fetcher.FetchFeed(ctx, descriptor)
			return nil
		})
	}
	// Fetch goroutines never return errors; failures are per-feed.
	_ = g.Wait()

	var items []domain.NewsItem
	for _, batch := range results {
		items = append(items, batch...)
	}
	return items
}

// processItems translates English items and classifies everything in place.
func (u *AggregateNewsUsecase) processItems(ctx context.Context, items []domain.NewsItem) {
	for i := range items {
		item := &items[i]

		plainContent := htmlutil.ExtractText(item.Content)

		// Classification runs on pre-translation text over the full body,
		// not just the bounded summary; the rule table carries both English
		// and Japanese keywords.
		matched := classifier.Classify(item.Title, item.Summary+" "+plainContent)
		item.Categories = classifier.MergeCategories(matched, item.Categories)

		if item.SourceLanguage == domain.LanguageJapanese {
			continue
		}

		item.OriginalTitle = item.Title
		item.OriginalSummary = item.Summary
		item.OriginalContent = item.Content

		item.Title = u.translator.Translate(ctx, item.Title, titleMaxRunes)
		item.Summary = u.translator.Translate(ctx, item.Summary, summaryMaxRunes)
		if paragraph := htmlutil.FirstParagraph(plainContent); paragraph != "" {
			item.Content = u.translator.Translate(ctx, paragraph, 0)
		}
	}
}

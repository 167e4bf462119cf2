// Package fetch_feed_gateway maps raw gofeed output into domain news items.
package fetch_feed_gateway

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"ainews/domain"
	"ainews/driver/feed_driver"
	"ainews/utils/htmlutil"
	"ainews/utils/logger"
)

const summaryMaxRunes = 200

// FetchFeedGateway implements fetch_feed_port.FetchFeedPort over the gofeed
// driver.
type FetchFeedGateway struct {
	driver   *feed_driver.FeedDriver
	maxItems int
}

func NewFetchFeedGateway(driver *feed_driver.FeedDriver, maxItems int) *FetchFeedGateway {
	return &FetchFeedGateway{
		driver:   driver,
		maxItems: maxItems,
	}
}

// FetchFeed retrieves one feed and normalizes its items. Timeout and parse
// failures yield an empty slice; the batch must never fail because one
// source is down.
func (g *FetchFeedGateway) FetchFeed(ctx context.Context, descriptor domain.FeedDescriptor) []domain.NewsItem {
	feed, err := g.driver.ParseURL(ctx, descriptor.URL)
	if err != nil {
		logger.Logger.Warn("feed fetch failed, contributing zero items",
			"feed", descriptor.Name,
			"url", descriptor.URL,
			"error", err,
		)
		return []domain.NewsItem{}
	}

	items := make([]domain.NewsItem, 0, g.maxItems)
	for _, raw := range feed.Items {
		if raw == nil {
			continue
		}
		if len(items) >= g.maxItems {
			break
		}

		item := g.toNewsItem(raw, descriptor)
		if descriptor.RequireKeywords && !matchesAIKeywords(item.Title+" "+item.Content) {
			continue
		}
		items = append(items, item)
	}

	logger.Logger.Info("feed fetched",
		"feed", descriptor.Name,
		"items", len(items),
	)

	return items
}

// toNewsItem selects the richest content field available, cleans it, and
// derives a stable identity.
func (g *FetchFeedGateway) toNewsItem(raw *gofeed.Item, descriptor domain.FeedDescriptor) domain.NewsItem {
	content := richestContent(raw)
	published := publishedTime(raw)

	cleanContent := htmlutil.SanitizeHTML(content)
	plainText := htmlutil.ExtractText(content)

	return domain.NewsItem{
		ID:             domain.DeriveItemID(raw.GUID, raw.Link, descriptor.Name, raw.Title, published),
		Title:          strings.TrimSpace(raw.Title),
		Link:           raw.Link,
		Content:        cleanContent,
		Summary:        htmlutil.Summarize(plainText, summaryMaxRunes),
		PublishedAt:    published,
		SourceName:     descriptor.Name,
		SourceLanguage: descriptor.Language,
		Categories:     append([]string{}, descriptor.DefaultCategories...),
	}
}

// richestContent prefers full content over description over nothing, to give
// translation and summarization the most material to work with.
func richestContent(raw *gofeed.Item) string {
	if strings.TrimSpace(raw.Content) != "" {
		return raw.Content
	}
	if strings.TrimSpace(raw.Description) != "" {
		return raw.Description
	}
	return ""
}

func publishedTime(raw *gofeed.Item) time.Time {
	if raw.PublishedParsed != nil {
		return *raw.PublishedParsed
	}
	if raw.UpdatedParsed != nil {
		return *raw.UpdatedParsed
	}
	return time.Now().UTC()
}

func matchesAIKeywords(text string) bool {
	haystack := strings.ToLower(text)
	for _, kw := range domain.AIKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

package fetch_feed_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ainews/domain"
	"ainews/driver/feed_driver"
	"ainews/utils/logger"
)

const rssTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
<title>Test Feed</title>
<link>https://example.com</link>
%s
</channel>
</rss>`

func rssItem(title, link, guid, description, content, pubDate string) string {
	encoded := ""
	if content != "" {
		encoded = "<content:encoded><![CDATA[" + content + "]]></content:encoded>"
	}
	return fmt.Sprintf(`<item>
<title>%s</title>
<link>%s</link>
<guid>%s</guid>
<description><![CDATA[%s]]></description>
%s
<pubDate>%s</pubDate>
</item>`, title, link, guid, description, encoded, pubDate)
}

func serveRSS(t *testing.T, items ...string) *httptest.Server {
	t.Helper()
	body := fmt.Sprintf(rssTemplate, strings.Join(items, "\n"))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchFeed(t *testing.T) {
	logger.InitLogger("error", "text")
	ctx := context.Background()

	t.Run("prefers full content over description", func(t *testing.T) {
		server := serveRSS(t, rssItem(
			"AI article", "https://example.com/1", "g1",
			"short description",
			"<p>Full article body about machine learning models.</p>",
			"Mon, 02 Jun 2025 10:00:00 GMT",
		))
		gateway := NewFetchFeedGateway(feed_driver.NewFeedDriver(5*time.Second), 10)

		items := gateway.FetchFeed(ctx, domain.FeedDescriptor{
			URL:               server.URL,
			Name:              "Test Feed",
			Language:          domain.LanguageEnglish,
			DefaultCategories: []string{"研究"},
		})

		require.Len(t, items, 1)
		assert.Contains(t, items[0].Content, "Full article body")
		assert.Contains(t, items[0].Summary, "Full article body about machine learning models.")
		assert.Equal(t, "Test Feed", items[0].SourceName)
		assert.Equal(t, domain.LanguageEnglish, items[0].SourceLanguage)
		assert.Equal(t, []string{"研究"}, items[0].Categories)
	})

	t.Run("caps items per feed", func(t *testing.T) {
		var rssItems []string
		for i := 0; i < 8; i++ {
			rssItems = append(rssItems, rssItem(
				fmt.Sprintf("Item %d", i),
				fmt.Sprintf("https://example.com/%d", i),
				fmt.Sprintf("g%d", i),
				"description", "",
				"Mon, 02 Jun 2025 10:00:00 GMT",
			))
		}
		server := serveRSS(t, rssItems...)
		gateway := NewFetchFeedGateway(feed_driver.NewFeedDriver(5*time.Second), 3)

		items := gateway.FetchFeed(ctx, domain.FeedDescriptor{
			URL: server.URL, Name: "Capped", Language: domain.LanguageEnglish,
		})

		assert.Len(t, items, 3)
	})

	t.Run("keyword filter drops off-topic items", func(t *testing.T) {
		server := serveRSS(t,
			rssItem("New machine learning benchmark", "https://example.com/ml", "g1",
				"A deep learning study.", "", "Mon, 02 Jun 2025 10:00:00 GMT"),
			rssItem("Quarterly earnings report", "https://example.com/qr", "g2",
				"Numbers went up.", "", "Mon, 02 Jun 2025 11:00:00 GMT"),
		)
		gateway := NewFetchFeedGateway(feed_driver.NewFeedDriver(5*time.Second), 10)

		items := gateway.FetchFeed(ctx, domain.FeedDescriptor{
			URL: server.URL, Name: "Noisy", Language: domain.LanguageEnglish,
			RequireKeywords: true,
		})

		require.Len(t, items, 1)
		assert.Equal(t, "New machine learning benchmark", items[0].Title)
	})

	t.Run("identical re-fetch yields identical ids", func(t *testing.T) {
		server := serveRSS(t, rssItem(
			"Stable item", "https://example.com/stable", "stable-guid",
			"description", "", "Mon, 02 Jun 2025 10:00:00 GMT",
		))
		gateway := NewFetchFeedGateway(feed_driver.NewFeedDriver(5*time.Second), 10)
		descriptor := domain.FeedDescriptor{URL: server.URL, Name: "Stable", Language: domain.LanguageEnglish}

		first := gateway.FetchFeed(ctx, descriptor)
		second := gateway.FetchFeed(ctx, descriptor)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
	})

	t.Run("timeout contributes zero items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer server.Close()

		gateway := NewFetchFeedGateway(feed_driver.NewFeedDriver(50*time.Millisecond), 10)

		items := gateway.FetchFeed(ctx, domain.FeedDescriptor{
			URL: server.URL, Name: "Slow", Language: domain.LanguageEnglish,
		})

		assert.Empty(t, items)
	})

	t.Run("unparsable body contributes zero items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not a feed"))
		}))
		defer server.Close()

		gateway := NewFetchFeedGateway(feed_driver.NewFeedDriver(time.Second), 10)

		items := gateway.FetchFeed(ctx, domain.FeedDescriptor{
			URL: server.URL, Name: "Broken", Language: domain.LanguageEnglish,
		})

		assert.Empty(t, items)
	})
}

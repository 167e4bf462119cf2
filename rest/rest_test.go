package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ainews/config"
	"ainews/di"
	"ainews/domain"
	"ainews/mocks"
	"ainews/usecase/aggregate_news_usecase"
	"ainews/usecase/post_news_usecase"
	"ainews/usecase/translate_usecase"
	"ainews/utils/logger"
)

// testPorts collects the mock ports behind a hand-assembled container.
type testPorts struct {
	fetcher    *mocks.MockFetchFeedPort
	translator *mocks.MockTranslatePort
	cache      *mocks.MockNewsCachePort
	posted     *mocks.MockPostedStorePort
	social     *mocks.MockSocialPostPort
}

func newTestServer(t *testing.T, cfg *config.Config) (*echo.Echo, *testPorts) {
	t.Helper()
	logger.InitLogger("error", "text")
	ctrl := gomock.NewController(t)

	ports := &testPorts{
		fetcher:    mocks.NewMockFetchFeedPort(ctrl),
		translator: mocks.NewMockTranslatePort(ctrl),
		cache:      mocks.NewMockNewsCachePort(ctrl),
		posted:     mocks.NewMockPostedStorePort(ctrl),
		social:     mocks.NewMockSocialPostPort(ctrl),
	}

	container := &di.ApplicationComponents{
		Config: cfg,
		AggregateNewsUsecase: aggregate_news_usecase.NewAggregateNewsUsecase(
			domain.DefaultFeedRegistry(),
			ports.fetcher,
			ports.translator,
			ports.cache,
			cfg.Feed.BatchSize,
		),
		TranslateUsecase: translate_usecase.NewTranslateUsecase(ports.translator),
		PostNewsUsecase: post_news_usecase.NewPostNewsUsecase(
			ports.posted,
			ports.social,
			post_news_usecase.Format(cfg.Social.TweetFormat),
		),
	}

	e := echo.New()
	RegisterRoutes(e, container, cfg)
	return e, ports
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Feed.BatchSize = 5
	cfg.Social.MaxPosts = 3
	cfg.Social.TweetFormat = "simple"
	cfg.Cron.Secret = "test-secret"
	return cfg
}

func cachedItems() []domain.NewsItem {
	published := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	return []domain.NewsItem{
		{
			ID:          "item-1",
			Title:       "生成AIの新サービス",
			Link:        "https://example.com/1",
			PublishedAt: published,
			SourceName:  "Example Feed",
			Categories:  []string{"生成AI"},
		},
		{
			ID:          "item-2",
			Title:       "機械学習の研究成果",
			Link:        "https://example.com/2",
			PublishedAt: published.Add(-time.Hour),
			SourceName:  "Example Feed",
			Categories:  []string{"機械学習", "研究"},
		},
	}
}

func doRequest(e *echo.Echo, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := doRequest(e, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGetNews(t *testing.T) {
	t.Run("returns cached items", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())
		ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)

		rec := doRequest(e, http.MethodGet, "/api/news", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var items []domain.NewsItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())
		ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)

		rec := doRequest(e, http.MethodGet, "/api/news?category=機械学習", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var items []domain.NewsItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "item-2", items[0].ID)
	})

	t.Run("limit applied", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())
		ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)

		rec := doRequest(e, http.MethodGet, "/api/news?limit=1", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var items []domain.NewsItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})
}

func TestGetNewsItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())
		ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)

		rec := doRequest(e, http.MethodGet, "/api/news/item?id=item-2", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var item domain.NewsItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, "item-2", item.ID)
	})

	t.Run("missing id is a validation failure", func(t *testing.T) {
		e, _ := newTestServer(t, testConfig())

		rec := doRequest(e, http.MethodGet, "/api/news/item", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())
		ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)

		rec := doRequest(e, http.MethodGet, "/api/news/item?id=nope", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetNewsBySource(t *testing.T) {
	e, ports := newTestServer(t, testConfig())
	ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)

	rec := doRequest(e, http.MethodGet, "/api/news/source/example", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []domain.NewsItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestTranslateEndpoint(t *testing.T) {
	t.Run("translates text", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())
		ports.translator.EXPECT().Translate(gomock.Any(), "hello", 0).Return("こんにちは")

		rec := doRequest(e, http.MethodPost, "/api/translate", `{"text":"hello"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "hello", body["original"])
		assert.Equal(t, "こんにちは", body["translated"])
	})

	t.Run("empty text rejected", func(t *testing.T) {
		e, _ := newTestServer(t, testConfig())

		rec := doRequest(e, http.MethodPost, "/api/translate", `{"text":"  "}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCronRefresh(t *testing.T) {
	t.Run("rejects missing token", func(t *testing.T) {
		e, _ := newTestServer(t, testConfig())

		rec := doRequest(e, http.MethodPost, "/api/cron/refresh", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		e, _ := newTestServer(t, testConfig())

		header := http.Header{"Authorization": []string{"Bearer wrong"}}
		rec := doRequest(e, http.MethodPost, "/api/cron/refresh", "", header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects everything when no secret is configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cron.Secret = ""
		e, _ := newTestServer(t, cfg)

		header := http.Header{"Authorization": []string{"Bearer anything"}}
		rec := doRequest(e, http.MethodPost, "/api/cron/refresh", "", header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refreshes with valid token", func(t *testing.T) {
		e, ports := newTestServer(t, testConfig())

		// Refresh re-fetches every registry feed; let them all come back empty.
		ports.fetcher.EXPECT().FetchFeed(gomock.Any(), gomock.Any()).
			Return([]domain.NewsItem{}).Times(len(domain.DefaultFeedRegistry()))
		ports.cache.EXPECT().SetItems(gomock.Any(), gomock.Any())

		header := http.Header{"Authorization": []string{"Bearer test-secret"}}
		rec := doRequest(e, http.MethodPost, "/api/cron/refresh", "", header)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["refreshed"])
	})
}

func TestPostNewsEndpoint(t *testing.T) {
	t.Run("rejected without credentials", func(t *testing.T) {
		e, _ := newTestServer(t, testConfig())

		rec := doRequest(e, http.MethodPost, "/api/social/post-news", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("posts unposted items", func(t *testing.T) {
		cfg := testConfig()
		cfg.Social.APIKey = "k"
		cfg.Social.APISecret = "s"
		cfg.Social.AccessToken = "t"
		cfg.Social.AccessSecret = "ts"
		cfg.Social.MaxPosts = 1
		e, ports := newTestServer(t, cfg)

		ports.cache.EXPECT().GetItems(gomock.Any()).Return(cachedItems(), true)
		ports.posted.EXPECT().GetPostedIDs(gomock.Any()).Return([]string{"item-1"})
		ports.social.EXPECT().Post(gomock.Any(), gomock.Any()).Return("tweet-9", nil)
		ports.posted.EXPECT().AddPostedID(gomock.Any(), "item-2")

		rec := doRequest(e, http.MethodPost, "/api/social/post-news", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Posted  int                 `json:"posted"`
			Results []domain.PostResult `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Posted)
		require.Len(t, body.Results, 1)
		assert.Equal(t, "item-2", body.Results[0].ItemID)
	})
}

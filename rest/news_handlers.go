package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ainews/di"
	"ainews/domain"
	"ainews/utils/errors"
)

const (
	defaultNewsLimit = 50
	maxNewsLimit     = 100
)

func registerNewsRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/news", handleGetNews(container))
	api.GET("/news/item", handleGetNewsItem(container))
	api.GET("/news/source/:name", handleGetNewsBySource(container))
}

func handleGetNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := container.AggregateNewsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "get_news")
		}

		if category := c.QueryParam("category"); category != "" {
			items = filterByCategory(items, category)
		}

		limit := parseLimit(c.QueryParam("limit"), defaultNewsLimit)
		if len(items) > limit {
			items = items[:limit]
		}

		return c.JSON(http.StatusOK, items)
	}
}

func handleGetNewsItem(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.QueryParam("id")
		if id == "" {
			return handleError(c, errors.ValidationError("id is required", nil), "get_news_item")
		}

		items, err := container.AggregateNewsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "get_news_item")
		}

		for _, item := range items {
			if item.ID == id {
				return c.JSON(http.StatusOK, item)
			}
		}

		return handleError(c, errors.NotFoundError("article not found", map[string]interface{}{
			"id": id,
		}), "get_news_item")
	}
}

func handleGetNewsBySource(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("name")
		if name == "" {
			return handleError(c, errors.ValidationError("source name is required", nil), "get_news_by_source")
		}

		items, err := container.AggregateNewsUsecase.FetchBySource(c.Request().Context(), name)
		if err != nil {
			return handleError(c, err, "get_news_by_source")
		}

		limit := parseLimit(c.QueryParam("limit"), defaultNewsLimit)
		if len(items) > limit {
			items = items[:limit]
		}

		return c.JSON(http.StatusOK, items)
	}
}

func handleCronRefresh(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := container.AggregateNewsUsecase.Refresh(c.Request().Context())
		if err != nil {
			return handleError(c, err, "cron_refresh")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"refreshed": true,
			"items":     len(items),
		})
	}
}

// filterByCategory keeps items with at least one category containing the
// query as a substring.
func filterByCategory(items []domain.NewsItem, category string) []domain.NewsItem {
	filtered := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		for _, tag := range item.Categories {
			if strings.Contains(tag, category) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// parseLimit clamps the limit query parameter to [1, maxNewsLimit].
func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > maxNewsLimit {
		return maxNewsLimit
	}
	return limit
}

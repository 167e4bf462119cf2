package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ainews/config"
	"ainews/di"
	"ainews/utils/errors"
)

func registerSocialRoutes(api *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	api.POST("/social/post-news", handlePostNews(container, cfg))
}

// handlePostNews runs one Social Poster pass over the latest aggregated
// items and returns per-item results.
func handlePostNews(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !cfg.SocialConfigured() {
			return handleError(c, errors.ValidationError("social platform credentials are not configured", nil), "post_news")
		}

		ctx := c.Request().Context()

		items, err := container.AggregateNewsUsecase.Execute(ctx)
		if err != nil {
			return handleError(c, err, "post_news")
		}

		results := container.PostNewsUsecase.Execute(ctx, items, cfg.Social.MaxPosts, cfg.Social.PostDelay)

		posted := 0
		for _, r := range results {
			if r.Posted {
				posted++
			}
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"posted":  posted,
			"results": results,
		})
	}
}

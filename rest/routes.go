package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ainews/config"
	"ainews/di"
	middleware_custom "ainews/middleware"
	"ainews/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later log line carries it.
	e.Use(middleware_custom.RequestIDMiddleware())

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	registerNewsRoutes(api, container)
	registerTranslateRoutes(api, container)
	registerSocialRoutes(api, container, cfg)

	// Scheduled external trigger, bearer-token guarded.
	cron := api.Group("/cron", middleware_custom.CronAuthMiddleware(cfg.Cron.Secret))
	cron.POST("/refresh", handleCronRefresh(container))
}

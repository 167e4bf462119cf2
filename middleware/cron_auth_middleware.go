package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ainews/utils/logger"
)

// CronAuthMiddleware guards the scheduled-trigger endpoints with a shared
// bearer secret. An unset secret rejects everything, so a misconfigured
// deployment fails closed.
func CronAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				logger.Logger.Error("cron endpoint called but CRON_SECRET is not configured")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "cron trigger is not configured",
				})
			}

			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				logger.Logger.Warn("cron endpoint rejected",
					"remote_addr", c.RealIP(),
					"path", c.Request().URL.Path,
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid cron token",
				})
			}

			return next(c)
		}
	}
}

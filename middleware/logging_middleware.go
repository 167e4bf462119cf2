package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"ainews/utils/logger"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// Skip logging for health check endpoint to reduce noise
			if req.URL.Path == "/api/health" {
				return next(c)
			}
			ctx := req.Context()

			contextLogger.WithContext(ctx).InfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
			)

			err := next(c)

			duration := time.Since(start)
			res := c.Response()

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"bytes_out", res.Size,
			}

			if err != nil {
				logAttrs = append(logAttrs, "error", err)
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request failed", logAttrs...)
				return err
			}

			contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", logAttrs...)
			return nil
		}
	}
}

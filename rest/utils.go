package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ainews/utils/errors"
	"ainews/utils/logger"
)

// handleError converts application errors to well-formed JSON responses.
// Transient upstream failures are absorbed at the gateway layer, so whatever
// reaches here is validation, not-found, or genuinely unexpected.
func handleError(c echo.Context, err error, operation string) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr := errors.AsAppError(err); appErr != nil {
		message = appErr.Message
		switch appErr.Code {
		case errors.ErrCodeValidation:
			status = http.StatusBadRequest
		case errors.ErrCodeNotFound:
			status = http.StatusNotFound
		case errors.ErrCodeTimeout:
			status = http.StatusGatewayTimeout
		}
	}

	logger.Logger.Error("REST handler error",
		"operation", operation,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)

	return c.JSON(status, map[string]string{"error": message})
}

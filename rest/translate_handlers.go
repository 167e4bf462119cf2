package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ainews/di"
	"ainews/utils/errors"
)

type translateRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"maxLength,omitempty"`
}

func registerTranslateRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.POST("/translate", handleTranslate(container))
}

func handleTranslate(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req translateRequest
		if err := c.Bind(&req); err != nil {
			return handleError(c, errors.ValidationError("invalid request body", nil), "translate")
		}

		result, err := container.TranslateUsecase.Execute(c.Request().Context(), req.Text, req.MaxLength)
		if err != nil {
			return handleError(c, err, "translate")
		}

		return c.JSON(http.StatusOK, result)
	}
}

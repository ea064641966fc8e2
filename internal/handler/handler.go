package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	return c.Validate(req)
}

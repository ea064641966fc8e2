package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggingCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(ContextLogger(base))
	e.Use(RequestLogger())
	e.GET("/ping", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("handled")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"message":"handled"`)
	assert.Contains(t, buf.String(), `"uri":"/ping"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

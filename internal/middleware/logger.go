package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// ContextLogger attaches a child of base carrying the request id to the request
// context. It must run after echo's RequestID middleware.
func ContextLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			l := base.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			return next(c)
		}
	}
}

// RequestLogger writes one access log line per request through the context logger.
func RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			l := zerolog.Ctx(c.Request().Context())

			evt := l.Info()
			if v.Error != nil {
				evt = l.Error().Err(v.Error)
			}

			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")

			return nil
		},
	})
}

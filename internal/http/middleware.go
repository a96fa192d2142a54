package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"essentialfeed/backend/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}

			log := logger.Debug
			switch {
			case status >= 500:
				log = logger.Error
			case status >= 400:
				log = logger.Warn
			}
			log("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			return nil
		}
	}
}

package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"essentialfeed/backend/internal/handler"
)

func NewRouter(
	feedHandler *handler.FeedHandler,
	imageHandler *handler.ImageHandler,
	cacheHandler *handler.CacheHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	feedHandler.RegisterRoutes(api)
	imageHandler.RegisterRoutes(api)
	cacheHandler.RegisterRoutes(api)

	return e
}

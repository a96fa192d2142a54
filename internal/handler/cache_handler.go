package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CacheMaintainer runs maintenance on the feed snapshot.
type CacheMaintainer interface {
	ValidateCache(ctx context.Context) error
	Clear(ctx context.Context) error
}

type CacheHandler struct {
	cache CacheMaintainer
}

func NewCacheHandler(cache CacheMaintainer) *CacheHandler {
	return &CacheHandler{cache: cache}
}

func (h *CacheHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/cache/validate", h.Validate)
	g.DELETE("/cache/feed", h.Clear)
}

// Validate evicts the snapshot when it cannot be read.
func (h *CacheHandler) Validate(c echo.Context) error {
	if err := h.cache.ValidateCache(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CacheHandler) Clear(c echo.Context) error {
	if err := h.cache.Clear(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"essentialfeed/backend/internal/dispatch"
	"essentialfeed/backend/internal/logger"
	"essentialfeed/backend/internal/model"
	"essentialfeed/backend/internal/service"
)

const warmTimeout = 5 * time.Minute

// Warmer preloads the images of a feed.
type Warmer interface {
	Warm(ctx context.Context, feed []model.FeedImage) (service.WarmReport, error)
}

type ImageHandler struct {
	pipelines Pipelines
	warmer    Warmer
	warming   sync.WaitGroup
}

func NewImageHandler(pipelines Pipelines, warmer Warmer) *ImageHandler {
	return &ImageHandler{pipelines: pipelines, warmer: warmer}
}

func (h *ImageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/images", h.Get)
	g.POST("/images/warm", h.Warm)
}

// Get serves image bytes from the local cache, fetching and caching on a miss.
func (h *ImageHandler) Get(c echo.Context) error {
	url, err := parseImageURL(c.QueryParam("url"))
	if err != nil {
		return writeServiceError(c, err)
	}

	data, err := dispatch.Await(c.Request().Context(), h.pipelines.ImageDataBridge(url))
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

// Warm loads the current feed and preloads its images in the background.
func (h *ImageHandler) Warm(c echo.Context) error {
	feed, err := dispatch.Await(c.Request().Context(), h.pipelines.FeedBridge())
	if err != nil {
		return writeServiceError(c, err)
	}

	ctx := context.WithoutCancel(c.Request().Context())
	h.warming.Add(1)
	go func() {
		defer h.warming.Done()
		ctx, cancel := context.WithTimeout(ctx, warmTimeout)
		defer cancel()
		if _, err := h.warmer.Warm(ctx, feed); err != nil {
			logger.Warn("image warm-up stopped", "module", "handler", "action", "warm", "resource", "image", "result", "cancelled", "error", err)
		}
	}()

	return c.JSON(http.StatusAccepted, warmStartedResponse{Status: "started", Images: len(feed)})
}

// Wait blocks until background warm-ups have finished.
func (h *ImageHandler) Wait() {
	h.warming.Wait()
}

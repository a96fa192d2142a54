package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"essentialfeed/backend/internal/dispatch"
	"essentialfeed/backend/internal/model"
)

// Pipelines builds fresh loading pipelines per request.
type Pipelines interface {
	FeedBridge() *dispatch.Bridge[[]model.FeedImage]
	ImageDataBridge(url string) *dispatch.Bridge[[]byte]
	CommentsBridge(imageID uuid.UUID) *dispatch.Bridge[[]model.ImageComment]
}

type FeedHandler struct {
	pipelines Pipelines
}

type feedImageResponse struct {
	ID          string  `json:"id"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	URL         string  `json:"url"`
}

type commentResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Username  string `json:"username"`
}

func NewFeedHandler(pipelines Pipelines) *FeedHandler {
	return &FeedHandler{pipelines: pipelines}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/feed", h.List)
	g.GET("/images/:id/comments", h.Comments)
}

// List returns the remote feed, or the cached snapshot when the remote fails.
func (h *FeedHandler) List(c echo.Context) error {
	feed, err := dispatch.Await(c.Request().Context(), h.pipelines.FeedBridge())
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]feedImageResponse, len(feed))
	for i, image := range feed {
		response[i] = toFeedImageResponse(image)
	}
	return c.JSON(http.StatusOK, response)
}

// Comments returns the comments of one image. They are never cached.
func (h *FeedHandler) Comments(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}

	comments, err := dispatch.Await(c.Request().Context(), h.pipelines.CommentsBridge(id))
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]commentResponse, len(comments))
	for i, comment := range comments {
		response[i] = commentResponse{
			ID:        comment.ID.String(),
			Message:   comment.Message,
			CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
			Username:  comment.Username,
		}
	}
	return c.JSON(http.StatusOK, response)
}

func toFeedImageResponse(image model.FeedImage) feedImageResponse {
	return feedImageResponse{
		ID:          image.ID.String(),
		Description: image.Description,
		Location:    image.Location,
		URL:         image.URL,
	}
}

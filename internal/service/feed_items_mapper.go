package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"essentialfeed/backend/internal/model"
)

type remoteFeedItem struct {
	ID          uuid.UUID `json:"id"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Image       string    `json:"image"`
}

// MapFeedItems decodes the JSON feed payload. Only status 200 is accepted.
func MapFeedItems(body []byte, statusCode int) ([]model.FeedImage, error) {
	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode}
	}

	var root struct {
		Items *[]remoteFeedItem `json:"items"`
	}
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if root.Items == nil {
		return nil, fmt.Errorf("%w: missing items", ErrInvalidData)
	}

	feed := make([]model.FeedImage, 0, len(*root.Items))
	for _, item := range *root.Items {
		if item.ID == uuid.Nil || item.Image == "" {
			return nil, fmt.Errorf("%w: incomplete item", ErrInvalidData)
		}
		feed = append(feed, model.FeedImage{
			ID:          item.ID,
			Description: item.Description,
			Location:    item.Location,
			URL:         item.Image,
		})
	}
	return feed, nil
}

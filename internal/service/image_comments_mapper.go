package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"essentialfeed/backend/internal/model"
)

type remoteComment struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Author    struct {
		Username string `json:"username"`
	} `json:"author"`
}

// MapImageComments decodes the comments payload. Any 2xx status is accepted.
func MapImageComments(body []byte, statusCode int) ([]model.ImageComment, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, &StatusError{StatusCode: statusCode}
	}

	var root struct {
		Items *[]remoteComment `json:"items"`
	}
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if root.Items == nil {
		return nil, fmt.Errorf("%w: missing items", ErrInvalidData)
	}

	comments := make([]model.ImageComment, 0, len(*root.Items))
	for _, item := range *root.Items {
		comments = append(comments, model.ImageComment{
			ID:        item.ID,
			Message:   item.Message,
			CreatedAt: item.CreatedAt,
			Username:  item.Author.Username,
		})
	}
	return comments, nil
}

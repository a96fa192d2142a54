package model

import "github.com/google/uuid"

// FeedImage is one item of the photo feed.
type FeedImage struct {
	ID          uuid.UUID
	Description *string
	Location    *string
	URL         string
}

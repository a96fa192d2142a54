package repository

//go:generate mockgen -source=feed_store.go -destination=mock/mock_repository.go -package=mock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCorruptCache is returned when a stored snapshot cannot be decoded.
var ErrCorruptCache = errors.New("corrupt cache")

// LocalFeedImage is the storage form of a feed image.
type LocalFeedImage struct {
	ID          uuid.UUID
	Description *string
	Location    *string
	URL         string
}

// CachedFeed is the single feed snapshot held by a FeedStore.
type CachedFeed struct {
	Feed      []LocalFeedImage
	Timestamp time.Time
}

// FeedStore holds at most one feed snapshot.
// Implementations must serialize Retrieve, Insert and Delete.
type FeedStore interface {
	// Retrieve returns nil and no error when nothing is cached.
	Retrieve(ctx context.Context) (*CachedFeed, error)
	// Insert replaces any existing snapshot.
	Insert(ctx context.Context, feed []LocalFeedImage, timestamp time.Time) error
	// Delete removes the snapshot. Deleting an empty store is not an error.
	Delete(ctx context.Context) error
}

// ImageDataStore caches image bytes keyed by URL. Last writer wins.
type ImageDataStore interface {
	InsertImageData(ctx context.Context, data []byte, url string) error
	// RetrieveImageData returns nil and no error when nothing is cached for url.
	RetrieveImageData(ctx context.Context, url string) ([]byte, error)
}

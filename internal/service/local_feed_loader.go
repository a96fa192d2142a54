package service

import (
	"context"
	"fmt"
	"time"

	"essentialfeed/backend/internal/logger"
	"essentialfeed/backend/internal/model"
	"essentialfeed/backend/internal/repository"
)

// MaxCacheAge is how long a cached feed snapshot stays valid.
const MaxCacheAge = 7 * 24 * time.Hour

// LocalFeedLoader serves, saves and expires the cached feed snapshot.
type LocalFeedLoader struct {
	store  repository.FeedStore
	now    func() time.Time
	maxAge time.Duration
}

func NewLocalFeedLoader(store repository.FeedStore, now func() time.Time) *LocalFeedLoader {
	if now == nil {
		now = time.Now
	}
	return &LocalFeedLoader{store: store, now: now, maxAge: MaxCacheAge}
}

// Load returns the cached feed while it is valid and an empty feed otherwise.
// It never modifies the store.
func (l *LocalFeedLoader) Load(ctx context.Context) ([]model.FeedImage, error) {
	cached, err := l.store.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheRead, err)
	}
	if cached == nil || !l.isValid(cached.Timestamp) {
		return []model.FeedImage{}, nil
	}
	return toModels(cached.Feed), nil
}

// Save replaces the snapshot with feed, timestamped now. The old snapshot is
// deleted first; if that fails nothing is inserted.
func (l *LocalFeedLoader) Save(ctx context.Context, feed []model.FeedImage) error {
	if err := l.store.Delete(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	if err := l.store.Insert(ctx, toLocal(feed), l.now()); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}

// ValidateCache deletes the snapshot when it cannot be read.
//
// Expired snapshots are left in place because Load already ignores them and the
// next successful remote load replaces them.
func (l *LocalFeedLoader) ValidateCache(ctx context.Context) error {
	if _, err := l.store.Retrieve(ctx); err != nil {
		logger.Warn("cache unreadable, deleting", "module", "service", "action", "validate", "resource", "feed_cache", "error", err)
		if err := l.store.Delete(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrCacheWrite, err)
		}
	}
	return nil
}

// Clear deletes the snapshot unconditionally.
func (l *LocalFeedLoader) Clear(ctx context.Context) error {
	if err := l.store.Delete(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}

func (l *LocalFeedLoader) isValid(timestamp time.Time) bool {
	return l.now().Before(timestamp.Add(l.maxAge))
}

func toLocal(feed []model.FeedImage) []repository.LocalFeedImage {
	local := make([]repository.LocalFeedImage, len(feed))
	for i, image := range feed {
		local[i] = repository.LocalFeedImage(image)
	}
	return local
}

func toModels(local []repository.LocalFeedImage) []model.FeedImage {
	feed := make([]model.FeedImage, len(local))
	for i, image := range local {
		feed[i] = model.FeedImage(image)
	}
	return feed
}

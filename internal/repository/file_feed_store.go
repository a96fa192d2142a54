package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
)

type codableFeed struct {
	Feed      []codableFeedImage `json:"feed"`
	Timestamp time.Time          `json:"timestamp"`
}

type codableFeedImage struct {
	ID          uuid.UUID `json:"id"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	URL         string    `json:"url"`
}

// fileFeedStore keeps the snapshot as one JSON file on a billy filesystem.
type fileFeedStore struct {
	fs   billy.Filesystem
	name string
	mu   sync.Mutex
}

// NewFileFeedStore returns a FeedStore writing the snapshot to name on fs.
func NewFileFeedStore(fs billy.Filesystem, name string) FeedStore {
	return &fileFeedStore{fs: fs, name: name}
}

func (s *fileFeedStore) Retrieve(ctx context.Context) (*CachedFeed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := util.ReadFile(s.fs, s.name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read feed cache: %w", err)
	}

	var stored codableFeed
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCache, err)
	}

	feed := make([]LocalFeedImage, 0, len(stored.Feed))
	for _, image := range stored.Feed {
		feed = append(feed, LocalFeedImage(image))
	}
	return &CachedFeed{Feed: feed, Timestamp: stored.Timestamp}, nil
}

// Insert writes to a temporary file and renames it over the snapshot.
func (s *fileFeedStore) Insert(ctx context.Context, feed []LocalFeedImage, timestamp time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := codableFeed{Feed: make([]codableFeedImage, 0, len(feed)), Timestamp: timestamp.UTC()}
	for _, image := range feed {
		stored.Feed = append(stored.Feed, codableFeedImage(image))
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode feed cache: %w", err)
	}

	if dir := path.Dir(s.name); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create feed cache dir: %w", err)
		}
	}
	tmp := s.name + ".tmp"
	if err := util.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write feed cache: %w", err)
	}
	if err := s.fs.Rename(tmp, s.name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace feed cache: %w", err)
	}
	return nil
}

func (s *fileFeedStore) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete feed cache: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"essentialfeed/backend/internal/snowflake"
)

type sqliteFeedStore struct {
	db *sql.DB
}

// NewSQLiteFeedStore returns a FeedStore backed by the feed_cache tables.
func NewSQLiteFeedStore(db *sql.DB) FeedStore {
	return &sqliteFeedStore{db: db}
}

// Retrieve reads the snapshot row and its images in one transaction so a
// concurrent Insert is never observed half applied.
func (s *sqliteFeedStore) Retrieve(ctx context.Context) (*CachedFeed, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin retrieve feed cache: %w", err)
	}
	defer tx.Rollback()

	return retrieveFeedCache(ctx, tx)
}

func retrieveFeedCache(ctx context.Context, db dbtx) (*CachedFeed, error) {
	var cacheID int64
	var timestamp string
	err := db.QueryRowContext(ctx, `SELECT id, timestamp FROM feed_cache ORDER BY id DESC LIMIT 1`).Scan(&cacheID, &timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieve feed cache: %w", err)
	}

	ts, err := parseTime(timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: parse timestamp: %v", ErrCorruptCache, err)
	}

	rows, err := db.QueryContext(ctx, `SELECT id, description, location, url FROM feed_cache_images WHERE cache_id = ? ORDER BY position`, cacheID)
	if err != nil {
		return nil, fmt.Errorf("retrieve feed cache images: %w", err)
	}
	defer rows.Close()

	feed := []LocalFeedImage{}
	for rows.Next() {
		image, err := scanLocalFeedImage(rows)
		if err != nil {
			return nil, err
		}
		feed = append(feed, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed cache images: %w", err)
	}

	return &CachedFeed{Feed: feed, Timestamp: ts}, nil
}

// Insert deletes the previous snapshot and writes the new one in one transaction.
func (s *sqliteFeedStore) Insert(ctx context.Context, feed []LocalFeedImage, timestamp time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert feed cache: %w", err)
	}
	defer tx.Rollback()

	if err := deleteFeedCache(ctx, tx); err != nil {
		return err
	}

	cacheID := snowflake.NextID()
	if _, err := tx.ExecContext(ctx, `INSERT INTO feed_cache (id, timestamp) VALUES (?, ?)`, cacheID, formatTime(timestamp)); err != nil {
		return fmt.Errorf("insert feed cache: %w", err)
	}

	for position, image := range feed {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO feed_cache_images (cache_id, position, id, description, location, url) VALUES (?, ?, ?, ?, ?, ?)`,
			cacheID,
			position,
			image.ID.String(),
			nullableString(image.Description),
			nullableString(image.Location),
			image.URL,
		)
		if err != nil {
			return fmt.Errorf("insert feed cache image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit feed cache: %w", err)
	}
	return nil
}

func (s *sqliteFeedStore) Delete(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete feed cache: %w", err)
	}
	defer tx.Rollback()

	if err := deleteFeedCache(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete feed cache: %w", err)
	}
	return nil
}

func deleteFeedCache(ctx context.Context, db dbtx) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM feed_cache_images`); err != nil {
		return fmt.Errorf("delete feed cache images: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM feed_cache`); err != nil {
		return fmt.Errorf("delete feed cache: %w", err)
	}
	return nil
}

func scanLocalFeedImage(scanner interface {
	Scan(dest ...interface{}) error
}) (LocalFeedImage, error) {
	var image LocalFeedImage
	var id string
	var description sql.NullString
	var location sql.NullString
	if err := scanner.Scan(&id, &description, &location, &image.URL); err != nil {
		return LocalFeedImage{}, fmt.Errorf("scan feed cache image: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return LocalFeedImage{}, fmt.Errorf("%w: parse image id: %v", ErrCorruptCache, err)
	}
	image.ID = parsed
	if description.Valid {
		image.Description = &description.String
	}
	if location.Valid {
		image.Location = &location.String
	}
	return image, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqliteImageDataStore struct {
	db dbtx
}

// NewSQLiteImageDataStore returns an ImageDataStore backed by the image_data table.
func NewSQLiteImageDataStore(db dbtx) ImageDataStore {
	return &sqliteImageDataStore{db: db}
}

func (s *sqliteImageDataStore) InsertImageData(ctx context.Context, data []byte, url string) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO image_data (url, data, size, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET data = excluded.data, size = excluded.size, updated_at = excluded.updated_at`,
		url,
		data,
		len(data),
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert image data: %w", err)
	}
	return nil
}

func (s *sqliteImageDataStore) RetrieveImageData(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM image_data WHERE url = ?`, url).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieve image data: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

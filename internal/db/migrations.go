package db

import (
	"database/sql"
	"fmt"
)

const baseSchema = `
CREATE TABLE IF NOT EXISTS feed_cache (
  id INTEGER PRIMARY KEY,
  timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS feed_cache_images (
  cache_id INTEGER NOT NULL,
  position INTEGER NOT NULL,
  id TEXT NOT NULL,
  description TEXT,
  location TEXT,
  url TEXT NOT NULL,
  PRIMARY KEY (cache_id, position),
  FOREIGN KEY (cache_id) REFERENCES feed_cache(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS image_data (
  url TEXT PRIMARY KEY,
  data BLOB NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: index image rows by url for lookups from the image cache
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_feed_cache_images_url ON feed_cache_images(url)`); err != nil {
		return fmt.Errorf("create idx_feed_cache_images_url: %w", err)
	}

	// Migration 2: track image data size for cache maintenance
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('image_data') WHERE name = 'size'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check size column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE image_data ADD COLUMN size INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add size column: %w", err)
		}
	}

	return nil
}

// Package testutil provides database and fixture helpers for store tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"essentialfeed/backend/internal/db"
	"essentialfeed/backend/internal/repository"
)

// NewTestDB opens a migrated sqlite database in a temp dir, closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func stringPtr(s string) *string {
	return &s
}

// UniqueLocalFeed returns two distinct images, the second without optional fields.
func UniqueLocalFeed() []repository.LocalFeedImage {
	return []repository.LocalFeedImage{
		{
			ID:          uuid.New(),
			Description: stringPtr("a description"),
			Location:    stringPtr("a location"),
			URL:         "https://a-url.com/" + uuid.NewString(),
		},
		{
			ID:  uuid.New(),
			URL: "https://another-url.com/" + uuid.NewString(),
		},
	}
}

// FixedTimestamp is a timestamp with sub-second precision to catch lossy encodings.
func FixedTimestamp() time.Time {
	return time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)
}

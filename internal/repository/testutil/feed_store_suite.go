package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essentialfeed/backend/internal/repository"
)

// RunFeedStoreSuite checks the behavior every FeedStore implementation must share.
func RunFeedStoreSuite(t *testing.T, makeSUT func(t *testing.T) repository.FeedStore) {
	ctx := context.Background()

	t.Run("retrieve delivers empty on empty cache", func(t *testing.T) {
		sut := makeSUT(t)
		expectRetrieve(t, sut, nil)
	})

	t.Run("retrieve has no side effects on empty cache", func(t *testing.T) {
		sut := makeSUT(t)
		expectRetrieve(t, sut, nil)
		expectRetrieve(t, sut, nil)
	})

	t.Run("retrieve delivers found values on non-empty cache", func(t *testing.T) {
		sut := makeSUT(t)
		feed := UniqueLocalFeed()
		timestamp := FixedTimestamp()

		require.NoError(t, sut.Insert(ctx, feed, timestamp))
		expectRetrieve(t, sut, &repository.CachedFeed{Feed: feed, Timestamp: timestamp})
	})

	t.Run("retrieve has no side effects on non-empty cache", func(t *testing.T) {
		sut := makeSUT(t)
		feed := UniqueLocalFeed()
		timestamp := FixedTimestamp()

		require.NoError(t, sut.Insert(ctx, feed, timestamp))
		expectRetrieve(t, sut, &repository.CachedFeed{Feed: feed, Timestamp: timestamp})
		expectRetrieve(t, sut, &repository.CachedFeed{Feed: feed, Timestamp: timestamp})
	})

	t.Run("insert overrides previously inserted cache", func(t *testing.T) {
		sut := makeSUT(t)
		require.NoError(t, sut.Insert(ctx, UniqueLocalFeed(), FixedTimestamp()))

		latestFeed := UniqueLocalFeed()
		latestTimestamp := FixedTimestamp().Add(time.Hour)
		require.NoError(t, sut.Insert(ctx, latestFeed, latestTimestamp))

		expectRetrieve(t, sut, &repository.CachedFeed{Feed: latestFeed, Timestamp: latestTimestamp})
	})

	t.Run("insert keeps an empty feed as a found cache", func(t *testing.T) {
		sut := makeSUT(t)
		timestamp := FixedTimestamp()
		require.NoError(t, sut.Insert(ctx, []repository.LocalFeedImage{}, timestamp))
		expectRetrieve(t, sut, &repository.CachedFeed{Feed: []repository.LocalFeedImage{}, Timestamp: timestamp})
	})

	t.Run("delete has no side effects on empty cache", func(t *testing.T) {
		sut := makeSUT(t)
		require.NoError(t, sut.Delete(ctx))
		expectRetrieve(t, sut, nil)
	})

	t.Run("delete empties previously inserted cache", func(t *testing.T) {
		sut := makeSUT(t)
		require.NoError(t, sut.Insert(ctx, UniqueLocalFeed(), FixedTimestamp()))
		require.NoError(t, sut.Delete(ctx))
		expectRetrieve(t, sut, nil)
	})

	t.Run("operations run serially", func(t *testing.T) {
		sut := makeSUT(t)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, sut.Insert(ctx, UniqueLocalFeed(), FixedTimestamp()))
				cached, err := sut.Retrieve(ctx)
				if assert.NoError(t, err) && cached != nil {
					assert.Len(t, cached.Feed, 2)
				}
			}()
		}
		wg.Wait()

		cached, err := sut.Retrieve(ctx)
		require.NoError(t, err)
		require.NotNil(t, cached)
		require.Len(t, cached.Feed, 2)
	})

	t.Run("retrieve never observes a partially replaced snapshot", func(t *testing.T) {
		sut := makeSUT(t)
		require.NoError(t, sut.Insert(ctx, UniqueLocalFeed(), FixedTimestamp()))

		stop := make(chan struct{})
		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			for {
				select {
				case <-stop:
					return
				default:
				}
				assert.NoError(t, sut.Insert(ctx, UniqueLocalFeed(), FixedTimestamp()))
			}
		}()

		partial := 0
		for i := 0; i < 500; i++ {
			cached, err := sut.Retrieve(ctx)
			require.NoError(t, err)
			if cached == nil || len(cached.Feed) != 2 {
				partial++
			}
		}
		close(stop)
		<-writerDone

		require.Zero(t, partial, "reads saw a missing or partial snapshot")
	})
}

func expectRetrieve(t *testing.T, sut repository.FeedStore, expected *repository.CachedFeed) {
	t.Helper()
	cached, err := sut.Retrieve(context.Background())
	require.NoError(t, err)
	if expected == nil {
		require.Nil(t, cached)
		return
	}
	require.NotNil(t, cached)
	require.Equal(t, expected.Feed, cached.Feed)
	require.True(t, expected.Timestamp.Equal(cached.Timestamp), "timestamp %v != %v", expected.Timestamp, cached.Timestamp)
}

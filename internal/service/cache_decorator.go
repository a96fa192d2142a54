package service

import (
	"context"
	"sync"

	"essentialfeed/backend/internal/logger"
)

// CacheDecorator saves every successful load of the decorated loader into a cache.
// The save runs in the background on a context that ignores the caller's
// cancellation, and its outcome never reaches the caller. Failures pass through
// without touching the cache.
type CacheDecorator[T any] struct {
	decoratee Loader[T]
	cache     Cache[T]
	pending   *sync.WaitGroup
}

func NewCacheDecorator[T any](decoratee Loader[T], cache Cache[T]) *CacheDecorator[T] {
	return newTrackedCacheDecorator(decoratee, cache, &sync.WaitGroup{})
}

func newTrackedCacheDecorator[T any](decoratee Loader[T], cache Cache[T], pending *sync.WaitGroup) *CacheDecorator[T] {
	return &CacheDecorator[T]{decoratee: decoratee, cache: cache, pending: pending}
}

func (d *CacheDecorator[T]) Load(ctx context.Context) (T, error) {
	value, err := d.decoratee.Load(ctx)
	if err != nil {
		return value, err
	}

	d.pending.Add(1)
	go func(ctx context.Context) {
		defer d.pending.Done()
		if err := d.cache.Save(ctx, value); err != nil {
			logger.Debug("cache write ignored", "module", "service", "action", "save", "error", err)
		}
	}(context.WithoutCancel(ctx))

	return value, nil
}

// Wait blocks until every background save started so far has finished.
func (d *CacheDecorator[T]) Wait() {
	d.pending.Wait()
}

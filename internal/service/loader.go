package service

import "context"

// Loader produces a value or an error.
type Loader[T any] interface {
	Load(ctx context.Context) (T, error)
}

type LoaderFunc[T any] func(ctx context.Context) (T, error)

func (f LoaderFunc[T]) Load(ctx context.Context) (T, error) {
	return f(ctx)
}

// Cache persists a loaded value.
type Cache[T any] interface {
	Save(ctx context.Context, value T) error
}

type CacheFunc[T any] func(ctx context.Context, value T) error

func (f CacheFunc[T]) Save(ctx context.Context, value T) error {
	return f(ctx, value)
}

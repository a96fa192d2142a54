package service

import "context"

// FallbackLoader tries primary first and consults fallback only when primary fails.
// A canceled context is reported as is and does not start the fallback.
type FallbackLoader[T any] struct {
	primary  Loader[T]
	fallback Loader[T]
}

func NewFallbackLoader[T any](primary, fallback Loader[T]) *FallbackLoader[T] {
	return &FallbackLoader[T]{primary: primary, fallback: fallback}
}

func (l *FallbackLoader[T]) Load(ctx context.Context) (T, error) {
	value, err := l.primary.Load(ctx)
	if err == nil {
		return value, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		var zero T
		return zero, ctxErr
	}
	return l.fallback.Load(ctx)
}

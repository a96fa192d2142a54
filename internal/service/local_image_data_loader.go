package service

import (
	"context"
	"fmt"

	"essentialfeed/backend/internal/repository"
)

// LocalImageDataLoader reads and writes cached image bytes by URL.
type LocalImageDataLoader struct {
	store repository.ImageDataStore
}

func NewLocalImageDataLoader(store repository.ImageDataStore) *LocalImageDataLoader {
	return &LocalImageDataLoader{store: store}
}

func (l *LocalImageDataLoader) LoadImageData(ctx context.Context, url string) ([]byte, error) {
	data, err := l.store.RetrieveImageData(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDataLoad, err)
	}
	if data == nil {
		return nil, ErrImageDataNotFound
	}
	return data, nil
}

func (l *LocalImageDataLoader) SaveImageData(ctx context.Context, data []byte, url string) error {
	if err := l.store.InsertImageData(ctx, data, url); err != nil {
		return fmt.Errorf("%w: %w", ErrImageDataSave, err)
	}
	return nil
}

// Loader binds LoadImageData to url.
func (l *LocalImageDataLoader) Loader(url string) Loader[[]byte] {
	return LoaderFunc[[]byte](func(ctx context.Context) ([]byte, error) {
		return l.LoadImageData(ctx, url)
	})
}

// Cache binds SaveImageData to url.
func (l *LocalImageDataLoader) Cache(url string) Cache[[]byte] {
	return CacheFunc[[]byte](func(ctx context.Context, data []byte) error {
		return l.SaveImageData(ctx, data, url)
	})
}

package service

import (
	"context"
	"errors"
	"fmt"

	"essentialfeed/backend/internal/logger"
	"essentialfeed/backend/internal/network"
)

// Mapper turns a received response into a value. It returns an error matching
// ErrInvalidData when the payload or status is not acceptable.
type Mapper[T any] func(body []byte, statusCode int) (T, error)

// RemoteLoader issues one GET per Load and maps the response. It never retries.
type RemoteLoader[T any] struct {
	url    string
	client network.HTTPClient
	mapper Mapper[T]
}

func NewRemoteLoader[T any](url string, client network.HTTPClient, mapper Mapper[T]) *RemoteLoader[T] {
	return &RemoteLoader[T]{url: url, client: client, mapper: mapper}
}

func (l *RemoteLoader[T]) Load(ctx context.Context) (T, error) {
	var zero T

	resp, err := l.client.Get(ctx, l.url)
	if errors.Is(err, network.ErrBodyTooLarge) {
		logger.Debug("remote payload rejected", "module", "service", "action", "fetch", "url", l.url, "error", err)
		return zero, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if err != nil {
		logger.Debug("remote load failed", "module", "service", "action", "fetch", "url", l.url, "error", err)
		return zero, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	value, err := l.mapper(resp.Body, resp.StatusCode)
	if err != nil {
		logger.Debug("remote payload rejected", "module", "service", "action", "map", "url", l.url, "status", resp.StatusCode, "error", err)
		if errors.Is(err, ErrInvalidData) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return value, nil
}

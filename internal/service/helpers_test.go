package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"essentialfeed/backend/internal/model"
	"essentialfeed/backend/internal/network"
)

var errOffline = errors.New("offline")

type httpClientFunc func(ctx context.Context, url string) (*network.Response, error)

func (f httpClientFunc) Get(ctx context.Context, url string) (*network.Response, error) {
	return f(ctx, url)
}

// routeClient answers by URL and records every request.
type routeClient struct {
	mu       sync.Mutex
	routes   map[string]*network.Response
	requests []string
}

func (c *routeClient) Get(ctx context.Context, url string) (*network.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, url)
	resp, ok := c.routes[url]
	c.mu.Unlock()
	if !ok {
		return nil, errOffline
	}
	return resp, nil
}

func (c *routeClient) Requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requests...)
}

// countingLoader returns a fixed result and counts its calls.
type countingLoader[T any] struct {
	mu    sync.Mutex
	value T
	err   error
	calls int
}

func (l *countingLoader[T]) Load(ctx context.Context) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.value, l.err
}

func (l *countingLoader[T]) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// recordingCache records saved values.
type recordingCache[T any] struct {
	mu    sync.Mutex
	err   error
	saved []T
}

func (c *recordingCache[T]) Save(ctx context.Context, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saved = append(c.saved, value)
	return c.err
}

func (c *recordingCache[T]) Saved() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.saved...)
}

func strPtr(s string) *string {
	return &s
}

func uniqueImage() model.FeedImage {
	return model.FeedImage{
		ID:          uuid.New(),
		Description: strPtr("a description"),
		Location:    strPtr("a location"),
		URL:         "https://images.example.com/" + uuid.NewString(),
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

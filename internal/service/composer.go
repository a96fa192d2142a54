package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"essentialfeed/backend/internal/dispatch"
	"essentialfeed/backend/internal/model"
	"essentialfeed/backend/internal/network"
	"essentialfeed/backend/internal/repository"
)

// ComposerConfig carries the collaborators of a Composer.
type ComposerConfig struct {
	BaseURL    string
	Client     network.HTTPClient
	FeedMapper Mapper[[]model.FeedImage]
	FeedStore  repository.FeedStore
	ImageStore repository.ImageDataStore
	Now        func() time.Time
	// Deliver is where bridged results are delivered. Defaults to dispatch.Immediate.
	Deliver dispatch.Scheduler
}

// Composer assembles the loading pipelines.
//
//	feed:      remote feed, cached on success, falling back to the local snapshot
//	image:     local image data, falling back to remote image data cached on success
//	comments:  remote only
type Composer struct {
	baseURL     string
	client      network.HTTPClient
	feedMapper  Mapper[[]model.FeedImage]
	localFeed   *LocalFeedLoader
	localImages *LocalImageDataLoader
	deliver     dispatch.Scheduler
	writes      sync.WaitGroup
	feed        Loader[[]model.FeedImage]
}

func NewComposer(cfg ComposerConfig) *Composer {
	feedMapper := cfg.FeedMapper
	if feedMapper == nil {
		feedMapper = MapFeedItems
	}
	deliver := cfg.Deliver
	if deliver == nil {
		deliver = dispatch.Immediate
	}

	c := &Composer{
		baseURL:     cfg.BaseURL,
		client:      cfg.Client,
		feedMapper:  feedMapper,
		localFeed:   NewLocalFeedLoader(cfg.FeedStore, cfg.Now),
		localImages: NewLocalImageDataLoader(cfg.ImageStore),
		deliver:     deliver,
	}

	remoteFeed := NewRemoteLoader(FeedEndpoint(c.baseURL), c.client, c.feedMapper)
	c.feed = NewFallbackLoader[[]model.FeedImage](
		newTrackedCacheDecorator[[]model.FeedImage](remoteFeed, c.localFeed, &c.writes),
		c.localFeed,
	)
	return c
}

func (c *Composer) FeedLoader() Loader[[]model.FeedImage] {
	return c.feed
}

func (c *Composer) ImageDataLoader(url string) Loader[[]byte] {
	remote := NewRemoteLoader(url, c.client, MapImageData)
	return NewFallbackLoader[[]byte](
		c.localImages.Loader(url),
		newTrackedCacheDecorator[[]byte](remote, c.localImages.Cache(url), &c.writes),
	)
}

func (c *Composer) CommentsLoader(imageID uuid.UUID) Loader[[]model.ImageComment] {
	return NewRemoteLoader(ImageCommentsEndpoint(c.baseURL, imageID), c.client, MapImageComments)
}

func (c *Composer) FeedBridge() *dispatch.Bridge[[]model.FeedImage] {
	return bridge(c, c.FeedLoader())
}

func (c *Composer) ImageDataBridge(url string) *dispatch.Bridge[[]byte] {
	return bridge(c, c.ImageDataLoader(url))
}

func (c *Composer) CommentsBridge(imageID uuid.UUID) *dispatch.Bridge[[]model.ImageComment] {
	return bridge(c, c.CommentsLoader(imageID))
}

// LocalFeed exposes the cache maintenance operations.
func (c *Composer) LocalFeed() *LocalFeedLoader {
	return c.localFeed
}

// WaitForCacheWrites blocks until every background cache write has finished.
func (c *Composer) WaitForCacheWrites() {
	c.writes.Wait()
}

// bridge counts the whole load in c.writes before its goroutine starts, so a
// load outliving its caller still finishes its cache write before
// WaitForCacheWrites returns.
func bridge[T any](c *Composer, loader Loader[T]) *dispatch.Bridge[T] {
	load := dispatch.Go(func(ctx context.Context) (T, error) {
		defer c.writes.Done()
		return loader.Load(ctx)
	})
	return dispatch.NewBridge[T](func(ctx context.Context, complete func(context.Context, T, error)) {
		c.writes.Add(1)
		load(ctx, complete)
	}, c.deliver)
}

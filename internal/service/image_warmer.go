package service

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"essentialfeed/backend/internal/dispatch"
	"essentialfeed/backend/internal/logger"
	"essentialfeed/backend/internal/model"
)

const maxConcurrentWarmups = 4

// ImageBridges builds a fresh image data pipeline for a URL.
type ImageBridges interface {
	ImageDataBridge(url string) *dispatch.Bridge[[]byte]
}

// WarmReport counts the outcome of one warm-up pass.
type WarmReport struct {
	Loaded int
	Failed int
}

// ImageWarmer runs the image pipeline for every image of a feed so later
// requests are served from the local cache.
type ImageWarmer struct {
	images ImageBridges
}

func NewImageWarmer(images ImageBridges) *ImageWarmer {
	return &ImageWarmer{images: images}
}

// Warm loads the images of feed at most four at a time. Per-image failures are
// counted and logged, never returned; only cancellation of ctx is an error.
func (w *ImageWarmer) Warm(ctx context.Context, feed []model.FeedImage) (WarmReport, error) {
	var loaded, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWarmups)
	for _, image := range feed {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if _, err := dispatch.Await(gctx, w.images.ImageDataBridge(image.URL)); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				failed.Add(1)
				logger.Debug("image warm-up failed", "module", "service", "action", "warm", "url", image.URL, "error", err)
				return nil
			}
			loaded.Add(1)
			return nil
		})
	}

	err := g.Wait()
	report := WarmReport{Loaded: int(loaded.Load()), Failed: int(failed.Load())}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return report, ctxErr
	}
	if err != nil {
		return report, err
	}
	logger.Info("images warmed", "loaded", report.Loaded, "failed", report.Failed)
	return report, nil
}

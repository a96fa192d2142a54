package service_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"essentialfeed/backend/internal/dispatch"
	"essentialfeed/backend/internal/model"
	"essentialfeed/backend/internal/network"
	"essentialfeed/backend/internal/service"

	"github.com/stretchr/testify/require"
)

type imageBridgesFunc func(url string) *dispatch.Bridge[[]byte]

func (f imageBridgesFunc) ImageDataBridge(url string) *dispatch.Bridge[[]byte] {
	return f(url)
}

func TestImageWarmer_CountsOutcomesAndLimitsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	bridges := imageBridgesFunc(func(url string) *dispatch.Bridge[[]byte] {
		return dispatch.NewBridge(dispatch.Go(func(ctx context.Context) ([]byte, error) {
			n := active.Add(1)
			defer active.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			if strings.HasSuffix(url, "bad") {
				return nil, service.ErrConnectivity
			}
			return []byte(url), nil
		}), dispatch.Immediate)
	})

	feed := make([]model.FeedImage, 0, 10)
	for i := 0; i < 10; i++ {
		image := uniqueImage()
		if i%5 == 0 {
			image.URL += "/bad"
		}
		feed = append(feed, image)
	}

	report, err := service.NewImageWarmer(bridges).Warm(context.Background(), feed)
	require.NoError(t, err)
	require.Equal(t, service.WarmReport{Loaded: 8, Failed: 2}, report)
	require.LessOrEqual(t, peak.Load(), int32(4))
}

func TestImageWarmer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bridges := imageBridgesFunc(func(url string) *dispatch.Bridge[[]byte] {
		return dispatch.NewBridge(dispatch.Go(func(ctx context.Context) ([]byte, error) {
			return nil, ctx.Err()
		}), dispatch.Immediate)
	})

	_, err := service.NewImageWarmer(bridges).Warm(ctx, []model.FeedImage{uniqueImage()})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestImageWarmer_WarmsThroughComposer(t *testing.T) {
	image := uniqueImage()
	sut := makeComposer(t, map[string]*network.Response{
		image.URL: {StatusCode: 200, Body: []byte("img")},
	})

	report, err := service.NewImageWarmer(sut.composer).Warm(context.Background(), []model.FeedImage{image})
	require.NoError(t, err)
	require.Equal(t, 1, report.Loaded)

	sut.composer.WaitForCacheWrites()
	cached, err := sut.imageStore.RetrieveImageData(context.Background(), image.URL)
	require.NoError(t, err)
	require.Equal(t, []byte("img"), cached)
}

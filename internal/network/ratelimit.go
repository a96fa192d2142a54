package network

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedClient delays requests so that at most qps are issued per second.
type RateLimitedClient struct {
	next    HTTPClient
	limiter *rate.Limiter
}

func NewRateLimitedClient(next HTTPClient, qps int) *RateLimitedClient {
	if qps < 1 {
		qps = 1
	}
	return &RateLimitedClient{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

func (c *RateLimitedClient) Get(ctx context.Context, url string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.next.Get(ctx, url)
}

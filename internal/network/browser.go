package network

import (
	"context"
	"net/http"
	"time"

	"github.com/Noooste/azuretls-client"

	"essentialfeed/backend/internal/config"
)

// NewAzureSession creates an azuretls.Session with a Chrome fingerprint and proxy configuration.
func (f *ClientFactory) NewAzureSession(timeout time.Duration) *azuretls.Session {
	session := azuretls.NewSession()
	session.Browser = azuretls.Chrome
	session.SetTimeout(timeout)

	if f.proxyURL != "" {
		_ = session.SetProxy(f.proxyURL)
	}

	return session
}

// BrowserClient is an HTTPClient presenting a Chrome TLS fingerprint, for image
// hosts that reject non-browser clients.
type BrowserClient struct {
	factory *ClientFactory
	timeout time.Duration
}

func NewBrowserClient(factory *ClientFactory, timeout time.Duration) *BrowserClient {
	return &BrowserClient{factory: factory, timeout: timeout}
}

type browserResult struct {
	resp *Response
	err  error
}

func (c *BrowserClient) Get(ctx context.Context, rawURL string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session := c.factory.NewAzureSession(c.timeout)
	done := make(chan browserResult, 1)

	go func() {
		defer session.Close()
		resp, err := session.Do(&azuretls.Request{
			Method: http.MethodGet,
			Url:    rawURL,
			OrderedHeaders: azuretls.OrderedHeaders{
				{"accept", "application/json,image/avif,image/webp,image/*,*/*;q=0.8"},
				{"sec-ch-ua", config.ChromeSecChUa},
				{"sec-ch-ua-mobile", "?0"},
				{"sec-ch-ua-platform", `"Windows"`},
				{"user-agent", config.ChromeUserAgent},
			},
		})
		if err != nil {
			done <- browserResult{err: err}
			return
		}
		if len(resp.Body) > maxBodySize {
			done <- browserResult{err: ErrBodyTooLarge}
			return
		}
		done <- browserResult{resp: &Response{
			StatusCode: resp.StatusCode,
			Header:     http.Header(resp.Header),
			Body:       resp.Body,
		}}
	}()

	// The session has no context hook; on cancel the request finishes in the background.
	select {
	case result := <-done:
		return result.resp, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

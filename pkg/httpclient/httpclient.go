// Package httpclient is a thin resty wrapper so callers can swap the
// transport in tests.
package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client issues plain GET requests.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error)
}

type restyClient struct {
	r *resty.Client
}

// NewRestyClient returns a Client without retries. A zero timeout leaves the
// request bounded only by ctx.
func NewRestyClient(timeout time.Duration) Client {
	r := resty.New().
		SetRetryCount(0).
		SetTimeout(timeout)
	return &restyClient{r: r}
}

func (c *restyClient) Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error) {
	req := c.r.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	return req.Get(url)
}

package screenshot

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

// Client builds preview-image URLs against a thumbnail service
// (thum.io style: ?url=...&width=...&height=...). The service is
// best-effort; callers must tolerate it being down.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

// NewClient creates a new thumbnail client with default timeout.
// baseURL empty means the service is unconfigured and every call
// returns ErrNotConfigured.
func NewClient(baseURL string) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		u = nil
	}
	return &Client{
		BaseURL: u,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

var ErrNotConfigured = errors.New("screenshot service not configured")

// ScreenshotQuery represents parameters for thumbnail requests.
type ScreenshotQuery struct {
	URL    string `url:"url"`
	Width  int    `url:"width,omitempty"`
	Height int    `url:"height,omitempty"`
}

const (
	defaultWidth  = 600
	defaultHeight = 400
)

// ScreenshotURL returns the preview-image URL for target. No request
// is made; the service renders on first fetch.
func (c *Client) ScreenshotURL(target string) (string, error) {
	if c.BaseURL == nil || c.BaseURL.String() == "" {
		return "", ErrNotConfigured
	}

	q := ScreenshotQuery{
		URL:    target,
		Width:  defaultWidth,
		Height: defaultHeight,
	}
	params, err := query.Values(q)
	if err != nil {
		return "", errors.Wrap(err, "encoding screenshot query")
	}

	u := *c.BaseURL
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// Reachable probes the service with a HEAD request. Used only to log a
// warning at startup, never to gate submissions.
func (c *Client) Reachable(ctx context.Context) bool {
	if c.BaseURL == nil || c.BaseURL.String() == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.BaseURL.String(), nil)
	if err != nil {
		return false
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}

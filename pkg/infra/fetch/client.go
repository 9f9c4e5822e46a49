package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/WietRob/ai-router-system/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// config holds internal fetch client configuration
type config struct {
	httpClient *http.Client
	userAgent  string
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header for requests
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

type client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a fetch client for unauthenticated raw-content downloads
func New(opts ...Option) interfaces.Fetcher {
	cfg := &config{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  "ai-router-bootstrap",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &client{
		httpClient: cfg.httpClient,
		userAgent:  cfg.userAgent,
	}
}

// Fetch downloads the resource at url and returns its body
func (c *client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status code",
			goerr.V("url", url),
			goerr.V("status_code", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	return data, nil
}

package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"copenhagen-vendor-scraper/internal/types"
)

// Client performs the page fetches the pipeline treats as a black box, with
// rate limiting and retries. It holds no extraction logic.
type Client struct {
	client  *http.Client
	config  *types.Config
	logger  types.Logger
	limiter *time.Ticker
}

// NewClient creates a fetch client with the given configuration.
func NewClient(config *types.Config, logger types.Logger) *Client {
	client := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	delay := config.RequestDelay
	if delay <= 0 {
		delay = time.Millisecond
	}

	return &Client{
		client:  client,
		config:  config,
		logger:  logger,
		limiter: time.NewTicker(delay),
	}
}

// Get performs a GET request with rate limiting and retries.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		select {
		case <-c.limiter.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("User-Agent", c.config.UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5,da;q=0.3")

		c.logger.Debugf("Fetching %s (attempt %d/%d)", url, attempt+1, c.config.MaxRetries+1)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.logger.Warnf("Request failed (attempt %d): %v", attempt+1, err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			c.logger.Warnf("Unexpected status code %d for %s (attempt %d)", resp.StatusCode, url, attempt+1)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			c.logger.Warnf("Failed to read response body (attempt %d): %v", attempt+1, err)
			continue
		}

		c.logger.Debugf("Retrieved %d bytes from %s", len(body), url)
		return body, nil
	}

	return nil, fmt.Errorf("all retry attempts failed: %w", lastErr)
}

// Close cleans up resources.
func (c *Client) Close() {
	if c.limiter != nil {
		c.limiter.Stop()
	}
}

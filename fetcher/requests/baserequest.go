package requests

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client wraps the HTTP client used for every upstream call.
// Authenticated requests carry the Riot token and go through the retry policy.
type Client struct {
	apiKey string
	http   *http.Client
	retry  *RetryPolicy
}

// NewClient creates a client with the given credential and retry policy.
func NewClient(apiKey string, retry *RetryPolicy) *Client {
	return &Client{
		apiKey: apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: retry,
	}
}

// AuthRequest does a authenticated request to the Riot API.
// Rate limited responses are retried by the shared policy before returning.
func (c *Client) AuthRequest(ctx context.Context, rawURL string, method string, params map[string]string) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("can't do a authenticated request without the API key")
	}

	fullURL := rawURL
	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		fullURL = rawURL + "?" + values.Encode()
	}

	return c.retry.Do(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating request: %w", err)
		}

		req.Header.Set("X-Riot-Token", c.apiKey)
		return c.http.Do(req)
	})
}

// Request does a simple unauthenticated request (Data Dragon).
func (c *Client) Request(ctx context.Context, rawURL string, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return c.http.Do(req)
}

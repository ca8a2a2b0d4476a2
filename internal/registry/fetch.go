package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrFetch is returned when the registry document cannot be retrieved.
var ErrFetch = errors.New("fetching template registry")

// Client downloads the registry document.
type Client struct {
	URL        string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient returns a Client for url using http.DefaultClient.
func NewClient(url string) *Client {
	return &Client{URL: url, HTTPClient: http.DefaultClient, UserAgent: "duero-cli"}
}

// Fetch retrieves and parses the registry document.
func (c *Client) Fetch(ctx context.Context) (*Registry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, c.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrFetch, err)
	}

	return Parse(body)
}

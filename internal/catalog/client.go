package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the default Pacstall web API endpoint.
	DefaultBaseURL = "https://pacstall.dev"

	// DefaultTimeout is the default HTTP timeout for catalog requests.
	DefaultTimeout = 15 * time.Second
)

// Client fetches catalog and detail records from the Pacstall web API.
//
// Both fetch methods degrade rather than fail: transport errors, non-200
// responses, and malformed bodies yield an empty result, and the reason is
// surfaced only through the diagnostic callback. Front ends always receive
// renderable data.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// diag receives human-readable fetch failure reasons. Never called on
	// success. Optional.
	diag func(format string, args ...interface{})
}

// NewClient creates a client against the default API endpoint.
func NewClient() *Client {
	return NewClientWithOptions(DefaultBaseURL, DefaultTimeout)
}

// NewClientWithOptions creates a client with a custom endpoint and timeout.
func NewClientWithOptions(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetDiagnostics installs a callback for fetch failure reasons.
func (c *Client) SetDiagnostics(fn func(format string, args ...interface{})) {
	c.diag = fn
}

func (c *Client) diagf(format string, args ...interface{}) {
	if c.diag != nil {
		c.diag(format, args...)
	}
}

// FetchCatalog retrieves the full package catalog. The result is unsorted;
// callers sort once via SortByName. Any failure yields an empty slice.
func (c *Client) FetchCatalog(ctx context.Context) []Package {
	body, ok := c.get(ctx, c.baseURL+"/api/repology")
	if !ok {
		return nil
	}

	var pkgs []Package
	if err := json.Unmarshal(body, &pkgs); err != nil {
		c.diagf("malformed catalog response: %v", err)
		return nil
	}

	return pkgs
}

// FetchDetail retrieves the detail record for a single package, or nil if
// the fetch fails in any way.
func (c *Client) FetchDetail(ctx context.Context, name string) *Detail {
	endpoint := fmt.Sprintf("%s/api/packages/%s", c.baseURL, url.PathEscape(name))

	body, ok := c.get(ctx, endpoint)
	if !ok {
		return nil
	}

	var detail Detail
	if err := json.Unmarshal(body, &detail); err != nil {
		c.diagf("malformed detail response for %s: %v", name, err)
		return nil
	}

	return &detail
}

// get performs a GET request and returns the body, or (nil, false) on any
// transport or status failure.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.diagf("failed to build request for %s: %v", endpoint, err)
		return nil, false
	}

	req.Header.Set("User-Agent", "pacstore/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.diagf("request failed: %v", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.diagf("unexpected status %d from %s", resp.StatusCode, endpoint)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.diagf("failed to read response: %v", err)
		return nil, false
	}

	return body, true
}

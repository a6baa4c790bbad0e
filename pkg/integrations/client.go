package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/observability"
)

// Client provides shared HTTP functionality for registry API clients.
// Every request is attempted once; there is no cache and no retry.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidResponse, url, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

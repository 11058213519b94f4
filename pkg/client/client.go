// Package client implements the HTTP pipe that pushes test-run data to the
// remote reporting API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// Config holds the reporting endpoint settings. It is passed in explicitly
// so the pipe stays testable in isolation; callers resolve environment
// variables before constructing it.
type Config struct {
	// URL is the base URL of the reporting server.
	URL string

	// APIKey authenticates requests, sent as the api_key query parameter.
	APIKey string

	// Timeout is the per-request timeout (uses DefaultTimeout if zero).
	Timeout time.Duration
}

// Client pushes runs and test results to the reporting server.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a reporting client with the given configuration.
func New(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// Response contains the result of a reporting request.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success returns true if the request succeeded (2xx status).
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// send marshals the payload, performs the request and decodes the response
// body into out when it is non-nil and the request succeeded.
func (c *Client) send(ctx context.Context, method, path string, payload, out any) *Response {
	start := time.Now()
	resp := &Response{}

	body, err := json.Marshal(payload)
	if err != nil {
		resp.Error = fmt.Errorf("failed to marshal payload: %w", err)
		resp.Duration = time.Since(start)
		return resp
	}

	timeout := c.cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint, err := c.endpoint(path)
	if err != nil {
		resp.Error = err
		resp.Duration = time.Since(start)
		return resp
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		resp.Error = fmt.Errorf("failed to create request: %w", err)
		resp.Duration = time.Since(start)
		return resp
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "reporter-client")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		resp.Error = fmt.Errorf("request failed: %w", err)
		resp.Duration = time.Since(start)
		return resp
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1024*1024)) // Limit to 1MB
	if err != nil {
		resp.Error = fmt.Errorf("failed to read response: %w", err)
		resp.Duration = time.Since(start)
		return resp
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Body = string(respBody)
	resp.Duration = time.Since(start)

	if resp.StatusCode >= 400 {
		resp.Error = fmt.Errorf("reporting server returned status %d", resp.StatusCode)
		return resp
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			resp.Error = fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp
}

// endpoint joins the base URL and path, attaching the API key.
func (c *Client) endpoint(path string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(c.cfg.URL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + path

	q := u.Query()
	if c.cfg.APIKey != "" {
		q.Set("api_key", c.cfg.APIKey)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

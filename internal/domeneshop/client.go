// Package domeneshop is a typed client for the Domeneshop REST API
// (https://api.domeneshop.no/docs/). It covers domains, DNS records,
// HTTP forwards, invoices and dynamic DNS updates.
//
// The client is deliberately thin: one request pipeline, typed models,
// no caching and no retries. Policy belongs to the caller.
package domeneshop

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.domeneshop.no/v0"
	defaultTimeout = 30 * time.Second
)

// Client talks to the Domeneshop API. Construct it with New; the zero
// value is not usable.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New creates a Client authenticating with the given API token and secret.
// Both credentials are required; New fails before any I/O if either is
// missing. The Basic auth header is computed once and reused for every
// request.
func New(token, secret string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("domeneshop: API token is required")
	}
	if secret == "" {
		return nil, errors.New("domeneshop: API secret is required")
	}

	c := &Client{
		baseURL:    defaultBaseURL,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(token+":"+secret)),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do runs a single API request. Query params are appended only when set;
// body (when non-nil) is sent as JSON with a Content-Type header, so GET
// requests never carry one. A 2xx response with a body is decoded into
// out; 204 and empty bodies decode to nothing. Any other status becomes
// an *Error. Transport failures are returned as-is, wrapped for context.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("domeneshop: failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("domeneshop: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("domeneshop: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("domeneshop: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("domeneshop: failed to decode response: %w", err)
	}
	return nil
}

// Ptr returns a pointer to v. Convenience for the optional record fields.
func Ptr[T any](v T) *T {
	return &v
}

package domeneshop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Forward is an HTTP forwarding rule for a (sub)domain. Host is the
// natural key: "@" forwards the root domain, anything else the named
// subdomain. There is no separate ID; renaming a forward means deleting
// the old host and creating the new one.
type Forward struct {
	Host  string `json:"host"`
	Frame bool   `json:"frame"`
	URL   string `json:"url"`
}

// forwardPath builds the path for a single forward. Hosts like "@" need
// percent-encoding to survive as a path segment.
func forwardPath(domainID int, host string) string {
	return fmt.Sprintf("/domains/%d/forwards/%s", domainID, url.PathEscape(host))
}

// ListForwards returns all HTTP forwards configured for the domain.
func (c *Client) ListForwards(ctx context.Context, domainID int) ([]Forward, error) {
	var out []Forward
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/domains/%d/forwards/", domainID), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list forwards for domain %d: %w", domainID, err)
	}
	return out, nil
}

// GetForward returns the forward for the given host.
func (c *Client) GetForward(ctx context.Context, domainID int, host string) (*Forward, error) {
	var out Forward
	if err := c.do(ctx, http.MethodGet, forwardPath(domainID, host), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get forward %q for domain %d: %w", host, domainID, err)
	}
	return &out, nil
}

// CreateForward adds a new forward. The host must not already have one.
func (c *Client) CreateForward(ctx context.Context, domainID int, f Forward) error {
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/domains/%d/forwards/", domainID), nil, f, nil); err != nil {
		return fmt.Errorf("failed to create forward %q for domain %d: %w", f.Host, domainID, err)
	}
	return nil
}

// UpdateForward replaces the forward for f.Host. The host itself cannot
// be changed this way.
func (c *Client) UpdateForward(ctx context.Context, domainID int, f Forward) error {
	if err := c.do(ctx, http.MethodPut, forwardPath(domainID, f.Host), nil, f, nil); err != nil {
		return fmt.Errorf("failed to update forward %q for domain %d: %w", f.Host, domainID, err)
	}
	return nil
}

// DeleteForward removes the forward for the given host.
func (c *Client) DeleteForward(ctx context.Context, domainID int, host string) error {
	if err := c.do(ctx, http.MethodDelete, forwardPath(domainID, host), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete forward %q for domain %d: %w", host, domainID, err)
	}
	return nil
}

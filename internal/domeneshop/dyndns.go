package domeneshop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// UpdateDynDNS points the A/AAAA record for hostname at myip, creating
// the record if needed. An empty myip omits the parameter and lets the
// server use the address the request came from. The hostname must belong
// to a domain on the account.
func (c *Client) UpdateDynDNS(ctx context.Context, hostname, myip string) error {
	if hostname == "" {
		return errors.New("domeneshop: hostname is required")
	}

	q := url.Values{}
	q.Set("hostname", hostname)
	if myip != "" {
		q.Set("myip", myip)
	}

	if err := c.do(ctx, http.MethodGet, "/dyndns/update", q, nil, nil); err != nil {
		return fmt.Errorf("failed to update dyndns for %q: %w", hostname, err)
	}
	return nil
}

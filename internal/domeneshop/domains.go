package domeneshop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Domain status values reported by the API.
const (
	DomainStatusActive                  = "active"
	DomainStatusExpired                 = "expired"
	DomainStatusDeactivated             = "deactivated"
	DomainStatusPendingDeleteRestorable = "pendingDeleteRestorable"
)

// DomainServices lists which services are active for a domain.
type DomainServices struct {
	Registrar bool   `json:"registrar"`
	DNS       bool   `json:"dns"`
	Email     bool   `json:"email"`
	Webhotel  string `json:"webhotel"`
}

// Domain is a domain registered or managed through the account.
type Domain struct {
	ID             int            `json:"id"`
	Name           string         `json:"domain"`
	RegisteredDate string         `json:"registered_date"`
	ExpiryDate     string         `json:"expiry_date"`
	Renew          bool           `json:"renew"`
	Registrant     string         `json:"registrant"`
	Status         string         `json:"status"`
	Nameservers    []string       `json:"nameservers"`
	Services       DomainServices `json:"services"`
}

// DomainFilter narrows ListDomains results.
type DomainFilter struct {
	// Domain matches domain names containing the given string ("partial
	// match" on the server side; ".no" matches all .no domains).
	Domain string
}

// ListDomains returns the account's domains, optionally filtered.
func (c *Client) ListDomains(ctx context.Context, filter *DomainFilter) ([]Domain, error) {
	q := url.Values{}
	if filter != nil && filter.Domain != "" {
		q.Set("domain", filter.Domain)
	}

	var out []Domain
	if err := c.do(ctx, http.MethodGet, "/domains", q, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return out, nil
}

// GetDomain returns a single domain by its numeric ID.
func (c *Client) GetDomain(ctx context.Context, domainID int) (*Domain, error) {
	var out Domain
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/domains/%d", domainID), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get domain %d: %w", domainID, err)
	}
	return &out, nil
}

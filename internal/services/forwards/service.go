// Package forwards provides the HTTP forward service layer.
package forwards

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"sondreal/domctl/internal/domeneshop"
)

// API is the slice of the Domeneshop client this service needs.
type API interface {
	ListForwards(ctx context.Context, domainID int) ([]domeneshop.Forward, error)
	GetForward(ctx context.Context, domainID int, host string) (*domeneshop.Forward, error)
	CreateForward(ctx context.Context, domainID int, f domeneshop.Forward) error
	UpdateForward(ctx context.Context, domainID int, f domeneshop.Forward) error
	DeleteForward(ctx context.Context, domainID int, host string) error
}

// Service is the forward business logic layer.
type Service struct {
	api API
}

// New returns a Service backed by the given API.
func New(api API) *Service {
	return &Service{api: api}
}

// List returns all forwards for the domain.
func (s *Service) List(ctx context.Context, domainID int) ([]domeneshop.Forward, error) {
	return s.api.ListForwards(ctx, domainID)
}

// Get returns the forward for the given host.
func (s *Service) Get(ctx context.Context, domainID int, host string) (*domeneshop.Forward, error) {
	return s.api.GetForward(ctx, domainID, normalizeHost(host))
}

// Create adds a new forward after normalising the host and checking the
// target URL.
func (s *Service) Create(ctx context.Context, domainID int, f domeneshop.Forward) error {
	f.Host = normalizeHost(f.Host)
	if err := validateTargetURL(f.URL); err != nil {
		return err
	}
	return s.api.CreateForward(ctx, domainID, f)
}

// Update replaces the forward for f.Host.
func (s *Service) Update(ctx context.Context, domainID int, f domeneshop.Forward) error {
	f.Host = normalizeHost(f.Host)
	if err := validateTargetURL(f.URL); err != nil {
		return err
	}
	return s.api.UpdateForward(ctx, domainID, f)
}

// Delete removes the forward for the given host.
func (s *Service) Delete(ctx context.Context, domainID int, host string) error {
	return s.api.DeleteForward(ctx, domainID, normalizeHost(host))
}

// Rename moves a forward to a new host. The API keys forwards on the
// host with no separate ID, so a rename is a create of the new host
// followed by a delete of the old one. Create goes first so a failure
// leaves the old forward intact.
func (s *Service) Rename(ctx context.Context, domainID int, oldHost string, f domeneshop.Forward) error {
	oldHost = normalizeHost(oldHost)
	f.Host = normalizeHost(f.Host)
	if f.Host == oldHost {
		return s.Update(ctx, domainID, f)
	}

	if err := s.Create(ctx, domainID, f); err != nil {
		return err
	}
	if err := s.api.DeleteForward(ctx, domainID, oldHost); err != nil {
		return fmt.Errorf("forward %q created but old forward %q could not be removed: %w", f.Host, oldHost, err)
	}
	return nil
}

// normalizeHost trims and lowercases; an empty host means the root "@".
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return "@"
	}
	return host
}

// validateTargetURL requires an absolute http(s) URL.
func validateTargetURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid forward URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("forward URL must start with http:// or https://, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("forward URL %q has no host", raw)
	}
	return nil
}

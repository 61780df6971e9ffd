// Package domains provides the domain lookup service layer.
//
// CLI commands accept either a domain name or a numeric domain ID; the
// Service resolves both to the API's domain object and caches the account
// domain list, which changes rarely.
package domains

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/swrcache"
)

// API is the slice of the Domeneshop client this service needs.
type API interface {
	ListDomains(ctx context.Context, filter *domeneshop.DomainFilter) ([]domeneshop.Domain, error)
	GetDomain(ctx context.Context, domainID int) (*domeneshop.Domain, error)
}

// Service wraps the domains part of the API with name resolution and
// list caching.
type Service struct {
	api   API
	cache *swrcache.Cache
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables stale-while-revalidate caching of the domain list.
func WithCache(cache *swrcache.Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// New returns a Service backed by the given API.
func New(api API, opts ...Option) *Service {
	svc := &Service{api: api}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List returns the account's domains. filter narrows by substring match
// on the server side; filtered lists bypass the cache.
func (s *Service) List(ctx context.Context, filter string) ([]domeneshop.Domain, error) {
	filter = normalizeDomainName(filter)
	if filter != "" {
		return s.api.ListDomains(ctx, &domeneshop.DomainFilter{Domain: filter})
	}
	if s.cache == nil {
		return s.api.ListDomains(ctx, nil)
	}
	return swrcache.GetOrFetch(s.cache, ctx, "domains", func(ctx context.Context) ([]domeneshop.Domain, error) {
		return s.api.ListDomains(ctx, nil)
	})
}

// Get returns a single domain by ID.
func (s *Service) Get(ctx context.Context, domainID int) (*domeneshop.Domain, error) {
	return s.api.GetDomain(ctx, domainID)
}

// Resolve turns a user-supplied domain reference into a domain object.
// A numeric ref is treated as a domain ID, anything else as a domain
// name to be matched exactly (case-insensitively) against the account.
func (s *Service) Resolve(ctx context.Context, ref string) (*domeneshop.Domain, error) {
	ref = normalizeDomainName(ref)
	if ref == "" {
		return nil, fmt.Errorf("domain is required")
	}

	if id, err := strconv.Atoi(ref); err == nil {
		return s.api.GetDomain(ctx, id)
	}

	matches, err := s.api.ListDomains(ctx, &domeneshop.DomainFilter{Domain: ref})
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if strings.EqualFold(matches[i].Name, ref) {
			return &matches[i], nil
		}
	}
	return nil, fmt.Errorf("domain %q not found on this account", ref)
}

// normalizeDomainName lowercases and strips any trailing dot.
func normalizeDomainName(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

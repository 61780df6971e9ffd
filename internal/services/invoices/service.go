// Package invoices provides the invoice service layer.
package invoices

import (
	"context"
	"fmt"
	"strings"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/swrcache"
)

// API is the slice of the Domeneshop client this service needs.
type API interface {
	ListInvoices(ctx context.Context, filter *domeneshop.InvoiceFilter) ([]domeneshop.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID int) (*domeneshop.Invoice, error)
}

// Service wraps the invoice part of the API.
type Service struct {
	api   API
	cache *swrcache.Cache
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables stale-while-revalidate caching of the invoice list.
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

// List returns the account's invoices, optionally filtered by status.
// Filtered lists bypass the cache.
func (s *Service) List(ctx context.Context, status string) ([]domeneshop.Invoice, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" {
		if err := validateStatus(status); err != nil {
			return nil, err
		}
		return s.api.ListInvoices(ctx, &domeneshop.InvoiceFilter{Status: status})
	}
	if s.cache == nil {
		return s.api.ListInvoices(ctx, nil)
	}
	return swrcache.GetOrFetch(s.cache, ctx, "invoices", func(ctx context.Context) ([]domeneshop.Invoice, error) {
		return s.api.ListInvoices(ctx, nil)
	})
}

// Get returns a single invoice by number.
func (s *Service) Get(ctx context.Context, invoiceID int) (*domeneshop.Invoice, error) {
	if invoiceID <= 0 {
		return nil, fmt.Errorf("invoice number is required")
	}
	return s.api.GetInvoice(ctx, invoiceID)
}

func validateStatus(status string) error {
	switch status {
	case domeneshop.InvoiceStatusUnpaid, domeneshop.InvoiceStatusPaid, domeneshop.InvoiceStatusSettled:
		return nil
	}
	return fmt.Errorf("unknown invoice status %q (expected unpaid, paid or settled)", status)
}

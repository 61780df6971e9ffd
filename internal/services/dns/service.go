// Package dns provides the DNS record service layer.
//
// The Service wraps the record part of the Domeneshop client and adds
// input normalisation and early validation before delegating. Value
// validation beyond the obvious (record type, A/AAAA addresses) is left
// to the server, which is authoritative. CLI commands construct a Service
// and call it rather than the client directly.
package dns

import (
	"context"
	"fmt"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/swrcache"
)

// API is the slice of the Domeneshop client this service needs.
type API interface {
	ListRecords(ctx context.Context, domainID int, filter *domeneshop.RecordFilter) ([]domeneshop.Record, error)
	GetRecord(ctx context.Context, domainID, recordID int) (*domeneshop.Record, error)
	CreateRecord(ctx context.Context, domainID int, data domeneshop.RecordData) (int, error)
	UpdateRecord(ctx context.Context, domainID, recordID int, data domeneshop.RecordData) error
	DeleteRecord(ctx context.Context, domainID, recordID int) error
}

// Service is the DNS business logic layer.
type Service struct {
	api   API
	cache *swrcache.Cache
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables stale-while-revalidate caching for record lists.
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

// List returns the domain's DNS records. Filtered lists bypass the cache
// so the filter always hits the server.
func (s *Service) List(ctx context.Context, domainID int, filter *domeneshop.RecordFilter) ([]domeneshop.Record, error) {
	if filter != nil && (filter.Host != "" || filter.Type != "") {
		f := &domeneshop.RecordFilter{Type: filter.Type}
		if filter.Host != "" {
			f.Host = normalizeHost(filter.Host)
		}
		return s.api.ListRecords(ctx, domainID, f)
	}
	if s.cache == nil {
		return s.api.ListRecords(ctx, domainID, nil)
	}
	return swrcache.GetOrFetch(s.cache, ctx, recordsCacheKey(domainID), func(ctx context.Context) ([]domeneshop.Record, error) {
		return s.api.ListRecords(ctx, domainID, nil)
	})
}

// Get returns a single DNS record.
func (s *Service) Get(ctx context.Context, domainID, recordID int) (*domeneshop.Record, error) {
	if recordID <= 0 {
		return nil, fmt.Errorf("record ID is required")
	}
	return s.api.GetRecord(ctx, domainID, recordID)
}

// Create adds a DNS record after normalising and validating the data,
// and returns the new record's ID.
func (s *Service) Create(ctx context.Context, domainID int, data domeneshop.RecordData) (int, error) {
	data.Host = normalizeHost(data.Host)
	if err := validateRecordType(data.Type); err != nil {
		return 0, err
	}
	if err := validateData(data.Type, data.Data); err != nil {
		return 0, err
	}

	id, err := s.api.CreateRecord(ctx, domainID, data)
	if err == nil && s.cache != nil {
		_ = s.cache.Invalidate(recordsCacheKey(domainID))
	}
	return id, err
}

// Update replaces an existing DNS record after normalisation and
// validation.
func (s *Service) Update(ctx context.Context, domainID, recordID int, data domeneshop.RecordData) error {
	if recordID <= 0 {
		return fmt.Errorf("record ID is required")
	}
	data.Host = normalizeHost(data.Host)
	if err := validateRecordType(data.Type); err != nil {
		return err
	}
	if err := validateData(data.Type, data.Data); err != nil {
		return err
	}

	err := s.api.UpdateRecord(ctx, domainID, recordID, data)
	if err == nil && s.cache != nil {
		_ = s.cache.Invalidate(recordsCacheKey(domainID))
	}
	return err
}

// Delete removes a DNS record.
func (s *Service) Delete(ctx context.Context, domainID, recordID int) error {
	if recordID <= 0 {
		return fmt.Errorf("record ID is required")
	}
	err := s.api.DeleteRecord(ctx, domainID, recordID)
	if err == nil && s.cache != nil {
		_ = s.cache.Invalidate(recordsCacheKey(domainID))
	}
	return err
}

func recordsCacheKey(domainID int) string {
	return fmt.Sprintf("records_%d", domainID)
}

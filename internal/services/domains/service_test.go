package domains

import (
	"context"
	"errors"
	"testing"

	"sondreal/domctl/internal/domeneshop"
)

type mockAPI struct {
	domains []domeneshop.Domain
	listErr error
	getErr  error

	lastFilter *domeneshop.DomainFilter
	lastID     int
}

func (m *mockAPI) ListDomains(_ context.Context, filter *domeneshop.DomainFilter) ([]domeneshop.Domain, error) {
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	if filter == nil || filter.Domain == "" {
		return m.domains, nil
	}
	var out []domeneshop.Domain
	for _, d := range m.domains {
		if d.Name == filter.Domain {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockAPI) GetDomain(_ context.Context, domainID int) (*domeneshop.Domain, error) {
	m.lastID = domainID
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.domains {
		if m.domains[i].ID == domainID {
			return &m.domains[i], nil
		}
	}
	return nil, errors.New("no such domain")
}

func TestService_Resolve_NumericRefUsesGet(t *testing.T) {
	mock := &mockAPI{domains: []domeneshop.Domain{{ID: 184, Name: "example.no"}}}
	svc := New(mock)

	d, err := svc.Resolve(context.Background(), "184")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Name != "example.no" {
		t.Errorf("Name = %q, want example.no", d.Name)
	}
	if mock.lastID != 184 {
		t.Errorf("lastID = %d, want 184", mock.lastID)
	}
}

func TestService_Resolve_NameUsesServerFilter(t *testing.T) {
	mock := &mockAPI{domains: []domeneshop.Domain{
		{ID: 184, Name: "example.no"},
		{ID: 185, Name: "example.com"},
	}}
	svc := New(mock)

	d, err := svc.Resolve(context.Background(), "EXAMPLE.NO.")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.ID != 184 {
		t.Errorf("ID = %d, want 184", d.ID)
	}
	if mock.lastFilter == nil || mock.lastFilter.Domain != "example.no" {
		t.Errorf("filter = %+v, want domain=example.no", mock.lastFilter)
	}
}

func TestService_Resolve_UnknownName(t *testing.T) {
	svc := New(&mockAPI{domains: []domeneshop.Domain{{ID: 184, Name: "example.no"}}})

	_, err := svc.Resolve(context.Background(), "missing.no")
	if err == nil {
		t.Fatal("expected error for unknown domain, got nil")
	}
}

func TestService_Resolve_EmptyRef(t *testing.T) {
	svc := New(&mockAPI{})

	_, err := svc.Resolve(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected error for empty domain ref, got nil")
	}
}

func TestService_List_FilteredBypassesCacheKey(t *testing.T) {
	mock := &mockAPI{domains: []domeneshop.Domain{{ID: 184, Name: "example.no"}}}
	svc := New(mock)

	_, err := svc.List(context.Background(), "example.no")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastFilter == nil || mock.lastFilter.Domain != "example.no" {
		t.Errorf("filter = %+v, want domain=example.no", mock.lastFilter)
	}
}

func TestService_List_PropagatesError(t *testing.T) {
	want := errors.New("api down")
	svc := New(&mockAPI{listErr: want})

	_, err := svc.List(context.Background(), "")
	if !errors.Is(err, want) {
		t.Errorf("expected API error to propagate, got: %v", err)
	}
}

package domeneshop

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListDomains_HappyPath(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []any{
				testDomainJSON(1, "example.no", "active"),
				testDomainJSON(2, "example.com", "expired"),
			})
		},
	})

	c := newTestClient(t, srv.URL)

	domains, err := c.ListDomains(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []Domain{
		{
			ID:             1,
			Name:           "example.no",
			RegisteredDate: "2023-01-15",
			ExpiryDate:     "2026-01-15",
			Renew:          true,
			Registrant:     "Ola Nordmann",
			Status:         DomainStatusActive,
			Nameservers:    []string{"ns1.hyp.net", "ns2.hyp.net", "ns3.hyp.net"},
			Services:       DomainServices{Registrar: true, DNS: true, Webhotel: "none"},
		},
		{
			ID:             2,
			Name:           "example.com",
			RegisteredDate: "2023-01-15",
			ExpiryDate:     "2026-01-15",
			Renew:          true,
			Registrant:     "Ola Nordmann",
			Status:         DomainStatusExpired,
			Nameservers:    []string{"ns1.hyp.net", "ns2.hyp.net", "ns3.hyp.net"},
			Services:       DomainServices{Registrar: true, DNS: true, Webhotel: "none"},
		},
	}

	if diff := cmp.Diff(want, domains); diff != "" {
		t.Errorf("ListDomains mismatch (-want +got):\n%s", diff)
	}
}

func TestListDomains_FilterInQuery(t *testing.T) {
	var capturedQuery string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			capturedQuery = r.URL.RawQuery
			writeJSON(t, w, []any{testDomainJSON(1, "example.no", "active")})
		},
	})

	c := newTestClient(t, srv.URL)

	if _, err := c.ListDomains(context.Background(), &DomainFilter{Domain: "example.no"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedQuery != "domain=example.no" {
		t.Errorf("query = %q, want %q", capturedQuery, "domain=example.no")
	}
}

func TestListDomains_NoFilterNoQuery(t *testing.T) {
	var capturedQuery string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			capturedQuery = r.URL.RawQuery
			writeJSON(t, w, []any{})
		},
	})

	c := newTestClient(t, srv.URL)

	if _, err := c.ListDomains(context.Background(), &DomainFilter{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedQuery != "" {
		t.Errorf("query = %q, want empty", capturedQuery)
	}
}

func TestGetDomain_HappyPath(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, testDomainJSON(1, "example.no", "active"))
		},
	})

	c := newTestClient(t, srv.URL)

	d, err := c.GetDomain(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.ID != 1 || d.Name != "example.no" {
		t.Errorf("got domain %+v", d)
	}
	if !d.Services.DNS {
		t.Error("expected DNS service to be active")
	}
}

func TestGetDomain_NotFound(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/404": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]any{"code": "domain:notfound", "help": "Domain not found"})
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.GetDomain(context.Background(), 404)
	if !IsNotFound(err) {
		t.Errorf("expected not-found API error, got %v", err)
	}
}

package domeneshop

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Test helpers ---

// newTestClient creates a Client pointed at the given test server.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := New("test-token", "test-secret", WithBaseURL(serverURL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// newAPIRouter creates a httptest.Server that routes requests based on
// method + path. The handler map keys are "METHOD /path" strings.
func newAPIRouter(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		handler, ok := handlers[key]
		if !ok {
			// Try matching with the full URL (method + path + query).
			key = r.Method + " " + r.URL.String()
			handler, ok = handlers[key]
		}
		if !ok {
			// Try matching the escaped path, for percent-encoded segments.
			key = r.Method + " " + r.URL.EscapedPath()
			handler, ok = handlers[key]
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"code":"not_found","help":"no handler for %s %s"}`, r.Method, r.URL.String())
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeJSON writes v as a JSON response body.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// testDomainJSON returns a sample domain object in the API's wire shape.
func testDomainJSON(id int, name, status string) map[string]any {
	return map[string]any{
		"id":              id,
		"domain":          name,
		"registered_date": "2023-01-15",
		"expiry_date":     "2026-01-15",
		"renew":           true,
		"registrant":      "Ola Nordmann",
		"status":          status,
		"nameservers":     []any{"ns1.hyp.net", "ns2.hyp.net", "ns3.hyp.net"},
		"services": map[string]any{
			"registrar": true,
			"dns":       true,
			"email":     false,
			"webhotel":  "none",
		},
	}
}

// --- Construction tests ---

func TestNew_MissingToken(t *testing.T) {
	_, err := New("", "secret")
	if err == nil {
		t.Fatal("expected error for missing token, got nil")
	}
}

func TestNew_MissingSecret(t *testing.T) {
	_, err := New("token", "")
	if err == nil {
		t.Fatal("expected error for missing secret, got nil")
	}
}

// --- Auth header tests ---

func TestClient_BasicAuthSent(t *testing.T) {
	var captured []string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			captured = append(captured, r.Header.Get("Authorization"))
			writeJSON(t, w, []any{})
		},
	})

	c := newTestClient(t, srv.URL)

	// Two consecutive calls must send the identical header.
	c.ListDomains(context.Background(), nil)
	c.ListDomains(context.Background(), nil)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-token:test-secret"))
	if len(captured) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(captured))
	}
	for i, got := range captured {
		if got != want {
			t.Errorf("request %d Authorization = %q, want %q", i, got, want)
		}
	}
}

// --- Content-Type tests ---

func TestClient_NoContentTypeOnGET(t *testing.T) {
	var captured string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			captured = r.Header.Get("Content-Type")
			writeJSON(t, w, []any{})
		},
	})

	c := newTestClient(t, srv.URL)

	if _, err := c.ListDomains(context.Background(), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured != "" {
		t.Errorf("GET request carried Content-Type %q, want none", captured)
	}
}

func TestClient_ContentTypeOnPOST(t *testing.T) {
	var captured string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"POST /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			captured = r.Header.Get("Content-Type")
			writeJSON(t, w, map[string]any{"id": 42})
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.CreateRecord(context.Background(), 1, RecordData{
		Host: "www", Type: TypeA, Data: "192.0.2.1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured != "application/json" {
		t.Errorf("POST Content-Type = %q, want application/json", captured)
	}
}

// --- Error shape tests ---

func TestClient_APIError_JSONBody(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/99": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"Not found"}`)
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.GetDomain(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr := AsError(err)
	if apiErr == nil {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
	if !apiErr.IsNotFound() || !IsNotFound(err) {
		t.Error("expected IsNotFound to report true")
	}

	wantBody := map[string]any{"error": "Not found"}
	if diff := cmp.Diff(wantBody, apiErr.Body); diff != "" {
		t.Errorf("Body mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_APIError_TextBody(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, "upstream gateway unavailable")
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.ListDomains(context.Background(), nil)
	apiErr := AsError(err)
	if apiErr == nil {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", apiErr.Status)
	}
	if got, want := apiErr.Body, "upstream gateway unavailable"; got != want {
		t.Errorf("Body = %#v, want %q", got, want)
	}
}

func TestClient_APIError_EmptyBody(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.ListDomains(context.Background(), nil)
	apiErr := AsError(err)
	if apiErr == nil {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", apiErr.Status)
	}
	if apiErr.Body != nil {
		t.Errorf("Body = %#v, want nil", apiErr.Body)
	}
}

// --- Transport error tests ---

func TestClient_TransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := newTestClient(t, srv.URL)

	_, err := c.ListDomains(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if AsError(err) != nil {
		t.Errorf("transport failure classified as API error: %v", err)
	}
	if !strings.Contains(err.Error(), "request failed") {
		t.Errorf("unexpected error text: %v", err)
	}
}

package domeneshop

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListForwards_HappyPath(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1/forwards/": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []any{
				map[string]any{"host": "@", "frame": false, "url": "https://example.org/"},
				map[string]any{"host": "blog", "frame": true, "url": "https://blog.example.org/"},
			})
		},
	})

	c := newTestClient(t, srv.URL)

	forwards, err := c.ListForwards(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []Forward{
		{Host: "@", Frame: false, URL: "https://example.org/"},
		{Host: "blog", Frame: true, URL: "https://blog.example.org/"},
	}
	if diff := cmp.Diff(want, forwards); diff != "" {
		t.Errorf("ListForwards mismatch (-want +got):\n%s", diff)
	}
}

func TestGetForward_RootHostEscaped(t *testing.T) {
	var capturedURI string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1/forwards/%40": func(w http.ResponseWriter, r *http.Request) {
			capturedURI = r.RequestURI
			writeJSON(t, w, map[string]any{"host": "@", "frame": false, "url": "https://example.org/"})
		},
	})

	c := newTestClient(t, srv.URL)

	fwd, err := c.GetForward(context.Background(), 1, "@")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fwd.Host != "@" {
		t.Errorf("fwd.Host = %q, want %q", fwd.Host, "@")
	}
	if !strings.HasSuffix(capturedURI, "/forwards/%40") {
		t.Errorf("request URI = %q, want %%40 suffix", capturedURI)
	}
}

func TestCreateForward_SendsBody(t *testing.T) {
	var capturedBody Forward
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"POST /domains/1/forwards/": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, capturedBody)
		},
	})

	c := newTestClient(t, srv.URL)

	f := Forward{Host: "shop", Frame: false, URL: "https://shop.example.org/"}
	if err := c.CreateForward(context.Background(), 1, f); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff(f, capturedBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateForward_KeysOnHost(t *testing.T) {
	var capturedURI, capturedMethod string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"PUT /domains/1/forwards/%40": func(w http.ResponseWriter, r *http.Request) {
			capturedURI = r.RequestURI
			capturedMethod = r.Method
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)

	err := c.UpdateForward(context.Background(), 1, Forward{
		Host: "@", Frame: true, URL: "https://example.org/new",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedMethod != "PUT" {
		t.Errorf("method = %q, want PUT", capturedMethod)
	}
	if !strings.HasSuffix(capturedURI, "/forwards/%40") {
		t.Errorf("request URI = %q, want %%40 suffix", capturedURI)
	}
}

func TestDeleteForward_NotFound(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"DELETE /domains/1/forwards/gone": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]any{"code": "forward:notfound", "help": "No forward for host"})
		},
	})

	c := newTestClient(t, srv.URL)

	err := c.DeleteForward(context.Background(), 1, "gone")
	if !IsNotFound(err) {
		t.Errorf("expected not-found API error, got %v", err)
	}
}

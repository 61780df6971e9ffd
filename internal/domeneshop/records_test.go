package domeneshop

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListRecords_HappyPath(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []any{
				map[string]any{"id": 10, "host": "@", "ttl": 3600, "type": "A", "data": "192.0.2.1"},
				map[string]any{"id": 11, "host": "www", "ttl": 300, "type": "CNAME", "data": "@"},
			})
		},
	})

	c := newTestClient(t, srv.URL)

	records, err := c.ListRecords(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []Record{
		{ID: 10, RecordData: RecordData{Host: "@", TTL: 3600, Type: TypeA, Data: "192.0.2.1"}},
		{ID: 11, RecordData: RecordData{Host: "www", TTL: 300, Type: TypeCNAME, Data: "@"}},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ListRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestListRecords_TypeFilterMX(t *testing.T) {
	var capturedQuery string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			capturedQuery = r.URL.RawQuery
			writeJSON(t, w, []any{
				map[string]any{"id": 12, "host": "@", "ttl": 3600, "type": "MX", "data": "mx.example.no.", "priority": 10},
			})
		},
	})

	c := newTestClient(t, srv.URL)

	records, err := c.ListRecords(context.Background(), 1, &RecordFilter{Type: TypeMX})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedQuery != "type=MX" {
		t.Errorf("query = %q, want %q", capturedQuery, "type=MX")
	}

	want := []Record{
		{ID: 12, RecordData: RecordData{
			Host: "@", TTL: 3600, Type: TypeMX, Data: "mx.example.no.",
			Priority: Ptr(10),
		}},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ListRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestListRecords_EmptyFilterOmitsParams(t *testing.T) {
	var capturedQuery string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			capturedQuery = r.URL.RawQuery
			writeJSON(t, w, []any{})
		},
	})

	c := newTestClient(t, srv.URL)

	if _, err := c.ListRecords(context.Background(), 1, &RecordFilter{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedQuery != "" {
		t.Errorf("query = %q, want empty", capturedQuery)
	}
}

func TestGetRecord_HappyPath(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /domains/1/dns/42": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{
				"id": 42, "host": "_sip._tcp", "ttl": 3600, "type": "SRV",
				"data": "sip.example.no.", "priority": 10, "weight": 5, "port": 5060,
			})
		},
	})

	c := newTestClient(t, srv.URL)

	rec, err := c.GetRecord(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := &Record{ID: 42, RecordData: RecordData{
		Host: "_sip._tcp", TTL: 3600, Type: TypeSRV, Data: "sip.example.no.",
		Priority: Ptr(10), Weight: Ptr(5), Port: Ptr(5060),
	}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("GetRecord mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateRecord_ReturnsID(t *testing.T) {
	var capturedBody map[string]any
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"POST /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]any{"id": 1337})
		},
	})

	c := newTestClient(t, srv.URL)

	id, err := c.CreateRecord(context.Background(), 1, RecordData{
		Host: "www", TTL: 600, Type: TypeA, Data: "192.0.2.7",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 1337 {
		t.Errorf("id = %d, want 1337", id)
	}

	// Explicit TTL must survive into the body.
	if got, want := capturedBody["ttl"], float64(600); got != want {
		t.Errorf("body ttl = %v, want %v", got, want)
	}
}

func TestCreateRecord_OmittedTTLAbsentFromBody(t *testing.T) {
	var capturedBody map[string]any
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"POST /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]any{"id": 1338})
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.CreateRecord(context.Background(), 1, RecordData{
		Host: "www", Type: TypeA, Data: "192.0.2.7",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, present := capturedBody["ttl"]; present {
		t.Errorf("body carries ttl key: %v", capturedBody)
	}
	// Unused typed extras must be absent too.
	if _, present := capturedBody["priority"]; present {
		t.Errorf("body carries priority key: %v", capturedBody)
	}
}

func TestCreateRecord_MXPriority(t *testing.T) {
	var capturedBody map[string]any
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"POST /domains/1/dns": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]any{"id": 1339})
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.CreateRecord(context.Background(), 1, RecordData{
		Host: "@", Type: TypeMX, Data: "mx.example.no.", Priority: Ptr(20),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got, want := capturedBody["priority"], float64(20); got != want {
		t.Errorf("body priority = %v, want %v", got, want)
	}
}

func TestUpdateRecord_SendsPUT(t *testing.T) {
	var capturedMethod string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"PUT /domains/1/dns/42": func(w http.ResponseWriter, r *http.Request) {
			capturedMethod = r.Method
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)

	err := c.UpdateRecord(context.Background(), 1, 42, RecordData{
		Host: "www", TTL: 300, Type: TypeA, Data: "192.0.2.9",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedMethod != "PUT" {
		t.Errorf("method = %q, want PUT", capturedMethod)
	}
}

func TestDeleteRecord_NoContent(t *testing.T) {
	var capturedPath string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"DELETE /domains/1/dns/42": func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c := newTestClient(t, srv.URL)

	if err := c.DeleteRecord(context.Background(), 1, 42); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/domains/1/dns/42" {
		t.Errorf("path = %q, want /domains/1/dns/42", capturedPath)
	}
}

func TestDeleteRecord_NotFound(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"DELETE /domains/1/dns/999": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]any{"code": "record:notfound", "help": "Record not found"})
		},
	})

	c := newTestClient(t, srv.URL)

	err := c.DeleteRecord(context.Background(), 1, 999)
	if !IsNotFound(err) {
		t.Errorf("expected not-found API error, got %v", err)
	}
}

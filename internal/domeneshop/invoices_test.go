package domeneshop

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListInvoices_StatusFilter(t *testing.T) {
	var capturedQuery string
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /invoices": func(w http.ResponseWriter, r *http.Request) {
			capturedQuery = r.URL.RawQuery
			writeJSON(t, w, []any{
				map[string]any{
					"id": 10001, "type": "invoice", "amount": 120, "currency": "NOK",
					"due_date": "2026-02-01", "issued_date": "2026-01-01",
					"status": "unpaid", "url": "https://domene.shop/invoice?nr=10001",
				},
			})
		},
	})

	c := newTestClient(t, srv.URL)

	invoices, err := c.ListInvoices(context.Background(), &InvoiceFilter{Status: InvoiceStatusUnpaid})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedQuery != "status=unpaid" {
		t.Errorf("query = %q, want %q", capturedQuery, "status=unpaid")
	}

	want := []Invoice{{
		ID: 10001, Type: InvoiceTypeInvoice, Amount: 120, Currency: "NOK",
		DueDate: "2026-02-01", IssuedDate: "2026-01-01",
		Status: InvoiceStatusUnpaid, URL: "https://domene.shop/invoice?nr=10001",
	}}
	if diff := cmp.Diff(want, invoices); diff != "" {
		t.Errorf("ListInvoices mismatch (-want +got):\n%s", diff)
	}
}

func TestGetInvoice_HappyPath(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /invoices/10002": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, map[string]any{
				"id": 10002, "type": "credit_note", "amount": -60, "currency": "NOK",
				"issued_date": "2026-01-10", "status": "settled",
				"url": "https://domene.shop/invoice?nr=10002",
			})
		},
	})

	c := newTestClient(t, srv.URL)

	inv, err := c.GetInvoice(context.Background(), 10002)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if inv.Type != InvoiceTypeCreditNote || inv.Amount != -60 {
		t.Errorf("got invoice %+v", inv)
	}
	if inv.DueDate != "" || inv.PaidDate != "" {
		t.Errorf("expected empty due/paid dates, got %+v", inv)
	}
}

func TestGetInvoice_NotFound(t *testing.T) {
	srv := newAPIRouter(t, map[string]http.HandlerFunc{
		"GET /invoices/1": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]any{"code": "invoice:notfound", "help": "Invoice not found"})
		},
	})

	c := newTestClient(t, srv.URL)

	_, err := c.GetInvoice(context.Background(), 1)
	if !IsNotFound(err) {
		t.Errorf("expected not-found API error, got %v", err)
	}
}

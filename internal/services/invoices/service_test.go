package invoices

import (
	"context"
	"errors"
	"testing"

	"sondreal/domctl/internal/domeneshop"
)

type mockAPI struct {
	invoices []domeneshop.Invoice
	listErr  error

	lastFilter *domeneshop.InvoiceFilter
	lastID     int
}

func (m *mockAPI) ListInvoices(_ context.Context, filter *domeneshop.InvoiceFilter) ([]domeneshop.Invoice, error) {
	m.lastFilter = filter
	return m.invoices, m.listErr
}

func (m *mockAPI) GetInvoice(_ context.Context, invoiceID int) (*domeneshop.Invoice, error) {
	m.lastID = invoiceID
	for i := range m.invoices {
		if m.invoices[i].ID == invoiceID {
			return &m.invoices[i], nil
		}
	}
	return nil, errors.New("no such invoice")
}

func TestService_List_StatusFilterForwarded(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	_, err := svc.List(context.Background(), "Unpaid")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastFilter == nil || mock.lastFilter.Status != "unpaid" {
		t.Errorf("filter = %+v, want status unpaid", mock.lastFilter)
	}
}

func TestService_List_UnknownStatus(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	_, err := svc.List(context.Background(), "overdue")
	if err == nil {
		t.Fatal("expected error for unknown status, got nil")
	}
	if mock.lastFilter != nil {
		t.Error("API should not be called for an invalid status")
	}
}

func TestService_List_NoFilter(t *testing.T) {
	mock := &mockAPI{invoices: []domeneshop.Invoice{{ID: 1, Status: "paid"}}}
	svc := New(mock)

	got, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastFilter != nil {
		t.Errorf("filter = %+v, want nil", mock.lastFilter)
	}
	if len(got) != 1 {
		t.Errorf("got %d invoices, want 1", len(got))
	}
}

func TestService_Get_MissingID(t *testing.T) {
	svc := New(&mockAPI{})

	_, err := svc.Get(context.Background(), 0)
	if err == nil {
		t.Fatal("expected error for missing invoice number, got nil")
	}
}

func TestService_Get_HappyPath(t *testing.T) {
	mock := &mockAPI{invoices: []domeneshop.Invoice{{ID: 7, Amount: 120, Status: "unpaid"}}}
	svc := New(mock)

	inv, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if inv.Amount != 120 {
		t.Errorf("Amount = %d, want 120", inv.Amount)
	}
}

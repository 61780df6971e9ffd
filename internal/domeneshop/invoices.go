package domeneshop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Invoice kinds and statuses reported by the API. Credit notes only ever
// have status "settled".
const (
	InvoiceTypeInvoice    = "invoice"
	InvoiceTypeCreditNote = "credit_note"

	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusSettled = "settled"
)

// Invoice is an invoice or credit note on the account. Dates are
// ISO 8601 (YYYY-MM-DD); PaidDate and DueDate are empty when not
// applicable.
type Invoice struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Amount     int    `json:"amount"`
	Currency   string `json:"currency"`
	DueDate    string `json:"due_date,omitempty"`
	IssuedDate string `json:"issued_date"`
	PaidDate   string `json:"paid_date,omitempty"`
	Status     string `json:"status"`
	URL        string `json:"url"`
}

// InvoiceFilter narrows ListInvoices results.
type InvoiceFilter struct {
	Status string
}

// ListInvoices returns the account's invoices, optionally filtered by
// status.
func (c *Client) ListInvoices(ctx context.Context, filter *InvoiceFilter) ([]Invoice, error) {
	q := url.Values{}
	if filter != nil && filter.Status != "" {
		q.Set("status", filter.Status)
	}

	var out []Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices", q, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return out, nil
}

// GetInvoice returns a single invoice by its number.
func (c *Client) GetInvoice(ctx context.Context, invoiceID int) (*Invoice, error) {
	var out Invoice
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d", invoiceID), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get invoice %d: %w", invoiceID, err)
	}
	return &out, nil
}

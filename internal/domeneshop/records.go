package domeneshop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RecordType identifies a DNS record type supported by the API.
type RecordType string

// Record types the API accepts.
const (
	TypeA     RecordType = "A"
	TypeAAAA  RecordType = "AAAA"
	TypeANAME RecordType = "ANAME"
	TypeCAA   RecordType = "CAA"
	TypeCNAME RecordType = "CNAME"
	TypeDS    RecordType = "DS"
	TypeMX    RecordType = "MX"
	TypeNS    RecordType = "NS"
	TypeSRV   RecordType = "SRV"
	TypeTLSA  RecordType = "TLSA"
	TypeTXT   RecordType = "TXT"
)

// RecordTypes lists all supported record types in display order.
func RecordTypes() []RecordType {
	return []RecordType{
		TypeA, TypeAAAA, TypeANAME, TypeCAA, TypeCNAME, TypeDS,
		TypeMX, TypeNS, TypeSRV, TypeTLSA, TypeTXT,
	}
}

// RecordData is the writable portion of a DNS record: everything except
// the server-assigned ID. The same shape is used for create and update.
// TTL of zero means "let the server pick its default" and is omitted from
// the request body. The typed extras only apply to certain record types;
// leave the rest nil and the keys never hit the wire. The server, not the
// client, decides whether a combination is valid.
type RecordData struct {
	Host string     `json:"host"`
	TTL  int        `json:"ttl,omitempty"`
	Type RecordType `json:"type"`
	Data string     `json:"data"`

	Priority *int `json:"priority,omitempty"` // MX, SRV
	Weight   *int `json:"weight,omitempty"`   // SRV
	Port     *int `json:"port,omitempty"`     // SRV
	Usage    *int `json:"usage,omitempty"`    // TLSA
	Selector *int `json:"selector,omitempty"` // TLSA
	DType    *int `json:"dtype,omitempty"`    // TLSA
	Alg      *int `json:"alg,omitempty"`      // DS
	Digest   *int `json:"digest,omitempty"`   // DS
	Flags    *int `json:"flags,omitempty"`    // CAA

	// Tag is the DS key tag (an integer) or the CAA property tag (a
	// string: "issue", "issuewild" or "iodef"). The API uses the same
	// field name for both.
	Tag any `json:"tag,omitempty"`
}

// Record is a DNS record as stored by the server.
type Record struct {
	ID int `json:"id"`
	RecordData
}

// RecordFilter narrows ListRecords results. Empty fields are not sent.
type RecordFilter struct {
	Host string
	Type RecordType
}

// ListRecords returns the DNS records of a domain, optionally filtered by
// host and/or type.
func (c *Client) ListRecords(ctx context.Context, domainID int, filter *RecordFilter) ([]Record, error) {
	q := url.Values{}
	if filter != nil {
		if filter.Host != "" {
			q.Set("host", filter.Host)
		}
		if filter.Type != "" {
			q.Set("type", string(filter.Type))
		}
	}

	var out []Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/domains/%d/dns", domainID), q, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list records for domain %d: %w", domainID, err)
	}
	return out, nil
}

// GetRecord returns a single DNS record by its ID.
func (c *Client) GetRecord(ctx context.Context, domainID, recordID int) (*Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/domains/%d/dns/%d", domainID, recordID), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get record %d for domain %d: %w", recordID, domainID, err)
	}
	return &out, nil
}

// CreateRecord adds a DNS record to the domain and returns the ID the
// server assigned to it.
func (c *Client) CreateRecord(ctx context.Context, domainID int, data RecordData) (int, error) {
	var out struct {
		ID int `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/domains/%d/dns", domainID), nil, data, &out); err != nil {
		return 0, fmt.Errorf("failed to create record for domain %d: %w", domainID, err)
	}
	return out.ID, nil
}

// UpdateRecord replaces an existing DNS record. All writable fields are
// sent; the record keeps its ID.
func (c *Client) UpdateRecord(ctx context.Context, domainID, recordID int, data RecordData) error {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/domains/%d/dns/%d", domainID, recordID), nil, data, nil); err != nil {
		return fmt.Errorf("failed to update record %d for domain %d: %w", recordID, domainID, err)
	}
	return nil
}

// DeleteRecord removes a DNS record.
func (c *Client) DeleteRecord(ctx context.Context, domainID, recordID int) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/domains/%d/dns/%d", domainID, recordID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete record %d for domain %d: %w", recordID, domainID, err)
	}
	return nil
}

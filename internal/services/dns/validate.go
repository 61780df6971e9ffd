package dns

import (
	"fmt"
	"net"
	"strings"

	"sondreal/domctl/internal/domeneshop"
)

// validRecordTypes is the set of record types the API accepts.
var validRecordTypes = func() map[domeneshop.RecordType]bool {
	m := make(map[domeneshop.RecordType]bool)
	for _, t := range domeneshop.RecordTypes() {
		m[t] = true
	}
	return m
}()

// normalizeHost trims, lowercases and defaults an empty host to "@"
// (the root of the domain). A trailing dot is stripped so "www." and
// "www" mean the same thing.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimRight(strings.TrimSpace(host), "."))
	if host == "" {
		return "@"
	}
	return host
}

// validateRecordType returns an error if t is not a supported record type.
func validateRecordType(t domeneshop.RecordType) error {
	if !validRecordTypes[t] {
		return fmt.Errorf("unsupported record type %q", t)
	}
	return nil
}

// validateData checks that the data value is plausible for the record
// type. It only catches obvious mismatches (e.g. a non-IP value for an
// A record) to give the user an early error; the server remains the
// authority on everything else.
func validateData(t domeneshop.RecordType, data string) error {
	if strings.TrimSpace(data) == "" {
		return fmt.Errorf("record data cannot be empty")
	}

	switch t {
	case domeneshop.TypeA:
		ip := net.ParseIP(data)
		if ip == nil || ip.To4() == nil {
			return fmt.Errorf("A record data must be a valid IPv4 address, got %q", data)
		}
	case domeneshop.TypeAAAA:
		ip := net.ParseIP(data)
		if ip == nil || ip.To4() != nil {
			return fmt.Errorf("AAAA record data must be a valid IPv6 address, got %q", data)
		}
	}

	return nil
}

// Package dyndns runs dynamic DNS updates, fanning out over multiple
// hostnames concurrently.
package dyndns

import (
	"context"
	"fmt"
	"net"
	"strings"

	"golang.org/x/sync/errgroup"

	"sondreal/domctl/internal/util"
)

// maxConcurrent caps parallel update requests so a long hostname list
// does not hammer the API.
const maxConcurrent = 4

// API is the slice of the Domeneshop client this service needs.
type API interface {
	UpdateDynDNS(ctx context.Context, hostname, myip string) error
}

// Result is the outcome of a single hostname update.
type Result struct {
	Hostname string
	Err      error
}

// Service runs dyndns updates.
type Service struct {
	api API
}

// New returns a Service backed by the given API.
func New(api API) *Service {
	return &Service{api: api}
}

// Update points every hostname at ip. An empty ip lets the server use
// the connection's source address. Hostnames are updated concurrently;
// one failing hostname does not stop the others. Results come back in
// input order.
func (s *Service) Update(ctx context.Context, hostnames []string, ip string) ([]Result, error) {
	if len(hostnames) == 0 {
		return nil, fmt.Errorf("at least one hostname is required")
	}
	if ip != "" && net.ParseIP(ip) == nil {
		return nil, fmt.Errorf("invalid IP address %q", ip)
	}

	cleaned := make([]string, len(hostnames))
	for i, h := range hostnames {
		h = strings.ToLower(strings.TrimRight(strings.TrimSpace(h), "."))
		if h == "" {
			return nil, fmt.Errorf("hostname %d is empty", i+1)
		}
		if err := util.ValidateHostname(h); err != nil {
			return nil, err
		}
		cleaned[i] = h
	}

	results := make([]Result, len(cleaned))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, hostname := range cleaned {
		g.Go(func() error {
			// Failures are per-hostname results, not group errors, so
			// sibling updates keep running.
			results[i] = Result{Hostname: hostname, Err: s.api.UpdateDynDNS(ctx, hostname, ip)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

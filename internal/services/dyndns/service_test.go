package dyndns

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type mockAPI struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error
}

func (m *mockAPI) UpdateDynDNS(_ context.Context, hostname, myip string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, hostname)
	if err, ok := m.failOn[hostname]; ok {
		return err
	}
	return nil
}

func TestService_Update_AllHostnames(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	results, err := svc.Update(context.Background(), []string{"a.example.no", "b.example.no"}, "203.0.113.7")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("hostname %s failed: %v", r.Hostname, r.Err)
		}
	}
	if len(mock.calls) != 2 {
		t.Errorf("expected 2 API calls, got %d", len(mock.calls))
	}
}

func TestService_Update_OneFailureDoesNotStopOthers(t *testing.T) {
	mock := &mockAPI{failOn: map[string]error{"bad.example.no": errors.New("boom")}}
	svc := New(mock)

	results, err := svc.Update(context.Background(), []string{"good.example.no", "bad.example.no", "also.example.no"}, "")
	if err != nil {
		t.Fatalf("expected no group error, got %v", err)
	}

	var failed, ok int
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	if failed != 1 || ok != 2 {
		t.Errorf("failed=%d ok=%d, want 1/2", failed, ok)
	}
	if len(mock.calls) != 3 {
		t.Errorf("expected 3 API calls, got %d", len(mock.calls))
	}
}

func TestService_Update_ResultsKeepInputOrder(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	hostnames := []string{"c.example.no", "a.example.no", "b.example.no"}
	results, err := svc.Update(context.Background(), hostnames, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i, r := range results {
		if r.Hostname != hostnames[i] {
			t.Errorf("results[%d] = %q, want %q", i, r.Hostname, hostnames[i])
		}
	}
}

func TestService_Update_InvalidIP(t *testing.T) {
	svc := New(&mockAPI{})

	_, err := svc.Update(context.Background(), []string{"a.example.no"}, "not-an-ip")
	if err == nil {
		t.Fatal("expected error for invalid IP, got nil")
	}
}

func TestService_Update_NoHostnames(t *testing.T) {
	svc := New(&mockAPI{})

	_, err := svc.Update(context.Background(), nil, "")
	if err == nil {
		t.Fatal("expected error for empty hostname list, got nil")
	}
}

func TestService_Update_NormalizesHostnames(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	results, err := svc.Update(context.Background(), []string{"  HOME.Example.NO.  "}, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if results[0].Hostname != "home.example.no" {
		t.Errorf("hostname = %q, want home.example.no", results[0].Hostname)
	}
}

package forwards

import (
	"context"
	"errors"
	"testing"

	"sondreal/domctl/internal/domeneshop"
)

type mockAPI struct {
	forwards  []domeneshop.Forward
	createErr error
	updateErr error
	deleteErr error

	created []domeneshop.Forward
	deleted []string
}

func (m *mockAPI) ListForwards(_ context.Context, domainID int) ([]domeneshop.Forward, error) {
	return m.forwards, nil
}

func (m *mockAPI) GetForward(_ context.Context, domainID int, host string) (*domeneshop.Forward, error) {
	for i := range m.forwards {
		if m.forwards[i].Host == host {
			return &m.forwards[i], nil
		}
	}
	return nil, errors.New("no such forward")
}

func (m *mockAPI) CreateForward(_ context.Context, domainID int, f domeneshop.Forward) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, f)
	return nil
}

func (m *mockAPI) UpdateForward(_ context.Context, domainID int, f domeneshop.Forward) error {
	return m.updateErr
}

func (m *mockAPI) DeleteForward(_ context.Context, domainID int, host string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, host)
	return nil
}

func TestService_Create_NormalizesEmptyHostToRoot(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	err := svc.Create(context.Background(), 1, domeneshop.Forward{URL: "https://example.org/"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mock.created) != 1 || mock.created[0].Host != "@" {
		t.Errorf("created = %+v, want host @", mock.created)
	}
}

func TestService_Create_RejectsBadScheme(t *testing.T) {
	svc := New(&mockAPI{})

	err := svc.Create(context.Background(), 1, domeneshop.Forward{Host: "www", URL: "ftp://example.org/"})
	if err == nil {
		t.Fatal("expected error for non-http URL, got nil")
	}
}

func TestService_Create_RejectsRelativeURL(t *testing.T) {
	svc := New(&mockAPI{})

	err := svc.Create(context.Background(), 1, domeneshop.Forward{Host: "www", URL: "/just/a/path"})
	if err == nil {
		t.Fatal("expected error for relative URL, got nil")
	}
}

func TestService_Rename_CreatesBeforeDeleting(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	err := svc.Rename(context.Background(), 1, "old", domeneshop.Forward{
		Host: "new", URL: "https://example.org/",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mock.created) != 1 || mock.created[0].Host != "new" {
		t.Errorf("created = %+v, want host new", mock.created)
	}
	if len(mock.deleted) != 1 || mock.deleted[0] != "old" {
		t.Errorf("deleted = %v, want [old]", mock.deleted)
	}
}

func TestService_Rename_CreateFailureLeavesOldIntact(t *testing.T) {
	mock := &mockAPI{createErr: errors.New("conflict")}
	svc := New(mock)

	err := svc.Rename(context.Background(), 1, "old", domeneshop.Forward{
		Host: "new", URL: "https://example.org/",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(mock.deleted) != 0 {
		t.Errorf("old forward was deleted despite create failure: %v", mock.deleted)
	}
}

func TestService_Rename_SameHostIsUpdate(t *testing.T) {
	mock := &mockAPI{}
	svc := New(mock)

	err := svc.Rename(context.Background(), 1, "www", domeneshop.Forward{
		Host: "WWW", URL: "https://example.org/",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mock.created) != 0 || len(mock.deleted) != 0 {
		t.Error("same-host rename should update in place")
	}
}

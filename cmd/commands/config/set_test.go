package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"sondreal/domctl/internal/config"
)

// setupTestConfig points the config package at a temp file and returns cleanup.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_DefaultDomain(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "default-domain", "example.no")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"example.no"`) {
		t.Errorf("expected confirmation with domain name, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultDomain != "example.no" {
		t.Errorf("expected DefaultDomain %q, got %q", "example.no", cfg.DefaultDomain)
	}
}

func TestSet_DefaultDomain_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "default-domain", "EXAMPLE.NO")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"example.no"`) {
		t.Errorf("expected normalized domain name, got: %s", stdout)
	}
}

func TestSet_APIURL(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "api-url", "https://api.example.test/v0")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "api.example.test") {
		t.Errorf("expected confirmation with URL, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIURL != "https://api.example.test/v0" {
		t.Errorf("expected APIURL to persist, got %q", cfg.APIURL)
	}
}

func TestSet_APIURL_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "api-url", "not-a-url")

	if !strings.Contains(stderr, "absolute http(s) URL") {
		t.Errorf("expected URL validation error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

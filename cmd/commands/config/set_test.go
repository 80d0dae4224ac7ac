package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/pkgsort/internal/config"
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

func TestSet_UnknownKeys(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "unknown-keys", "preserve")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"preserve"`) {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.UnknownKeys != "preserve" {
		t.Errorf("expected UnknownKeys %q, got %q", "preserve", cfg.UnknownKeys)
	}
}

func TestSet_InvalidChoice(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "unknown-keys", "random")

	if !strings.Contains(stderr, "invalid unknown-keys") {
		t.Errorf("expected validation error, got: %s", stderr)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.UnknownKeys != "" {
		t.Errorf("invalid value must not be saved, got %q", cfg.UnknownKeys)
	}
}

func TestSet_InvalidIndent(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "indent", "12")

	if !strings.Contains(stderr, "indent must be between") {
		t.Errorf("expected indent error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestSet_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "HISTORY", "OFF")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `history set to "off"`) {
		t.Errorf("expected normalized value, got: %s", stdout)
	}
}

func TestSet_GroupsFileKeepsCase(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execConfig(t, "set", "groups-file", "/Layouts/Package.yaml")

	if !strings.Contains(stdout, `"/Layouts/Package.yaml"`) {
		t.Errorf("expected path case preserved, got: %s", stdout)
	}
}

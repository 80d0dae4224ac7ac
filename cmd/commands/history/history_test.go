package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/pkgsort/internal/database"
	"nathanbeddoewebdev/pkgsort/internal/history"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "pkgsort.db"))
	t.Cleanup(database.ResetPath)
}

func seed(t *testing.T, entries ...history.Entry) {
	t.Helper()
	repo, err := history.Open()
	if err != nil {
		t.Fatalf("failed to open history: %v", err)
	}
	defer repo.Close()
	for i := range entries {
		if err := repo.Save(&entries[i]); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
}

func execHistory(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestList_Empty(t *testing.T) {
	setupTestDB(t)

	stdout, _, err := execHistory(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(stdout, "No history entries found.") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestList_Table(t *testing.T) {
	setupTestDB(t)
	seed(t,
		history.Entry{Path: "/repo/a/package.json", Outcome: history.OutcomeSorted, DurationMs: 12},
		history.Entry{Path: "/repo/b/package.json", Outcome: history.OutcomeError, Detail: "manifest: bad", DurationMs: 1500},
	)

	stdout, _, err := execHistory(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"OUTCOME", "/repo/a/package.json", "sorted", "12ms", "1.5s", "manifest: bad"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestList_FilterByPath(t *testing.T) {
	setupTestDB(t)
	dir := t.TempDir()
	manifest := filepath.Join(dir, "package.json")
	if err := os.WriteFile(manifest, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	seed(t,
		history.Entry{Path: manifest, Outcome: history.OutcomeUnchanged},
		history.Entry{Path: "/elsewhere/package.json", Outcome: history.OutcomeSorted},
	)

	stdout, _, err := execHistory(t, "list", "--path", dir, "-o", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var entries []history.Entry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(entries) != 1 || entries[0].Path != manifest {
		t.Errorf("expected only %s, got %+v", manifest, entries)
	}
}

func TestList_InvalidFlags(t *testing.T) {
	setupTestDB(t)

	if _, _, err := execHistory(t, "list", "--limit", "0"); err == nil {
		t.Error("expected error for zero limit")
	}
	if _, _, err := execHistory(t, "list", "-o", "xml"); err == nil {
		t.Error("expected error for unsupported output")
	}
}

func TestPrune(t *testing.T) {
	setupTestDB(t)
	seed(t,
		history.Entry{Timestamp: time.Now().Add(-60 * 24 * time.Hour), Path: "/old", Outcome: history.OutcomeSorted},
		history.Entry{Path: "/new", Outcome: history.OutcomeSorted},
	)

	stdout, _, err := execHistory(t, "prune", "--older-than", "30d")
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if !strings.Contains(stdout, "Removed 1 history") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestPrune_RequiresDuration(t *testing.T) {
	setupTestDB(t)

	if _, _, err := execHistory(t, "prune"); err == nil {
		t.Error("expected error without --older-than")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"0d", 0, false},
		{"72h", 72 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"-1d", 0, true},
		{"-5h", 0, true},
		{"xd", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

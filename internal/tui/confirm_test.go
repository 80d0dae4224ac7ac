package tui

import (
	"strings"
	"testing"
)

func TestKeyOrderSummary_MarksMovedKeys(t *testing.T) {
	before := []byte(`{"version":"1.0.0","name":"app","zeta":1}`)
	after := []byte(`{"zeta":1,"name":"app","version":"1.0.0"}`)

	got := KeyOrderSummary(before, after)

	for _, want := range []string{"zeta", "name", "version", "~"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "order unchanged") {
		t.Errorf("expected moved keys, got:\n%s", got)
	}
}

func TestKeyOrderSummary_NestedOnly(t *testing.T) {
	before := []byte(`{"name":"app","dependencies":{"b":"1","a":"1"}}`)
	after := []byte(`{"name":"app","dependencies":{"a":"1","b":"1"}}`)

	got := KeyOrderSummary(before, after)

	if !strings.Contains(got, "order unchanged") {
		t.Errorf("expected nested-only note, got:\n%s", got)
	}
}

func TestKeyOrderSummary_InvalidAfter(t *testing.T) {
	got := KeyOrderSummary([]byte(`{}`), []byte(`not json`))
	if !strings.Contains(got, "unable to read") {
		t.Errorf("expected unreadable note, got: %s", got)
	}
}

func TestKeyOrderSummary_BOMBefore(t *testing.T) {
	before := append([]byte{0xEF, 0xBB, 0xBF}, `{"version":"1.0.0","name":"app"}`...)
	after := []byte(`{"name":"app","version":"1.0.0"}`)

	got := KeyOrderSummary(before, after)

	if !strings.Contains(got, "~") {
		t.Errorf("expected moved keys, got:\n%s", got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("keys from a BOM-prefixed file must not be reported as new:\n%s", got)
	}
}

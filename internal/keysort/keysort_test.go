package keysort

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func mustParse(t *testing.T, s string) *Mapping {
	t.Helper()
	m, err := ParseMapping([]byte(s))
	if err != nil {
		t.Fatalf("ParseMapping(%s) failed: %v", s, err)
	}
	return m
}

func compact(t *testing.T, v Value) string {
	t.Helper()
	data, err := Encode(v, "")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return string(data)
}

func TestSortAlphabetical(t *testing.T) {
	input := []string{"cherry", "Banana", "apple", "éclair", "eagle"}
	original := append([]string(nil), input...)

	got := SortAlphabetical(input)

	want := []string{"apple", "Banana", "cherry", "eagle", "éclair"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortAlphabetical mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, input); diff != "" {
		t.Errorf("input was mutated (-before +after):\n%s", diff)
	}
}

func TestSortAlphabetical_PermutationAndOrder(t *testing.T) {
	inputs := [][]string{
		nil,
		{"a"},
		{"b", "a", "b", "a"},
		{"react", "@types/node", "typescript", "eslint", "Zod", "zod"},
		{"z10", "z2", "z1", "Z1"},
	}
	c := collate.New(language.English)

	for _, input := range inputs {
		got := SortAlphabetical(input)

		sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
		if diff := cmp.Diff(input, got, sortStrings, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("SortAlphabetical(%q) is not a permutation (-in +out):\n%s", input, diff)
		}
		for i := 1; i < len(got); i++ {
			if c.CompareString(got[i-1], got[i]) > 0 {
				t.Errorf("SortAlphabetical(%q) = %q: %q sorts after %q", input, got, got[i-1], got[i])
			}
		}
	}
}

func TestSortContributors_Records(t *testing.T) {
	seq := Sequence{
		mustParse(t, `{"name":"b"}`),
		mustParse(t, `{"name":"a"}`),
	}

	got := compact(t, SortContributors(seq))

	if want := `[{"name":"a"},{"name":"b"}]`; got != want {
		t.Errorf("SortContributors = %s, want %s", got, want)
	}
}

func TestSortContributors_RecordsWithoutNameSortLast(t *testing.T) {
	seq := Sequence{
		mustParse(t, `{"email":"x@example.com"}`),
		mustParse(t, `{"name":"zed"}`),
		mustParse(t, `{"name":7}`),
		mustParse(t, `{"name":"amy","url":"https://amy.dev"}`),
	}

	got := compact(t, SortContributors(seq))

	want := `[{"name":"amy","url":"https://amy.dev"},{"name":"zed"},{"email":"x@example.com"},{"name":7}]`
	if got != want {
		t.Errorf("SortContributors = %s, want %s", got, want)
	}
}

func TestSortContributors_Strings(t *testing.T) {
	got := SortContributors(Strings("b", "a"))

	if diff := cmp.Diff(Strings("a", "b"), got); diff != "" {
		t.Errorf("SortContributors mismatch (-want +got):\n%s", diff)
	}
}

func TestSortContributors_MixedUnchanged(t *testing.T) {
	seq := Sequence{Number("1"), String("x")}

	got := SortContributors(seq)

	if diff := cmp.Diff(seq, got); diff != "" {
		t.Errorf("expected mixed input unchanged (-want +got):\n%s", diff)
	}
}

func TestSortObject(t *testing.T) {
	m := mustParse(t, `{"b":1,"a":2}`)

	got := SortObject(m, SortAlphabetical)

	if diff := cmp.Diff([]string{"a", "b"}, got.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	if s := compact(t, got); s != `{"a":2,"b":1}` {
		t.Errorf("SortObject = %s", s)
	}
	if s := compact(t, m); s != `{"b":1,"a":2}` {
		t.Errorf("input was modified: %s", s)
	}
}

func TestSortObject_IgnoresUnknownAndDuplicateKeys(t *testing.T) {
	m := mustParse(t, `{"a":1,"b":2}`)

	got := SortObject(m, func(keys []string) []string {
		return []string{"b", "ghost", "b", "a"}
	})

	if s := compact(t, got); s != `{"b":2,"a":1}` {
		t.Errorf("SortObject = %s", s)
	}
}

func TestKeySorter(t *testing.T) {
	sortFn := KeySorter(Alphabetical)
	if diff := cmp.Diff([]string{"a", "b", "c"}, sortFn([]string{"c", "a", "b"})); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	if KeySorter(nil) != nil {
		t.Error("KeySorter(nil) must be nil")
	}
}

func TestKeySorter_NonStringResultKeepsKeys(t *testing.T) {
	numbers := func(seq Sequence) Sequence {
		out := make(Sequence, len(seq))
		for i := range seq {
			out[i] = Number("1")
		}
		return out
	}
	keys := []string{"b", "a"}

	if diff := cmp.Diff(keys, KeySorter(numbers)(keys)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	m := mustParse(t, `{"b":1,"a":2}`)
	if s := compact(t, SortObject(m, KeySorter(numbers))); s != `{"b":1,"a":2}` {
		t.Errorf("SortObject = %s, want all keys kept", s)
	}
}

func TestProcessGroup_PassThrough(t *testing.T) {
	input := mustParse(t, `{"name":"pkg","extra":"keep"}`)
	group := Group{Keys: []SortSpec{{Name: "name"}}}

	got, err := ProcessGroup(input, group)
	if err != nil {
		t.Fatalf("ProcessGroup failed: %v", err)
	}
	if s := compact(t, got); s != `{"name":"pkg"}` {
		t.Errorf("ProcessGroup = %s", s)
	}
}

func TestProcessGroup_SortsMappingKeys(t *testing.T) {
	input := mustParse(t, `{"deps":{"b":1,"a":2}}`)
	group := Group{Keys: []SortSpec{{Name: "deps", Sort: Alphabetical}}}

	got, err := ProcessGroup(input, group)
	if err != nil {
		t.Fatalf("ProcessGroup failed: %v", err)
	}
	if s := compact(t, got); s != `{"deps":{"a":2,"b":1}}` {
		t.Errorf("ProcessGroup = %s", s)
	}
}

func TestProcessGroup_FollowsGroupOrder(t *testing.T) {
	input := mustParse(t, `{"files":["b","a"],"version":"1.0.0","name":"pkg","license":"MIT"}`)
	group := Group{Keys: []SortSpec{
		{Name: "name"},
		{Name: "description"},
		{Name: "version"},
		{Name: "files", Sort: Alphabetical},
		{Name: "license", Sort: Alphabetical},
	}}

	got, err := ProcessGroup(input, group)
	if err != nil {
		t.Fatalf("ProcessGroup failed: %v", err)
	}

	want := `{"name":"pkg","version":"1.0.0","files":["a","b"],"license":"MIT"}`
	if s := compact(t, got); s != want {
		t.Errorf("ProcessGroup = %s, want %s", s, want)
	}
}

func TestProcessGroup_EmptyNameIsInvalid(t *testing.T) {
	input := mustParse(t, `{"name":"pkg"}`)
	group := Group{Name: "meta", Keys: []SortSpec{{Name: "name"}, {Name: ""}}}

	_, err := ProcessGroup(input, group)
	if !errors.Is(err, ErrInvalidSortSpec) {
		t.Fatalf("expected ErrInvalidSortSpec, got %v", err)
	}
	var specErr *SortSpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected *SortSpecError, got %T", err)
	}
	if specErr.Group != "meta" || specErr.Index != 1 {
		t.Errorf("unexpected error detail: %+v", specErr)
	}
}

func TestProcessGroup_WhitespaceNameIsAKey(t *testing.T) {
	input := mustParse(t, `{" ":1,"name":"pkg"}`)
	group := Group{Name: "meta", Keys: []SortSpec{{Name: "name"}, {Name: " "}}}

	got, err := ProcessGroup(input, group)
	if err != nil {
		t.Fatalf("ProcessGroup failed: %v", err)
	}
	if s := compact(t, got); s != `{"name":"pkg"," ":1}` {
		t.Errorf("ProcessGroup = %s", s)
	}
}

func TestProcessGroup_NilInput(t *testing.T) {
	_, err := ProcessGroup(nil, Group{})
	if !errors.Is(err, ErrNotMapping) {
		t.Fatalf("expected ErrNotMapping, got %v", err)
	}
}

func TestEnsureUnrecognizedKeys(t *testing.T) {
	old := mustParse(t, `{"a":1,"b":2,"c":3}`)
	sorted := mustParse(t, `{"b":2}`)

	got, err := EnsureUnrecognizedKeys(old, sorted, nil)
	if err != nil {
		t.Fatalf("EnsureUnrecognizedKeys failed: %v", err)
	}
	if s := compact(t, got); s != `{"a":1,"c":3,"b":2}` {
		t.Errorf("EnsureUnrecognizedKeys = %s", s)
	}
}

func TestEnsureUnrecognizedKeys_SortsHoistedKeys(t *testing.T) {
	old := mustParse(t, `{"zeta":1,"name":"pkg","alpha":2}`)
	sorted := mustParse(t, `{"name":"pkg"}`)

	got, err := EnsureUnrecognizedKeys(old, sorted, nil)
	if err != nil {
		t.Fatalf("EnsureUnrecognizedKeys failed: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta", "name"}, got.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	keep := func(keys []string) []string { return keys }
	got, err = EnsureUnrecognizedKeys(old, sorted, keep)
	if err != nil {
		t.Fatalf("EnsureUnrecognizedKeys failed: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "name"}, got.Keys()); diff != "" {
		t.Errorf("key order with custom sort mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureUnrecognizedKeys_Idempotent(t *testing.T) {
	old := mustParse(t, `{"x":1,"name":"pkg","a":{"k":true}}`)
	sorted := mustParse(t, `{"name":"pkg"}`)

	first, err := EnsureUnrecognizedKeys(old, sorted, nil)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	second, err := EnsureUnrecognizedKeys(old, first, nil)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	if a, b := compact(t, first), compact(t, second); a != b {
		t.Errorf("second pass changed output:\n first: %s\nsecond: %s", a, b)
	}
	if len(UnrecognizedKeys(old, first)) != 0 {
		t.Errorf("expected no unrecognized keys after first pass")
	}
}

func TestEnsureUnrecognizedKeys_NilSurfaces(t *testing.T) {
	m := NewMapping()
	if _, err := EnsureUnrecognizedKeys(nil, m, nil); !errors.Is(err, ErrNotMapping) {
		t.Errorf("expected ErrNotMapping for nil old surface, got %v", err)
	}
	if _, err := EnsureUnrecognizedKeys(m, nil, nil); !errors.Is(err, ErrNotMapping) {
		t.Errorf("expected ErrNotMapping for nil sorted surface, got %v", err)
	}
}

package keysort

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMethod reorders a sequence. It must return a permutation of its input.
type SortMethod func(Sequence) Sequence

// SortAlphabetical returns a copy of seq sorted with English collation.
// The sort is stable and seq itself is left untouched.
func SortAlphabetical(seq []string) []string {
	out := slices.Clone(seq)
	if len(out) < 2 {
		return out
	}
	// Collators keep scratch buffers, so each call gets its own.
	c := collate.New(language.English)
	slices.SortStableFunc(out, c.CompareString)
	return out
}

// Alphabetical sorts a sequence of string scalars with SortAlphabetical.
// Sequences holding anything else are returned unchanged.
func Alphabetical(seq Sequence) Sequence {
	strs, ok := stringsOf(seq)
	if !ok {
		return seq
	}
	return Strings(SortAlphabetical(strs)...)
}

// SortContributors orders a list of people. A list of records is sorted by
// their "name" field; a list of strings is sorted alphabetically. Mixed or
// unrecognized lists are returned unchanged.
func SortContributors(seq Sequence) Sequence {
	if allKind(seq, KindMapping) {
		out := slices.Clone(seq)
		slices.SortStableFunc(out, compareByName)
		return out
	}
	if _, ok := stringsOf(seq); ok {
		return Alphabetical(seq)
	}
	return seq
}

// compareByName orders records by their string name field. Records without
// one sort after all named records.
func compareByName(a, b Value) int {
	an, aok := recordName(a)
	bn, bok := recordName(b)
	switch {
	case aok && bok:
		return strings.Compare(an, bn)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return 0
	}
}

func recordName(v Value) (string, bool) {
	m, ok := AsMapping(v)
	if !ok {
		return "", false
	}
	name, ok := m.Get("name")
	if !ok {
		return "", false
	}
	return AsString(name)
}

// SortObject returns a new mapping holding the entries of m in the order
// sortFn gives to its keys. Keys returned by sortFn that m does not hold
// are ignored, and a repeated key keeps its first position. A nil sortFn
// keeps the current order.
func SortObject(m *Mapping, sortFn func([]string) []string) *Mapping {
	keys := m.Keys()
	if sortFn != nil {
		keys = sortFn(keys)
	}

	out := NewMapping()
	for _, key := range keys {
		if out.Has(key) {
			continue
		}
		v, ok := m.Get(key)
		if !ok {
			continue
		}
		out.Set(key, v)
	}
	return out
}

// KeySorter adapts a SortMethod to operate on mapping keys. Keys are
// returned unchanged if the method yields anything but strings.
func KeySorter(method SortMethod) func([]string) []string {
	if method == nil {
		return nil
	}
	return func(keys []string) []string {
		sorted, ok := stringsOf(method(Strings(keys...)))
		if !ok {
			return keys
		}
		return sorted
	}
}

// stringsOf extracts the strings of seq, reporting false if any element is
// not a string scalar. An empty sequence yields an empty slice and true.
func stringsOf(seq Sequence) ([]string, bool) {
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		s, ok := AsString(v)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func allKind(seq Sequence, kind Kind) bool {
	for _, v := range seq {
		if v == nil || v.Kind() != kind {
			return false
		}
	}
	return true
}

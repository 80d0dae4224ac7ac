// Package normalize applies a manifest layout to a decoded document.
package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"nathanbeddoewebdev/pkgsort/internal/keysort"
	"nathanbeddoewebdev/pkgsort/internal/logging"
	"nathanbeddoewebdev/pkgsort/internal/util"
)

// UnknownMode controls how keys outside every group are ordered.
type UnknownMode string

const (
	// UnknownAlphabetical sorts unrecognized keys alphabetically.
	UnknownAlphabetical UnknownMode = "alphabetical"
	// UnknownPreserve keeps unrecognized keys in their original order.
	UnknownPreserve UnknownMode = "preserve"
)

// ParseUnknownMode validates a mode name. Empty means alphabetical.
func ParseUnknownMode(s string) (UnknownMode, error) {
	if util.NormalizeKey(s) == "" {
		return UnknownAlphabetical, nil
	}
	if err := util.ValidateChoice("unknown-keys mode", s, string(UnknownAlphabetical), string(UnknownPreserve)); err != nil {
		return "", err
	}
	return UnknownMode(util.NormalizeKey(s)), nil
}

func (m UnknownMode) sortFunc() func([]string) []string {
	if m == UnknownPreserve {
		return func(keys []string) []string { return keys }
	}
	return keysort.SortAlphabetical
}

// Normalizer reorders documents according to a list of groups.
type Normalizer struct {
	groups  []keysort.Group
	unknown UnknownMode
	logger  *slog.Logger
}

// New returns a Normalizer. A nil logger discards output.
func New(groups []keysort.Group, unknown UnknownMode, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = logging.Discard()
	}
	if unknown == "" {
		unknown = UnknownAlphabetical
	}
	return &Normalizer{groups: groups, unknown: unknown, logger: logger}
}

// Fingerprint describes the layout structure and unknown-key mode. Two
// normalizers with different fingerprints may order the same document
// differently. Sort methods are recorded only as present or absent, so
// callers that can swap one method for another should also track the
// method names.
func (n *Normalizer) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown=%s\n", n.unknown)
	for _, g := range n.groups {
		fmt.Fprintf(&b, "group %q\n", g.Name)
		for _, spec := range g.Keys {
			fmt.Fprintf(&b, "  key %q sorted=%t\n", spec.Name, spec.Sort != nil)
		}
	}
	return b.String()
}

// Normalize returns a reordered copy of input. Grouped keys follow the
// group order; keys no group claims are placed first. No key is lost.
func (n *Normalizer) Normalize(input *keysort.Mapping) (*keysort.Mapping, error) {
	if input == nil {
		return nil, fmt.Errorf("normalize: %w", keysort.ErrNotMapping)
	}

	sorted := keysort.NewMapping()
	for _, group := range n.groups {
		surface, err := keysort.ProcessGroup(input, group)
		if err != nil {
			return nil, fmt.Errorf("normalize: %w", err)
		}
		surface.Range(func(key string, v keysort.Value) bool {
			if sorted.Has(key) {
				n.logger.Debug("key claimed by an earlier group", "key", key, "group", group.Name)
				return true
			}
			sorted.Set(key, v)
			return true
		})
	}

	if hoisted := keysort.UnrecognizedKeys(input, sorted); len(hoisted) > 0 {
		n.logger.Debug("hoisting unrecognized keys", "keys", hoisted, "mode", string(n.unknown))
	}

	out, err := keysort.EnsureUnrecognizedKeys(input, sorted, n.unknown.sortFunc())
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return out, nil
}

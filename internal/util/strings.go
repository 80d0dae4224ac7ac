package util

import "strings"

// NormalizeKey lowercases and trims a string for use as a consistent lookup
// key. It is applied to sort method names and enumerated setting values.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalName normalizes a setting name so that the JSON spelling
// ("unknown_keys") and the CLI spelling ("unknown-keys") are equivalent.
func CanonicalName(s string) string {
	return strings.ReplaceAll(NormalizeKey(s), "_", "-")
}

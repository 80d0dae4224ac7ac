package util

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxIndentWidth is the widest space indent accepted.
const MaxIndentWidth = 8

// ParseIndent converts an indent setting into the literal indent string.
// Accepted forms:
//   - "" (keep the file's own indent; returns "")
//   - "tab"
//   - a number of spaces between 1 and MaxIndentWidth
func ParseIndent(value string) (string, error) {
	v := NormalizeKey(value)
	switch v {
	case "":
		return "", nil
	case "tab", `\t`:
		return "\t", nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return "", fmt.Errorf("indent %q must be \"tab\" or a number of spaces", value)
	}
	if n < 1 || n > MaxIndentWidth {
		return "", fmt.Errorf("indent must be between 1 and %d spaces, got %d", MaxIndentWidth, n)
	}
	return strings.Repeat(" ", n), nil
}

// ValidateIndent checks that value is an accepted indent setting.
func ValidateIndent(value string) error {
	_, err := ParseIndent(value)
	return err
}

// ValidateChoice checks that value (normalized) is one of choices.
func ValidateChoice(field, value string, choices ...string) error {
	normalized := NormalizeKey(value)
	for _, c := range choices {
		if normalized == c {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (valid: %s)", field, value, strings.Join(choices, ", "))
}

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/pkgsort/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "unknown-keys").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Choices lists the accepted values, if the key is an enumeration.
	Choices []string

	// Default describes the behavior when the key is not set.
	Default string

	// Check, if set, validates free-form values.
	Check func(value string) error

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "groups-file",
		Default:     "built-in layout",
		Description: "YAML layout used instead of the built-in package.json groups",
		Get:         func(cfg *Config) string { return cfg.GroupsFile },
		Set:         func(cfg *Config, v string) { cfg.GroupsFile = v },
	},
	{
		Name:        "unknown-keys",
		Default:     "alphabetical",
		Description: "Order of keys outside every group: alphabetical or preserve",
		Choices:     []string{"alphabetical", "preserve"},
		Get:         func(cfg *Config) string { return cfg.UnknownKeys },
		Set:         func(cfg *Config, v string) { cfg.UnknownKeys = v },
	},
	{
		Name:        "indent",
		Default:     "keep each file's indent",
		Description: "Indent for written files: tab or a number of spaces (default: keep)",
		Check:       util.ValidateIndent,
		Get:         func(cfg *Config) string { return cfg.Indent },
		Set:         func(cfg *Config, v string) { cfg.Indent = v },
	},
	{
		Name:        "history",
		Default:     "on",
		Description: "Record runs and skip files already sorted: on or off",
		Choices:     []string{"on", "off"},
		Get:         func(cfg *Config) string { return cfg.History },
		Set:         func(cfg *Config, v string) { cfg.History = v },
	},
	{
		Name:        "log-level",
		Default:     "warn",
		Description: "Diagnostic log level: debug, info, warn or error",
		Choices:     []string{"debug", "info", "warn", "error"},
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
	},
}

// Validate checks value against the key's accepted values. An empty value
// clears the key and is always accepted.
func (k *KeySpec) Validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if len(k.Choices) > 0 {
		if err := util.ValidateChoice(k.Name, value, k.Choices...); err != nil {
			return err
		}
	}
	if k.Check != nil {
		return k.Check(value)
	}
	return nil
}

// Normalize canonicalizes a value before it is stored. Enumerated and
// indent values are lowercased; paths keep their case.
func (k *KeySpec) Normalize(value string) string {
	if len(k.Choices) > 0 || k.Check != nil {
		return util.NormalizeKey(value)
	}
	return strings.TrimSpace(value)
}

// Validate checks every key of the config. It reports all invalid keys,
// not just the first.
func (c *Config) Validate() error {
	var errs []error
	for i := range Keys {
		if err := Keys[i].Validate(Keys[i].Get(c)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Next returns the choice following current, wrapping around. It returns
// "" for keys that are not enumerations.
func (k *KeySpec) Next(current string, step int) string {
	n := len(k.Choices)
	if n == 0 {
		return ""
	}
	i := slices.Index(k.Choices, util.NormalizeKey(current))
	if i < 0 {
		if step < 0 {
			return k.Choices[n-1]
		}
		return k.Choices[0]
	}
	return k.Choices[((i+step)%n+n)%n]
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace, and
// underscores match hyphens.
func Lookup(name string) *KeySpec {
	normalized := util.CanonicalName(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

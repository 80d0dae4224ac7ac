package groups

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML layout. Unknown fields are rejected and every
// method name must resolve.
func Parse(data []byte) (Layout, error) {
	var layout Layout

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, ErrEmptyLayout
		}
		return Layout{}, fmt.Errorf("groups: failed to parse layout: %w", err)
	}

	if _, err := layout.Build(); err != nil {
		return Layout{}, fmt.Errorf("groups: invalid layout: %w", err)
	}
	return layout, nil
}

// LoadFile reads a YAML layout from path.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("groups: failed to read %s: %w", path, err)
	}

	layout, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// Resolve returns the layout from path, or the default layout when path
// is empty.
func Resolve(path string) (Layout, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// YAML renders the layout in the same format LoadFile reads.
func (l Layout) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("groups: failed to encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("groups: failed to encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

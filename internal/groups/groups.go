// Package groups defines manifest layouts: ordered groups of keys, each
// with an optional named sort method, as used by the normalizer.
//
// A layout is either the built-in package.json layout returned by Default
// or one loaded from a YAML file:
//
//	groups:
//	  - name: meta
//	    keys:
//	      - name: name
//	      - name: keywords
//	        sort: alphabetical
package groups

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/pkgsort/internal/keysort"
)

// ErrEmptyLayout is returned for a layout that declares no groups.
var ErrEmptyLayout = errors.New("layout has no groups")

// KeySpec names a manifest key and the sort method applied to its value.
type KeySpec struct {
	Name string `yaml:"name" json:"name"`
	Sort string `yaml:"sort,omitempty" json:"sort,omitempty"`
}

// GroupSpec is a named, ordered list of key specs.
type GroupSpec struct {
	Name string    `yaml:"name" json:"name"`
	Keys []KeySpec `yaml:"keys" json:"keys"`
}

// Layout is the full ordered list of groups for a manifest.
type Layout struct {
	Groups []GroupSpec `yaml:"groups" json:"groups"`
}

// Build resolves every method name in the layout and returns the groups
// ready for keysort.ProcessGroup.
func (l Layout) Build() ([]keysort.Group, error) {
	if len(l.Groups) == 0 {
		return nil, ErrEmptyLayout
	}

	out := make([]keysort.Group, 0, len(l.Groups))
	for _, g := range l.Groups {
		group := keysort.Group{Name: g.Name, Keys: make([]keysort.SortSpec, 0, len(g.Keys))}
		for i, k := range g.Keys {
			if k.Name == "" {
				return nil, &keysort.SortSpecError{Group: g.Name, Index: i, Name: k.Name}
			}
			method, err := LookupMethod(k.Sort)
			if err != nil {
				return nil, fmt.Errorf("group %q key %q: %w", g.Name, k.Name, err)
			}
			group.Keys = append(group.Keys, keysort.SortSpec{Name: k.Name, Sort: method})
		}
		out = append(out, group)
	}
	return out, nil
}

// KeyCount returns the number of key specs across all groups.
func (l Layout) KeyCount() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Keys)
	}
	return n
}

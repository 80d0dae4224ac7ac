package keysort

import "fmt"

// SortSpec declares a key of interest and how to reorder its value.
// A nil Sort copies the value through unchanged.
type SortSpec struct {
	Name string
	Sort SortMethod
}

// Group is an ordered set of sort specs applied together.
type Group struct {
	Name string
	Keys []SortSpec
}

// ProcessGroup projects the keys named by group out of input, in the order
// the group lists them. Keys missing from input are skipped. Sequences are
// passed to the spec's sort method; mappings have their keys reordered by
// it. Scalars are kept as they are even when a sort method is configured.
func ProcessGroup(input *Mapping, group Group) (*Mapping, error) {
	if input == nil {
		return nil, fmt.Errorf("keysort: process group %q: %w", group.Name, ErrNotMapping)
	}

	surface := NewMapping()
	for i, spec := range group.Keys {
		if spec.Name == "" {
			return nil, &SortSpecError{Group: group.Name, Index: i, Name: spec.Name}
		}

		value, ok := input.Get(spec.Name)
		if !ok {
			continue
		}

		surface.Set(spec.Name, applySort(value, spec.Sort))
	}
	return surface, nil
}

func applySort(value Value, method SortMethod) Value {
	if method == nil {
		return value
	}
	switch v := value.(type) {
	case Sequence:
		return method(v)
	case *Mapping:
		if v == nil {
			return value
		}
		return SortObject(v, KeySorter(method))
	default:
		return value
	}
}

// EnsureUnrecognizedKeys returns sortedSurface with every entry of
// oldSurface it lacks placed in front of it. The hoisted keys are ordered
// by sortFn, or alphabetically when sortFn is nil. Entries of sortedSurface
// keep their order and values.
func EnsureUnrecognizedKeys(oldSurface, sortedSurface *Mapping, sortFn func([]string) []string) (*Mapping, error) {
	if oldSurface == nil {
		return nil, fmt.Errorf("keysort: old surface: %w", ErrNotMapping)
	}
	if sortedSurface == nil {
		return nil, fmt.Errorf("keysort: sorted surface: %w", ErrNotMapping)
	}
	if sortFn == nil {
		sortFn = SortAlphabetical
	}

	unrecognized := NewMapping()
	oldSurface.Range(func(key string, v Value) bool {
		if !sortedSurface.Has(key) {
			unrecognized.Set(key, v)
		}
		return true
	})

	out := SortObject(unrecognized, sortFn)
	sortedSurface.Range(func(key string, v Value) bool {
		out.Set(key, v)
		return true
	})
	return out, nil
}

// UnrecognizedKeys returns the keys of oldSurface missing from
// sortedSurface, in oldSurface order.
func UnrecognizedKeys(oldSurface, sortedSurface *Mapping) []string {
	var keys []string
	oldSurface.Range(func(key string, _ Value) bool {
		if !sortedSurface.Has(key) {
			keys = append(keys, key)
		}
		return true
	})
	return keys
}

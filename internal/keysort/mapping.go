package keysort

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is a string-keyed mapping that remembers insertion order.
// Setting an existing key replaces its value in place. The zero value is an
// empty mapping ready to use.
type Mapping struct {
	entries *orderedmap.OrderedMap[string, Value]
}

var _ Value = (*Mapping)(nil)

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: orderedmap.New[string, Value]()}
}

// Kind implements Value.
func (m *Mapping) Kind() Kind { return KindMapping }

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil || m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil || m.entries == nil {
		return nil, false
	}
	return m.entries.Get(key)
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key, appending the key if it is new.
func (m *Mapping) Set(key string, v Value) {
	if m.entries == nil {
		m.entries = orderedmap.New[string, Value]()
	}
	m.entries.Set(key, v)
}

// Delete removes key if present.
func (m *Mapping) Delete(key string) {
	if m == nil || m.entries == nil {
		return
	}
	m.entries.Delete(key)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Mapping) Range(fn func(key string, v Value) bool) {
	if m == nil || m.entries == nil {
		return
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns a shallow copy: entries are copied, values are shared.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()
	m.Range(func(key string, v Value) bool {
		out.Set(key, v)
		return true
	})
	return out
}

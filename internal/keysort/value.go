// Package keysort reorders the keys of JSON-like documents.
//
// Values are modelled as a closed set of kinds (Scalar, Sequence and
// *Mapping) so that sort methods can dispatch on shape without reflection.
// A Group is an ordered list of SortSpecs; ProcessGroup projects the keys a
// group names out of an input mapping and EnsureUnrecognizedKeys puts back
// everything the groups did not claim.
package keysort

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a node of a JSON-like document.
type Value interface {
	Kind() Kind
}

// Scalar holds a leaf value: a string, a json.Number, a bool, or nil for
// JSON null. Other Go numeric types are accepted and encoded with
// encoding/json.
type Scalar struct {
	V any
}

// Kind implements Value.
func (Scalar) Kind() Kind { return KindScalar }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{V: s} }

// Number returns a numeric scalar from its JSON literal.
func Number(lit string) Scalar { return Scalar{V: json.Number(lit)} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{V: b} }

// Null returns the JSON null scalar.
func Null() Scalar { return Scalar{} }

// Sequence is an ordered list of values.
type Sequence []Value

// Kind implements Value.
func (Sequence) Kind() Kind { return KindSequence }

// Strings builds a sequence of string scalars.
func Strings(values ...string) Sequence {
	seq := make(Sequence, len(values))
	for i, v := range values {
		seq[i] = String(v)
	}
	return seq
}

// AsString reports the string held by v, if v is a string scalar.
func AsString(v Value) (string, bool) {
	s, ok := v.(Scalar)
	if !ok {
		return "", false
	}
	str, ok := s.V.(string)
	return str, ok
}

// AsMapping reports whether v is a non-nil *Mapping.
func AsMapping(v Value) (*Mapping, bool) {
	m, ok := v.(*Mapping)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

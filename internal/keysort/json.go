package keysort

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decode reads a single JSON document from r, keeping object key order at
// every depth. Numbers are kept as json.Number so they round-trip exactly.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("keysort: decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("keysort: decode: unexpected data after top-level value")
	}
	return v, nil
}

// ParseMapping decodes data and requires the top-level value to be an
// object.
func ParseMapping(data []byte) (*Mapping, error) {
	v, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	m, ok := AsMapping(v)
	if !ok {
		return nil, fmt.Errorf("keysort: top-level %s: %w", v.Kind(), ErrNotMapping)
	}
	return m, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string, json.Number, bool, nil:
		return Scalar{V: t}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", t)
	}
}

func decodeObject(dec *json.Decoder) (*Mapping, error) {
	m := NewMapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeArray(dec *json.Decoder) (Sequence, error) {
	seq := Sequence{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return seq, nil
}

// Encode renders v as JSON. A non-empty indent produces one entry per line;
// an empty indent produces compact output. HTML characters are not escaped.
func Encode(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, indent, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value, indent string, depth int) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case Scalar:
		return encodeScalar(buf, t.V)
	case Sequence:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			if err := encodeValue(buf, item, indent, depth+1); err != nil {
				return err
			}
		}
		newline(buf, indent, depth)
		buf.WriteByte(']')
	case *Mapping:
		if t.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		var err error
		first := true
		t.Range(func(key string, item Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			newline(buf, indent, depth+1)
			if err = encodeScalar(buf, key); err != nil {
				return false
			}
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			err = encodeValue(buf, item, indent, depth+1)
			return err == nil
		})
		if err != nil {
			return err
		}
		newline(buf, indent, depth)
		buf.WriteByte('}')
	default:
		return fmt.Errorf("keysort: encode: unsupported value %T", v)
	}
	return nil
}

func encodeScalar(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case json.Number:
		if t == "" {
			buf.WriteByte('0')
			return nil
		}
		buf.WriteString(t.String())
		return nil
	}

	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("keysort: encode: %w", err)
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	return Encode(m, "")
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	parsed, err := ParseMapping(data)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// MarshalJSON implements json.Marshaler, preserving nested key order.
func (s Sequence) MarshalJSON() ([]byte, error) {
	return Encode(s, "")
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return Encode(s, "")
}

package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Record is an insertion-ordered, string-keyed record: the Go counterpart of
// a plain object. Keys keep the order in which they were first set;
// re-setting a key keeps its position.
//
// Records are mutable and not safe for concurrent writes. The zero value is
// not usable; create one with [NewRecord] or [RecordOf].
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// RecordOf creates a Record from a Go map. Go maps are unordered, so the
// keys are inserted in sorted order.
func RecordOf[V any](m map[string]V) *Record {
	keys := maps.Keys(m)
	slices.Sort(keys)
	r := &Record{keys: keys, values: make(map[string]any, len(m))}
	for _, k := range keys {
		r.values[k] = m[k]
	}
	return r
}

// Set assigns value to key and returns r for chaining.
func (r *Record) Set(key string, value any) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns the value stored under key and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

// ToMap returns a shallow copy of r as a plain Go map.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		out[k] = r.values[k]
	}
	return out
}

// Clone returns a shallow copy of r.
func (r *Record) Clone() *Record {
	out := &Record{keys: r.Keys(), values: make(map[string]any, len(r.keys))}
	for _, k := range r.keys {
		out.values[k] = r.values[k]
	}
	return out
}

// String renders r as {key: value, ...} in key order.
func (r *Record) String() string {
	parts := make([]string, len(r.keys))
	for i, k := range r.keys {
		parts[i] = fmt.Sprintf("%s: %v", k, r.values[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes r as a JSON object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into r, keeping the document's key
// order. Nested objects become *Record values and arrays become []any.
// Returns [ErrNotObject] when data is not a JSON object.
func (r *Record) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	rec, ok := v.(*Record)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrNotObject, v)
	}
	*r = *rec
	return nil
}

// DecodeJSON decodes any JSON document, representing objects as *Record so
// that key order survives. Numbers decode to json.Number so they re-encode
// exactly.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after value", ErrInvalidJSON)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		rec := NewRecord()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object key %v is not a string", ErrInvalidJSON, kt)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return rec, nil
	case '[':
		items := make([]any, 0)
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return items, nil
	}
	return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrInvalidJSON, delim)
}

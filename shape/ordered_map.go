package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// OrderedMap is an insertion-ordered map with arbitrary comparable keys.
// Re-setting a key keeps its original position.
type OrderedMap struct {
	keys   []any
	values map[any]any
}

// NewOrderedMap creates an OrderedMap, inserting entries in order.
// Keys must be comparable; an uncomparable key panics like a Go map would.
func NewOrderedMap(entries ...Entry) *OrderedMap {
	m := &OrderedMap{values: make(map[any]any, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set assigns value to key and returns m for chaining.
func (m *OrderedMap) Set(key, value any) *OrderedMap {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key and whether it is present.
func (m *OrderedMap) Get(key any) (any, bool) {
	if !hashable(key) {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *OrderedMap) Delete(key any) {
	if !m.Has(key) {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap) Keys() []any {
	out := make([]any, len(m.keys))
	copy(out, m.keys)
	return out
}

// Entries returns the key/value pairs in insertion order.
func (m *OrderedMap) Entries() []Entry {
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Key: k, Value: m.values[k]}
	}
	return out
}

// String renders m as map[k1:v1 k2:v2] in insertion order.
func (m *OrderedMap) String() string {
	parts := make([]string, len(m.keys))
	for i, k := range m.keys {
		parts[i] = fmt.Sprintf("%v:%v", k, m.values[k])
	}
	return "map[" + strings.Join(parts, " ") + "]"
}

// MarshalJSON encodes m as a JSON array of [key, value] pairs, since keys
// need not be strings.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		pair, err := json.Marshal([]any{k, m.values[k]})
		if err != nil {
			return nil, err
		}
		buf.Write(pair)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

package shape

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Set is an insertion-ordered collection of unique values.
//
// Comparable values are deduplicated with ==; values that cannot be used as
// map keys (slices, maps, ...) fall back to reflect.DeepEqual.
type Set struct {
	items []any
	index map[any]int
}

// NewSet creates a Set holding values, dropping duplicates.
func NewSet(values ...any) *Set {
	s := &Set{index: make(map[any]int, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v when it is not yet present and returns s for chaining.
func (s *Set) Add(v any) *Set {
	if s.Has(v) {
		return s
	}
	if hashable(v) {
		s.index[v] = len(s.items)
	}
	s.items = append(s.items, v)
	return s
}

// Has reports whether v is in the set.
func (s *Set) Has(v any) bool {
	return s.position(v) >= 0
}

// Delete removes v. Deleting a missing value is a no-op.
func (s *Set) Delete(v any) {
	pos := s.position(v)
	if pos < 0 {
		return
	}
	s.items = append(s.items[:pos:pos], s.items[pos+1:]...)
	s.reindex()
}

// Len returns the number of values.
func (s *Set) Len() int { return len(s.items) }

// Values returns a copy of the values in insertion order.
func (s *Set) Values() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// String renders s as {v1 v2 ...}.
func (s *Set) String() string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = fmt.Sprint(v)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// MarshalJSON encodes s as a JSON array.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *Set) position(v any) int {
	if hashable(v) {
		if pos, ok := s.index[v]; ok {
			return pos
		}
		return -1
	}
	for i, item := range s.items {
		if reflect.DeepEqual(item, v) {
			return i
		}
	}
	return -1
}

func (s *Set) reindex() {
	s.index = make(map[any]int, len(s.items))
	for i, v := range s.items {
		if hashable(v) {
			s.index[v] = i
		}
	}
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable() && comparableValue(reflect.ValueOf(v))
}

// comparableValue catches interface-typed struct fields or array elements
// that hold uncomparable dynamic values.
func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return comparableValue(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	}
	return true
}

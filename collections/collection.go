package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-functional-utils/shape"
)

// Collection is a typed, immutable-by-default list that the iteration
// engine walks as an indexed sequence. Its methods accept the same
// iteratees as the package-level operations and keep the element type.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so collections can be read from several
// goroutines at once.
//
//	c := collections.New(1, 2, 3, 4, 5, 6)
//	evens := c.Filter(func(n int) bool { return n%2 == 0 }) // → [2 4 6]
//	c.Some(func(n int) bool { return n > 5 })                // → true
//	c.FindKey(func(n int) bool { return n == 3 })            // → 2, true
type Collection[T any] struct {
	items []T
}

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Len returns the number of items. Together with At it makes a Collection
// a shape.Sequence.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the item at index i as an any.
func (c *Collection[T]) At(i int) any { return c.items[i] }

// Get returns the item at index, or [ErrIndexOutOfRange].
func (c *Collection[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.items[index], nil
}

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns a new collection of the items for which iteratee is
// truthy. See [Iteratee] for the accepted forms.
func (c *Collection[T]) Filter(iteratee any) *Collection[T] {
	return &Collection[T]{items: typed[T](Filter(c, iteratee))}
}

// Reject returns a new collection without the items for which iteratee is
// truthy.
func (c *Collection[T]) Reject(iteratee any) *Collection[T] {
	return &Collection[T]{items: typed[T](Reject(c, iteratee))}
}

// Some reports whether iteratee is truthy for any item.
func (c *Collection[T]) Some(iteratee any) bool { return Some(c, iteratee) }

// Every reports whether iteratee is truthy for all items.
func (c *Collection[T]) Every(iteratee any) bool { return Every(c, iteratee) }

// Each calls iteratee(item, index, c) for every item and returns c.
func (c *Collection[T]) Each(iteratee any) *Collection[T] {
	ForEach(c, iteratee)
	return c
}

// FindKey returns the index of the first item for which iteratee is
// truthy.
func (c *Collection[T]) FindKey(iteratee any) (int, bool) {
	i, ok := FindKey(c, iteratee).(int)
	return i, ok
}

// Reduce folds the items from left to right. See [Reduce].
func (c *Collection[T]) Reduce(iteratee any, seed ...any) any {
	return Reduce(c, iteratee, seed...)
}

// MapValues returns a record mapping each item's position to iteratee's
// result.
func (c *Collection[T]) MapValues(iteratee any) *shape.Record {
	return MapValues(c, iteratee)
}

// MarshalJSON encodes the items as a JSON array.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// typed converts engine output back to T. Values that are not a T (which
// the engine never produces for a Collection) become the zero value.
func typed[T any](values []any) []T {
	out := make([]T, len(values))
	for i, v := range values {
		if t, ok := v.(T); ok {
			out[i] = t
		}
	}
	return out
}

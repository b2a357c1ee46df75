package collections

import "github.com/hasbyte1/go-functional-utils/shape"

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// another implementation without depending on *Collection. Every
// Enumerable is a shape.Sequence, so the package-level operations walk it
// by index.
type Enumerable[T any] interface {
	shape.Sequence

	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Get returns the item at index or ErrIndexOutOfRange.
	Get(index int) (T, error)

	// Filter returns a new collection of the items for which iteratee is
	// truthy.
	Filter(iteratee any) *Collection[T]

	// Some reports whether iteratee is truthy for any item.
	Some(iteratee any) bool

	// Every reports whether iteratee is truthy for all items.
	Every(iteratee any) bool

	// FindKey returns the index of the first matching item.
	FindKey(iteratee any) (int, bool)
}

var _ Enumerable[int] = (*Collection[int])(nil)

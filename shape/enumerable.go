package shape

// The interfaces below let types outside this package opt in to a shape
// without depending on the concrete containers. Classify checks the
// concrete containers first, then these interfaces in declaration order.

// Sequence is an indexed collection.
type Sequence interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at position i, 0 ≤ i < Len().
	At(i int) any
}

// Entrier is a map-like collection with explicit, possibly non-string keys.
type Entrier interface {
	Len() int

	// Entries returns the key/value pairs in iteration order.
	Entries() []Entry
}

// Valuer is a set-like collection: values in iteration order, no keys.
type Valuer interface {
	Len() int

	// Values returns the elements in iteration order.
	Values() []any
}

// Object is a record with ordered string keys.
type Object interface {
	// Keys returns the keys in iteration order.
	Keys() []string

	// Get returns the value for key and whether it is present.
	Get(key string) (any, bool)
}

package shape

import "fmt"

// Entry is one key/value pair of a map-like collection.
type Entry struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "key: value".
func (e Entry) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

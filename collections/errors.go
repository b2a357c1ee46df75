package collections

import "errors"

// Sentinel errors returned by collections operations.
var (
	// ErrOperationNotFound is returned when no iterator is registered under
	// the requested name.
	ErrOperationNotFound = errors.New("collections: operation not found")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")
)

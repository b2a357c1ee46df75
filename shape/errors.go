package shape

import "errors"

// Sentinel errors returned by shape operations.
var (
	// ErrNotObject is returned when JSON decoded into a [Record] is not a
	// JSON object.
	ErrNotObject = errors.New("shape: JSON value is not an object")

	// ErrInvalidJSON is returned when a JSON document is malformed.
	ErrInvalidJSON = errors.New("shape: invalid JSON")
)

package fn

import "errors"

// Sentinel errors returned by the fn package.
var (
	// ErrInvalidArgument is returned when a value that must be invocable
	// (a Go func or a [Callable]) is not.
	ErrInvalidArgument = errors.New("fn: invalid argument")
)

package collections

import (
	"github.com/hasbyte1/go-functional-utils/fn"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// Control is returned by a [Handler] to continue or stop a traversal.
type Control int

const (
	// Next continues with the following element.
	Next Control = iota
	// Break stops the traversal immediately.
	Break
)

// Handler is invoked once per element, in traversal order. acc is the value
// built by Options.Results, it the prepared iteratee, i the 0-based position
// in traversal order, and collection the exact value the iterator was called
// with.
type Handler func(acc any, it fn.Callable, i int, value, key, collection any) Control

// Options configures an [Iterator]. Every field is optional.
type Options struct {
	// Prepare turns the caller's iteratee into the Callable handed to
	// Handler. A nil result skips the traversal. The default adapts
	// Callables and Go funcs and yields nil for anything else.
	Prepare func(iteratee any) fn.Callable

	// Empty builds the accumulator for collections that classify as
	// shape.Empty. It is passed through Unwrap like any accumulator; when
	// nil, Results is used.
	Empty func(seed any) any

	// Results builds the accumulator for a traversal.
	Results func(seed any) any

	Handler Handler

	// Reverse walks from the last element to the first.
	Reverse bool

	// Unwrap extracts the public result from the accumulator. Defaults to
	// the identity.
	Unwrap func(acc any) any

	// Flipped takes the iteratee before the collection: (iteratee,
	// collection[, seed]).
	Flipped bool

	// Inject reads a seed argument and passes it to Empty and Results.
	Inject bool

	// Initial, with Inject, uses the first traversed element as the seed
	// when no seed argument is given. That element is not passed to
	// Handler.
	Initial bool
}

// Iterator drives one traversal algorithm over every collection shape.
// It is immutable and safe for concurrent use; each call builds its own
// accumulator.
//
//	double := collections.NewIterator(collections.Options{
//	    Results: func(any) any { return &[]any{} },
//	    Handler: func(acc any, it fn.Callable, _ int, v, _, _ any) collections.Control {
//	        out := acc.(*[]any)
//	        *out = append(*out, it.Call(v))
//	        return collections.Next
//	    },
//	    Unwrap: func(acc any) any { return *acc.(*[]any) },
//	})
//	double.Run([]int{1, 2, 3}, func(n int) int { return n * 2 }) // → [2 4 6]
type Iterator struct {
	opts Options
}

// NewIterator builds an Iterator from opts.
func NewIterator(opts Options) *Iterator {
	return &Iterator{opts: opts}
}

// Options returns a copy of the iterator's configuration.
func (it *Iterator) Options() Options { return it.opts }

// Arity is 3 when the iterator takes a seed, 2 otherwise.
func (it *Iterator) Arity() int {
	if it.opts.Inject {
		return 3
	}
	return 2
}

// Call implements fn.Callable; it is the same as Run.
func (it *Iterator) Call(args ...any) any { return it.Run(args...) }

// Run traverses a collection. Arguments are (collection, iteratee[, seed]),
// or (iteratee, collection[, seed]) when flipped.
func (it *Iterator) Run(args ...any) any {
	collection, iteratee, seed, seeded := it.parse(args)

	view := shape.Classify(collection)
	if view.Kind() == shape.Empty {
		if it.opts.Empty != nil {
			return it.unwrap(it.opts.Empty(seed))
		}
		return it.unwrap(it.results(seed))
	}

	n := view.Len()
	first := 0
	if it.opts.Inject && it.opts.Initial && !seeded && n > 0 {
		_, seed = view.Entry(it.position(0, n))
		first = 1
	}

	acc := it.results(seed)
	f := it.prepare(iteratee)
	if f == nil || it.opts.Handler == nil {
		return it.unwrap(acc)
	}
	for i := first; i < n; i++ {
		key, value := view.Entry(it.position(i, n))
		if it.opts.Handler(acc, f, i, value, key, collection) == Break {
			break
		}
	}
	return it.unwrap(acc)
}

func (it *Iterator) parse(args []any) (collection, iteratee, seed any, seeded bool) {
	arg := func(i int) any {
		if i < len(args) {
			return args[i]
		}
		return nil
	}
	if it.opts.Flipped {
		iteratee, collection = arg(0), arg(1)
	} else {
		collection, iteratee = arg(0), arg(1)
	}
	if it.opts.Inject && len(args) > 2 {
		seed, seeded = args[2], true
	}
	return
}

func (it *Iterator) position(i, n int) int {
	if it.opts.Reverse {
		return n - 1 - i
	}
	return i
}

func (it *Iterator) results(seed any) any {
	if it.opts.Results != nil {
		return it.opts.Results(seed)
	}
	return nil
}

func (it *Iterator) unwrap(acc any) any {
	if it.opts.Unwrap != nil {
		return it.opts.Unwrap(acc)
	}
	return acc
}

func (it *Iterator) prepare(iteratee any) fn.Callable {
	if it.opts.Prepare != nil {
		return it.opts.Prepare(iteratee)
	}
	return callable(iteratee)
}

// callable adapts Callables and Go funcs; anything else is nil.
func callable(v any) fn.Callable {
	c, err := fn.Reflect(v)
	if err != nil {
		return nil
	}
	return c
}

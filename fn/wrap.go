package fn

import (
	"fmt"
	"strings"
	"sync"
)

// Once returns a Callable that invokes f on its first call only and returns
// that first result on every later call. Safe for concurrent use.
// Once(nil) returns [Noop].
func Once(f Callable) Callable {
	if f == nil {
		return Noop
	}
	var (
		once sync.Once
		res  any
	)
	return &function{
		name:  "once(" + describe(f) + ")",
		arity: f.Arity(),
		call: func(args ...any) any {
			once.Do(func() { res = f.Call(args...) })
			return res
		},
	}
}

// Nary returns a Callable that forwards at most n arguments to f.
// A negative n is treated as 0.
func Nary(f Callable, n int) (Callable, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: expected a function", ErrInvalidArgument)
	}
	if n < 0 {
		n = 0
	}
	return &function{
		name:  fmt.Sprintf("nary(%s, %d)", describe(f), n),
		arity: n,
		call: func(args ...any) any {
			if len(args) > n {
				args = args[:n]
			}
			return f.Call(args...)
		},
	}, nil
}

// Flip returns a Callable that reorders its arguments before calling f:
// argument i of f is argument signature[i] of the call. Arguments past the
// signature are appended in order. The default signature swaps the first
// two arguments.
//
//	pick := fn.Flip(pickFn)      // pick(keys, record) → pickFn(record, keys)
func Flip(f Callable, signature ...int) Callable {
	if len(signature) == 0 {
		signature = []int{1, 0}
	}
	sig := make([]int, len(signature))
	copy(sig, signature)
	return &function{
		name:  "flip(" + describe(f) + ")",
		arity: f.Arity(),
		call: func(args ...any) any {
			out := make([]any, 0, len(args))
			for _, from := range sig {
				if from < len(args) {
					out = append(out, args[from])
				} else {
					out = append(out, nil)
				}
			}
			if len(args) > len(sig) {
				out = append(out, args[len(sig):]...)
			}
			return f.Call(out...)
		},
	}
}

// Pipe returns a Callable that calls the functions left to right: the first
// receives the call's arguments and every later one the previous result.
// Each function is a Callable or a Go func. The result takes the first
// function's arity; Pipe() is [Identity].
//
//	inc := fn.MustReflect(func(n int) int { return n + 1 })
//	add := fn.MustReflect(func(a, b int) int { return a + b })
//	f, _ := fn.Pipe(add, inc)
//	f.Call(1, 2) // → 4
func Pipe(fns ...any) (Callable, error) {
	if len(fns) == 0 {
		return Identity, nil
	}
	steps := make([]Callable, len(fns))
	names := make([]string, len(fns))
	for i, f := range fns {
		c, err := Reflect(f)
		if err != nil {
			return nil, fmt.Errorf("%w: pipe argument %d is not a function", ErrInvalidArgument, i)
		}
		steps[i], names[i] = c, describe(c)
	}
	return &function{
		name:  "pipe(" + strings.Join(names, ", ") + ")",
		arity: steps[0].Arity(),
		call: func(args ...any) any {
			res := steps[0].Call(args...)
			for _, step := range steps[1:] {
				res = step.Call(res)
			}
			return res
		},
	}, nil
}

// Compose is [Pipe] with the functions applied right to left.
func Compose(fns ...any) (Callable, error) {
	reversed := make([]any, len(fns))
	for i, f := range fns {
		reversed[len(fns)-1-i] = f
	}
	return Pipe(reversed...)
}

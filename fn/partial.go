package fn

import "fmt"

// Partial binds args to f and returns a function that supplies the rest.
//
// Bound slots holding [Placeholder] are filled, in order, by the arguments of
// each call; call arguments left over are appended. Placeholders that no call
// argument reaches are passed to f as is. The result is invoked immediately:
// partial application does not re-curry.
//
//	greet := fn.MustPartial(func(greeting, name string) string {
//	    return greeting + ", " + name
//	}, fn.Placeholder, "world")
//	greet.Call("hello") // → "hello, world"
//
// f may be a [Callable] or any Go func. Returns [ErrInvalidArgument] when it
// is neither. With no bound arguments f is returned unchanged.
func Partial(f any, bound ...any) (Callable, error) {
	src, err := Reflect(f)
	if err != nil {
		return nil, fmt.Errorf("%w: first argument must be a function, got %T", ErrInvalidArgument, f)
	}
	if len(bound) == 0 {
		return src, nil
	}
	snapshot := make([]any, len(bound))
	copy(snapshot, bound)

	arity := src.Arity()
	for _, v := range snapshot {
		if !IsPlaceholder(v) {
			arity--
		}
	}
	if arity < 0 {
		arity = 0
	}
	return &Wrapper{
		arity:  arity,
		source: src,
		kind:   KindPartial,
		step: func(_ *Wrapper, args []any) any {
			return src.Call(merge(snapshot, args)...)
		},
	}, nil
}

// MustPartial is like [Partial] but panics on error.
func MustPartial(f any, bound ...any) Callable {
	c, err := Partial(f, bound...)
	if err != nil {
		panic(err)
	}
	return c
}

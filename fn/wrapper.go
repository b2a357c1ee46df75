package fn

import "fmt"

// Kind identifies how a [Wrapper] was produced.
type Kind uint8

const (
	// KindCurried wrappers come from [Curry].
	KindCurried Kind = iota + 1
	// KindPartial wrappers come from [Partial].
	KindPartial
)

func (k Kind) String() string {
	switch k {
	case KindCurried:
		return "curried"
	case KindPartial:
		return "partial"
	}
	return "unknown"
}

// Wrapper is the Callable returned by [Curry] and [Partial]. It records the
// function it wraps, the arity still expected, and how it was produced.
//
// A Wrapper is immutable: applying arguments never changes it, it returns
// a new Wrapper (or the final result) instead.
type Wrapper struct {
	arity  int
	source Callable
	kind   Kind
	step   func(self *Wrapper, args []any) any
}

// Call applies args. A curried wrapper called with no arguments returns
// itself.
func (w *Wrapper) Call(args ...any) any {
	if len(args) == 0 && w.kind == KindCurried {
		return w
	}
	return w.step(w, args)
}

// Arity returns the number of arguments still expected.
func (w *Wrapper) Arity() int { return w.arity }

// Source returns the original function that was wrapped.
func (w *Wrapper) Source() Callable { return w.source }

// Kind reports whether w is curried or partially applied.
func (w *Wrapper) Kind() Kind { return w.kind }

// String renders the wrapped function's description, prefixed with a note
// about how it was wrapped.
func (w *Wrapper) String() string {
	prefix := "/* Curry Wrapped */\r\n"
	if w.kind == KindPartial {
		prefix = "/* Partial Wrapped */\r\n"
	}
	return prefix + describe(w.source)
}

func describe(c Callable) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}

// IsCurried reports whether c was produced by [Curry].
func IsCurried(c Callable) bool {
	w, ok := c.(*Wrapper)
	return ok && w.kind == KindCurried
}

// IsPartial reports whether c was produced by [Partial].
func IsPartial(c Callable) bool {
	w, ok := c.(*Wrapper)
	return ok && w.kind == KindPartial
}

// SourceOf returns the function c wraps, or c itself when it is not a
// [Wrapper].
func SourceOf(c Callable) Callable {
	if w, ok := c.(*Wrapper); ok {
		return w.source
	}
	return c
}

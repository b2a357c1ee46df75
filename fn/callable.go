package fn

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Callable is anything that can be invoked with a positional argument list.
//
// Arity reports the number of arguments the callable expects. Curry uses it
// as the default saturation point.
type Callable interface {
	Call(args ...any) any
	Arity() int
}

// function is the Callable produced by [Fn].
type function struct {
	name  string
	arity int
	call  func(args ...any) any
}

func (f *function) Call(args ...any) any { return f.call(args...) }
func (f *function) Arity() int           { return f.arity }
func (f *function) String() string       { return "func " + f.name }

// Fn adapts a variadic function to a [Callable] with the given arity.
// A negative arity is treated as 0.
func Fn(arity int, f func(args ...any) any) Callable {
	if arity < 0 {
		arity = 0
	}
	return &function{name: funcName(reflect.ValueOf(f)), arity: arity, call: f}
}

// reflected adapts an arbitrary Go func through package reflect.
type reflected struct {
	v    reflect.Value
	t    reflect.Type
	name string
}

// Reflect adapts any Go func to a [Callable]. Values that already implement
// Callable are returned unchanged.
//
// Arguments are fitted to the parameter types: assignable values are passed
// through, numeric values are converted between numeric kinds, and missing
// or incompatible arguments become the parameter's zero value. Extra
// arguments to a non-variadic func are dropped. The result is the func's
// first return value, or nil when it has none.
//
// Returns [ErrInvalidArgument] when f is nil or not a func.
func Reflect(f any) (Callable, error) {
	if c, ok := f.(Callable); ok && c != nil {
		return c, nil
	}
	v := reflect.ValueOf(f)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", ErrInvalidArgument, f)
	}
	return &reflected{v: v, t: v.Type(), name: funcName(v)}, nil
}

// MustReflect is like [Reflect] but panics on error.
// Intended for package-level variables and tests.
func MustReflect(f any) Callable {
	c, err := Reflect(f)
	if err != nil {
		panic(err)
	}
	return c
}

func (r *reflected) Arity() int {
	n := r.t.NumIn()
	if r.t.IsVariadic() {
		n--
	}
	return n
}

func (r *reflected) String() string { return "func " + r.name + strings.TrimPrefix(r.t.String(), "func") }

func (r *reflected) Call(args ...any) any {
	fixed := r.Arity()
	in := make([]reflect.Value, 0, fixed)
	for i := 0; i < fixed; i++ {
		in = append(in, fit(r.t.In(i), args, i))
	}
	if r.t.IsVariadic() {
		elem := r.t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			in = append(in, fit(elem, args, i))
		}
	}
	out := r.v.Call(in)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// fit returns args[i] as a value of type t, or t's zero value.
func fit(t reflect.Type, args []any, i int) reflect.Value {
	if i >= len(args) || args[i] == nil {
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(args[i])
	switch {
	case v.Type().AssignableTo(t):
		return v
	case isNumeric(v.Kind()) && isNumeric(t.Kind()):
		return v.Convert(t)
	case v.Kind() == t.Kind() && v.CanConvert(t):
		return v.Convert(t)
	}
	return reflect.Zero(t)
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func funcName(v reflect.Value) string {
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
		return rf.Name()
	}
	return "<anonymous>"
}

// Apply invokes f with args when f is a [Callable] and returns f unchanged
// otherwise. It makes chained curried calls readable:
//
//	fn.Apply(fn.Apply(curried, 1), 2)
func Apply(f any, args ...any) any {
	if c, ok := f.(Callable); ok {
		return c.Call(args...)
	}
	return f
}

// Identity returns its first argument.
var Identity Callable = &function{name: "identity", arity: 1, call: func(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}}

// Noop accepts any arguments and returns nil.
var Noop Callable = &function{name: "noop", call: func(...any) any { return nil }}

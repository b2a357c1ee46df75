// Package fn provides function composition primitives: currying with
// placeholders, partial application, and a handful of small wrappers
// (Once, Nary, Flip, Pipe, Compose) built on the same [Callable]
// abstraction.
//
// # Callables
//
// Go functions have fixed, statically known signatures, so every function
// handled by this package is first adapted to the [Callable] interface:
//
//	add := fn.MustReflect(func(a, b int) int { return a + b })
//	add.Arity()      // → 2
//	add.Call(1, 2)   // → 3
//
// [Fn] adapts a variadic func(...any) any with an explicit arity, which is
// the cheapest form and the one used by the rest of this module.
//
// # Currying
//
//	triples := fn.Curry(fn.MustReflect(func(a, b, c int) []int { return []int{a, b, c} }))
//	fn.Apply(triples, 1, 2, 3)                       // → [1 2 3]
//	fn.Apply(fn.Apply(triples, fn.Placeholder, 2, 3), 1) // → [1 2 3]
//
// Every call that does not saturate the curried function returns a *new*
// [Wrapper]; the intermediate values are immutable and may be shared between
// goroutines.
//
// # Partial application
//
//	greet := fn.MustPartial(format, "hello", fn.Placeholder)
//	greet.Call("world")
//
// # Composition
//
// [Pipe] chains functions left to right; [Compose] right to left.
package fn

// Package collections implements one iteration engine and the operations
// derived from it.
//
// # Engine
//
// An [Iterator] is built from [Options]: how to prepare the iteratee, how
// to build and unwrap the accumulator, and a [Handler] called once per
// element. The engine classifies its input with package shape, so every
// operation works the same on slices, strings, maps, structs, records,
// sets and ordered maps:
//
//	collections.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 }) // → [2 4]
//	collections.Pick(map[string]int{"a": 1, "b": 2}, []string{"a"})          // → {a: 1}
//	collections.FindKey(shape.NewSet("x", "y"), func(v string) bool { return v == "y" }) // → 1
//
// # Iteratee shorthand
//
// Derived operations accept, besides functions, a property path, a
// [path, value] pair or a partial object to match; see [Iteratee].
//
//	collections.Filter(users, "active")
//	collections.Filter(users, map[string]any{"age": 40})
//
// # Functional forms
//
// Each operation has an autocurried, iteratee-first variant suffixed F:
//
//	evens := collections.FilterF.Call(isEven)
//	fn.Apply(evens, []int{1, 2, 3, 4}) // → [2 4]
//
// Reductions take the seed last: ReduceF.Call(f, list, seed).
//
// # Registry
//
// Operations are also reachable by name through [Run], and new iterators
// can be added at runtime with [Register].
//
// # Collection
//
// [Collection][T] is a typed, immutable wrapper whose methods route through
// the same engine.
package collections

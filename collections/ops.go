package collections

import (
	"github.com/hasbyte1/go-functional-utils/coerce"
	"github.com/hasbyte1/go-functional-utils/fn"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// Each operation below is one Options value. The plain form takes
// (collection, iteratee[, seed]); the F form is flipped and autocurried:
//
//	collections.Filter(users, "active")
//	collections.FilterF.Call("active", users)
//	fn.Apply(collections.FilterF.Call("active"), users)

// ─────────────────────────────────────────────────────────────────────────────
// Accumulators
// ─────────────────────────────────────────────────────────────────────────────

func newList(any) any        { return &[]any{} }
func unwrapList(acc any) any { return *acc.(*[]any) }

func newRecord(any) any { return shape.NewRecord() }

func newFlag(v bool) func(any) any {
	return func(any) any {
		flag := v
		return &flag
	}
}

func unwrapBool(acc any) any { return *acc.(*bool) }

type reduction struct{ acc any }

func newReduction(seed any) any { return &reduction{acc: seed} }

type found struct {
	key   any
	value any
}

func newFound(any) any { return &found{} }

// ─────────────────────────────────────────────────────────────────────────────
// Option sets
// ─────────────────────────────────────────────────────────────────────────────

func filterOptions(keep bool) Options {
	return Options{
		Prepare: Iteratee,
		Empty:   newList,
		Results: newList,
		Unwrap:  unwrapList,
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			if coerce.Truthy(it.Call(value, key, collection)) == keep {
				out := acc.(*[]any)
				*out = append(*out, value)
			}
			return Next
		},
	}
}

func someOptions() Options {
	return Options{
		Prepare: Iteratee,
		Empty:   newFlag(false),
		Results: newFlag(false),
		Unwrap:  unwrapBool,
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			if !coerce.Truthy(it.Call(value, key, collection)) {
				return Next
			}
			*acc.(*bool) = true
			return Break
		},
	}
}

func everyOptions() Options {
	return Options{
		Prepare: Iteratee,
		Empty:   newFlag(true),
		Results: newFlag(true),
		Unwrap:  unwrapBool,
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			if coerce.Truthy(it.Call(value, key, collection)) {
				return Next
			}
			*acc.(*bool) = false
			return Break
		},
	}
}

func forEachOptions(reverse bool) Options {
	return Options{
		Prepare: Iteratee,
		Reverse: reverse,
		Handler: func(_ any, it fn.Callable, _ int, value, key, collection any) Control {
			it.Call(value, key, collection)
			return Next
		},
	}
}

func reduceOptions(reverse bool) Options {
	return Options{
		Inject:  true,
		Initial: true,
		Reverse: reverse,
		Empty:   newReduction,
		Results: newReduction,
		Unwrap:  func(acc any) any { return acc.(*reduction).acc },
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			r := acc.(*reduction)
			r.acc = it.Call(r.acc, value, key, collection)
			return Next
		},
	}
}

func pickOptions(keep bool) Options {
	return Options{
		Prepare: keyIteratee,
		Empty:   newRecord,
		Results: newRecord,
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			if coerce.Truthy(it.Call(value, key, collection)) == keep {
				acc.(*shape.Record).Set(shape.KeyString(key), value)
			}
			return Next
		},
	}
}

func mapValuesOptions() Options {
	return Options{
		Prepare: Iteratee,
		Empty:   newRecord,
		Results: newRecord,
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			acc.(*shape.Record).Set(shape.KeyString(key), it.Call(value, key, collection))
			return Next
		},
	}
}

// findOptions stops at the first match. unwrap picks the key or the value
// out of the match.
func findOptions(reverse bool, unwrap func(*found) any) Options {
	return Options{
		Prepare: Iteratee,
		Reverse: reverse,
		Empty:   newFound,
		Results: newFound,
		Unwrap:  func(acc any) any { return unwrap(acc.(*found)) },
		Handler: func(acc any, it fn.Callable, _ int, value, key, collection any) Control {
			if !coerce.Truthy(it.Call(value, key, collection)) {
				return Next
			}
			m := acc.(*found)
			m.key, m.value = key, value
			return Break
		},
	}
}

func findKeyOptions() Options { return findOptions(false, func(m *found) any { return m.key }) }

func findValueOptions(reverse bool) Options {
	return findOptions(reverse, func(m *found) any { return m.value })
}

// keyIteratee prepares Pick and Omit iteratees: a list of keys selects by
// key, functions are used as predicates and anything else keeps truthy
// values.
func keyIteratee(v any) fn.Callable {
	var keys []string
	switch x := v.(type) {
	case []string:
		keys = x
	case []any:
		keys = make([]string, len(x))
		for i, k := range x {
			keys[i] = shape.KeyString(k)
		}
	default:
		if c := callable(v); c != nil {
			return c
		}
		return fn.Identity
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return fn.Fn(2, func(args ...any) any {
		if len(args) < 2 {
			return false
		}
		_, ok := set[shape.KeyString(args[1])]
		return ok
	})
}

// flipped returns opts set up for the functional form.
func flipped(opts Options) Options {
	opts.Flipped = true
	return opts
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterators
// ─────────────────────────────────────────────────────────────────────────────

var (
	filterIt       = NewIterator(filterOptions(true))
	rejectIt       = NewIterator(filterOptions(false))
	someIt         = NewIterator(someOptions())
	everyIt        = NewIterator(everyOptions())
	forEachIt      = NewIterator(forEachOptions(false))
	forEachRightIt = NewIterator(forEachOptions(true))
	reduceIt       = NewIterator(reduceOptions(false))
	reduceRightIt  = NewIterator(reduceOptions(true))
	pickIt         = NewIterator(pickOptions(true))
	omitIt         = NewIterator(pickOptions(false))
	mapValuesIt    = NewIterator(mapValuesOptions())
	findKeyIt      = NewIterator(findKeyOptions())
	findIt         = NewIterator(findValueOptions(false))
	findLastIt     = NewIterator(findValueOptions(true))
)

// Functional, autocurried forms: (iteratee, collection), or (iteratee,
// collection, seed) for the reductions. The iteratee is not capped: like the
// plain forms it is called with (value, key, collection), and a Go func
// that declares fewer parameters simply ignores the rest.
var (
	FilterF       = fn.Curry(NewIterator(flipped(filterOptions(true))))
	RejectF       = fn.Curry(NewIterator(flipped(filterOptions(false))))
	SomeF         = fn.Curry(NewIterator(flipped(someOptions())))
	EveryF        = fn.Curry(NewIterator(flipped(everyOptions())))
	ForEachF      = fn.Curry(NewIterator(flipped(forEachOptions(false))))
	ForEachRightF = fn.Curry(NewIterator(flipped(forEachOptions(true))))
	ReduceF       = fn.Curry(NewIterator(flipped(reduceOptions(false))))
	ReduceRightF  = fn.Curry(NewIterator(flipped(reduceOptions(true))))
	PickF         = fn.Curry(NewIterator(flipped(pickOptions(true))))
	OmitF         = fn.Curry(NewIterator(flipped(pickOptions(false))))
	MapValuesF    = fn.Curry(NewIterator(flipped(mapValuesOptions())))
	FindKeyF      = fn.Curry(NewIterator(flipped(findKeyOptions())))
	FindF         = fn.Curry(NewIterator(flipped(findValueOptions(false))))
	FindLastF     = fn.Curry(NewIterator(flipped(findValueOptions(true))))
)

// ─────────────────────────────────────────────────────────────────────────────
// Operations
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the values for which iteratee is truthy, in order.
// See [Iteratee] for the shorthand forms.
func Filter(collection, iteratee any) []any {
	return filterIt.Run(collection, iteratee).([]any)
}

// Reject is the opposite of [Filter]: it keeps the values for which
// iteratee is falsy.
func Reject(collection, iteratee any) []any {
	return rejectIt.Run(collection, iteratee).([]any)
}

// Some reports whether iteratee is truthy for any value. It stops at the
// first match.
func Some(collection, iteratee any) bool {
	return someIt.Run(collection, iteratee).(bool)
}

// Every reports whether iteratee is truthy for all values. It stops at the
// first miss, and is true for empty collections.
func Every(collection, iteratee any) bool {
	return everyIt.Run(collection, iteratee).(bool)
}

// ForEach calls iteratee(value, key, collection) for every element.
func ForEach(collection, iteratee any) {
	forEachIt.Run(collection, iteratee)
}

// ForEachRight is [ForEach] from the last element to the first.
func ForEachRight(collection, iteratee any) {
	forEachRightIt.Run(collection, iteratee)
}

// Reduce folds the collection with iteratee(acc, value, key, collection).
// Without a seed the first element is the starting value. An empty
// collection returns the seed (nil when omitted).
//
//	collections.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n * 2 }, 0) // → 12
func Reduce(collection, iteratee any, seed ...any) any {
	return reduceIt.Run(reduceArgs(collection, iteratee, seed)...)
}

// ReduceRight is [Reduce] from the last element to the first.
func ReduceRight(collection, iteratee any, seed ...any) any {
	return reduceRightIt.Run(reduceArgs(collection, iteratee, seed)...)
}

func reduceArgs(collection, iteratee any, seed []any) []any {
	args := []any{collection, iteratee}
	if len(seed) > 0 {
		args = append(args, seed[0])
	}
	return args
}

// Pick returns a record of the entries to keep. iteratee is a list of keys
// ([]string or []any), a predicate called with (value, key, collection), or
// nil to keep truthy values. Keys are stored in their string form.
//
//	collections.Pick(rec, []string{"a", "c"})
func Pick(collection, iteratee any) *shape.Record {
	return pickIt.Run(collection, iteratee).(*shape.Record)
}

// Omit is the opposite of [Pick].
func Omit(collection, iteratee any) *shape.Record {
	return omitIt.Run(collection, iteratee).(*shape.Record)
}

// MapValues returns a record with the same keys and the iteratee's result
// for each value.
func MapValues(collection, iteratee any) *shape.Record {
	return mapValuesIt.Run(collection, iteratee).(*shape.Record)
}

// FindKey returns the key of the first value for which iteratee is truthy:
// an int position for indexed and set-like values, the key for maps and
// records. Returns nil when nothing matches.
func FindKey(collection, iteratee any) any {
	return findKeyIt.Run(collection, iteratee)
}

// Find returns the first value for which iteratee is truthy, or nil.
//
//	collections.Find(users, []any{"name", "bob"})
func Find(collection, iteratee any) any {
	return findIt.Run(collection, iteratee)
}

// FindLast is [Find] from the last element to the first.
func FindLast(collection, iteratee any) any {
	return findLastIt.Run(collection, iteratee)
}

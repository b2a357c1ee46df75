package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functional-utils/collections"
	"github.com/hasbyte1/go-functional-utils/fn"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

type visit struct {
	I     int
	Key   any
	Value any
}

// recorder builds an iterator that logs every Handler call and stops after
// limit visits when limit > 0.
func recorder(opts collections.Options, limit int) *collections.Iterator {
	opts.Results = func(any) any { return &[]visit{} }
	opts.Unwrap = func(acc any) any { return *acc.(*[]visit) }
	opts.Handler = func(acc any, _ fn.Callable, i int, value, key, _ any) collections.Control {
		out := acc.(*[]visit)
		*out = append(*out, visit{I: i, Key: key, Value: value})
		if limit > 0 && len(*out) == limit {
			return collections.Break
		}
		return collections.Next
	}
	return collections.NewIterator(opts)
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

func TestIteratorVisitsEveryShape(t *testing.T) {
	it := recorder(collections.Options{}, 0)

	cases := []struct {
		name string
		in   any
		want []visit
	}{
		{"slice", []int{10, 20}, []visit{{0, 0, 10}, {1, 1, 20}}},
		{"array", [2]string{"a", "b"}, []visit{{0, 0, "a"}, {1, 1, "b"}}},
		{"string", "hé", []visit{{0, 0, "h"}, {1, 1, "é"}}},
		{"map", map[string]int{"b": 2, "a": 1}, []visit{{0, "a", 1}, {1, "b", 2}}},
		{"int map", map[int]string{10: "x", 2: "y"}, []visit{{0, 2, "y"}, {1, 10, "x"}}},
		{"record", shape.NewRecord().Set("z", 1).Set("a", 2), []visit{{0, "z", 1}, {1, "a", 2}}},
		{"set", shape.NewSet("x", "y"), []visit{{0, 0, "x"}, {1, 1, "y"}}},
		{"ordered map", shape.NewOrderedMap(shape.Entry{Key: 2, Value: "two"}, shape.Entry{Key: "k", Value: 1}),
			[]visit{{0, 2, "two"}, {1, "k", 1}}},
		{"collection", collections.New(7, 8), []visit{{0, 0, 7}, {1, 1, 8}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, it.Run(tc.in, fn.Identity))
		})
	}
}

func TestIteratorStruct(t *testing.T) {
	type user struct {
		Name  string `json:"name"`
		Age   int
		token string
	}
	got := recorder(collections.Options{}, 0).Run(user{Name: "ann", Age: 3, token: "x"}, fn.Identity)
	assert.Equal(t, []visit{{0, "name", "ann"}, {1, "Age", 3}}, got)
}

func TestIteratorReverse(t *testing.T) {
	it := recorder(collections.Options{Reverse: true}, 0)
	got := it.Run([]string{"a", "b", "c"}, fn.Identity)
	assert.Equal(t, []visit{{0, 2, "c"}, {1, 1, "b"}, {2, 0, "a"}}, got)
}

func TestIteratorBreak(t *testing.T) {
	it := recorder(collections.Options{}, 2)
	got := it.Run([]int{1, 2, 3, 4}, fn.Identity)
	assert.Equal(t, []visit{{0, 0, 1}, {1, 1, 2}}, got)
}

func TestIteratorPassesCollection(t *testing.T) {
	in := []int{1}
	var seen any
	it := collections.NewIterator(collections.Options{
		Handler: func(_ any, _ fn.Callable, _ int, _, _, collection any) collections.Control {
			seen = collection
			return collections.Next
		},
	})
	it.Run(in, fn.Noop)
	assert.Equal(t, in, seen)
}

// ─────────────────────────────────────────────────────────────────────────────
// Empty inputs and preparation
// ─────────────────────────────────────────────────────────────────────────────

func TestIteratorEmpty(t *testing.T) {
	t.Run("unwraps the Empty accumulator", func(t *testing.T) {
		it := collections.NewIterator(collections.Options{
			Empty:   func(any) any { return &[]any{} },
			Results: func(any) any { return &[]any{"unused"} },
			Unwrap:  func(acc any) any { return *acc.(*[]any) },
		})
		assert.Equal(t, []any{}, it.Run(nil, fn.Identity))

		seeded := collections.NewIterator(collections.Options{
			Inject: true,
			Empty:  func(seed any) any { return &[]any{seed} },
			Unwrap: func(acc any) any { return (*acc.(*[]any))[0] },
		})
		assert.Equal(t, "s", seeded.Run(0, fn.Identity, "s"))
	})

	t.Run("falls back to unwrapped results", func(t *testing.T) {
		it := collections.NewIterator(collections.Options{
			Results: func(any) any { return "r" },
			Unwrap:  func(acc any) any { return acc.(string) + "!" },
		})
		for _, in := range []any{nil, "", 42, true, map[string]int(nil)} {
			assert.Equal(t, "r!", it.Run(in, fn.Identity), "%#v", in)
		}
	})

	t.Run("empty slice runs no handler", func(t *testing.T) {
		it := recorder(collections.Options{}, 0)
		assert.Empty(t, it.Run([]int{}, fn.Identity))
	})
}

func TestIteratorNonFunctionIteratee(t *testing.T) {
	it := recorder(collections.Options{}, 0)
	assert.Empty(t, it.Run([]int{1, 2}, "not a function"))
	assert.Empty(t, it.Run([]int{1, 2}, nil))
}

func TestIteratorPrepare(t *testing.T) {
	var got []any
	it := collections.NewIterator(collections.Options{
		Prepare: collections.Iteratee,
		Handler: func(_ any, f fn.Callable, _ int, value, key, c any) collections.Control {
			got = append(got, f.Call(value, key, c))
			return collections.Next
		},
	})
	it.Run([]any{map[string]any{"n": 1}, map[string]any{"n": 2}}, "n")
	assert.Equal(t, []any{1, 2}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Seeds and argument order
// ─────────────────────────────────────────────────────────────────────────────

func sum() collections.Options {
	return collections.Options{
		Inject:  true,
		Results: func(seed any) any { return &[]any{seed} },
		Unwrap:  func(acc any) any { return *acc.(*[]any) },
		Handler: func(acc any, _ fn.Callable, _ int, value, _, _ any) collections.Control {
			out := acc.(*[]any)
			*out = append(*out, value)
			return collections.Next
		},
	}
}

func TestIteratorInject(t *testing.T) {
	it := collections.NewIterator(sum())
	assert.Equal(t, 3, it.Arity())
	assert.Equal(t, []any{"s", 1, 2}, it.Run([]int{1, 2}, fn.Identity, "s"))
	assert.Equal(t, []any{nil, 1, 2}, it.Run([]int{1, 2}, fn.Identity))
}

func TestIteratorInitial(t *testing.T) {
	opts := sum()
	opts.Initial = true
	assert.Equal(t, []any{1, 2, 3}, collections.NewIterator(opts).Run([]int{1, 2, 3}, fn.Identity))

	opts.Reverse = true
	assert.Equal(t, []any{3, 2, 1}, collections.NewIterator(opts).Run([]int{1, 2, 3}, fn.Identity))

	// An explicit nil seed is still a seed.
	assert.Equal(t, []any{nil, 3, 2, 1}, collections.NewIterator(opts).Run([]int{1, 2, 3}, fn.Identity, nil))
}

func TestIteratorFlipped(t *testing.T) {
	opts := sum()
	opts.Flipped = true
	it := collections.NewIterator(opts)
	assert.Equal(t, []any{0, 5}, it.Run(fn.Identity, []int{5}, 0))
	assert.Equal(t, []any{nil, 5}, it.Run(fn.Identity, []int{5}))

	plain := recorder(collections.Options{Flipped: true}, 0)
	assert.Equal(t, 2, plain.Arity())
	assert.Equal(t, []visit{{0, 0, "x"}}, plain.Call(fn.Identity, []string{"x"}))
}

func TestIteratorOptionsCopy(t *testing.T) {
	it := collections.NewIterator(collections.Options{Reverse: true})
	opts := it.Options()
	opts.Reverse = false
	assert.True(t, it.Options().Reverse)
}

// ─────────────────────────────────────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────────────────────────────────────

type pair struct {
	Key   any
	Value any
}

func mapper(reverse bool) *collections.Iterator {
	return collections.NewIterator(collections.Options{
		Reverse: reverse,
		Results: func(any) any { return &[]pair{} },
		Unwrap:  func(acc any) any { return *acc.(*[]pair) },
		Handler: func(acc any, it fn.Callable, i int, value, key, c any) collections.Control {
			out := acc.(*[]pair)
			*out = append(*out, pair{Key: key, Value: it.Call(value, key, c)})
			return collections.Next
		},
	})
}

func TestIteratorReverseRecord(t *testing.T) {
	rec := shape.NewRecord().Set("foo", 1).Set("bar", 2).Set("baz", 3)
	double := func(n int) int { return n * 2 }

	got := mapper(true).Run(rec, double)
	assert.Equal(t, []pair{{"baz", 6}, {"bar", 4}, {"foo", 2}}, got)

	forward := mapper(false).Run(rec, double).([]pair)
	backward := got.([]pair)
	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestIteratorReverseMirrorsEveryShape(t *testing.T) {
	for _, in := range []any{
		[]int{1, 2, 3},
		shape.NewSet(1, 2, 3),
		shape.NewOrderedMap(shape.Entry{Key: "a", Value: 1}, shape.Entry{Key: 2, Value: 2}),
		map[string]int{"x": 1, "y": 2},
	} {
		forward := recorder(collections.Options{}, 0).Run(in, fn.Identity).([]visit)
		backward := recorder(collections.Options{Reverse: true}, 0).Run(in, fn.Identity).([]visit)
		require.Len(t, backward, len(forward))
		for i := range forward {
			mirror := backward[len(backward)-1-i]
			assert.Equal(t, forward[i].Key, mirror.Key)
			assert.Equal(t, forward[i].Value, mirror.Value)
			assert.Equal(t, i, forward[i].I)
			assert.Equal(t, i, backward[i].I)
		}
	}
}

func TestIteratorBreakAtIndex(t *testing.T) {
	it := collections.NewIterator(collections.Options{
		Results: func(any) any { return &[]any{} },
		Unwrap:  func(acc any) any { return *acc.(*[]any) },
		Handler: func(acc any, f fn.Callable, i int, value, _, _ any) collections.Control {
			if i == 1 {
				return collections.Break
			}
			out := acc.(*[]any)
			*out = append(*out, f.Call(value))
			return collections.Next
		},
	})
	assert.Equal(t, []any{10}, it.Run([]int{1, 2, 3}, func(n int) int { return n * 10 }))
}

package arr

import (
	"math"
	"math/rand"
	"reflect"

	"github.com/hasbyte1/go-functional-utils/shape"
)

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element of an indexed value, or nil when v is not
// indexed or has no elements.
//
//	Head([]int{1, 2, 3}) // → 1
//	Head([]int{})        // → nil
func Head(v any) any {
	view := shape.Classify(v)
	if view.Kind() != shape.Indexed || view.Len() == 0 {
		return nil
	}
	_, first := view.Entry(0)
	return first
}

// StubArray returns a new empty slice.
func StubArray() []any { return []any{} }

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// FlattenDeep flattens nested slices and arrays into one []any, down to
// maxDepth levels (unbounded when omitted or not positive). Strings are
// never split.
//
//	FlattenDeep([]any{1, []any{2, []any{3, 4, []any{5, 6}}, []int{7}}})
//	// → [1 2 3 4 5 6 7]
//	FlattenDeep([]any{1, []any{2, []any{3}}}, 1)
//	// → [1 2 [3]]
func FlattenDeep(v any, maxDepth ...int) []any {
	depth := math.MaxInt
	if len(maxDepth) > 0 && maxDepth[0] > 0 {
		depth = maxDepth[0]
	}
	out := make([]any, 0)
	rv, ok := list(v)
	if !ok {
		return out
	}
	return flattenDeep(rv, depth, 0, out)
}

func flattenDeep(rv reflect.Value, maxDepth, depth int, out []any) []any {
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		if nested, ok := list(item); ok && depth+1 <= maxDepth {
			out = flattenDeep(nested, maxDepth, depth+1, out)
			continue
		}
		out = append(out, item)
	}
	return out
}

// list returns v as a reflect slice/array value.
func list(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return rv, !rv.IsNil()
	case reflect.Array:
		return rv, true
	}
	return rv, false
}

// Zip groups the elements of the given indexed values by position. The
// result is as long as the longest input; shorter inputs contribute nil.
// Inputs that are not indexed count as empty.
//
//	Zip([]string{"a", "b"}, []int{1, 2}, []bool{true})
//	// → [[a 1 true] [b 2 <nil>]]
func Zip(lists ...any) [][]any {
	views := make([]shape.View, len(lists))
	size := 0
	for i, l := range lists {
		views[i] = shape.Classify(l)
		if views[i].Kind() != shape.Indexed {
			views[i] = shape.Classify(nil)
		}
		if n := views[i].Len(); n > size {
			size = n
		}
	}
	out := make([][]any, size)
	for pos := range out {
		row := make([]any, len(views))
		for i, view := range views {
			if pos < view.Len() {
				_, row[i] = view.Entry(pos)
			}
		}
		out[pos] = row
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items (Fisher-Yates).
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for top := len(out) - 1; top > 0; top-- {
		j := rand.Intn(top + 1)
		out[top], out[j] = out[j], out[top]
	}
	return out
}

// Sample returns n randomly selected items without replacement.
// If n >= len(items), a shuffled copy of all items is returned.
func Sample[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n < 0 {
		n = 0
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}

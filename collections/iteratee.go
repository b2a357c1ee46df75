package collections

import (
	"encoding/json"
	"reflect"

	"github.com/hasbyte1/go-functional-utils/arr"
	"github.com/hasbyte1/go-functional-utils/coerce"
	"github.com/hasbyte1/go-functional-utils/fn"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// Iteratee turns the shorthand iteratee forms accepted by the derived
// operations into a Callable:
//
//   - nil: identity
//   - fn.Callable or Go func: the function itself
//   - string: the property at that path of each value
//   - []any{path, value}: whether the property at path equals value
//   - *shape.Record or map[string]any: whether each value has all of the
//     listed properties with equal values
//
// Anything else never matches.
//
//	collections.Filter(users, "active")
//	collections.FindKey(users, []any{"age", 36})
//	collections.Filter(users, map[string]any{"age": 1, "active": true})
func Iteratee(v any) fn.Callable {
	switch x := v.(type) {
	case nil:
		return fn.Identity
	case string:
		return property(x)
	case []any:
		if len(x) == 2 {
			return matchesProperty(x[0], x[1])
		}
	case *shape.Record:
		if x != nil {
			return matches(x)
		}
	case map[string]any:
		if x != nil {
			return matches(shape.RecordOf(x))
		}
	}
	if c := callable(v); c != nil {
		return c
	}
	return noMatch
}

var noMatch = fn.Fn(1, func(...any) any { return false })

func property(path string) fn.Callable {
	props := arr.ToPath(path)
	return fn.Fn(1, func(args ...any) any {
		if len(args) == 0 {
			return nil
		}
		return arr.Get(args[0], props)
	})
}

func matchesProperty(path, want any) fn.Callable {
	props := arr.ToPath(path)
	return fn.Fn(1, func(args ...any) any {
		if len(args) == 0 || !arr.Has(args[0], props) {
			return false
		}
		return isMatch(arr.Get(args[0], props), want)
	})
}

func matches(src *shape.Record) fn.Callable {
	src = src.Clone()
	return fn.Fn(1, func(args ...any) any {
		if len(args) == 0 {
			return false
		}
		return hasAll(args[0], src)
	})
}

func hasAll(value any, src *shape.Record) bool {
	for _, k := range src.Keys() {
		got, ok := shape.Lookup(value, k)
		if !ok {
			return false
		}
		want, _ := src.Get(k)
		if !isMatch(got, want) {
			return false
		}
	}
	return true
}

// isMatch compares loosely: numbers by value whatever their Go type,
// nested records and string-keyed maps as partial matches, and everything
// else with reflect.DeepEqual.
func isMatch(got, want any) bool {
	if g, w, ok := jsonIntegers(got, want); ok {
		return g == w
	}
	if coerce.IsNumber(got) && coerce.IsNumber(want) {
		return coerce.ToNumber(got) == coerce.ToNumber(want)
	}
	switch w := want.(type) {
	case *shape.Record:
		if w != nil && shape.Classify(got).Kind() == shape.Keyed {
			return hasAll(got, w)
		}
	case map[string]any:
		if w != nil && shape.Classify(got).Kind() == shape.Keyed {
			return hasAll(got, shape.RecordOf(w))
		}
	}
	return reflect.DeepEqual(got, want)
}

// jsonIntegers compares decoded integers exactly; they may not fit a
// float64.
func jsonIntegers(a, b any) (int64, int64, bool) {
	x, ok1 := a.(json.Number)
	y, ok2 := b.(json.Number)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	i, err1 := x.Int64()
	j, err2 := y.Int64()
	return i, j, err1 == nil && err2 == nil
}

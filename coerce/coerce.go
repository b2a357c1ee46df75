// Package coerce provides loose type predicates and numeric coercion for
// values of unknown dynamic type.
//
// The helpers follow dynamic-language conventions so that values decoded
// from JSON, read from maps, or passed through [any] behave predictably:
//
//	coerce.Truthy("")         // → false
//	coerce.ToNumber(" 42 ")   // → 42
//	coerce.ToFinite(math.Inf(1)) // → math.MaxFloat64
package coerce

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Truthy reports whether v is truthy. nil, false, numeric zero, NaN, the
// empty string and nil pointers, maps, slices, funcs, channels and
// interfaces are falsy; everything else is truthy, including empty slices
// and maps.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f := ToNumber(x)
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// IsNaN reports whether v is a floating-point NaN.
func IsNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// IsNumber reports whether v holds a built-in numeric kind or a
// json.Number.
func IsNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k >= reflect.Int && k <= reflect.Float64
}

// IsInteger reports whether v is an integer kind, or a finite float with no
// fractional part.
func IsInteger(v any) bool {
	if n, ok := v.(json.Number); ok {
		if _, err := n.Int64(); err == nil {
			return true
		}
		return IsInteger(ToNumber(n))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
	}
	return false
}

// IsFunction reports whether v is a non-nil func or implements a Call
// method like fn.Callable.
func IsFunction(v any) bool {
	if _, ok := v.(interface{ Call(...any) any }); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsPlainObject reports whether v is a plain key/value record: a
// string-keyed map, a struct (or pointer to one), or a value exposing
// ordered string keys.
func IsPlainObject(v any) bool {
	if _, ok := v.(interface{ Keys() []string }); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil() && rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	}
	return false
}

// ToNumber converts v to a float64. Numbers and json.Numbers convert
// directly, booleans to 0 or 1, nil to 0, and strings are parsed after
// trimming whitespace (the empty string is 0). Anything else is NaN.
func ToNumber(v any) float64 {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(i)
		}
	}
	return math.NaN()
}

// ToFinite converts v to a finite float64: NaN becomes 0 and infinities are
// clamped to ±math.MaxFloat64.
func ToFinite(v any) float64 {
	f := ToNumber(v)
	if math.IsNaN(f) {
		return 0
	}
	return Clamp(f, -math.MaxFloat64, math.MaxFloat64)
}

// ToInteger converts v to an int by truncating [ToFinite], clamped to the
// int range.
func ToInteger(v any) int {
	f := math.Trunc(ToFinite(v))
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

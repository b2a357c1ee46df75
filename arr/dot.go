package arr

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-functional-utils/coerce"
	"github.com/hasbyte1/go-functional-utils/fn"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// ─────────────────────────────────────────────────────────────────────────────
// Path access
//
// Paths use dot and bracket notation and walk any value shape.Lookup can
// index: records, string-keyed maps, slices, structs and ordered maps.
//
//	rec := shape.NewRecord().Set("user", shape.NewRecord().
//	    Set("tags", []any{"admin", "dev"}))
//
//	Get(rec, "user.tags[1]")            → "dev"
//	Get(rec, "user.missing", "none")    → "none"
//	Has(rec, `user["tags"][0]`)         → true
//	Set(rec, "user.name", "Alice")
// ─────────────────────────────────────────────────────────────────────────────

// ToPath converts path to its segments. Strings are parsed as dot/bracket
// paths; []string and []any are used segment by segment; any other non-nil
// value becomes a single segment.
//
//	ToPath("a.b[0].c")    // → [a b 0 c]
//	ToPath(`a["b.c"]`)    // → [a b.c]
func ToPath(path any) []string {
	switch p := path.(type) {
	case nil:
		return nil
	case string:
		return parsePath(p)
	case []string:
		out := make([]string, len(p))
		copy(out, p)
		return out
	case []any:
		out := make([]string, len(p))
		for i, seg := range p {
			out[i] = shape.KeyString(seg)
		}
		return out
	}
	return []string{shape.KeyString(path)}
}

func parsePath(s string) []string {
	if s == "" {
		return nil
	}
	var (
		out     []string
		cur     strings.Builder
		pending bool
	)
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		pending = false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			if i == 0 || s[i-1] != ']' {
				flush()
			}
			pending = true
		case '[':
			seg, end, ok := bracket(s, i)
			if !ok {
				cur.WriteByte(c)
				pending = true
				continue
			}
			if pending || cur.Len() > 0 {
				flush()
			}
			out = append(out, seg)
			i = end
		default:
			cur.WriteByte(c)
			pending = true
		}
	}
	if pending {
		flush()
	}
	return out
}

// bracket parses the [..] segment starting at s[start] and returns its
// content and the index of the closing bracket.
func bracket(s string, start int) (string, int, bool) {
	i := start + 1
	if i < len(s) && (s[i] == '"' || s[i] == '\'') {
		quote := s[i]
		var b strings.Builder
		for j := i + 1; j < len(s); j++ {
			switch {
			case s[j] == '\\' && j+1 < len(s):
				j++
				b.WriteByte(s[j])
			case s[j] == quote:
				if j+1 < len(s) && s[j+1] == ']' {
					return b.String(), j + 1, true
				}
				return "", 0, false
			default:
				b.WriteByte(s[j])
			}
		}
		return "", 0, false
	}
	end := strings.IndexByte(s[i:], ']')
	if end < 0 {
		return "", 0, false
	}
	return strings.TrimSpace(s[i : i+end]), i + end, true
}

// Get returns the value at path inside obj, or fallback[0] (nil when
// omitted) when any segment is missing.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(obj, path any, fallback ...any) any {
	if v, ok := walk(obj, ToPath(path)); ok {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return nil
}

// Has reports whether every segment of path resolves inside obj.
func Has(obj, path any) bool {
	_, ok := walk(obj, ToPath(path))
	return ok
}

// HasAll reports whether all paths resolve inside obj.
func HasAll(obj any, paths ...any) bool {
	for _, p := range paths {
		if !Has(obj, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the paths resolves inside obj.
func HasAny(obj any, paths ...any) bool {
	for _, p := range paths {
		if Has(obj, p) {
			return true
		}
	}
	return false
}

func walk(obj any, props []string) (any, bool) {
	if len(props) == 0 {
		return nil, false
	}
	current := obj
	for _, p := range props {
		next, ok := step(current, p)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// step looks key up in container. Ordered maps keyed by numbers are
// retried with the numeric form of key.
func step(container any, key string) (any, bool) {
	view := shape.Classify(container)
	if v, ok := view.Lookup(key); ok {
		return v, true
	}
	if view.Kind() != shape.MapLike {
		return nil, false
	}
	if n, err := strconv.Atoi(key); err == nil {
		if v, ok := view.Lookup(n); ok {
			return v, true
		}
	}
	if f, err := strconv.ParseFloat(key, 64); err == nil {
		return view.Lookup(f)
	}
	return nil, false
}

// Set writes value at path inside obj and returns obj. Missing or scalar
// intermediate segments are replaced with a new container of the parent's
// flavour: map[string]any under a map, *shape.Record otherwise. Writes into
// values that cannot be modified in place (structs, typed slices, ...) are
// ignored.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(obj, path, value any) any {
	props := ToPath(path)
	if len(props) > 0 {
		setPath(obj, props, value)
	}
	return obj
}

func setPath(container any, props []string, value any) bool {
	key := props[0]
	if len(props) == 1 {
		return assign(container, key, value)
	}
	next, ok := step(container, key)
	if !ok || !writable(next) {
		if ok && shape.Classify(next).Kind() != shape.Empty {
			return false
		}
		next = emptyLike(container)
		if !assign(container, key, next) {
			return false
		}
	}
	return setPath(next, props[1:], value)
}

func assign(container any, key string, value any) bool {
	switch c := container.(type) {
	case *shape.Record:
		if c == nil {
			return false
		}
		c.Set(key, value)
	case map[string]any:
		if c == nil {
			return false
		}
		c[key] = value
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return false
		}
		c[i] = value
	case *shape.OrderedMap:
		if c == nil {
			return false
		}
		if n, err := strconv.Atoi(key); err == nil && c.Has(n) {
			c.Set(n, value)
		} else {
			c.Set(key, value)
		}
	default:
		return false
	}
	return true
}

func writable(v any) bool {
	switch c := v.(type) {
	case *shape.Record:
		return c != nil
	case map[string]any:
		return c != nil
	case []any:
		return true
	case *shape.OrderedMap:
		return c != nil
	}
	return false
}

func emptyLike(container any) any {
	if _, ok := container.(map[string]any); ok {
		return map[string]any{}
	}
	return shape.NewRecord()
}

// Forget removes the value at path from obj. Only records, string-keyed
// maps and ordered maps support removal; anything else is left untouched.
func Forget(obj, path any) {
	props := ToPath(path)
	if len(props) == 0 {
		return
	}
	parent, ok := obj, true
	if len(props) > 1 {
		parent, ok = walk(obj, props[:len(props)-1])
	}
	if !ok {
		return
	}
	key := props[len(props)-1]
	switch c := parent.(type) {
	case *shape.Record:
		if c != nil {
			c.Delete(key)
		}
	case map[string]any:
		delete(c, key)
	case *shape.OrderedMap:
		if c != nil {
			c.Delete(key)
		}
	}
}

// Invoke calls the function found at path inside obj with args and returns
// its result. When the last segment does not resolve to a value, an exported
// method of that name on the parent is used instead. Returns nil when
// nothing callable is found.
//
//	Invoke(rec, "handlers.greet", "Alice")
//	Invoke(user, "FullName")
func Invoke(obj, path any, args ...any) any {
	props := ToPath(path)
	if len(props) == 0 || !coerce.Truthy(obj) {
		return nil
	}
	parent := obj
	if len(props) > 1 {
		var ok bool
		if parent, ok = walk(obj, props[:len(props)-1]); !ok {
			return nil
		}
	}
	name := props[len(props)-1]
	target, ok := step(parent, name)
	if !ok {
		target = method(parent, name)
	}
	if !coerce.IsFunction(target) {
		return nil
	}
	c, err := fn.Reflect(target)
	if err != nil {
		return nil
	}
	return c.Call(args...)
}

func method(v any, name string) any {
	if v == nil {
		return nil
	}
	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil
	}
	return m.Interface()
}

// Dot flattens nested records, maps and slices into a single *shape.Record
// keyed by dot/bracket paths, in traversal order.
//
//	Dot(map[string]any{"a": map[string]any{"b": []any{1}}})
//	// → {a.b[0]: 1}
func Dot(obj any) *shape.Record {
	out := shape.NewRecord()
	dotFlatten("", obj, out)
	return out
}

func dotFlatten(prefix string, v any, out *shape.Record) {
	view := shape.Classify(v)
	nested := view.Len() > 0 && (isRecordLike(v) || isList(v))
	if !nested {
		if prefix != "" {
			out.Set(prefix, v)
		}
		return
	}
	for i := 0; i < view.Len(); i++ {
		k, val := view.Entry(i)
		var key string
		switch {
		case view.Kind() == shape.Indexed:
			key = prefix + "[" + strconv.Itoa(k.(int)) + "]"
		case prefix == "":
			key = shape.KeyString(k)
		default:
			key = prefix + "." + shape.KeyString(k)
		}
		dotFlatten(key, val, out)
	}
}

func isRecordLike(v any) bool {
	switch v.(type) {
	case *shape.Record, map[string]any:
		return true
	}
	return false
}

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// Undot expands a flat record of dot/bracket paths into nested records.
// Bracketed segments become record keys, so "a[0]" and "a.0" are the same.
//
//	Undot(shape.NewRecord().Set("a.b", 1).Set("a.c", 2))
//	// → {a: {b: 1, c: 2}}
func Undot(flat *shape.Record) *shape.Record {
	out := shape.NewRecord()
	for _, k := range flat.Keys() {
		v, _ := flat.Get(k)
		Set(out, k, v)
	}
	return out
}

// GetF is the functional, autocurried form of [Get]: path first,
// object second.
//
//	name := arr.GetF.Call("user.name")
//	name.(fn.Callable).Call(rec) // → "Alice"
var GetF = fn.Curry(fn.Flip(fn.Fn(2, func(args ...any) any {
	return Get(args[0], args[1])
})))

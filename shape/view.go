package shape

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind is the traversal strategy selected for a value.
type Kind int

const (
	// Empty values are never traversed.
	Empty Kind = iota
	// Indexed values are visited by position 0..Len()-1.
	Indexed
	// SetLike values are visited in iteration order under synthetic int keys.
	SetLike
	// MapLike values carry explicit, possibly non-string keys.
	MapLike
	// Keyed values are records with string keys.
	Keyed
)

var kindNames = [...]string{"Empty", "Indexed", "SetLike", "MapLike", "Keyed"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// View is the classified form of a value. Positions run 0..Len()-1 in the
// value's own iteration order; the traversal direction is the caller's
// business.
type View interface {
	Kind() Kind
	Len() int

	// Entry returns the key and value at position pos.
	Entry(pos int) (key, value any)

	// Lookup returns the value stored under key.
	Lookup(key any) (any, bool)
}

// Classify inspects v once and returns the matching View.
//
// Pointers are dereferenced once; a nil pointer is Empty.
func Classify(v any) View {
	return classify(v, true)
}

// Lookup is shorthand for Classify(container).Lookup(key).
func Lookup(container, key any) (any, bool) {
	return Classify(container).Lookup(key)
}

// Keys returns the keys of v in iteration order.
func Keys(v any) []any {
	view := Classify(v)
	out := make([]any, view.Len())
	for i := range out {
		out[i], _ = view.Entry(i)
	}
	return out
}

// Values returns the values of v in iteration order.
func Values(v any) []any {
	view := Classify(v)
	out := make([]any, view.Len())
	for i := range out {
		_, out[i] = view.Entry(i)
	}
	return out
}

func classify(v any, deref bool) View {
	switch x := v.(type) {
	case nil:
		return emptyView{}
	case *Record:
		if x == nil {
			return emptyView{}
		}
		return objectView{keys: x.keys, get: x.Get}
	case *Set:
		if x == nil {
			return emptyView{}
		}
		return valuesView(x.items)
	case *OrderedMap:
		if x == nil {
			return emptyView{}
		}
		return orderedView{m: x}
	case []any:
		if x == nil {
			return emptyView{}
		}
		return sliceView(x)
	case string:
		if x == "" {
			return emptyView{}
		}
		return newRuneView(x)
	case json.Number:
		return emptyView{}
	}

	rv := reflect.ValueOf(v)
	if nilable(rv) && rv.IsNil() {
		return emptyView{}
	}

	switch x := v.(type) {
	case Sequence:
		return seqView{x}
	case Entrier:
		return entriesView(x.Entries())
	case Valuer:
		return valuesView(x.Values())
	case Object:
		return objectView{keys: x.Keys(), get: x.Get}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if deref {
			return classify(rv.Elem().Interface(), false)
		}
	case reflect.Slice, reflect.Array:
		return reflectView{rv}
	case reflect.String:
		if rv.Len() > 0 {
			return newRuneView(rv.String())
		}
	case reflect.Map:
		if rv.Len() == 0 {
			return keyedOrMap(rv, nil)
		}
		if m, ok := v.(map[string]any); ok {
			keys := maps.Keys(m)
			slices.Sort(keys)
			return objectView{keys: keys, get: func(k string) (any, bool) {
				val, ok := m[k]
				return val, ok
			}}
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		return keyedOrMap(rv, keys)
	case reflect.Struct:
		if sv := newStructView(rv); sv.Len() > 0 {
			return sv
		}
	}
	return emptyView{}
}

func nilable(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

type emptyView struct{}

func (emptyView) Kind() Kind             { return Empty }
func (emptyView) Len() int               { return 0 }
func (emptyView) Entry(int) (any, any)   { return nil, nil }
func (emptyView) Lookup(any) (any, bool) { return nil, false }

// sliceView is the fast path for []any.
type sliceView []any

func (s sliceView) Kind() Kind               { return Indexed }
func (s sliceView) Len() int                 { return len(s) }
func (s sliceView) Entry(pos int) (any, any) { return pos, s[pos] }
func (s sliceView) Lookup(key any) (any, bool) {
	i, ok := toIndex(key, len(s))
	if !ok {
		return nil, false
	}
	return s[i], true
}

type reflectView struct{ rv reflect.Value }

func (r reflectView) Kind() Kind { return Indexed }
func (r reflectView) Len() int   { return r.rv.Len() }
func (r reflectView) Entry(pos int) (any, any) {
	return pos, r.rv.Index(pos).Interface()
}
func (r reflectView) Lookup(key any) (any, bool) {
	i, ok := toIndex(key, r.rv.Len())
	if !ok {
		return nil, false
	}
	return r.rv.Index(i).Interface(), true
}

type seqView struct{ s Sequence }

func (s seqView) Kind() Kind               { return Indexed }
func (s seqView) Len() int                 { return s.s.Len() }
func (s seqView) Entry(pos int) (any, any) { return pos, s.s.At(pos) }
func (s seqView) Lookup(key any) (any, bool) {
	i, ok := toIndex(key, s.s.Len())
	if !ok {
		return nil, false
	}
	return s.s.At(i), true
}

// runeView indexes a string by rune; each value is a one-rune string.
type runeView []string

func newRuneView(s string) runeView {
	out := make(runeView, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func (r runeView) Kind() Kind               { return Indexed }
func (r runeView) Len() int                 { return len(r) }
func (r runeView) Entry(pos int) (any, any) { return pos, r[pos] }
func (r runeView) Lookup(key any) (any, bool) {
	i, ok := toIndex(key, len(r))
	if !ok {
		return nil, false
	}
	return r[i], true
}

type valuesView []any

func (v valuesView) Kind() Kind               { return SetLike }
func (v valuesView) Len() int                 { return len(v) }
func (v valuesView) Entry(pos int) (any, any) { return pos, v[pos] }
func (v valuesView) Lookup(key any) (any, bool) {
	i, ok := toIndex(key, len(v))
	if !ok {
		return nil, false
	}
	return v[i], true
}

type orderedView struct{ m *OrderedMap }

func (o orderedView) Kind() Kind { return MapLike }
func (o orderedView) Len() int   { return len(o.m.keys) }
func (o orderedView) Entry(pos int) (any, any) {
	k := o.m.keys[pos]
	return k, o.m.values[k]
}
func (o orderedView) Lookup(key any) (any, bool) { return o.m.Get(key) }

type entriesView []Entry

func (e entriesView) Kind() Kind               { return MapLike }
func (e entriesView) Len() int                 { return len(e) }
func (e entriesView) Entry(pos int) (any, any) { return e[pos].Key, e[pos].Value }
func (e entriesView) Lookup(key any) (any, bool) {
	for _, entry := range e {
		if sameKey(entry.Key, key) {
			return entry.Value, true
		}
	}
	return nil, false
}

type objectView struct {
	keys []string
	get  func(string) (any, bool)
}

func (o objectView) Kind() Kind { return Keyed }
func (o objectView) Len() int   { return len(o.keys) }
func (o objectView) Entry(pos int) (any, any) {
	v, _ := o.get(o.keys[pos])
	return o.keys[pos], v
}
func (o objectView) Lookup(key any) (any, bool) { return o.get(KeyString(key)) }

// mapView walks a native Go map with non-string keys in sorted key order.
type mapView struct {
	rv   reflect.Value
	keys []reflect.Value
}

func keyedOrMap(rv reflect.Value, keys []reflect.Value) View {
	if rv.Type().Key().Kind() == reflect.String {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return objectView{keys: names, get: func(k string) (any, bool) {
			val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			if !val.IsValid() {
				return nil, false
			}
			return val.Interface(), true
		}}
	}
	return mapView{rv: rv, keys: keys}
}

func (m mapView) Kind() Kind { return MapLike }
func (m mapView) Len() int   { return len(m.keys) }
func (m mapView) Entry(pos int) (any, any) {
	k := m.keys[pos]
	return k.Interface(), m.rv.MapIndex(k).Interface()
}
func (m mapView) Lookup(key any) (any, bool) {
	if key == nil {
		return nil, false
	}
	kt := m.rv.Type().Key()
	kv := reflect.ValueOf(key)
	switch {
	case kv.Type().AssignableTo(kt):
	case kv.Type().ConvertibleTo(kt) && isNumberKind(kv.Kind()) == isNumberKind(kt.Kind()):
		kv = kv.Convert(kt)
	default:
		return nil, false
	}
	if !hashable(kv.Interface()) {
		return nil, false
	}
	val := m.rv.MapIndex(kv)
	if !val.IsValid() {
		return nil, false
	}
	return val.Interface(), true
}

// structView exposes exported fields in declaration order under their JSON
// name when one is set.
type structView struct {
	rv     reflect.Value
	names  []string
	fields []int
}

func newStructView(rv reflect.Value) structView {
	sv := structView{rv: rv}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		sv.names = append(sv.names, name)
		sv.fields = append(sv.fields, i)
	}
	return sv
}

func (s structView) Kind() Kind { return Keyed }
func (s structView) Len() int   { return len(s.names) }
func (s structView) Entry(pos int) (any, any) {
	return s.names[pos], s.rv.Field(s.fields[pos]).Interface()
}
func (s structView) Lookup(key any) (any, bool) {
	name := KeyString(key)
	for i, n := range s.names {
		if n == name {
			return s.rv.Field(s.fields[i]).Interface(), true
		}
	}
	return nil, false
}

// toIndex converts key to an in-range position. Integers, integral floats
// and decimal strings or json.Numbers are accepted.
func toIndex(key any, n int) (int, bool) {
	var i int
	switch k := key.(type) {
	case int:
		i = k
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i = int(reflect.ValueOf(k).Convert(reflect.TypeOf(0)).Int())
	case float32:
		return toIndex(float64(k), n)
	case float64:
		if k != math.Trunc(k) || k < 0 || k >= float64(n) {
			return 0, false
		}
		i = int(k)
	case json.Number:
		return toIndex(string(k), n)
	case string:
		parsed, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		i = parsed
	default:
		return 0, false
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// KeyString is the string form of a key when it is stored in a [Record].
func KeyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

func sameKey(a, b any) bool {
	if hashable(a) && hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// compareKeys orders native map keys: numbers numerically, everything else
// by its fmt representation.
func compareKeys(a, b reflect.Value) int {
	if fa, ok := keyNumber(a); ok {
		if fb, ok := keyNumber(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

func keyNumber(v reflect.Value) (float64, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch {
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	case v.CanFloat():
		return v.Float(), true
	}
	return 0, false
}

func isNumberKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

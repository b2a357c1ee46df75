package collections

import (
	"github.com/hasbyte1/go-functional-utils/arr"
	"github.com/hasbyte1/go-functional-utils/shape"
)

// This file holds the operations that change a collection's element type.
// Methods cannot introduce type parameters, so they are stand-alone
// functions:
//
//	names := collections.Map(users, func(u User, _ int) string { return u.Name })

// Map applies f to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], f func(T, int) U) *Collection[U] {
	out := make([]U, 0, c.Len())
	ForEach(c, func(item T, i int) {
		out = append(out, f(item, i))
	})
	return &Collection[U]{items: out}
}

// Pluck returns the value at path for every item. path accepts the forms
// of [arr.ToPath]; missing values are nil.
//
//	collections.Pluck(users, "address.city")
func Pluck[T any](c *Collection[T], path any) []any {
	props := arr.ToPath(path)
	out := make([]any, 0, c.Len())
	ForEach(c, func(item T) {
		out = append(out, arr.Get(item, props))
	})
	return out
}

// GroupBy groups items by the string form of iteratee's result, in order of
// first appearance. See [Iteratee] for the accepted forms.
//
//	byCity := collections.GroupBy(users, "address.city")
func GroupBy[T any](c *Collection[T], iteratee any) *shape.OrderedMap {
	f := Iteratee(iteratee)
	groups := shape.NewOrderedMap()
	ForEach(c, func(item T, i int) {
		k := shape.KeyString(f.Call(item, i, c))
		g, ok := groups.Get(k)
		if !ok {
			g = New[T]()
			groups.Set(k, g)
		}
		grp := g.(*Collection[T])
		grp.items = append(grp.items, item)
	})
	return groups
}

// KeyBy returns a record of items keyed by the string form of iteratee's
// result. When items share a key, the last one wins.
//
//	byID := collections.KeyBy(users, "id")
func KeyBy[T any](c *Collection[T], iteratee any) *shape.Record {
	f := Iteratee(iteratee)
	return Reduce(c, func(acc *shape.Record, item T, i int) *shape.Record {
		return acc.Set(shape.KeyString(f.Call(item, i, c)), item)
	}, shape.NewRecord()).(*shape.Record)
}

// Package shape classifies arbitrary values into the collection shapes the
// iteration engine knows how to walk, and provides the order-preserving
// container types used throughout this module.
//
// # Shapes
//
// [Classify] inspects a value once and returns a [View] of one of five kinds:
//
//   - [Empty]: nil, falsy scalars (0, false, NaN, ""), nil pointers, and
//     anything that is not a collection (funcs, channels, time.Time, ...).
//   - [Indexed]: slices, arrays, non-empty strings and [Sequence] values.
//     Keys are int positions.
//   - [SetLike]: [*Set] and [Valuer] values. Keys are synthetic positions.
//   - [MapLike]: [*OrderedMap], [Entrier] values and Go maps with non-string
//     keys.
//   - [Keyed]: [*Record], [Object] values, string-keyed Go maps and structs.
//
// Go maps have no insertion order, so their keys are visited sorted.
// Struct fields are visited in declaration order.
//
// # Containers
//
//	rec := shape.NewRecord().Set("foo", 1).Set("bar", 2)
//	rec.Keys() // → [foo bar]
//
//	set := shape.NewSet(1, 2, 2, 3) // → {1 2 3}
//	om  := shape.NewOrderedMap().Set(1, "one").Set("two", 2)
package shape

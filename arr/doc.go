// Package arr provides path-based access into nested values plus a few
// small slice helpers.
//
// # Paths
//
// Paths use dot and bracket notation and can walk anything the shape
// package classifies: *shape.Record, string-keyed maps, slices, structs
// and ordered maps.
//
//	rec := shape.NewRecord().Set("user", map[string]any{
//	    "name": "Alice",
//	    "tags": []any{"admin", "dev"},
//	})
//	arr.Get(rec, "user.tags[1]")              // → "dev"
//	arr.Get(rec, "user.age", 0)               // → 0
//	arr.Has(rec, `user["name"]`)              // → true
//	arr.Set(rec, "user.address.city", "Oslo") // creates user.address
//	arr.Invoke(rec, "user.greet", "hi")       // calls a func stored at the path
//
// # Slice helpers
//
//	arr.Head([]int{1, 2, 3})                 // → 1
//	arr.FlattenDeep([]any{1, []any{2, []any{3}}}) // → [1 2 3]
//	arr.Zip([]string{"a", "b"}, []int{1, 2}) // → [[a 1] [b 2]]
package arr

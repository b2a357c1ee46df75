package collections

import (
	"fmt"
	"sort"
	"sync"
)

// registry is the package-level, goroutine-safe store of named iterators.
var registry struct {
	mu  sync.RWMutex
	ops map[string]*Iterator
}

func init() {
	Reset()
}

func defaults() map[string]*Iterator {
	return map[string]*Iterator{
		"filter":         filterIt,
		"reject":         rejectIt,
		"some":           someIt,
		"every":          everyIt,
		"for-each":       forEachIt,
		"for-each-right": forEachRightIt,
		"reduce":         reduceIt,
		"reduce-right":   reduceRightIt,
		"pick":           pickIt,
		"omit":           omitIt,
		"map-values":     mapValuesIt,
		"find-key":       findKeyIt,
		"find":           findIt,
		"find-last":      findLastIt,
	}
}

// Register adds a named iterator to the registry, replacing any iterator
// already registered under name. Safe to call from multiple goroutines.
//
// Example – register an operation that collects keys whose value matches:
//
//	collections.Register("keys-where", collections.NewIterator(collections.Options{
//	    Prepare: collections.Iteratee,
//	    Results: func(any) any { return &[]any{} },
//	    Unwrap:  func(acc any) any { return *acc.(*[]any) },
//	    Handler: func(acc any, it fn.Callable, _ int, v, k, c any) collections.Control {
//	        if coerce.Truthy(it.Call(v, k, c)) {
//	            *acc.(*[]any) = append(*acc.(*[]any), k)
//	        }
//	        return collections.Next
//	    },
//	}))
//
//	keys, _ := collections.Run("keys-where", rec, "active")
func Register(name string, it *Iterator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.ops[name] = it
}

// Has reports whether an iterator is registered under name.
func Has(name string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.ops[name]
	return ok
}

// Lookup returns the iterator registered under name.
// Returns (nil, ErrOperationNotFound) when there is none.
func Lookup(name string) (*Iterator, error) {
	registry.mu.RLock()
	it, ok := registry.ops[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, name)
	}
	return it, nil
}

// Names returns the registered names, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.ops))
	for name := range registry.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks up the named iterator and runs it with args.
func Run(name string, args ...any) (any, error) {
	it, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return it.Run(args...), nil
}

// Reset restores the registry to the built-in operations.
// Intended for use in tests.
func Reset() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.ops = defaults()
}

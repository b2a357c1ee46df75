package collections_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functional-utils/collections"
	"github.com/hasbyte1/go-functional-utils/coerce"
	"github.com/hasbyte1/go-functional-utils/fn"
	"github.com/hasbyte1/go-functional-utils/shape"
)

func keysWhere() *collections.Iterator {
	return collections.NewIterator(collections.Options{
		Prepare: collections.Iteratee,
		Results: func(any) any { return &[]any{} },
		Unwrap:  func(acc any) any { return *acc.(*[]any) },
		Handler: func(acc any, it fn.Callable, _ int, v, k, c any) collections.Control {
			if coerce.Truthy(it.Call(v, k, c)) {
				out := acc.(*[]any)
				*out = append(*out, k)
			}
			return collections.Next
		},
	})
}

func TestRegistryDefaults(t *testing.T) {
	t.Cleanup(collections.Reset)

	assert.Equal(t, []string{
		"every", "filter", "find", "find-key", "find-last", "for-each", "for-each-right", "map-values",
		"omit", "pick", "reduce", "reduce-right", "reject", "some",
	}, collections.Names())

	got, err := collections.Run("pick", shape.NewRecord().Set("a", 1).Set("b", 2), []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.(*shape.Record).Keys())

	got, err = collections.Run("reduce", []int{1, 2, 3}, func(acc, n int) int { return acc + n }, 10)
	require.NoError(t, err)
	assert.Equal(t, 16, got)

	got, err = collections.Run("find-last", []int{1, 2, 3, 4}, isEven)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestRegistryNotFound(t *testing.T) {
	_, err := collections.Run("nope")
	assert.ErrorIs(t, err, collections.ErrOperationNotFound)
	assert.Contains(t, err.Error(), `"nope"`)

	it, err := collections.Lookup("nope")
	assert.Nil(t, it)
	assert.ErrorIs(t, err, collections.ErrOperationNotFound)
	assert.False(t, collections.Has("nope"))
}

func TestRegister(t *testing.T) {
	t.Cleanup(collections.Reset)

	collections.Register("keys-where", keysWhere())
	require.True(t, collections.Has("keys-where"))

	got, err := collections.Run("keys-where", map[string]bool{"a": true, "b": false, "c": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "c"}, got)

	// Replacing a built-in is allowed; Reset restores it.
	collections.Register("filter", keysWhere())
	got, _ = collections.Run("filter", []int{0, 5}, nil)
	assert.Equal(t, []any{1}, got)

	collections.Reset()
	assert.False(t, collections.Has("keys-where"))
	got, _ = collections.Run("filter", []int{0, 5}, nil)
	assert.Equal(t, []any{5}, got)
}

func TestRegistryConcurrent(t *testing.T) {
	t.Cleanup(collections.Reset)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			collections.Register("keys-where", keysWhere())
		}()
		go func() {
			defer wg.Done()
			_, err := collections.Run("some", []int{1, 2}, isEven)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.True(t, collections.Has("keys-where"))
}

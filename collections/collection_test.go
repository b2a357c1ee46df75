package collections_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functional-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors and accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, c.All())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.At(1))
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z" // mutate input – should not affect the collection
	assert.Equal(t, "a", c.All()[0])

	all := c.All()
	all[1] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, c.All(), "All returns a copy")
}

func TestGet(t *testing.T) {
	c := ints(10, 20)

	v, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	for _, i := range []int{-1, 2} {
		v, err = c.Get(i)
		assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
		assert.Zero(t, v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Engine-backed methods
// ─────────────────────────────────────────────────────────────────────────────

func TestCollectionFilter(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6)
	evens := c.Filter(isEven)
	assert.Equal(t, []int{2, 4, 6}, evens.All())
	assert.Equal(t, []int{1, 3, 5}, c.Reject(isEven).All())
	assert.Equal(t, 6, c.Len(), "original is unchanged")

	assert.Empty(t, collections.New[int]().Filter(isEven).All())
}

func TestCollectionShorthand(t *testing.T) {
	type user struct {
		Name   string `json:"name"`
		Active bool   `json:"active"`
	}
	c := collections.New(user{"ann", true}, user{"bob", false})
	assert.Equal(t, []user{{"ann", true}}, c.Filter("active").All())

	i, ok := c.FindKey(map[string]any{"name": "bob"})
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestCollectionPredicates(t *testing.T) {
	c := ints(1, 2, 3)
	assert.True(t, c.Some(isEven))
	assert.False(t, c.Every(isEven))
	assert.True(t, c.Every(func(n int) bool { return n > 0 }))

	i, ok := c.FindKey(isEven)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = c.FindKey(func(n int) bool { return n > 3 })
	assert.False(t, ok)
	assert.Zero(t, i)
}

func TestCollectionEach(t *testing.T) {
	var seen []int
	c := ints(3, 4)
	assert.Same(t, c, c.Each(func(n, i int) { seen = append(seen, n*10+i) }))
	assert.Equal(t, []int{30, 41}, seen)
}

func TestCollectionReduce(t *testing.T) {
	c := ints(1, 2, 3)
	assert.Equal(t, 12, c.Reduce(func(acc, n int) int { return acc + n*2 }, 0))
	assert.Equal(t, 6, c.Reduce(func(acc, n int) int { return acc + n }))
}

func TestCollectionMapValues(t *testing.T) {
	got := ints(1, 2).MapValues(func(n int) int { return n * n })
	assert.Equal(t, []string{"0", "1"}, got.Keys())
	assert.Equal(t, map[string]any{"0": 1, "1": 4}, got.ToMap())
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

func TestCollectionJSON(t *testing.T) {
	c := collections.New("a", "b")
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(b))
	assert.Equal(t, `["a","b"]`, c.String())
	assert.Equal(t, `[]`, collections.New[int]().String())
}

package arr_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-functional-utils/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

func TestHead(t *testing.T) {
	assert.Equal(t, 1, arr.Head([]int{1, 2, 3}))
	assert.Equal(t, "a", arr.Head([]any{"a"}))
	assert.Equal(t, "h", arr.Head("hi"))
	assert.Nil(t, arr.Head([]int{}))
	assert.Nil(t, arr.Head(nil))
	assert.Nil(t, arr.Head(map[string]any{"a": 1}), "records are not indexed")
}

func TestStubArray(t *testing.T) {
	a, b := arr.StubArray(), arr.StubArray()
	a = append(a, 1)
	assert.Len(t, a, 1)
	assert.Empty(t, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

func TestFlattenDeep(t *testing.T) {
	nested := []any{1, []any{2, []any{3, 4, []any{5, 6}}, []int{7}}}

	assert.Equal(t, []any{1, 2, 3, 4}, arr.FlattenDeep([]any{1, 2, 3, 4}))
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7}, arr.FlattenDeep(nested))
	assert.Equal(t, []any{1, 2, 3, 4}, arr.FlattenDeep([]any{[]any{1}, []any{2}, []any{3}, 4}))
	assert.Equal(t, []any{1, 2, []any{3, 4, []any{5, 6}}, []int{7}}, arr.FlattenDeep(nested, 1))
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7}, arr.FlattenDeep(nested, 0), "non-positive depth is unbounded")
	assert.Equal(t, []any{"ab", "c"}, arr.FlattenDeep([]string{"ab", "c"}), "strings are not split")
	assert.Empty(t, arr.FlattenDeep(nil))
	assert.Empty(t, arr.FlattenDeep(42))
}

func TestZip(t *testing.T) {
	got := arr.Zip([]string{"a", "b"}, []int{1, 2}, []bool{true})
	assert.Equal(t, [][]any{{"a", 1, true}, {"b", 2, nil}}, got)

	assert.Empty(t, arr.Zip())
	assert.Equal(t, [][]any{{1, nil}}, arr.Zip([]int{1}, map[string]int{"x": 1}))
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

func TestShuffleKeepsElements(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := arr.Shuffle(in)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in, "input untouched")

	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	assert.Equal(t, in, sorted)

	assert.Empty(t, arr.Shuffle([]int{}))
	assert.Equal(t, []string{"x"}, arr.Shuffle([]string{"x"}))
}

func TestSample(t *testing.T) {
	in := []int{1, 2, 3, 4}
	assert.Len(t, arr.Sample(in, 2), 2)
	assert.Len(t, arr.Sample(in, 10), 4)
	assert.Empty(t, arr.Sample(in, -1))
	for _, v := range arr.Sample(in, 3) {
		assert.Contains(t, in, v)
	}
}

package fn_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functional-utils/fn"
)

func TestOnce(t *testing.T) {
	var calls int32
	onced := fn.Once(fn.MustReflect(func(n int) int {
		atomic.AddInt32(&calls, 1)
		return n * 4
	}))
	assert.Equal(t, 1, onced.Arity())
	assert.Equal(t, 16, onced.Call(4))
	assert.Equal(t, 16, onced.Call(6))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestOnceConcurrent(t *testing.T) {
	var calls int32
	onced := fn.Once(fn.Fn(0, func(...any) any {
		return atomic.AddInt32(&calls, 1)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.EqualValues(t, 1, onced.Call())
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestOnceNil(t *testing.T) {
	assert.Nil(t, fn.Once(nil).Call(1, 2))
}

func TestNary(t *testing.T) {
	capped, err := fn.Nary(fn.Fn(0, func(args ...any) any { return args }), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, capped.Arity())
	assert.Equal(t, []any{"a", "b"}, capped.Call("a", "b", "c", "d"))
	assert.Equal(t, []any{"a"}, capped.Call("a"))

	zero, err := fn.Nary(fn.Fn(0, func(args ...any) any { return len(args) }), -1)
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Call(1, 2))

	_, err = fn.Nary(nil, 1)
	assert.True(t, errors.Is(err, fn.ErrInvalidArgument))
}

func TestFlip(t *testing.T) {
	flipped := fn.Flip(joined(2))
	assert.Equal(t, "2-1", flipped.Call(1, 2))
	assert.Equal(t, 2, flipped.Arity())

	rotate := fn.Flip(joined(3), 2, 0, 1)
	assert.Equal(t, "c-a-b", rotate.Call("a", "b", "c"))

	// Curry composes with Flip to give a collection-last, autocurried form.
	curried := fn.Curry(fn.Flip(joined(2)))
	assert.Equal(t, "y-x", call(curried, a("x"), a("y")))
}

func TestReflectAdaptsArguments(t *testing.T) {
	f := fn.MustReflect(func(i int, f float64, s string) []any { return []any{i, f, s} })
	assert.Equal(t, 3, f.Arity())

	assert.Equal(t, []any{2, 1.5, "x"}, f.Call(2, 1.5, "x"))
	// int → float64 conversion, missing string → zero value.
	assert.Equal(t, []any{0, 3.0, ""}, f.Call(nil, 3))
	// Unassignable values become zero values, extras are dropped.
	assert.Equal(t, []any{0, 0.0, "z"}, f.Call("nope", p, "z", "extra"))
}

func TestReflectVariadic(t *testing.T) {
	f := fn.MustReflect(func(sep string, parts ...int) int { return len(sep) + len(parts) })
	assert.Equal(t, 1, f.Arity())
	assert.Equal(t, 4, f.Call("-", 1, 2, 3))
}

func TestReflectNoResult(t *testing.T) {
	called := false
	f := fn.MustReflect(func() { called = true })
	assert.Nil(t, f.Call())
	assert.True(t, called)
}

func TestReflectErrors(t *testing.T) {
	var nilFunc func()
	for _, v := range []any{nil, 1, "x", nilFunc} {
		_, err := fn.Reflect(v)
		assert.True(t, errors.Is(err, fn.ErrInvalidArgument), "%T", v)
	}
	assert.Panics(t, func() { fn.MustReflect(3) })
}

func TestReflectPassesCallablesThrough(t *testing.T) {
	src := joined(2)
	got, err := fn.Reflect(src)
	require.NoError(t, err)
	assert.Same(t, src, got)
}

func TestApplyAndIdentity(t *testing.T) {
	assert.Equal(t, 7, fn.Apply(7, 1, 2))
	assert.Equal(t, "x", fn.Apply(fn.Identity, "x"))
	assert.Nil(t, fn.Identity.Call())
	assert.Nil(t, fn.Noop.Call(1))
}

func TestPipe(t *testing.T) {
	add := func(a, b int) int { return a + b }
	double := fn.MustReflect(func(n int) int { return n * 2 })

	piped, err := fn.Pipe(add, double, func(n int) string { return string(rune('a' + n)) })
	require.NoError(t, err)
	assert.Equal(t, 2, piped.Arity())
	assert.Equal(t, "g", piped.Call(1, 2))

	// Later steps only see the previous result.
	twice, err := fn.Pipe(add, add)
	require.NoError(t, err)
	assert.Equal(t, 3, twice.Call(1, 2))

	step, err := fn.Pipe(fn.Curry(fn.MustReflect(add)))
	require.NoError(t, err)
	assert.True(t, fn.IsCurried(step.Call(1).(fn.Callable)))

	id, err := fn.Pipe()
	require.NoError(t, err)
	assert.Equal(t, 7, id.Call(7))
}

func TestPipeInvalid(t *testing.T) {
	_, err := fn.Pipe(func(n int) int { return n }, 42)
	assert.ErrorIs(t, err, fn.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "pipe argument 1")

	_, err = fn.Compose(nil)
	assert.ErrorIs(t, err, fn.ErrInvalidArgument)
}

func TestCompose(t *testing.T) {
	composed, err := fn.Compose(
		func(n int) int { return n * 2 },
		func(n int) int { return n + 3 },
	)
	require.NoError(t, err)
	assert.Equal(t, 16, composed.Call(5))
}

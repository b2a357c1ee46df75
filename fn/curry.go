package fn

// curryConfig holds the options accepted by [Curry].
type curryConfig struct {
	arity     int
	hasArity  bool
	optimized bool
}

// CurryOption configures [Curry].
type CurryOption func(*curryConfig)

// WithArity curries to n arguments instead of the function's own arity.
func WithArity(n int) CurryOption {
	return func(c *curryConfig) {
		c.arity = n
		c.hasArity = true
	}
}

// Unoptimized forces the generic applier even for arities 1–4.
func Unoptimized() CurryOption {
	return func(c *curryConfig) { c.optimized = false }
}

// Curry returns a curried version of f.
//
// The curried function collects arguments across calls until arity
// non-placeholder arguments have been supplied, then calls f:
//
//	c := fn.Curry(fn.MustReflect(func(x, y, z int) int { return x + y + z }))
//	c.Call()                                   // → c
//	fn.Apply(c.Call(1), 2, 3)                  // → 6
//	fn.Apply(c.Call(fn.Placeholder, 2, 3), 1)  // → 6
//
// The arity defaults to f.Arity(). When it is below 1, f is returned as is.
func Curry(f Callable, opts ...CurryOption) Callable {
	cfg := curryConfig{optimized: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	arity := cfg.arity
	if !cfg.hasArity {
		arity = f.Arity()
	}
	if arity < 1 {
		return f
	}
	if cfg.optimized && arity <= 4 {
		return specialize(f, arity, func(args []any) any { return f.Call(args...) })
	}
	return recurry(f, arity, nil)
}

// specialize builds the fixed-arity applier for n ≤ 4. call receives
// exactly n arguments.
func specialize(src Callable, n int, call func([]any) any) *Wrapper {
	w := &Wrapper{arity: n, source: src, kind: KindCurried}
	switch n {
	case 1:
		w.step = unary(call)
	case 2:
		w.step = binary(src, call)
	default:
		w.step = func(self *Wrapper, args []any) any { return bind(self, n, args, call) }
	}
	return w
}

func unary(call func([]any) any) func(*Wrapper, []any) any {
	return func(self *Wrapper, args []any) any {
		a := args[0]
		if IsPlaceholder(a) {
			return self
		}
		return call([]any{a})
	}
}

func binary(src Callable, call func([]any) any) func(*Wrapper, []any) any {
	return func(self *Wrapper, args []any) any {
		a := args[0]
		if len(args) == 1 {
			if IsPlaceholder(a) {
				return self
			}
			return specialize(src, 1, func(r []any) any { return call([]any{a, r[0]}) })
		}
		b := args[1]
		switch pa, pb := IsPlaceholder(a), IsPlaceholder(b); {
		case pa && pb:
			return self
		case pa:
			return specialize(src, 1, func(r []any) any { return call([]any{r[0], b}) })
		case pb:
			return specialize(src, 1, func(r []any) any { return call([]any{a, r[0]}) })
		}
		return call([]any{a, b})
	}
}

// bind handles arities 3 and 4: the slots among the first n that are
// missing or hold a placeholder stay open and are filled, left to right, by
// the applier it returns.
func bind(self *Wrapper, n int, args []any, call func([]any) any) any {
	var (
		slots [4]any
		open  [4]int
		k     int
	)
	for i := 0; i < n; i++ {
		if i < len(args) && !IsPlaceholder(args[i]) {
			slots[i] = args[i]
			continue
		}
		open[k] = i
		k++
	}
	switch k {
	case 0:
		return call(slots[:n:n])
	case n:
		return self
	}
	return specialize(self.source, k, func(rest []any) any {
		full := slots
		for j := 0; j < k; j++ {
			full[open[j]] = rest[j]
		}
		return call(full[:n:n])
	})
}

// recurry is the generic applier. prev is the immutable argument snapshot
// collected so far; every call merges into a fresh copy.
func recurry(src Callable, arity int, prev []any) *Wrapper {
	return &Wrapper{
		arity:  remaining(prev, arity),
		source: src,
		kind:   KindCurried,
		step: func(_ *Wrapper, args []any) any {
			merged := merge(prev, args)
			if len(merged) < arity || hasPlaceholders(merged, arity) {
				return recurry(src, arity, merged)
			}
			return src.Call(merged...)
		},
	}
}

// remaining counts the open slots among the first arity positions.
func remaining(args []any, arity int) int {
	n := 0
	for i := 0; i < arity; i++ {
		if i >= len(args) || IsPlaceholder(args[i]) {
			n++
		}
	}
	return n
}

package fn

// placeholder is never zero-sized so that the singleton has a unique address.
type placeholder struct{ _ byte }

func (*placeholder) String() string { return "_" }

// Placeholder marks an argument slot as "not yet supplied".
//
// It is shared by [Curry] and [Partial]; compare with [IsPlaceholder], never
// by value. No user value, nil included, is ever equal to it.
var Placeholder any = &placeholder{}

// IsPlaceholder reports whether v is the [Placeholder] sentinel.
func IsPlaceholder(v any) bool {
	p, ok := v.(*placeholder)
	return ok && p == Placeholder
}

// hasPlaceholders reports whether any of the first n slots of args is open.
func hasPlaceholders(args []any, n int) bool {
	if n > len(args) {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		if IsPlaceholder(args[i]) {
			return true
		}
	}
	return false
}

// merge combines a previous argument snapshot with the arguments of the
// current call. Placeholders in prev are filled in index order from curr;
// any curr values left over are appended. Neither input is modified.
func merge(prev, curr []any) []any {
	out := make([]any, 0, len(prev)+len(curr))
	j := 0
	for _, v := range prev {
		if IsPlaceholder(v) && j < len(curr) {
			out = append(out, curr[j])
			j++
			continue
		}
		out = append(out, v)
	}
	return append(out, curr[j:]...)
}

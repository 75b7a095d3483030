package dual

// Comparisons look at the real part only; partials are ignored. As with
// the built-in floats, every comparison involving NaN is false.

// Equal reports whether a and b have the same real part.
func (a Dual[F]) Equal(b Dual[F]) bool { return a.val == b.val }

// Less reports whether a < b.
func (a Dual[F]) Less(b Dual[F]) bool { return a.val < b.val }

// LessEq reports whether a <= b.
func (a Dual[F]) LessEq(b Dual[F]) bool { return a.val <= b.val }

// Greater reports whether a > b.
func (a Dual[F]) Greater(b Dual[F]) bool { return a.val > b.val }

// GreaterEq reports whether a >= b.
func (a Dual[F]) GreaterEq(b Dual[F]) bool { return a.val >= b.val }

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b. Unordered values (NaN) compare as 0.
func (a Dual[F]) Cmp(b Dual[F]) int { return cmpReal(a.val, b.val) }

// EqualReal reports whether the real part of a equals r.
func (a Dual[F]) EqualReal(r F) bool { return a.val == r }

// LessReal reports whether a < r.
func (a Dual[F]) LessReal(r F) bool { return a.val < r }

// GreaterReal reports whether a > r.
func (a Dual[F]) GreaterReal(r F) bool { return a.val > r }

// CmpReal compares the real part of a with r like Cmp.
func (a Dual[F]) CmpReal(r F) int { return cmpReal(a.val, r) }

func cmpReal[F Float](x, y F) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

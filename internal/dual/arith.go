package dual

// Add returns a + b.
func (a Dual[F]) Add(b Dual[F]) Dual[F] {
	return Dual[F]{
		val: a.val + b.val,
		e:   zip(a, b, func(da, db F) F { return da + db }),
	}
}

// Sub returns a - b.
func (a Dual[F]) Sub(b Dual[F]) Dual[F] {
	return Dual[F]{
		val: a.val - b.val,
		e:   zip(a, b, func(da, db F) F { return da - db }),
	}
}

// Mul returns a · b by the product rule.
func (a Dual[F]) Mul(b Dual[F]) Dual[F] {
	return Dual[F]{
		val: a.val * b.val,
		e:   zip(a, b, func(da, db F) F { return b.val*da + a.val*db }),
	}
}

// Div returns a / b by the quotient rule.
func (a Dual[F]) Div(b Dual[F]) Dual[F] {
	den := b.val * b.val
	return Dual[F]{
		val: a.val / b.val,
		e:   zip(a, b, func(da, db F) F { return (b.val*da - a.val*db) / den }),
	}
}

// Rem returns the truncated remainder a mod b. The remainder is treated as
// piecewise linear in a, so the result carries the partials of a.
func (a Dual[F]) Rem(b Dual[F]) Dual[F] {
	return Dual[F]{
		val: fmod(a.val, b.val),
		e:   zip(a, b, func(da, _ F) F { return da }),
	}
}

// Neg returns -a.
func (a Dual[F]) Neg() Dual[F] {
	return Dual[F]{val: -a.val, e: a.scale(-1)}
}

// AddReal returns a + r.
func (a Dual[F]) AddReal(r F) Dual[F] {
	return Dual[F]{val: a.val + r, e: a.e}
}

// SubReal returns a - r.
func (a Dual[F]) SubReal(r F) Dual[F] {
	return Dual[F]{val: a.val - r, e: a.e}
}

// MulReal returns a · r.
func (a Dual[F]) MulReal(r F) Dual[F] {
	return Dual[F]{val: a.val * r, e: a.scale(r)}
}

// DivReal returns a / r.
func (a Dual[F]) DivReal(r F) Dual[F] {
	return Dual[F]{val: a.val / r, e: a.scale(1 / r)}
}

// RemReal returns a mod r with the partials of a.
func (a Dual[F]) RemReal(r F) Dual[F] {
	return Dual[F]{val: fmod(a.val, r), e: a.e}
}

// RealSub returns r - a.
func RealSub[F Float](r F, a Dual[F]) Dual[F] {
	return Dual[F]{val: r - a.val, e: a.scale(-1)}
}

// RealDiv returns r / a, whose partials are -r·da / a².
func RealDiv[F Float](r F, a Dual[F]) Dual[F] {
	return Dual[F]{val: r / a.val, e: a.scale(-r / (a.val * a.val))}
}

// RealRem returns r mod a. The dividend is a constant, so the partials are
// zero.
func RealRem[F Float](r F, a Dual[F]) Dual[F] {
	return a.flat(fmod(r, a.val))
}

// AddAssign sets *a to *a + b.
func (a *Dual[F]) AddAssign(b Dual[F]) { *a = a.Add(b) }

// SubAssign sets *a to *a - b.
func (a *Dual[F]) SubAssign(b Dual[F]) { *a = a.Sub(b) }

// MulAssign sets *a to *a · b.
func (a *Dual[F]) MulAssign(b Dual[F]) { *a = a.Mul(b) }

// DivAssign sets *a to *a / b.
func (a *Dual[F]) DivAssign(b Dual[F]) { *a = a.Div(b) }

// RemAssign sets *a to *a mod b.
func (a *Dual[F]) RemAssign(b Dual[F]) { *a = a.Rem(b) }

// AddRealAssign sets *a to *a + r.
func (a *Dual[F]) AddRealAssign(r F) { *a = a.AddReal(r) }

// SubRealAssign sets *a to *a - r.
func (a *Dual[F]) SubRealAssign(r F) { *a = a.SubReal(r) }

// MulRealAssign sets *a to *a · r.
func (a *Dual[F]) MulRealAssign(r F) { *a = a.MulReal(r) }

// DivRealAssign sets *a to *a / r.
func (a *Dual[F]) DivRealAssign(r F) { *a = a.DivReal(r) }

// RemRealAssign sets *a to *a mod r.
func (a *Dual[F]) RemRealAssign(r F) { *a = a.RemReal(r) }

// Sum returns the sum of xs, or a zero-width zero when xs is empty.
func Sum[F Float](xs ...Dual[F]) Dual[F] {
	var acc Dual[F]
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

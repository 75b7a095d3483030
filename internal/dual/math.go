package dual

import "math"

// Exp returns e**a.
func (a Dual[F]) Exp() Dual[F] {
	v := fexp(a.val)
	return a.chain(v, v)
}

// Exp2 returns 2**a.
func (a Dual[F]) Exp2() Dual[F] {
	v := fexp2(a.val)
	return a.chain(v, v*math.Ln2)
}

// ExpM1 returns e**a - 1, accurate for a near zero.
func (a Dual[F]) ExpM1() Dual[F] {
	return a.chain(fexpm1(a.val), fexp(a.val))
}

// Ln returns the natural logarithm of a.
func (a Dual[F]) Ln() Dual[F] {
	return a.chain(flog(a.val), 1/a.val)
}

// Log returns the logarithm of a in base b. Both arguments may carry
// partials.
func (a Dual[F]) Log(b Dual[F]) Dual[F] {
	return a.Ln().Div(b.Ln())
}

// Log2 returns the binary logarithm of a.
func (a Dual[F]) Log2() Dual[F] {
	return a.chain(flog2(a.val), 1/(a.val*math.Ln2))
}

// Log10 returns the decimal logarithm of a.
func (a Dual[F]) Log10() Dual[F] {
	return a.chain(flog10(a.val), 1/(a.val*math.Ln10))
}

// Ln1p returns ln(1 + a), accurate for a near zero.
func (a Dual[F]) Ln1p() Dual[F] {
	return a.chain(flog1p(a.val), 1/(1+a.val))
}

// Sqrt returns the square root of a.
func (a Dual[F]) Sqrt() Dual[F] {
	v := fsqrt(a.val)
	return a.chain(v, 1/(2*v))
}

// Cbrt returns the cube root of a.
func (a Dual[F]) Cbrt() Dual[F] {
	v := fcbrt(a.val)
	return a.chain(v, 1/(3*v*v))
}

// Powi returns a**n for an integer exponent.
func (a Dual[F]) Powi(n int) Dual[F] {
	if n == 0 {
		return a.flat(1)
	}
	return a.chain(fpow(a.val, F(n)), F(n)*fpow(a.val, F(n-1)))
}

// PowReal returns a**r for a constant real exponent.
func (a Dual[F]) PowReal(r F) Dual[F] {
	if r == 0 {
		return a.flat(1)
	}
	return a.chain(fpow(a.val, r), r*fpow(a.val, r-1))
}

// Powf returns a**b, differentiating through both base and exponent:
// d(a**b) = b·a**(b-1)·da + a**b·ln(a)·db. The logarithmic term is only
// added for components where db is non-zero, so constant exponents work
// with negative bases.
func (a Dual[F]) Powf(b Dual[F]) Dual[F] {
	v := fpow(a.val, b.val)
	base := b.val * fpow(a.val, b.val-1)
	if b.val == 0 {
		base = 0
	}
	lnA := flog(a.val)
	return Dual[F]{
		val: v,
		e: zip(a, b, func(da, db F) F {
			d := base * da
			if db != 0 {
				d += v * lnA * db
			}
			return d
		}),
	}
}

// Recip returns 1/a.
func (a Dual[F]) Recip() Dual[F] {
	return a.chain(1/a.val, -1/(a.val*a.val))
}

// Sin returns the sine of a.
func (a Dual[F]) Sin() Dual[F] {
	return a.chain(fsin(a.val), fcos(a.val))
}

// Cos returns the cosine of a.
func (a Dual[F]) Cos() Dual[F] {
	return a.chain(fcos(a.val), -fsin(a.val))
}

// Tan returns the tangent of a.
func (a Dual[F]) Tan() Dual[F] {
	v := ftan(a.val)
	return a.chain(v, 1+v*v)
}

// SinCos returns Sin and Cos of a together.
func (a Dual[F]) SinCos() (sin, cos Dual[F]) {
	s, c := fsin(a.val), fcos(a.val)
	return a.chain(s, c), a.chain(c, -s)
}

// Asin returns the arcsine of a.
func (a Dual[F]) Asin() Dual[F] {
	return a.chain(fasin(a.val), 1/fsqrt(1-a.val*a.val))
}

// Acos returns the arccosine of a.
func (a Dual[F]) Acos() Dual[F] {
	return a.chain(facos(a.val), -1/fsqrt(1-a.val*a.val))
}

// Atan returns the arctangent of a.
func (a Dual[F]) Atan() Dual[F] {
	return a.chain(fatan(a.val), 1/(1+a.val*a.val))
}

// Atan2 returns the arctangent of a/b using the signs of both to pick the
// quadrant.
func (a Dual[F]) Atan2(b Dual[F]) Dual[F] {
	den := a.val*a.val + b.val*b.val
	return Dual[F]{
		val: fatan2(a.val, b.val),
		e:   zip(a, b, func(da, db F) F { return (b.val*da - a.val*db) / den }),
	}
}

// Hypot returns sqrt(a² + b²).
func (a Dual[F]) Hypot(b Dual[F]) Dual[F] {
	h := fhypot(a.val, b.val)
	return Dual[F]{
		val: h,
		e:   zip(a, b, func(da, db F) F { return (a.val*da + b.val*db) / h }),
	}
}

// Sinh returns the hyperbolic sine of a.
func (a Dual[F]) Sinh() Dual[F] {
	return a.chain(fsinh(a.val), fcosh(a.val))
}

// Cosh returns the hyperbolic cosine of a.
func (a Dual[F]) Cosh() Dual[F] {
	return a.chain(fcosh(a.val), fsinh(a.val))
}

// Tanh returns the hyperbolic tangent of a.
func (a Dual[F]) Tanh() Dual[F] {
	v := ftanh(a.val)
	return a.chain(v, 1-v*v)
}

// Asinh returns the inverse hyperbolic sine of a.
func (a Dual[F]) Asinh() Dual[F] {
	return a.chain(fasinh(a.val), 1/fsqrt(a.val*a.val+1))
}

// Acosh returns the inverse hyperbolic cosine of a.
func (a Dual[F]) Acosh() Dual[F] {
	return a.chain(facosh(a.val), 1/fsqrt(a.val*a.val-1))
}

// Atanh returns the inverse hyperbolic tangent of a.
func (a Dual[F]) Atanh() Dual[F] {
	return a.chain(fatanh(a.val), 1/(1-a.val*a.val))
}

// Abs returns |a|. The derivative is the sign of a, taking the sign bit of
// zero into account.
func (a Dual[F]) Abs() Dual[F] {
	return a.chain(fabs(a.val), signum(a.val))
}

// Signum returns 1 for a positive sign bit, -1 for a negative one and NaN
// for NaN. It is flat, so the partials are zero.
func (a Dual[F]) Signum() Dual[F] {
	return a.flat(signum(a.val))
}

// Floor returns the greatest integer value not above a.
func (a Dual[F]) Floor() Dual[F] {
	return a.flat(ffloor(a.val))
}

// Ceil returns the least integer value not below a.
func (a Dual[F]) Ceil() Dual[F] {
	return a.flat(fceil(a.val))
}

// Round returns the nearest integer, rounding half away from zero.
func (a Dual[F]) Round() Dual[F] {
	return a.flat(fround(a.val))
}

// Trunc returns the integer part of a.
func (a Dual[F]) Trunc() Dual[F] {
	return a.flat(ftrunc(a.val))
}

// Fract returns the fractional part a - Trunc(a). Its derivative is one.
func (a Dual[F]) Fract() Dual[F] {
	return Dual[F]{val: a.val - ftrunc(a.val), e: a.e}
}

// Max returns the larger of a and b together with its partials. If one of
// them is NaN the other is returned; ties select a.
func (a Dual[F]) Max(b Dual[F]) Dual[F] {
	switch {
	case isNaN(a.val):
		return b
	case isNaN(b.val):
		return a
	case b.val > a.val:
		return b
	default:
		return a
	}
}

// Min returns the smaller of a and b together with its partials. If one of
// them is NaN the other is returned; ties select a.
func (a Dual[F]) Min(b Dual[F]) Dual[F] {
	switch {
	case isNaN(a.val):
		return b
	case isNaN(b.val):
		return a
	case b.val < a.val:
		return b
	default:
		return a
	}
}

// MulAdd returns a·b + c with a single rounding of the real part.
func (a Dual[F]) MulAdd(b, c Dual[F]) Dual[F] {
	return Dual[F]{
		val: fma(a.val, b.val, c.val),
		e:   zip3(a, b, c, func(da, db, dc F) F { return b.val*da + a.val*db + dc }),
	}
}

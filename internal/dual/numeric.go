package dual

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Number is the set of built-in numeric types a Dual converts from and to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Zero returns the constant 0 of width n.
func Zero[F Float](n int) Dual[F] { return Constant[F](0, n) }

// One returns the constant 1 of width n.
func One[F Float](n int) Dual[F] { return Constant[F](1, n) }

// IsZero reports whether the value and every partial are zero.
func (a Dual[F]) IsZero() bool {
	return a.val == 0 && a.flatPartials()
}

// IsOne reports whether a is the constant 1.
func (a Dual[F]) IsOne() bool {
	return a.val == 1 && a.flatPartials()
}

func (a Dual[F]) flatPartials() bool {
	for _, d := range a.e {
		if d != 0 {
			return false
		}
	}
	return true
}

// Parse parses s as a real number and returns it as a constant of width n.
func Parse[F Float](s string, n int) (Dual[F], error) {
	v, err := strconv.ParseFloat(s, bitSize[F]())
	if err != nil {
		return Dual[F]{}, errors.Wrap(err, "parse dual")
	}
	return Constant(F(v), n), nil
}

// FromNumber converts x to a constant of width n.
func FromNumber[F Float, N Number](x N, n int) Dual[F] {
	return Constant(F(x), n)
}

// ToNumber converts the real part of a to N, dropping the partials.
func ToNumber[N Number, F Float](a Dual[F]) N {
	return N(a.val)
}

// IsNaN reports whether the value or any partial is NaN.
func (a Dual[F]) IsNaN() bool {
	if isNaN(a.val) {
		return true
	}
	for _, d := range a.e {
		if isNaN(d) {
			return true
		}
	}
	return false
}

// IsInf reports whether a is not NaN and the value or any partial is
// infinite.
func (a Dual[F]) IsInf() bool {
	if a.IsNaN() {
		return false
	}
	if isInf(a.val) {
		return true
	}
	for _, d := range a.e {
		if isInf(d) {
			return true
		}
	}
	return false
}

// IsFinite reports whether the value and every partial are finite.
func (a Dual[F]) IsFinite() bool {
	if !isFinite(a.val) {
		return false
	}
	for _, d := range a.e {
		if !isFinite(d) {
			return false
		}
	}
	return true
}

// IsNormal reports whether the value and every partial are normal floats.
// Zero is not normal, so any Dual with a zero partial is not normal either.
func (a Dual[F]) IsNormal() bool {
	if !isNormal(a.val) {
		return false
	}
	for _, d := range a.e {
		if !isNormal(d) {
			return false
		}
	}
	return true
}

// IsSignPositive reports whether the sign bit of the real part is clear.
func (a Dual[F]) IsSignPositive() bool { return !signbit(a.val) }

// IsSignNegative reports whether the sign bit of the real part is set.
func (a Dual[F]) IsSignNegative() bool { return signbit(a.val) }

// Inf returns a constant of width n holding positive infinity if sign >= 0
// and negative infinity otherwise.
func Inf[F Float](sign, n int) Dual[F] {
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	return Constant(F(math.Inf(sign)), n)
}

// NaN returns a constant NaN of width n.
func NaN[F Float](n int) Dual[F] {
	return Constant(F(math.NaN()), n)
}

// MaxValue returns the largest finite constant of width n.
func MaxValue[F Float](n int) Dual[F] { return Constant(maxValue[F](), n) }

// MinPositive returns the smallest positive normal constant of width n.
func MinPositive[F Float](n int) Dual[F] { return Constant(minPositive[F](), n) }

// Epsilon returns the difference between 1 and the next representable
// value, as a constant of width n.
func Epsilon[F Float](n int) Dual[F] { return Constant(epsilon[F](), n) }

// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation through dual
// numbers.
//
// A Dual[F] carries a real value and a vector of partial derivatives. Every
// operation applies the chain rule to the partials, so evaluating a
// function on variables yields both its value and its gradient:
//
//	x := dual.Variable(2.0, 0, 2) // ∂/∂x
//	y := dual.Variable(3.0, 1, 2) // ∂/∂y
//	f := x.Mul(y).Add(x.Sin())    // f = xy + sin x
//
//	f.Val()      // 6 + sin 2
//	f.Partial(0) // y + cos x
//	f.Partial(1) // x
//
// The number of partials is a runtime property. Operands of different
// widths combine as if the shorter one were padded with zeros.
package dual

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Float is the constraint for the real type of a dual number.
type Float = dual.Float

// Number is the constraint for primitive numeric conversions.
type Number = dual.Number

// Dual is a real value paired with its partial derivatives.
type Dual[F Float] = dual.Dual[F]

// Distribution samples constant dual numbers from a real distribution.
type Distribution[F Float] = dual.Distribution[F]

// New creates a dual number from a value and its partials. e is copied.
func New[F Float](val F, e []F) Dual[F] {
	return dual.New(val, e)
}

// Constant creates a dual number with n zero partials.
func Constant[F Float](val F, n int) Dual[F] {
	return dual.Constant(val, n)
}

// Variable creates the i-th of n variables: partial i is one, the others
// zero.
func Variable[F Float](val F, i, n int) Dual[F] {
	return dual.Variable(val, i, n)
}

// Zero returns the additive identity with n partials.
func Zero[F Float](n int) Dual[F] { return dual.Zero[F](n) }

// One returns the multiplicative identity with n partials.
func One[F Float](n int) Dual[F] { return dual.One[F](n) }

// Sum adds all of xs.
func Sum[F Float](xs ...Dual[F]) Dual[F] {
	return dual.Sum(xs...)
}

// RealSub returns r - a.
func RealSub[F Float](r F, a Dual[F]) Dual[F] { return dual.RealSub(r, a) }

// RealDiv returns r / a.
func RealDiv[F Float](r F, a Dual[F]) Dual[F] { return dual.RealDiv(r, a) }

// RealRem returns r % a.
func RealRem[F Float](r F, a Dual[F]) Dual[F] { return dual.RealRem(r, a) }

// Parse parses a real number into a constant with n partials.
func Parse[F Float](s string, n int) (Dual[F], error) {
	return dual.Parse[F](s, n)
}

// FromNumber converts a primitive number into a constant with n partials.
func FromNumber[F Float, N Number](x N, n int) Dual[F] {
	return dual.FromNumber[F](x, n)
}

// ToNumber converts the value of a to a primitive number, dropping the
// partials.
func ToNumber[N Number, F Float](a Dual[F]) N {
	return dual.ToNumber[N](a)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[F Float](sign, n int) Dual[F] { return dual.Inf[F](sign, n) }

// NaN returns a not-a-number constant.
func NaN[F Float](n int) Dual[F] { return dual.NaN[F](n) }

// MaxValue returns the largest finite value of F.
func MaxValue[F Float](n int) Dual[F] { return dual.MaxValue[F](n) }

// MinPositive returns the smallest positive normal value of F.
func MinPositive[F Float](n int) Dual[F] { return dual.MinPositive[F](n) }

// Epsilon returns the machine epsilon of F.
func Epsilon[F Float](n int) Dual[F] { return dual.Epsilon[F](n) }

// Standard samples a value uniformly from [0, 1) with n zero partials.
func Standard[F Float](rng *rand.Rand, n int) Dual[F] {
	return dual.Standard[F](rng, n)
}

// NewDistribution creates a sampler of constants with n partials drawn
// from src.
//
// Example:
//
//	d := dual.NewDistribution[float64](distuv.Normal{Mu: 0, Sigma: 1}, 3)
//	x := d.Sample()
func NewDistribution[F Float](src distuv.Rander, n int) *Distribution[F] {
	return dual.NewDistribution[F](src, n)
}

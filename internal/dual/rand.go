package dual

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Standard draws a constant of width n from the standard uniform
// distribution on [0, 1).
func Standard[F Float](rng *rand.Rand, n int) Dual[F] {
	if is32[F]() {
		return Constant(F(rng.Float32()), n)
	}
	return Constant(F(rng.Float64()), n)
}

// Distribution lifts a real-valued distribution to Duals. Samples are
// always constants; turning a sample into a variable is up to the caller,
// who owns the assignment of variable indices.
type Distribution[F Float] struct {
	src   distuv.Rander
	width int
}

// NewDistribution wraps src, producing samples of width n. Any gonum
// distribution (distuv.Normal, distuv.Uniform, ...) satisfies distuv.Rander.
func NewDistribution[F Float](src distuv.Rander, n int) *Distribution[F] {
	return &Distribution[F]{src: src, width: n}
}

// Sample draws one constant.
func (d *Distribution[F]) Sample() Dual[F] {
	return Constant(F(d.src.Rand()), d.width)
}

// SampleN draws count constants.
func (d *Distribution[F]) SampleN(count int) []Dual[F] {
	out := make([]Dual[F], count)
	for i := range out {
		out[i] = d.Sample()
	}
	return out
}

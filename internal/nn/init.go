package nn

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// GlorotNormal creates a [rows, cols] matrix drawn from the Glorot (Xavier)
// normal distribution N(0, sqrt(2/(fanIn+fanOut))).
//
// This initialization keeps the variance of activations roughly constant
// across layers.
//
// Parameters:
//   - rows, cols: Shape of the matrix
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - src: Random source; nil uses the global source
//
// Returns the initialized matrix.
func GlorotNormal[F dual.Float](rows, cols, fanIn, fanOut int, src rand.Source) (*array.Array2[F], error) {
	if fanIn+fanOut <= 0 {
		return nil, errors.Errorf("glorot init: fan in %d plus fan out %d must be positive", fanIn, fanOut)
	}
	dist := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(2 / float64(fanIn+fanOut)),
		Src:   src,
	}
	return Sample[F](array.Ix2{rows, cols}, dist)
}

// Sample creates a matrix of independent draws from dist.
func Sample[F dual.Float](shape array.Ix2, dist distuv.Rander) (*array.Array2[F], error) {
	a, err := array.Uninitialized[F](shape)
	if err != nil {
		return nil, errors.Wrap(err, "sample")
	}
	if err := array.Apply(a, func(F) F { return F(dist.Rand()) }); err != nil {
		a.Release()
		return nil, errors.Wrap(err, "sample")
	}
	return a, nil
}

// Zeros creates a zero-filled matrix, as used for bias initialization.
func Zeros[F dual.Float](rows, cols int) (*array.Array2[F], error) {
	return array.Zeros[F](array.Ix2{rows, cols})
}

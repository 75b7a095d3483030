package nn

import (
	"github.com/pkg/errors"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// ErrEmptyBatch is returned when reducing a batch without elements.
var ErrEmptyBatch = errors.New("batch has no elements")

// MSE computes the Mean Squared Error loss.
//
// Forward yields the per-element squared error (output - target)²; Mean
// reduces it to the scalar loss whose partials are the gradient of every
// tracked parameter.
//
// Example:
//
//	mse := nn.NewMSE[float64]()
//	out, _ := net.Forward(batch)
//	errs, _ := mse.Forward(out, targets)
//	loss, _ := nn.Mean(errs)
type MSE[F dual.Float] struct{}

// NewMSE creates a new MSE loss function.
func NewMSE[F dual.Float]() *MSE[F] {
	return &MSE[F]{}
}

// Forward computes the squared error of every output element.
//
// Parameters:
//   - output: Network output with shape [batch_size, out_features]
//   - target: Ground truth with the same shape
//
// Returns a batch of squared errors, or a ShapeMismatchError.
func (m *MSE[F]) Forward(output *Batch[F], target *array.Array2[F]) (*Batch[F], error) {
	return array.ZipWith(output, target, func(o dual.Dual[F], t F) dual.Dual[F] {
		d := o.SubReal(t)
		return d.Mul(d)
	})
}

// Loss computes the mean squared error in one call.
func (m *MSE[F]) Loss(output *Batch[F], target *array.Array2[F]) (dual.Dual[F], error) {
	errs, err := m.Forward(output, target)
	if err != nil {
		return dual.Dual[F]{}, errors.Wrap(err, "mse")
	}
	defer errs.Release()
	return Mean(errs)
}

// Mean returns the average of all elements of a batch.
func Mean[F dual.Float](b *Batch[F]) (dual.Dual[F], error) {
	if b.Size() == 0 {
		return dual.Dual[F]{}, ErrEmptyBatch
	}
	sum, err := array.Fold(b, dual.Dual[F]{}, dual.Dual[F].Add)
	if err != nil {
		return dual.Dual[F]{}, err
	}
	return sum.DivReal(F(b.Size())), nil
}

package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Batch is a [batch_size, features] matrix of dual numbers.
type Batch[F dual.Float] = array.Array2[dual.Dual[F]]

// Activation is a non-linearity applied to the output of a layer.
//
// Activations are built from dual operations only, so the derivative of
// every output with respect to every tracked variable comes out of the
// forward pass.
type Activation[F dual.Float] interface {
	// Forward applies the activation to a batch and returns a new batch of
	// the same shape.
	Forward(input *Batch[F]) (*Batch[F], error)

	// Name returns a short identifier such as "relu".
	Name() string
}

// mapBatch applies fn element-wise.
func mapBatch[F dual.Float](input *Batch[F], fn func(dual.Dual[F]) dual.Dual[F]) (*Batch[F], error) {
	return array.Map(input, fn)
}

// ReLU is a Rectified Linear Unit activation.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	layer, err := nn.NewLayer[float64](4, 8, nil)
//	if err != nil {
//	    return err
//	}
//	layer.WithActivation(nn.NewReLU[float64]())
type ReLU[F dual.Float] struct{}

// NewReLU creates a new ReLU activation.
func NewReLU[F dual.Float]() *ReLU[F] {
	return &ReLU[F]{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return mapBatch(input, func(x dual.Dual[F]) dual.Dual[F] {
		if x.GreaterReal(0) {
			return x
		}
		return dual.Zero[F](x.Width())
	})
}

// Name returns "relu".
func (r *ReLU[F]) Name() string { return "relu" }

// LeakyReLU is ReLU with a small slope for negative inputs, so that their
// gradient does not vanish. LeakyReLU with slope 0 is ReLU.
//
// Applies the element-wise function: f(x) = x if x > 0, slope * x otherwise
type LeakyReLU[F dual.Float] struct {
	Slope F
}

// NewLeakyReLU creates a new LeakyReLU activation.
func NewLeakyReLU[F dual.Float](slope F) *LeakyReLU[F] {
	return &LeakyReLU[F]{Slope: slope}
}

// Forward applies LeakyReLU activation.
func (l *LeakyReLU[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return mapBatch(input, func(x dual.Dual[F]) dual.Dual[F] {
		if x.GreaterReal(0) {
			return x
		}
		return x.MulReal(l.Slope)
	})
}

// Name returns "leaky_relu(slope)".
func (l *LeakyReLU[F]) Name() string { return fmt.Sprintf("leaky_relu(%v)", l.Slope) }

// Linear is the identity activation f(x) = x. It is the default for new
// layers.
type Linear[F dual.Float] struct{}

// NewLinear creates a new identity activation.
func NewLinear[F dual.Float]() *Linear[F] {
	return &Linear[F]{}
}

// Forward returns a copy of the input.
func (l *Linear[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return input.Clone()
}

// Name returns "linear".
func (l *Linear[F]) Name() string { return "linear" }

// Sigmoid is a sigmoid activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1).
type Sigmoid[F dual.Float] struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid[F dual.Float]() *Sigmoid[F] {
	return &Sigmoid[F]{}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return mapBatch(input, sigmoid[F])
}

// Name returns "sigmoid".
func (s *Sigmoid[F]) Name() string { return "sigmoid" }

func sigmoid[F dual.Float](x dual.Dual[F]) dual.Dual[F] {
	return dual.RealDiv(1, x.Neg().Exp().AddReal(1))
}

// Tanh is a hyperbolic tangent activation.
//
// Tanh squashes values to the range (-1, 1).
type Tanh[F dual.Float] struct{}

// NewTanh creates a new Tanh activation.
func NewTanh[F dual.Float]() *Tanh[F] {
	return &Tanh[F]{}
}

// Forward applies Tanh activation.
func (t *Tanh[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return mapBatch(input, dual.Dual[F].Tanh)
}

// Name returns "tanh".
func (t *Tanh[F]) Name() string { return "tanh" }

// Softmax turns every row of a batch into a probability distribution.
//
// For each sample the row maximum is subtracted before exponentiating,
// which prevents overflow without changing the result or its derivative:
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
type Softmax[F dual.Float] struct{}

// NewSoftmax creates a new Softmax activation.
func NewSoftmax[F dual.Float]() *Softmax[F] {
	return &Softmax[F]{}
}

// Forward applies Softmax to every row of the batch.
func (s *Softmax[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	if input.Released() {
		return nil, array.ErrReleased
	}
	out, err := array.Allocate[dual.Dual[F]](input.Shape(), array.Packed)
	if err != nil {
		return nil, errors.Wrap(err, "softmax")
	}

	rows, cols := input.Shape()[0], input.Shape()[1]
	if cols == 0 {
		return out, nil
	}
	exps := make([]dual.Dual[F], cols)
	for r := 0; r < rows; r++ {
		rowMax := *input.UncheckedAt(array.Ix2{r, 0})
		for c := 1; c < cols; c++ {
			rowMax = rowMax.Max(*input.UncheckedAt(array.Ix2{r, c}))
		}

		var sum dual.Dual[F]
		for c := 0; c < cols; c++ {
			exps[c] = input.UncheckedAt(array.Ix2{r, c}).Sub(rowMax).Exp()
			sum = sum.Add(exps[c])
		}
		for c := 0; c < cols; c++ {
			*out.UncheckedAt(array.Ix2{r, c}) = exps[c].Div(sum)
		}
	}
	return out, nil
}

// Name returns "softmax".
func (s *Softmax[F]) Name() string { return "softmax" }

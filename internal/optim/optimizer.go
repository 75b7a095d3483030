// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Gradients are not stored on the parameters. Every scalar parameter of a
// network is a dual variable, so the loss itself carries the gradient:
// loss.Partial(slot) is ∂loss/∂θ for the parameter element at that slot.
//
// Example usage:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.3,
//	    Momentum: 0.9,
//	})
//
//	for epoch := range epochs {
//	    out, _ := net.ForwardReal(x)
//	    loss, _ := nn.NewMSE[float64]().Loss(out, y)
//	    if err := optimizer.Step(loss); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
	"github.com/deepthought-ml/deepthought/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters along the partials of a loss to
// minimize it during training. Every Optimizer satisfies nn.Optimizer.
type Optimizer[F dual.Float] interface {
	// Step applies one update to all parameters using the partials of loss.
	// It fails without changing anything if a parameter has been released.
	Step(loss dual.Dual[F]) error

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// span returns one past the highest variable index owned by params.
func span[F dual.Float](params []*nn.Parameter[F]) int {
	n := 0
	for _, p := range params {
		n = max(n, p.Slot()+p.Size())
	}
	return n
}

// gradient copies the partials of loss into dst. Slots beyond the loss
// width read as zero.
func gradient[F dual.Float](loss dual.Dual[F], dst []float64) {
	for i := range dst {
		dst[i] = float64(loss.Partial(i))
	}
}

// live returns an error naming the first released parameter in params.
func live[F dual.Float](params []*nn.Parameter[F]) error {
	for _, p := range params {
		if p.Value().Released() {
			return errors.Wrapf(array.ErrReleased, "parameter %q", p.Name())
		}
	}
	return nil
}

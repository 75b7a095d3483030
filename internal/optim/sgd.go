package optim

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/deepthought-ml/deepthought/internal/dual"
	"github.com/deepthought-ml/deepthought/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule:
//
//	velocity = momentum * velocity + lr * gradient
//	param = param - velocity
//
// With zero momentum this is plain gradient descent, param -= lr * gradient.
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD[F dual.Float] struct {
	params   []*nn.Parameter[F]
	lr       float64
	momentum float64
	velocity []float64 // Indexed by variable slot
	grads    []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - params: Model parameters to optimize
//   - config: SGD configuration (LR, Momentum)
//
// Returns a new SGD optimizer.
func NewSGD[F dual.Float](params []*nn.Parameter[F], config SGDConfig) *SGD[F] {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	n := span(params)
	return &SGD[F]{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
		velocity: make([]float64, n),
		grads:    make([]float64, n),
	}
}

// Step performs a single optimization step along the partials of loss.
//
// Returns an error wrapping array.ErrReleased, and leaves the velocity
// untouched, if any parameter has been released.
func (s *SGD[F]) Step(loss dual.Dual[F]) error {
	if err := live(s.params); err != nil {
		return err
	}
	gradient(loss, s.grads)

	// velocity = momentum * velocity + lr * grad
	floats.Scale(s.momentum, s.velocity)
	floats.AddScaled(s.velocity, s.lr, s.grads)

	for _, p := range s.params {
		if err := p.Each(func(slot int, v *F) {
			*v -= F(s.velocity[slot])
		}); err != nil {
			return errors.Wrapf(err, "parameter %q", p.Name())
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD[F]) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[F]) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state.
//
// For SGD with momentum, this exports a copy of the velocity buffer under
// the key "velocity". Without momentum, returns an empty map.
func (s *SGD[F]) StateDict() map[string][]float64 {
	state := make(map[string][]float64)
	if s.momentum == 0 {
		return state
	}
	state["velocity"] = append([]float64(nil), s.velocity...)
	return state
}

// LoadStateDict restores the velocity buffer. If momentum is 0, the
// provided state is ignored.
//
// Returns an error if the velocity length doesn't match the number of
// parameter slots.
func (s *SGD[F]) LoadStateDict(state map[string][]float64) error {
	if s.momentum == 0 {
		return nil
	}
	v, ok := state["velocity"]
	if !ok {
		return nil
	}
	if len(v) != len(s.velocity) {
		return errors.Errorf("velocity length mismatch: expected %d, got %d", len(s.velocity), len(v))
	}
	copy(s.velocity, v)
	return nil
}

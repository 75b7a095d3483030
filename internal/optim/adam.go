package optim

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/deepthought-ml/deepthought/internal/dual"
	"github.com/deepthought-ml/deepthought/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[F dual.Float] struct {
	params []*nn.Parameter[F]
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int       // Timestep for bias correction
	m      []float64 // First moment estimates, by slot
	v      []float64 // Second moment estimates, by slot
	grads  []float64
	sq     []float64
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling in default hyperparameters
// for zero config fields.
func NewAdam[F dual.Float](params []*nn.Parameter[F], config AdamConfig) *Adam[F] {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	n := span(params)
	return &Adam[F]{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make([]float64, n),
		v:      make([]float64, n),
		grads:  make([]float64, n),
		sq:     make([]float64, n),
	}
}

// Step performs a single optimization step using the Adam algorithm. It
// fails, leaving the moments and timestep untouched, if any parameter has
// been released.
func (a *Adam[F]) Step(loss dual.Dual[F]) error {
	if err := live(a.params); err != nil {
		return err
	}
	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	gradient(loss, a.grads)
	floats.MulTo(a.sq, a.grads, a.grads)

	floats.Scale(a.beta1, a.m)
	floats.AddScaled(a.m, 1-a.beta1, a.grads)
	floats.Scale(a.beta2, a.v)
	floats.AddScaled(a.v, 1-a.beta2, a.sq)

	for _, p := range a.params {
		if err := p.Each(func(slot int, w *F) {
			mHat := a.m[slot] / biasCorrection1
			vHat := a.v[slot] / biasCorrection2
			*w -= F(a.lr * mHat / (math.Sqrt(vHat) + a.eps))
		}); err != nil {
			return errors.Wrapf(err, "parameter %q", p.Name())
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (a *Adam[F]) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[F]) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the current timestep.
func (a *Adam[F]) GetTimestep() int {
	return a.t
}

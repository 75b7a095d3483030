// Package nn implements the neural network building blocks of deepthought.
//
// This package provides:
//   - Module interface: Base interface for layers and networks
//   - Parameter: Trainable matrices mapped onto dual variable indices
//   - Layer: Fully connected layer with an activation
//   - Activations: ReLU, LeakyReLU, Linear, Sigmoid, Tanh, Softmax
//   - MSE loss
//   - Network: Stack of layers with parameter bookkeeping
//
// Gradients come from forward-mode automatic differentiation: every
// parameter is lifted to a dual variable before the forward pass, so the
// loss carries its gradient with respect to all of them.
package nn

import (
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Module is the base interface for neural network components with
// trainable state.
//
// Modules can be composed to build networks:
//
//	net, err := nn.NewNetwork(hidden, output)
type Module[F dual.Float] interface {
	// Forward computes the output of the module for a [batch_size,
	// in_features] input.
	Forward(input *Batch[F]) (*Batch[F], error)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[F]
}

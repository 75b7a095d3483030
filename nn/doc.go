// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fully connected neural networks trained with
// forward-mode automatic differentiation.
//
// # Overview
//
// This package contains:
//   - Layers: Layer (dense, with an activation)
//   - Activations: ReLU, LeakyReLU, Linear, Sigmoid, Tanh, Softmax
//   - Loss functions: MSE
//   - Utilities: Network, Module interface, Parameter
//   - Initialization: GlorotNormal, Zeros
//   - Training: TrainStep, Train
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/deepthought-ml/deepthought/nn"
//	    "github.com/deepthought-ml/deepthought/optim"
//	)
//
//	func main() {
//	    src := rand.NewPCG(1, 2)
//	    hidden, _ := nn.NewLayer[float64](2, 3, src)
//	    output, _ := nn.NewLayer[float64](3, 1, src)
//
//	    net, _ := nn.NewNetwork(
//	        hidden.WithActivation(nn.NewSigmoid[float64]()),
//	        output.WithActivation(nn.NewSigmoid[float64]()),
//	    )
//
//	    sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.3})
//	    loss, _ := nn.TrainStep(net, sgd, x, y)
//	}
//
// # Gradients
//
// Every scalar parameter of a Network is assigned a variable index. The
// forward pass lifts each parameter to a dual variable of width
// NumParameters, so the loss returned by MSE carries ∂loss/∂θ for every
// parameter θ in its partials. Optimizers read them with Partial(slot).
//
// Predict skips this and evaluates the network with constant parameters:
//
//	out, _ := net.Predict(x) // *array.Array2[float64]
//
// # Activations
//
// Activations map a [batch_size, features] batch of dual numbers element
// by element; Softmax normalizes each row:
//
//	relu := nn.NewReLU[float64]()
//	leaky := nn.NewLeakyReLU(0.01)
//	softmax := nn.NewSoftmax[float64]()
package nn

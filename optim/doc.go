// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers do not keep gradients on the parameters. A network's loss is a
// dual number whose partials are the gradient with respect to every
// parameter, and Step consumes it directly.
//
// # Basic Usage
//
//	import (
//	    "github.com/deepthought-ml/deepthought/nn"
//	    "github.com/deepthought-ml/deepthought/optim"
//	)
//
//	func main() {
//	    net, _ := nn.NewNetwork(hidden, output)
//
//	    optimizer := optim.NewSGD(
//	        net.Parameters(),
//	        optim.SGDConfig{
//	            LR:       0.3,
//	            Momentum: 0.1,
//	        },
//	    )
//
//	    for epoch := range 10 {
//	        out, _ := net.ForwardReal(x)
//	        loss, _ := nn.NewMSE[float64]().Loss(out, y)
//	        if err := optimizer.Step(loss); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Optimizers
//
// SGD updates v = momentum·v + lr·∂loss/∂θ, then θ -= v.
//
// Adam keeps bias-corrected running averages of the gradient and its
// square:
//
//	optimizer := optim.NewAdam(
//	    net.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
package optim

// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
	"github.com/deepthought-ml/deepthought/internal/nn"
)

// Module is the base interface for neural network components.
//
// Every module must implement:
//   - Forward: Compute a [batch_size, out] batch from a [batch_size, in] batch
//   - Parameters: Return all trainable parameters
type Module[F dual.Float] = nn.Module[F]

// Batch is a [batch_size, features] matrix of dual numbers.
type Batch[F dual.Float] = nn.Batch[F]

// Parameter is a trainable matrix whose elements map onto consecutive dual
// variable indices.
type Parameter[F dual.Float] = nn.Parameter[F]

// NewParameter wraps an owning array as a parameter whose first element is
// variable slot.
func NewParameter[F dual.Float](name string, value *array.Array2[F], slot int) *Parameter[F] {
	return nn.NewParameter(name, value, slot)
}

// Lift converts a real matrix into a batch of constants.
func Lift[F dual.Float](x *array.Array2[F]) (*Batch[F], error) {
	return nn.Lift(x)
}

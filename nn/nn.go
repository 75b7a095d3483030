// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
	"github.com/deepthought-ml/deepthought/internal/nn"
)

// Layers

// Layer represents a fully connected (dense) layer followed by an
// activation.
type Layer[F dual.Float] = nn.Layer[F]

// NewLayer creates a new layer with Glorot normal weights and zero biases.
//
// Example:
//
//	layer, err := nn.NewLayer[float64](784, 128, rand.NewPCG(1, 2))
func NewLayer[F dual.Float](inFeatures, outFeatures int, src rand.Source) (*Layer[F], error) {
	return nn.NewLayer[F](inFeatures, outFeatures, src)
}

// FromParameters creates a layer from explicit weight [out, in] and bias
// [out, 1] matrices.
func FromParameters[F dual.Float](weight, bias *array.Array2[F]) (*Layer[F], error) {
	return nn.FromParameters(weight, bias)
}

// Network is a stack of fully connected layers.
type Network[F dual.Float] = nn.Network[F]

// NewNetwork creates a network from the given layers.
//
// Example:
//
//	net, err := nn.NewNetwork(hidden, output)
func NewNetwork[F dual.Float](layers ...*Layer[F]) (*Network[F], error) {
	return nn.NewNetwork(layers...)
}

// NewMLP creates a fully connected network over widths, using hidden on
// every layer but the last and output on the last.
//
// Example:
//
//	net, err := nn.NewMLP([]int{13, 20, 1}, nn.NewReLU[float64](), nn.NewSigmoid[float64](), src)
func NewMLP[F dual.Float](widths []int, hidden, output Activation[F], src rand.Source) (*Network[F], error) {
	return nn.NewMLP(widths, hidden, output, src)
}

// Activations

// Activation is an element-wise (or row-wise) non-linearity.
type Activation[F dual.Float] = nn.Activation[F]

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[F dual.Float] = nn.ReLU[F]

// NewReLU creates a new ReLU activation.
func NewReLU[F dual.Float]() *ReLU[F] {
	return nn.NewReLU[F]()
}

// LeakyReLU represents ReLU with a slope for negative inputs.
type LeakyReLU[F dual.Float] = nn.LeakyReLU[F]

// NewLeakyReLU creates a new LeakyReLU activation.
func NewLeakyReLU[F dual.Float](slope F) *LeakyReLU[F] {
	return nn.NewLeakyReLU(slope)
}

// Linear represents the identity activation.
type Linear[F dual.Float] = nn.Linear[F]

// NewLinear creates a new identity activation.
func NewLinear[F dual.Float]() *Linear[F] {
	return nn.NewLinear[F]()
}

// Sigmoid represents the sigmoid activation function.
type Sigmoid[F dual.Float] = nn.Sigmoid[F]

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid[F dual.Float]() *Sigmoid[F] {
	return nn.NewSigmoid[F]()
}

// Tanh represents the hyperbolic tangent activation function.
type Tanh[F dual.Float] = nn.Tanh[F]

// NewTanh creates a new Tanh activation.
func NewTanh[F dual.Float]() *Tanh[F] {
	return nn.NewTanh[F]()
}

// Softmax represents the row-wise softmax activation.
type Softmax[F dual.Float] = nn.Softmax[F]

// NewSoftmax creates a new Softmax activation.
func NewSoftmax[F dual.Float]() *Softmax[F] {
	return nn.NewSoftmax[F]()
}

// Loss functions

// MSE computes the Mean Squared Error loss.
type MSE[F dual.Float] = nn.MSE[F]

// NewMSE creates a new MSE loss function.
func NewMSE[F dual.Float]() *MSE[F] {
	return nn.NewMSE[F]()
}

// Mean returns the average of all elements of a batch.
func Mean[F dual.Float](b *Batch[F]) (dual.Dual[F], error) {
	return nn.Mean(b)
}

// ErrEmptyBatch is returned when reducing a batch without elements.
var ErrEmptyBatch = nn.ErrEmptyBatch

// Initialization

// GlorotNormal creates a matrix drawn from N(0, sqrt(2/(fanIn+fanOut))).
func GlorotNormal[F dual.Float](rows, cols, fanIn, fanOut int, src rand.Source) (*array.Array2[F], error) {
	return nn.GlorotNormal[F](rows, cols, fanIn, fanOut, src)
}

// Sample creates a matrix of independent draws from dist.
func Sample[F dual.Float](shape array.Ix2, dist distuv.Rander) (*array.Array2[F], error) {
	return nn.Sample[F](shape, dist)
}

// Zeros creates a zero-filled matrix.
func Zeros[F dual.Float](rows, cols int) (*array.Array2[F], error) {
	return nn.Zeros[F](rows, cols)
}

// Training

// Optimizer updates network parameters from the partials of a loss.
type Optimizer[F dual.Float] = nn.Optimizer[F]

// TrainingSet yields (samples, labels) batches.
type TrainingSet[F dual.Float] = nn.TrainingSet[F]

// TrainConfig holds configuration for Train.
type TrainConfig[F dual.Float] = nn.TrainConfig[F]

// TrainStep runs one forward pass, MSE loss and optimizer step on a batch
// and returns the loss before the update.
func TrainStep[F dual.Float](net *Network[F], opt Optimizer[F], x, y *array.Array2[F]) (F, error) {
	return nn.TrainStep(net, opt, x, y)
}

// Train runs TrainStep over every training batch for cfg.Epochs epochs.
//
// Example:
//
//	loss, err := nn.Train(net, sgd, data, nn.TrainConfig[float64]{
//	    Epochs:   11000,
//	    LogEvery: 1000,
//	    OnEpoch:  func(epoch int, loss float64) { fmt.Printf("epoch %d: %.4f\n", epoch, loss) },
//	})
func Train[F dual.Float](net *Network[F], opt Optimizer[F], data TrainingSet[F], cfg TrainConfig[F]) (F, error) {
	return nn.Train(net, opt, data, cfg)
}

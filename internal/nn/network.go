package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Network is a stack of fully connected layers.
//
// Each layer's output becomes the next layer's input. When a layer is
// added, every scalar of its weights and biases is assigned the next free
// dual variable index, so a network with P parameters produces outputs of
// width P whose partials are the gradient with respect to each parameter.
//
// Example:
//
//	l1, _ := nn.NewLayer[float64](2, 3, src)
//	l2, _ := nn.NewLayer[float64](3, 1, src)
//	net, err := nn.NewNetwork(
//	    l1.WithActivation(nn.NewSigmoid[float64]()),
//	    l2.WithActivation(nn.NewSigmoid[float64]()),
//	)
//
//	out, err := net.Forward(batch)   // width net.NumParameters()
type Network[F dual.Float] struct {
	layers    []*Layer[F]
	numParams int
}

// NewNetwork creates a network from the given layers.
//
// Returns a ShapeMismatchError if a layer's input width differs from the
// previous layer's output width.
func NewNetwork[F dual.Float](layers ...*Layer[F]) (*Network[F], error) {
	n := &Network[F]{}
	for _, l := range layers {
		if err := n.AddLayer(l); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// NewMLP creates a fully connected network with len(widths)-1 layers, where
// layer i maps widths[i] to widths[i+1]. Every layer but the last uses
// hidden; the last uses output. A nil activation leaves the layer linear.
// Weights are drawn from src.
//
// Example:
//
//	sigmoid := nn.NewSigmoid[float64]()
//	net, err := nn.NewMLP([]int{2, 3, 3, 1}, sigmoid, sigmoid, src)
func NewMLP[F dual.Float](widths []int, hidden, output Activation[F], src rand.Source) (*Network[F], error) {
	if len(widths) < 2 {
		return nil, errors.Errorf("need at least an input and an output width, got %v", widths)
	}
	n := &Network[F]{}
	for i := 0; i+1 < len(widths); i++ {
		l, err := NewLayer[F](widths[i], widths[i+1], src)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		act := hidden
		if i+2 == len(widths) {
			act = output
		}
		if act != nil {
			l.WithActivation(act)
		}
		if err := n.AddLayer(l); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// AddLayer appends a layer and assigns variable indices to its parameters.
//
// This allows building networks incrementally:
//
//	net, _ := nn.NewNetwork[float64]()
//	net.AddLayer(hidden)
//	net.AddLayer(output)
func (n *Network[F]) AddLayer(l *Layer[F]) error {
	if len(n.layers) > 0 {
		prev := n.layers[len(n.layers)-1]
		if prev.OutFeatures() != l.InFeatures() {
			return errors.Wrapf(&array.ShapeMismatchError{
				Expected: []int{l.OutFeatures(), prev.OutFeatures()},
				Found:    []int{l.OutFeatures(), l.InFeatures()},
			}, "layer %d", len(n.layers))
		}
	}

	index := len(n.layers)
	l.weight.name = fmt.Sprintf("%d.weight", index)
	l.weight.setSlot(n.numParams)
	n.numParams += l.weight.Size()
	l.bias.name = fmt.Sprintf("%d.bias", index)
	l.bias.setSlot(n.numParams)
	n.numParams += l.bias.Size()

	n.layers = append(n.layers, l)
	return nil
}

// Forward propagates a batch through all layers with every parameter
// lifted to its dual variable. The outputs have width NumParameters().
//
// Parameters:
//   - input: Batch with shape [batch_size, in_features]
//
// Returns the output of the last layer.
func (n *Network[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return n.forward(input, n.numParams)
}

// ForwardReal lifts a real batch to constants and calls Forward.
func (n *Network[F]) ForwardReal(input *array.Array2[F]) (*Batch[F], error) {
	x, err := Lift(input)
	if err != nil {
		return nil, err
	}
	defer x.Release()
	return n.Forward(x)
}

// Predict evaluates the network with constant parameters and returns the
// real outputs. No partials are computed.
func (n *Network[F]) Predict(input *array.Array2[F]) (*array.Array2[F], error) {
	x, err := Lift(input)
	if err != nil {
		return nil, err
	}
	defer x.Release()

	out, err := n.forward(x, 0)
	if err != nil {
		return nil, err
	}
	defer out.Release()
	return array.Map(out, dual.Dual[F].Val)
}

func (n *Network[F]) forward(input *Batch[F], width int) (*Batch[F], error) {
	if len(n.layers) == 0 {
		return nil, errors.New("network has no layers")
	}

	x := input
	for i, l := range n.layers {
		y, err := l.forward(x, width)
		if x != input {
			x.Release()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		x = y
	}
	return x, nil
}

// Parameters returns all trainable parameters, ordered by variable index.
func (n *Network[F]) Parameters() []*Parameter[F] {
	var params []*Parameter[F]
	for _, l := range n.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// NumParameters returns the total number of scalar parameters, which is
// the width of the duals produced by Forward.
func (n *Network[F]) NumParameters() int {
	return n.numParams
}

// Layers returns the layers in order.
func (n *Network[F]) Layers() []*Layer[F] {
	return n.layers
}

// Len returns the number of layers.
func (n *Network[F]) Len() int {
	return len(n.layers)
}

// Lift converts a real matrix into a batch of constants.
func Lift[F dual.Float](x *array.Array2[F]) (*Batch[F], error) {
	return array.Map(x, func(v F) dual.Dual[F] { return dual.Constant(v, 0) })
}

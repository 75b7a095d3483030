package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Layer implements a fully connected (dense) layer followed by an
// activation.
//
// Performs the transformation: y = act(x @ W.T + b)
// where:
//   - x is the input batch with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias column with shape [out_features, 1]
//   - y is the output batch with shape [batch_size, out_features]
//
// Weights are initialized using Glorot/Xavier normal initialization.
// Biases are initialized to zeros. The default activation is Linear.
//
// Example:
//
//	layer, err := nn.NewLayer[float64](784, 128, nil)
//	if err != nil {
//	    return err
//	}
//	layer.WithActivation(nn.NewSigmoid[float64]())
type Layer[F dual.Float] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[F] // [out_features, in_features]
	bias        *Parameter[F] // [out_features, 1]
	activation  Activation[F]
}

// NewLayer creates a new Layer.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - src: Random source for weight initialization; nil uses the global
//     source
//
// Returns a new Layer, or an error if the dimensions are not positive.
func NewLayer[F dual.Float](inFeatures, outFeatures int, src rand.Source) (*Layer[F], error) {
	if inFeatures <= 0 || outFeatures <= 0 {
		return nil, errors.Errorf("layer dimensions must be positive, got %dx%d", inFeatures, outFeatures)
	}

	w, err := GlorotNormal[F](outFeatures, inFeatures, inFeatures, outFeatures, src)
	if err != nil {
		return nil, errors.Wrap(err, "init weights")
	}
	b, err := Zeros[F](outFeatures, 1)
	if err != nil {
		return nil, errors.Wrap(err, "init biases")
	}
	return FromParameters(w, b)
}

// FromParameters creates a Layer from explicit weight [out, in] and bias
// [out, 1] matrices. The layer takes ownership of both arrays.
func FromParameters[F dual.Float](weight, bias *array.Array2[F]) (*Layer[F], error) {
	out, in := weight.Shape()[0], weight.Shape()[1]
	if bs := bias.Shape(); bs != (array.Ix2{out, 1}) {
		return nil, &array.ShapeMismatchError{Expected: []int{out, 1}, Found: bs[:]}
	}

	return &Layer[F]{
		inFeatures:  in,
		outFeatures: out,
		weight:      NewParameter("weight", weight, 0),
		bias:        NewParameter("bias", bias, out*in),
		activation:  NewLinear[F](),
	}, nil
}

// WithActivation sets the activation applied after the affine transform
// and returns the layer.
func (l *Layer[F]) WithActivation(a Activation[F]) *Layer[F] {
	l.activation = a
	return l
}

// Forward computes the output of the layer with its parameters held
// constant. Gradients flow only with respect to the variables carried by
// the input.
func (l *Layer[F]) Forward(input *Batch[F]) (*Batch[F], error) {
	return l.forward(input, 0)
}

// forward computes act(x @ W.T + b). A positive width lifts every parameter
// to its dual variable; zero keeps them constant.
func (l *Layer[F]) forward(input *Batch[F], width int) (*Batch[F], error) {
	if input.Released() {
		return nil, array.ErrReleased
	}
	if shape := input.Shape(); shape[1] != l.inFeatures {
		return nil, &array.ShapeMismatchError{
			Expected: []int{shape[0], l.inFeatures},
			Found:    shape[:],
		}
	}

	w := make([]dual.Dual[F], l.outFeatures*l.inFeatures)
	for o := 0; o < l.outFeatures; o++ {
		for i := 0; i < l.inFeatures; i++ {
			w[o*l.inFeatures+i] = l.weight.lift(o, i, width)
		}
	}

	batch := input.Shape()[0]
	z, err := array.Allocate[dual.Dual[F]](array.Ix2{batch, l.outFeatures}, array.Packed)
	if err != nil {
		return nil, errors.Wrap(err, "layer output")
	}
	defer z.Release()

	for o := 0; o < l.outFeatures; o++ {
		b := l.bias.lift(o, 0, width)
		for r := 0; r < batch; r++ {
			acc := b
			for i := 0; i < l.inFeatures; i++ {
				acc = input.UncheckedAt(array.Ix2{r, i}).MulAdd(w[o*l.inFeatures+i], acc)
			}
			*z.UncheckedAt(array.Ix2{r, o}) = acc
		}
	}

	return l.activation.Forward(z)
}

// Parameters returns [weight, bias].
func (l *Layer[F]) Parameters() []*Parameter[F] {
	return []*Parameter[F]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Layer[F]) Weight() *Parameter[F] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Layer[F]) Bias() *Parameter[F] {
	return l.bias
}

// Activation returns the layer's activation.
func (l *Layer[F]) Activation() Activation[F] {
	return l.activation
}

// InFeatures returns the number of input features.
func (l *Layer[F]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Layer[F]) OutFeatures() int {
	return l.outFeatures
}

// NumParameters returns the number of scalars in the weights and biases.
func (l *Layer[F]) NumParameters() int {
	return l.outFeatures*l.inFeatures + l.outFeatures
}

// WeightsDense returns a float64 copy of the weight matrix.
func (l *Layer[F]) WeightsDense() (*mat.Dense, error) {
	return toDense(l.weight.Value())
}

// BiasDense returns a float64 copy of the bias column.
func (l *Layer[F]) BiasDense() (*mat.Dense, error) {
	return toDense(l.bias.Value())
}

func toDense[F dual.Float](a *array.Array2[F]) (*mat.Dense, error) {
	vals, err := a.Slice()
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(vals))
	for i, v := range vals {
		data[i] = float64(v)
	}
	shape := a.Shape()
	return mat.NewDense(shape[0], shape[1], data), nil
}

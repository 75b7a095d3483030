package nn

import (
	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Parameter is a trainable matrix of a network, such as the weights or the
// biases of a layer.
//
// Every scalar in a network is tracked as its own dual variable. A
// Parameter owns a contiguous run of those variable indices: element k of
// the row-major value matrix is variable Slot()+k. The gradient of a loss
// with respect to the element is therefore loss.Partial(Slot()+k).
//
// Example:
//
//	for _, p := range net.Parameters() {
//	    p.Each(func(slot int, v *float64) {
//	        *v -= lr * loss.Partial(slot)
//	    })
//	}
type Parameter[F dual.Float] struct {
	name  string           // Parameter name (e.g., "0.weight")
	value *array.Array2[F] // Owned values
	slot  int              // Variable index of the first element
}

// NewParameter wraps an owning array as a parameter whose first element is
// variable slot.
//
// Parameters:
//   - name: Descriptive name for this parameter (e.g., "1.bias")
//   - value: The initialized parameter values
//   - slot: Variable index assigned to the first element
//
// Returns a new Parameter.
func NewParameter[F dual.Float](name string, value *array.Array2[F], slot int) *Parameter[F] {
	return &Parameter[F]{
		name:  name,
		value: value,
		slot:  slot,
	}
}

// Name returns the parameter name.
func (p *Parameter[F]) Name() string {
	return p.name
}

// Value returns the parameter values.
func (p *Parameter[F]) Value() *array.Array2[F] {
	return p.value
}

// Slot returns the variable index of the first element.
func (p *Parameter[F]) Slot() int {
	return p.slot
}

// Size returns the number of scalars in the parameter.
func (p *Parameter[F]) Size() int {
	return p.value.Size()
}

// Each calls fn with the variable index and a pointer to every element, in
// row-major order. fn may update the element in place.
func (p *Parameter[F]) Each(fn func(slot int, v *F)) error {
	cols := p.value.Shape()[1]
	return p.value.Iterate(func(ix array.Ix2, v *F) error {
		fn(p.slot+ix[0]*cols+ix[1], v)
		return nil
	})
}

// lift returns element (r, c) as a dual number. When width is positive the
// element becomes the variable for its slot, otherwise a constant.
func (p *Parameter[F]) lift(r, c, width int) dual.Dual[F] {
	v := *p.value.UncheckedAt(array.Ix2{r, c})
	if width == 0 {
		return dual.Constant(v, 0)
	}
	return dual.Variable(v, p.slot+r*p.value.Shape()[1]+c, width)
}

// setSlot moves the parameter to a new first variable index.
func (p *Parameter[F]) setSlot(slot int) {
	p.slot = slot
}

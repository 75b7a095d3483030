// Package array provides the rank-typed, strided n-dimensional array used by
// the rest of deepthought.
//
// An Array either owns its storage or borrows a rectangular window of
// another array's storage. Owning arrays and views share a reference-counted
// buffer, so storage is freed exactly once, when the last handle is
// released.
package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Cloner is implemented by element types that need more than a value copy
// when an array is cloned.
type Cloner[T any] interface {
	Clone() T
}

// Array is an n-dimensional array of T whose rank is fixed by the index type
// I. Strides are expressed in bytes.
type Array[T any, I Dim] struct {
	h        *handle[T]
	base     int // Byte offset of element (0, ..., 0) in the buffer
	shape    I
	stride   I
	layout   Layout
	slot     int // Bytes per element slot
	borrowed bool
}

// Allocate creates an owning array with the requested layout. The contents
// are unspecified until written (in practice the zero value of T).
func Allocate[T any, I Dim](shape I, layout Layout) (*Array[T, I], error) {
	if axis, ok := validShape(shape); !ok {
		return nil, errors.Errorf("invalid shape %v: axis %d has negative length", toSlice(shape), axis)
	}

	size, _ := elemSize[T]()
	slot := layout.slot(max(size, 1))

	n, ok := checkedElements(shape)
	if !ok {
		n = -1
	}
	buf, err := allocate[T](n, slot)
	if err != nil {
		return nil, err
	}

	return track(&Array[T, I]{
		h:      newHandle(buf),
		shape:  shape,
		stride: strideFor(shape, slot),
		layout: layout,
		slot:   slot,
	}), nil
}

// Uninitialized creates an owning packed array without writing its
// elements. Callers must write every element before reading it.
func Uninitialized[T any, I Dim](shape I) (*Array[T, I], error) {
	return Allocate[T](shape, Packed)
}

// Fill creates an owning packed array whose every element equals value.
// Elements implementing Cloner receive their own clone of value.
func Fill[T any, I Dim](value T, shape I) (*Array[T, I], error) {
	return FillWithLayout(value, shape, Packed)
}

// FillWithLayout is Fill with an explicit layout.
func FillWithLayout[T any, I Dim](value T, shape I, layout Layout) (*Array[T, I], error) {
	a, err := Allocate[T](shape, layout)
	if err != nil {
		return nil, err
	}
	data := a.h.buf.data
	for i := range data {
		data[i] = cloneElem(value)
	}
	return a, nil
}

// Zeros creates an owning packed array of zero values.
func Zeros[T any, I Dim](shape I) (*Array[T, I], error) {
	return Allocate[T](shape, Packed)
}

// FromSlice creates an owning packed array from row-major data. The slice is
// copied.
func FromSlice[T any, I Dim](data []T, shape I) (*Array[T, I], error) {
	if n := NumElements(shape); n != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", toSlice(shape), n, len(data))
	}
	a, err := Allocate[T](shape, Packed)
	if err != nil {
		return nil, err
	}
	copy(a.h.buf.data, data)
	return a, nil
}

func cloneElem[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Shape returns the axis lengths.
func (a *Array[T, I]) Shape() I {
	return a.shape
}

// Stride returns the byte distance between consecutive elements per axis.
func (a *Array[T, I]) Stride() I {
	return a.stride
}

// Layout returns the element layout chosen at construction.
func (a *Array[T, I]) Layout() Layout {
	return a.layout
}

// Size returns the number of elements.
func (a *Array[T, I]) Size() int {
	return NumElements(a.shape)
}

// ByteSize returns the number of bytes the elements span under the layout.
func (a *Array[T, I]) ByteSize() int {
	return a.Size() * a.slot
}

// IsView reports whether the array borrows another array's storage.
func (a *Array[T, I]) IsView() bool {
	return a.borrowed
}

// Released reports whether Release has been called on this handle.
func (a *Array[T, I]) Released() bool {
	return a.h.released.Load()
}

// Release drops this handle's reference to the storage. Storage is freed
// when the owning array and all of its views have been released. Calling
// Release more than once is harmless.
func (a *Array[T, I]) Release() {
	a.h.drop()
}

// String returns a short description such as "Array[float64][2 3]".
func (a *Array[T, I]) String() string {
	var zero T
	kind := "owned"
	if a.borrowed {
		kind = "view"
	}
	return fmt.Sprintf("Array[%T]%v (%s, %s)", zero, toSlice(a.shape), a.layout, kind)
}

// InternalIndex returns the byte offset of ix relative to the start of the
// array, Σ ix[k]*stride[k], or an IndexOutOfBoundsError.
func (a *Array[T, I]) InternalIndex(ix I) (int, error) {
	off := 0
	for k := 0; k < len(ix); k++ {
		if ix[k] < 0 || ix[k] >= a.shape[k] {
			return 0, &IndexOutOfBoundsError{Axis: k, Index: ix[k], Bound: a.shape[k]}
		}
		off += ix[k] * a.stride[k]
	}
	return off, nil
}

// Get returns the element at ix.
func (a *Array[T, I]) Get(ix I) (T, error) {
	p, err := a.GetMut(ix)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// GetMut returns a pointer to the element at ix. The pointer stays valid
// while the storage is alive.
func (a *Array[T, I]) GetMut(ix I) (*T, error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	off, err := a.InternalIndex(ix)
	if err != nil {
		return nil, err
	}
	return a.at(off), nil
}

// Set stores v at ix.
func (a *Array[T, I]) Set(ix I, v T) error {
	p, err := a.GetMut(ix)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// GetOffset returns the element at a row-major flattened offset.
func (a *Array[T, I]) GetOffset(off int) (T, error) {
	p, err := a.GetOffsetMut(off)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// GetOffsetMut returns a pointer to the element at a row-major flattened
// offset.
func (a *Array[T, I]) GetOffsetMut(off int) (*T, error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	if off < 0 || off >= a.Size() {
		return nil, &OffsetOutOfBoundsError{Offset: off, Bound: a.Size()}
	}
	return a.UncheckedOffset(off), nil
}

// UncheckedOffset returns a pointer to the element at a flattened offset
// without bounds or release checks. Only for loops that already validated
// the offset.
func (a *Array[T, I]) UncheckedOffset(off int) *T {
	if !a.borrowed {
		return &a.h.buf.data[a.base/a.slot+off]
	}
	return a.UncheckedAt(unravel(off, a.shape))
}

// UncheckedAt returns a pointer to the element at ix without bounds or
// release checks.
func (a *Array[T, I]) UncheckedAt(ix I) *T {
	off := 0
	for k := 0; k < len(ix); k++ {
		off += ix[k] * a.stride[k]
	}
	return a.at(off)
}

// at maps a byte offset relative to the array start to its storage slot.
func (a *Array[T, I]) at(off int) *T {
	return &a.h.buf.data[(a.base+off)/a.slot]
}

// Iterate calls fn for every element in row-major order. Iteration stops at
// the first error, which is returned.
func (a *Array[T, I]) Iterate(fn func(ix I, v *T) error) error {
	if a.h.released.Load() {
		return ErrReleased
	}
	if a.Size() == 0 {
		return nil
	}
	var ix I
	for {
		if err := fn(ix, a.UncheckedAt(ix)); err != nil {
			return err
		}
		if !next(&ix, a.shape) {
			return nil
		}
	}
}

// Slice returns a row-major copy of the elements.
func (a *Array[T, I]) Slice() ([]T, error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	out := make([]T, a.Size())
	for i := range out {
		out[i] = *a.UncheckedOffset(i)
	}
	return out, nil
}

// Clone returns an independently owned copy with the same shape. Owning
// arrays keep their stride; a cloned view is stored densely in its
// parent's layout.
func (a *Array[T, I]) Clone() (*Array[T, I], error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	c, err := Allocate[T](a.shape, a.layout)
	if err != nil {
		return nil, errors.Wrap(err, "clone")
	}
	dst := c.h.buf.data
	for i := range dst {
		dst[i] = cloneElem(*a.UncheckedOffset(i))
	}
	return c, nil
}

// Equal reports whether a and b have the same shape and equal elements in
// row-major order. Released arrays are never equal.
func Equal[T comparable, I Dim](a, b *Array[T, I]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any, I Dim](a, b *Array[T, I], eq func(x, y T) bool) bool {
	if a.h.released.Load() || b.h.released.Load() {
		return false
	}
	if a.shape != b.shape {
		return false
	}
	for off := 0; off < a.Size(); off++ {
		if !eq(*a.UncheckedOffset(off), *b.UncheckedOffset(off)) {
			return false
		}
	}
	return true
}

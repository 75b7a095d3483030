package array

import (
	"github.com/pkg/errors"
)

// Borrow returns a view of the rectangular region [i1, i2). The view shares
// storage and stride with a and has shape i2 - i1. Equal bounds on an axis
// give an empty view. Writes through the view are visible in a.
//
// The view holds its own reference to the storage, so it stays valid even
// if a is released first; it must be released separately.
func (a *Array[T, I]) Borrow(i1, i2 I) (*Array[T, I], error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}

	var shape I
	base := a.base
	for k := 0; k < len(i1); k++ {
		if i1[k] < 0 || i1[k] > a.shape[k] {
			return nil, errors.Wrap(&IndexOutOfBoundsError{Axis: k, Index: i1[k], Bound: a.shape[k]}, "borrow lower bound")
		}
		if i2[k] > a.shape[k] {
			return nil, errors.Wrap(&IndexOutOfBoundsError{Axis: k, Index: i2[k], Bound: a.shape[k]}, "borrow upper bound")
		}
		if i1[k] > i2[k] {
			return nil, errors.Wrapf(ErrInvertedBounds, "axis %d: %d > %d", k, i1[k], i2[k])
		}
		shape[k] = i2[k] - i1[k]
		base += i1[k] * a.stride[k]
	}

	return a.view(base, shape, a.stride), nil
}

// view builds a borrowed array over a's storage.
func (a *Array[T, I]) view(base int, shape, stride I) *Array[T, I] {
	a.h.buf.addRef()
	return track(&Array[T, I]{
		h:        newHandle(a.h.buf),
		base:     base,
		shape:    shape,
		stride:   stride,
		layout:   a.layout,
		slot:     a.slot,
		borrowed: true,
	})
}

// Transpose2 returns a view of a 2-D array with its axes swapped. No data is
// copied.
func Transpose2[T any](a *Array2[T]) (*Array2[T], error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	return a.view(a.base, Ix2{a.shape[1], a.shape[0]}, Ix2{a.stride[1], a.stride[0]}), nil
}

// Row returns a 1-D view of row r of a 2-D array.
func Row[T any](a *Array2[T], r int) (*Array1[T], error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	if r < 0 || r >= a.shape[0] {
		return nil, &IndexOutOfBoundsError{Axis: 0, Index: r, Bound: a.shape[0]}
	}
	a.h.buf.addRef()
	return track(&Array1[T]{
		h:        newHandle(a.h.buf),
		base:     a.base + r*a.stride[0],
		shape:    Ix1{a.shape[1]},
		stride:   Ix1{a.stride[1]},
		layout:   a.layout,
		slot:     a.slot,
		borrowed: true,
	}), nil
}

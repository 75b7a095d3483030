// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"log/slog"

	"github.com/deepthought-ml/deepthought/internal/array"
)

// Dim is the constraint for multi-indices, shapes and strides.
type Dim = array.Dim

// Index types for ranks 1 to 6.
type (
	Ix1 = array.Ix1
	Ix2 = array.Ix2
	Ix3 = array.Ix3
	Ix4 = array.Ix4
	Ix5 = array.Ix5
	Ix6 = array.Ix6
)

// Array is an n-dimensional array of T whose rank is fixed by I.
type Array[T any, I Dim] = array.Array[T, I]

// Array1 is a rank 1 array.
type Array1[T any] = array.Array1[T]

// Array2 is a rank 2 array.
type Array2[T any] = array.Array2[T]

// Array3 is a rank 3 array.
type Array3[T any] = array.Array3[T]

// Cloner is implemented by element types that need more than a value copy
// when an array is cloned.
type Cloner[T any] = array.Cloner[T]

// Number is the constraint for element-wise arithmetic helpers.
type Number = array.Number

// Layout selects how element slots are spaced in memory.
type Layout = array.Layout

// Layouts.
const (
	Packed      = array.Packed
	WordAligned = array.WordAligned
)

// WordSize is the machine word size in bytes.
const WordSize = array.WordSize

// Errors

// IndexOutOfBoundsError reports a multi-index outside the shape.
type IndexOutOfBoundsError = array.IndexOutOfBoundsError

// OffsetOutOfBoundsError reports a flattened offset outside the array.
type OffsetOutOfBoundsError = array.OffsetOutOfBoundsError

// ReshapeIncompatibleShapeError reports a reshape that changes the element
// count.
type ReshapeIncompatibleShapeError = array.ReshapeIncompatibleShapeError

// AllocationFailedError reports storage that could not be obtained.
type AllocationFailedError = array.AllocationFailedError

// ShapeMismatchError reports operands whose shapes differ.
type ShapeMismatchError = array.ShapeMismatchError

// Sentinel errors.
var (
	ErrReleased       = array.ErrReleased
	ErrNotContiguous  = array.ErrNotContiguous
	ErrNotPacked      = array.ErrNotPacked
	ErrInvertedBounds = array.ErrInvertedBounds
)

// Construction

// Allocate creates an owning array with the requested layout.
func Allocate[T any, I Dim](shape I, layout Layout) (*Array[T, I], error) {
	return array.Allocate[T](shape, layout)
}

// Uninitialized creates an owning packed array without writing its elements.
func Uninitialized[T any, I Dim](shape I) (*Array[T, I], error) {
	return array.Uninitialized[T](shape)
}

// Fill creates an owning packed array whose every element equals value.
//
// Example:
//
//	a, err := array.Fill(1.0, array.Ix2{2, 3})
func Fill[T any, I Dim](value T, shape I) (*Array[T, I], error) {
	return array.Fill(value, shape)
}

// FillWithLayout is Fill with an explicit layout.
func FillWithLayout[T any, I Dim](value T, shape I, layout Layout) (*Array[T, I], error) {
	return array.FillWithLayout(value, shape, layout)
}

// Zeros creates an owning packed array of zero values.
func Zeros[T any, I Dim](shape I) (*Array[T, I], error) {
	return array.Zeros[T](shape)
}

// FromSlice creates an owning packed array from row-major data.
func FromSlice[T any, I Dim](data []T, shape I) (*Array[T, I], error) {
	return array.FromSlice(data, shape)
}

// Reshape moves the storage of a into an array of a new shape, possibly of
// another rank. a is released on success.
func Reshape[T any, I, J Dim](a *Array[T, I], shape J) (*Array[T, J], error) {
	return array.Reshape(a, shape)
}

// Transpose2 returns a view of a 2-D array with its axes swapped.
func Transpose2[T any](a *Array2[T]) (*Array2[T], error) {
	return array.Transpose2(a)
}

// Row returns a view of row r of a 2-D array.
func Row[T any](a *Array2[T], r int) (*Array1[T], error) {
	return array.Row(a, r)
}

// Comparison

// Equal reports whether a and b have the same shape and equal elements.
func Equal[T comparable, I Dim](a, b *Array[T, I]) bool {
	return array.Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any, I Dim](a, b *Array[T, I], eq func(x, y T) bool) bool {
	return array.EqualFunc(a, b, eq)
}

// Element-wise operations

// Map returns a new array holding fn applied to every element.
func Map[T, U any, I Dim](a *Array[T, I], fn func(T) U) (*Array[U, I], error) {
	return array.Map(a, fn)
}

// Apply replaces every element with fn of itself.
func Apply[T any, I Dim](a *Array[T, I], fn func(T) T) error {
	return array.Apply(a, fn)
}

// ZipWith combines two arrays of identical shape element by element.
func ZipWith[T, U, V any, I Dim](a *Array[T, I], b *Array[U, I], fn func(T, U) V) (*Array[V, I], error) {
	return array.ZipWith(a, b, fn)
}

// Fold reduces the elements of a in row-major order.
func Fold[T, A any, I Dim](a *Array[T, I], init A, fn func(acc A, v T) A) (A, error) {
	return array.Fold(a, init, fn)
}

// Add returns the element-wise sum of a and b.
func Add[T Number, I Dim](a, b *Array[T, I]) (*Array[T, I], error) {
	return array.Add(a, b)
}

// Sub returns the element-wise difference of a and b.
func Sub[T Number, I Dim](a, b *Array[T, I]) (*Array[T, I], error) {
	return array.Sub(a, b)
}

// Mul returns the element-wise product of a and b.
func Mul[T Number, I Dim](a, b *Array[T, I]) (*Array[T, I], error) {
	return array.Mul(a, b)
}

// Sum returns the sum of all elements.
func Sum[T Number, I Dim](a *Array[T, I]) (T, error) {
	return array.Sum(a)
}

// Strides

// StridePacked computes byte strides for elements stored back to back.
func StridePacked[I Dim](shape I, elemSize int) I {
	return array.StridePacked(shape, elemSize)
}

// StrideAligned computes byte strides for word-aligned element slots.
func StrideAligned[I Dim](shape I, elemSize int) I {
	return array.StrideAligned(shape, elemSize)
}

// NumElements returns the product of all axis lengths.
func NumElements[I Dim](shape I) int {
	return array.NumElements(shape)
}

// Allocation tracking

// Op identifies an allocation event.
type Op = array.Op

// Allocation events.
const (
	OpAlloc  = array.OpAlloc
	OpFree   = array.OpFree
	OpFailed = array.OpFailed
)

// AllocationEvent describes one storage allocation or release.
type AllocationEvent = array.AllocationEvent

// AllocationHook observes every storage allocation and release.
type AllocationHook = array.AllocationHook

// DebugAllocator is an AllocationHook that logs through slog.
type DebugAllocator = array.DebugAllocator

// NewDebugAllocator creates a DebugAllocator that writes to logger.
//
// Example:
//
//	prev := array.SetAllocationHook(array.NewDebugAllocator(slog.Default()))
//	defer array.SetAllocationHook(prev)
func NewDebugAllocator(logger *slog.Logger) *DebugAllocator {
	return array.NewDebugAllocator(logger)
}

// SetAllocationHook installs h as the process-wide allocation observer and
// returns the previous one.
func SetAllocationHook(h AllocationHook) AllocationHook {
	return array.SetAllocationHook(h)
}

// SetAllocationLimit caps the size of a single allocation in bytes and
// returns the previous cap.
func SetAllocationLimit(bytes int64) int64 {
	return array.SetAllocationLimit(bytes)
}

package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned by array operations.
var (
	// ErrReleased is returned when an array handle is used after Release
	// (or after its storage was moved out by Reshape).
	ErrReleased = errors.New("array handle has been released")

	// ErrNotContiguous is returned by operations that need an owning,
	// densely stored array but were given a view.
	ErrNotContiguous = errors.New("array is a view and does not own contiguous storage")

	// ErrNotPacked is returned by Reshape when element slots carry padding.
	ErrNotPacked = errors.New("array is not densely packed")

	// ErrInvertedBounds is returned by Borrow when a lower bound exceeds
	// the matching upper bound.
	ErrInvertedBounds = errors.New("view lower bound exceeds upper bound")
)

// IndexOutOfBoundsError reports a multi-index component that is not
// smaller than the length of its axis.
type IndexOutOfBoundsError struct {
	Axis  int // Axis that failed the check
	Index int // Requested index along Axis
	Bound int // Length of Axis
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d is out of bounds for axis %d with size %d", e.Index, e.Axis, e.Bound)
}

// OffsetOutOfBoundsError reports a flattened offset outside [0, size).
type OffsetOutOfBoundsError struct {
	Offset int
	Bound  int // Number of elements in the array
}

func (e *OffsetOutOfBoundsError) Error() string {
	return fmt.Sprintf("element offset %d exceeds number of elements in the array (%d)", e.Offset, e.Bound)
}

// ReshapeIncompatibleShapeError reports a reshape whose target shape holds
// a different number of elements than the source.
type ReshapeIncompatibleShapeError struct {
	Size     int
	NewShape []int
}

func (e *ReshapeIncompatibleShapeError) Error() string {
	return fmt.Sprintf("cannot reshape array of size %d into shape %v", e.Size, e.NewShape)
}

// AllocationFailedError reports that storage for an array could not be
// obtained.
type AllocationFailedError struct {
	Bytes  int    // Requested size in bytes (-1 when the size overflowed)
	Reason string // Why the allocation was refused
}

func (e *AllocationFailedError) Error() string {
	if e.Bytes < 0 {
		return fmt.Sprintf("allocation failed: %s", e.Reason)
	}
	return fmt.Sprintf("allocation of %d bytes failed: %s", e.Bytes, e.Reason)
}

// ShapeMismatchError reports two participating arrays whose shapes differ.
type ShapeMismatchError struct {
	Expected []int
	Found    []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("mismatched shapes: expected %v, found %v", e.Expected, e.Found)
}

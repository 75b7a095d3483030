package array

// Reshape moves the storage of a into a new array of shape, which may have a
// different rank. The element count must not change. Only owning arrays can
// be reshaped; afterwards a is released and the returned array is the sole
// owner, so the storage is still freed exactly once.
//
// The source must be densely packed: a WordAligned array whose element size
// is not a whole number of words fails with ErrNotPacked and stays usable.
func Reshape[T any, I, J Dim](a *Array[T, I], shape J) (*Array[T, J], error) {
	if a.h.released.Load() {
		return nil, ErrReleased
	}
	if a.borrowed {
		return nil, ErrNotContiguous
	}
	if size, _ := elemSize[T](); a.slot != max(size, 1) {
		return nil, ErrNotPacked
	}
	if _, ok := validShape(shape); !ok || NumElements(shape) != a.Size() {
		return nil, &ReshapeIncompatibleShapeError{Size: a.Size(), NewShape: toSlice(shape)}
	}
	if !a.h.detach() {
		return nil, ErrReleased
	}

	return track(&Array[T, J]{
		h:      newHandle(a.h.buf),
		base:   a.base,
		shape:  shape,
		stride: strideFor(shape, a.slot),
		layout: a.layout,
		slot:   a.slot,
	}), nil
}

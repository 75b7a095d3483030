package array

// Dim is the constraint for multi-indices, shapes and strides. The length of
// the index array is the rank of the Array, so rank is part of the static
// type: an Array[T, Ix2] cannot be passed where an Array[T, Ix3] is expected.
type Dim interface {
	[1]int | [2]int | [3]int | [4]int | [5]int | [6]int
}

// Named index types for the supported ranks.
type (
	Ix1 = [1]int
	Ix2 = [2]int
	Ix3 = [3]int
	Ix4 = [4]int
	Ix5 = [5]int
	Ix6 = [6]int
)

// Array1, Array2 and Array3 are the ranks used by the composition layer.
type (
	Array1[T any] = Array[T, Ix1]
	Array2[T any] = Array[T, Ix2]
	Array3[T any] = Array[T, Ix3]
)

// Rank returns the number of axes of an index type.
func Rank[I Dim]() int {
	var ix I
	return len(ix)
}

// NumElements returns the product of all axis lengths. A shape with a zero
// length axis holds no elements.
func NumElements[I Dim](shape I) int {
	n := 1
	for k := 0; k < len(shape); k++ {
		n *= shape[k]
	}
	return n
}

// toSlice copies an index array into a slice, for error reporting.
func toSlice[I Dim](ix I) []int {
	s := make([]int, len(ix))
	for k := 0; k < len(ix); k++ {
		s[k] = ix[k]
	}
	return s
}

// validShape reports the first negative axis length, if any.
func validShape[I Dim](shape I) (axis int, ok bool) {
	for k := 0; k < len(shape); k++ {
		if shape[k] < 0 {
			return k, false
		}
	}
	return 0, true
}

// unravel converts a flattened row-major offset into a multi-index.
// The caller guarantees 0 <= off < NumElements(shape).
func unravel[I Dim](off int, shape I) I {
	var ix I
	for k := len(shape) - 1; k >= 0; k-- {
		ix[k] = off % shape[k]
		off /= shape[k]
	}
	return ix
}

// next advances ix to the following multi-index in row-major order and
// reports false once every index has been visited.
func next[I Dim](ix *I, shape I) bool {
	for k := len(shape) - 1; k >= 0; k-- {
		(*ix)[k]++
		if (*ix)[k] < shape[k] {
			return true
		}
		(*ix)[k] = 0
	}
	return false
}

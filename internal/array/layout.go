package array

import (
	"strconv"
)

// WordSize is the host machine word in bytes (8 on 64-bit, 4 on 32-bit).
const WordSize = strconv.IntSize / 8

// Layout selects how elements are spaced in memory.
type Layout int

// Supported layouts.
const (
	// Packed places elements back to back: the last axis stride equals the
	// element size.
	Packed Layout = iota

	// WordAligned rounds the element slot up to a whole number of machine
	// words so every element starts on a word boundary.
	WordAligned
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case Packed:
		return "packed"
	case WordAligned:
		return "word-aligned"
	default:
		return "unknown"
	}
}

// slot returns the number of bytes one element occupies under the layout.
func (l Layout) slot(elemSize int) int {
	if l == WordAligned {
		return alignUp(elemSize, WordSize)
	}
	return elemSize
}

// StridePacked computes byte strides for elements stored back to back.
//
//	stride[N-1] = elemSize
//	stride[i]   = shape[i+1] * stride[i+1]
//
// For shape (2, 3, 4) and a 2 byte element the result is (24, 8, 2).
func StridePacked[I Dim](shape I, elemSize int) I {
	return strideFor(shape, elemSize)
}

// StrideAligned computes byte strides with every element slot rounded up to
// the next multiple of WordSize. For shape (2, 3, 4), a 2 byte element and an
// 8 byte word the result is (96, 32, 8).
func StrideAligned[I Dim](shape I, elemSize int) I {
	return strideFor(shape, alignUp(elemSize, WordSize))
}

func strideFor[I Dim](shape I, slot int) I {
	var stride I
	n := len(shape)
	stride[n-1] = slot
	for k := n - 2; k >= 0; k-- {
		stride[k] = shape[k+1] * stride[k+1]
	}
	return stride
}

// alignUp rounds size up to the next multiple of align.
func alignUp(size, align int) int {
	return (size + align - 1) / align * align
}

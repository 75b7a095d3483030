// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the rank-typed, strided n-dimensional array that
// deepthought is built on.
//
// # Overview
//
// An Array[T, I] holds elements of type T; its index type I (Ix1 to Ix6)
// fixes the rank in the static type. Strides are measured in bytes, so the
// same API covers densely packed arrays and word-aligned ones:
//
//	a, _ := array.Fill(uint16(0), array.Ix3{2, 3, 4})
//	a.Stride() // [24 8 2]
//
//	b, _ := array.FillWithLayout(uint16(0), array.Ix3{2, 3, 4}, array.WordAligned)
//	b.Stride() // [96 32 8] on a 64-bit host
//
// # Views
//
// Borrow returns a view of a rectangular window that shares storage with
// its parent. Writes through the view are visible in the parent:
//
//	v, _ := a.Borrow(array.Ix3{0, 1, 1}, array.Ix3{2, 3, 3})
//	v.Set(array.Ix3{0, 0, 0}, 7) // a[0, 1, 1] is now 7
//
// # Ownership
//
// Storage is reference counted across an owning array and its views and is
// freed exactly once, when the last handle is released. Reshape moves the
// storage into a new array of another rank; the source handle becomes
// released. An AllocationHook, such as DebugAllocator, observes every
// allocation and release.
package array

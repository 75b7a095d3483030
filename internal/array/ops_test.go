package array

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAndApply(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, Ix2{2, 2})
	require.NoError(t, err)

	b, err := Map(a, func(v int) float64 { return float64(v) / 2 })
	require.NoError(t, err)
	s, _ := b.Slice()
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, s)

	require.NoError(t, Apply(a, func(v int) int { return v * v }))
	s2, _ := a.Slice()
	assert.Equal(t, []int{1, 4, 9, 16}, s2)
}

func TestZipWith(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3}, Ix1{3})
	b, _ := FromSlice([]int{10, 20, 30}, Ix1{3})

	sum, err := Add(a, b)
	require.NoError(t, err)
	s, _ := sum.Slice()
	assert.Equal(t, []int{11, 22, 33}, s)

	diff, err := Sub(b, a)
	require.NoError(t, err)
	s, _ = diff.Slice()
	assert.Equal(t, []int{9, 18, 27}, s)

	prod, err := Mul(a, b)
	require.NoError(t, err)
	total, err := Sum(prod)
	require.NoError(t, err)
	assert.Equal(t, 140, total)
}

func TestZipWithShapeMismatch(t *testing.T) {
	a, _ := Fill(0, Ix2{2, 3})
	b, _ := Fill(0, Ix2{3, 2})

	_, err := Add(a, b)
	var sm *ShapeMismatchError
	require.True(t, errors.As(err, &sm))
	assert.Equal(t, []int{2, 3}, sm.Expected)
	assert.Equal(t, []int{3, 2}, sm.Found)
}

func TestOpsOnView(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Ix2{3, 3})
	v, err := a.Borrow(Ix2{1, 1}, Ix2{3, 3})
	require.NoError(t, err)

	total, err := Sum(v)
	require.NoError(t, err)
	assert.Equal(t, 5+6+8+9, total)

	require.NoError(t, Apply(v, func(x int) int { return 0 }))
	total, _ = Sum(a)
	assert.Equal(t, 1+2+3+4+7, total)
}

func TestOpsReleased(t *testing.T) {
	a, _ := Fill(1, Ix1{2})
	a.Release()
	_, err := Sum(a)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = Map(a, func(v int) int { return v })
	assert.ErrorIs(t, err, ErrReleased)
}

package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroOne(t *testing.T) {
	assert.True(t, Zero[float64](3).IsZero())
	assert.True(t, One[float32](2).IsOne())
	assert.False(t, Variable(0.0, 0, 1).IsZero())
	assert.False(t, Variable(1.0, 0, 1).IsOne())
	assert.False(t, Constant(2.0, 1).IsOne())
}

func TestParse(t *testing.T) {
	d, err := Parse[float64]("-3.25e2", 2)
	require.NoError(t, err)
	assert.Equal(t, -325.0, d.Val())
	assert.Equal(t, []float64{0, 0}, d.E())

	f, err := Parse[float32]("0.1", 0)
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), f.Val())

	_, err = Parse[float64]("abc", 1)
	assert.Error(t, err)
}

func TestNumberConversion(t *testing.T) {
	d := FromNumber[float64](int8(-7), 2)
	assert.Equal(t, -7.0, d.Val())
	assert.Equal(t, 2, d.Width())

	v := Variable(3.9, 0, 1)
	assert.Equal(t, 3, ToNumber[int](v))
	assert.Equal(t, float32(3.9), ToNumber[float32](v))
	assert.Equal(t, uint8(200), ToNumber[uint8](FromNumber[float32](uint16(200), 0)))
}

// TestPredicates checks that the float predicates combine the real part
// and every partial.
func TestPredicates(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name                      string
		d                         Dual[float64]
		isNaN, isInf, isFin, norm bool
	}{
		{"plain", New(1.5, []float64{2, -3}), false, false, true, true},
		{"zero partial", New(1.5, []float64{0, 1}), false, false, true, false},
		{"nan value", New(nan, []float64{1}), true, false, false, false},
		{"nan partial", New(1.0, []float64{nan}), true, false, false, false},
		{"inf value", New(inf, []float64{1}), false, true, false, false},
		{"inf partial", New(1.0, []float64{-inf}), false, true, false, false},
		{"nan beats inf", New(inf, []float64{nan}), true, false, false, false},
		{"subnormal", New(1e-310, nil), false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isNaN, tt.d.IsNaN())
			assert.Equal(t, tt.isInf, tt.d.IsInf())
			assert.Equal(t, tt.isFin, tt.d.IsFinite())
			assert.Equal(t, tt.norm, tt.d.IsNormal())
		})
	}
}

func TestSign(t *testing.T) {
	assert.True(t, Constant(0.0, 0).IsSignPositive())
	assert.True(t, Constant(math.Copysign(0, -1), 0).IsSignNegative())
	assert.True(t, Constant(-2.0, 0).IsSignNegative())
	assert.False(t, Constant(-2.0, 0).IsSignPositive())
}

func TestConstants(t *testing.T) {
	assert.True(t, math.IsInf(Inf[float64](1, 0).Val(), 1))
	assert.True(t, math.IsInf(float64(Inf[float32](-1, 0).Val()), -1))
	assert.True(t, NaN[float64](2).IsNaN())
	assert.Equal(t, math.MaxFloat64, MaxValue[float64](0).Val())
	assert.Equal(t, float32(math.MaxFloat32), MaxValue[float32](0).Val())
	assert.Equal(t, 0x1p-1022, MinPositive[float64](0).Val())
	assert.Equal(t, float32(0x1p-126), MinPositive[float32](0).Val())
	assert.Equal(t, 0x1p-52, Epsilon[float64](1).Val())
	assert.Equal(t, float32(0x1p-23), Epsilon[float32](1).Val())
	assert.Equal(t, 3, Epsilon[float64](3).Width())
}

// TestComparison checks that ordering ignores the partials.
func TestComparison(t *testing.T) {
	a := New(1.0, []float64{100})
	b := New(1.0, []float64{-5})
	c := Constant(2.0, 1)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Less(c))
	assert.True(t, a.LessEq(b))
	assert.True(t, c.Greater(a))
	assert.True(t, c.GreaterEq(c))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, 1, c.Cmp(a))

	assert.True(t, a.EqualReal(1))
	assert.True(t, a.LessReal(1.5))
	assert.True(t, c.GreaterReal(1.5))
	assert.Equal(t, -1, a.CmpReal(3))

	nan := NaN[float64](1)
	assert.False(t, nan.Equal(nan))
	assert.False(t, nan.Less(a))
	assert.Equal(t, 0, nan.Cmp(a))
}

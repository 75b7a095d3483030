package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestConstruction tests constants, variables and explicit partials.
func TestConstruction(t *testing.T) {
	c := Constant(2.5, 3)
	assert.Equal(t, 2.5, c.Val())
	assert.Equal(t, []float64{0, 0, 0}, c.E())

	v := Variable(1.5, 1, 3)
	assert.Equal(t, []float64{0, 1, 0}, v.E())
	assert.Equal(t, 3, v.Width())
	assert.Equal(t, 1.0, v.Partial(1))
	assert.Equal(t, 0.0, v.Partial(7))

	e := []float64{4, 5}
	n := New(1.0, e)
	e[0] = 99
	assert.Equal(t, []float64{4, 5}, n.E(), "New must copy its partials")

	assert.Panics(t, func() { Variable(0.0, 3, 3) })
	assert.Panics(t, func() { Constant(0.0, -1) })
}

func TestConjAndString(t *testing.T) {
	a := New(2.0, []float64{1, -3})
	assert.Equal(t, []float64{-1, 3}, a.Conj().E())
	assert.Equal(t, 2.0, a.Conj().Val())
	assert.Equal(t, "Dual(2, 1, -3)", a.String())
	assert.Equal(t, "Dual(0.5)", Constant(0.5, 0).String())
}

// TestArithmeticRules checks each binary operation against its forward-mode
// rule.
func TestArithmeticRules(t *testing.T) {
	a := New(3.0, []float64{1, 2})
	b := New(-2.0, []float64{0.5, 4})

	tests := []struct {
		name    string
		got     Dual[float64]
		wantVal float64
		wantE   []float64
	}{
		{"add", a.Add(b), 1, []float64{1.5, 6}},
		{"sub", a.Sub(b), 5, []float64{0.5, -2}},
		{"mul", a.Mul(b), -6, []float64{-2*1 + 3*0.5, -2*2 + 3*4}},
		{"div", a.Div(b), -1.5, []float64{(-2*1 - 3*0.5) / 4, (-2*2 - 3*4) / 4}},
		{"neg", a.Neg(), -3, []float64{-1, -2}},
		{"rem", a.Rem(b), 1, []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantVal, tt.got.Val(), tol)
			assert.InDeltaSlice(t, tt.wantE, tt.got.E(), tol)
		})
	}
}

func TestRealOperands(t *testing.T) {
	a := New(4.0, []float64{1, -2})

	tests := []struct {
		name    string
		got     Dual[float64]
		wantVal float64
		wantE   []float64
	}{
		{"a+r", a.AddReal(1), 5, []float64{1, -2}},
		{"a-r", a.SubReal(1), 3, []float64{1, -2}},
		{"a*r", a.MulReal(3), 12, []float64{3, -6}},
		{"a/r", a.DivReal(2), 2, []float64{0.5, -1}},
		{"a%r", a.RemReal(3), 1, []float64{1, -2}},
		{"r-a", RealSub(10.0, a), 6, []float64{-1, 2}},
		{"r/a", RealDiv(8.0, a), 2, []float64{-8.0 / 16, 16.0 / 16}},
		{"r%a", RealRem(9.0, a), 1, []float64{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantVal, tt.got.Val(), tol)
			assert.InDeltaSlice(t, tt.wantE, tt.got.E(), tol)
		})
	}
}

// TestRealMatchesConstant checks that every real operand behaves like a
// constant Dual.
func TestRealMatchesConstant(t *testing.T) {
	a := New(1.75, []float64{0.5, -1.5, 2})
	r := 0.6
	c := Constant(r, 3)

	pairs := [][2]Dual[float64]{
		{a.AddReal(r), a.Add(c)},
		{a.SubReal(r), a.Sub(c)},
		{a.MulReal(r), a.Mul(c)},
		{a.DivReal(r), a.Div(c)},
		{a.RemReal(r), a.Rem(c)},
		{RealSub(r, a), c.Sub(a)},
		{RealDiv(r, a), c.Div(a)},
		{RealRem(r, a), c.Rem(a)},
	}
	for i, p := range pairs {
		assert.InDelta(t, p[1].Val(), p[0].Val(), tol, "pair %d", i)
		assert.InDeltaSlice(t, p[1].E(), p[0].E(), tol, "pair %d", i)
	}
}

func TestCompoundAssign(t *testing.T) {
	a := Variable(2.0, 0, 2)
	b := Variable(5.0, 1, 2)

	x := a
	x.AddAssign(b)
	assert.Equal(t, a.Add(b), x)
	x.MulAssign(b)
	assert.Equal(t, a.Add(b).Mul(b), x)
	x.SubAssign(a)
	x.DivAssign(b)
	x.RemAssign(b)
	assert.Equal(t, a.Add(b).Mul(b).Sub(a).Div(b).Rem(b), x)

	y := a
	y.AddRealAssign(1)
	y.SubRealAssign(0.5)
	y.MulRealAssign(4)
	y.DivRealAssign(2)
	y.RemRealAssign(4)
	assert.Equal(t, a.AddReal(1).SubReal(0.5).MulReal(4).DivReal(2).RemReal(4), y)

	// The original value is untouched.
	assert.Equal(t, 2.0, a.Val())
	assert.Equal(t, []float64{1, 0}, a.E())
}

// TestMixedWidths checks that a zero-width constant interoperates with any
// width.
func TestMixedWidths(t *testing.T) {
	x := Variable(3.0, 2, 3)
	two := Constant(2.0, 0)

	p := two.Mul(x)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, []float64{0, 0, 2}, p.E())

	s := x.Add(two)
	assert.Equal(t, []float64{0, 0, 1}, s.E())

	assert.Equal(t, 0, two.Add(two).Width())
}

func TestSum(t *testing.T) {
	s := Sum(Variable(1.0, 0, 2), Variable(2.0, 1, 2), Constant(3.0, 0))
	assert.Equal(t, 6.0, s.Val())
	assert.Equal(t, []float64{1, 1}, s.E())
	assert.True(t, Sum[float64]().IsZero())
}

// TestAlgebraicLaws checks the field laws on the real part and the
// partials.
func TestAlgebraicLaws(t *testing.T) {
	a := New(1.25, []float64{1, 0.5, -2})
	b := New(-0.75, []float64{0, 3, 1})
	c := New(2.5, []float64{-1, 1, 0.25})
	zero := Zero[float64](3)
	one := One[float64](3)

	same := func(t *testing.T, want, got Dual[float64]) {
		t.Helper()
		assert.InDelta(t, want.Val(), got.Val(), tol)
		assert.InDeltaSlice(t, want.E(), got.E(), tol)
	}

	t.Run("additive identity", func(t *testing.T) { same(t, a, a.Add(zero)) })
	t.Run("multiplicative identity", func(t *testing.T) { same(t, a, a.Mul(one)) })
	t.Run("add commutes", func(t *testing.T) { same(t, a.Add(b), b.Add(a)) })
	t.Run("mul commutes", func(t *testing.T) { same(t, a.Mul(b), b.Mul(a)) })
	t.Run("add associates", func(t *testing.T) { same(t, a.Add(b).Add(c), a.Add(b.Add(c))) })
	t.Run("mul associates", func(t *testing.T) { same(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c))) })
	t.Run("distributes", func(t *testing.T) { same(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c))) })
	t.Run("additive inverse", func(t *testing.T) { same(t, zero, a.Add(a.Neg())) })
	t.Run("multiplicative inverse", func(t *testing.T) { same(t, one, a.Mul(one.Div(a))) })
	t.Run("sub is add neg", func(t *testing.T) { same(t, a.Sub(b), a.Add(b.Neg())) })
}

// TestSigmoidDerivative evaluates 1 / (1 + e^-x) at a variable x = 0.
func TestSigmoidDerivative(t *testing.T) {
	x := Variable(0.0, 0, 1)
	s := RealDiv(1.0, x.Neg().Exp().AddReal(1))

	assert.InDelta(t, 0.5, s.Val(), tol)
	assert.InDelta(t, 0.25, s.Partial(0), tol)
}

// TestProductAndQuotientRules checks d(x·y) and d(x/y) at a point.
func TestProductAndQuotientRules(t *testing.T) {
	x := Variable(3.0, 0, 2)
	y := Variable(4.0, 1, 2)

	p := x.Mul(y)
	assert.Equal(t, []float64{4, 3}, p.E())

	q := x.Div(y)
	require.Equal(t, 2, q.Width())
	assert.InDelta(t, 1.0/4, q.Partial(0), tol)
	assert.InDelta(t, -3.0/16, q.Partial(1), tol)
}

// TestChainThroughComposition differentiates sin(x²)·e^y.
func TestChainThroughComposition(t *testing.T) {
	x := Variable(0.7, 0, 2)
	y := Variable(-0.3, 1, 2)
	f := x.Powi(2).Sin().Mul(y.Exp())

	wantDx := math.Cos(0.49) * 2 * 0.7 * math.Exp(-0.3)
	wantDy := math.Sin(0.49) * math.Exp(-0.3)
	assert.InDelta(t, math.Sin(0.49)*math.Exp(-0.3), f.Val(), tol)
	assert.InDelta(t, wantDx, f.Partial(0), tol)
	assert.InDelta(t, wantDy, f.Partial(1), tol)
}

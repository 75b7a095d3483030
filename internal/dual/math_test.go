package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

var central = &fd.Settings{Formula: fd.Central}

// TestUnaryDerivatives cross-checks every unary chain rule against a
// central finite difference of the matching real function.
func TestUnaryDerivatives(t *testing.T) {
	tests := []struct {
		name   string
		dual   func(Dual[float64]) Dual[float64]
		real   func(float64) float64
		points []float64
	}{
		{"exp", Dual[float64].Exp, math.Exp, []float64{-1, 0, 0.5, 2}},
		{"exp2", Dual[float64].Exp2, math.Exp2, []float64{-1, 0, 1.5}},
		{"expm1", Dual[float64].ExpM1, math.Expm1, []float64{-0.5, 1e-3, 2}},
		{"ln", Dual[float64].Ln, math.Log, []float64{0.25, 1, 7}},
		{"log2", Dual[float64].Log2, math.Log2, []float64{0.25, 1, 7}},
		{"log10", Dual[float64].Log10, math.Log10, []float64{0.25, 1, 7}},
		{"ln1p", Dual[float64].Ln1p, math.Log1p, []float64{-0.5, 0, 3}},
		{"sqrt", Dual[float64].Sqrt, math.Sqrt, []float64{0.3, 1, 9}},
		{"cbrt", Dual[float64].Cbrt, math.Cbrt, []float64{-8, 0.3, 27}},
		{"recip", Dual[float64].Recip, func(x float64) float64 { return 1 / x }, []float64{-2, 0.5, 3}},
		{"sin", Dual[float64].Sin, math.Sin, []float64{-1, 0, 2}},
		{"cos", Dual[float64].Cos, math.Cos, []float64{-1, 0, 2}},
		{"tan", Dual[float64].Tan, math.Tan, []float64{-1, 0, 1.2}},
		{"asin", Dual[float64].Asin, math.Asin, []float64{-0.5, 0, 0.9}},
		{"acos", Dual[float64].Acos, math.Acos, []float64{-0.5, 0, 0.9}},
		{"atan", Dual[float64].Atan, math.Atan, []float64{-3, 0, 3}},
		{"sinh", Dual[float64].Sinh, math.Sinh, []float64{-1, 0, 2}},
		{"cosh", Dual[float64].Cosh, math.Cosh, []float64{-1, 0, 2}},
		{"tanh", Dual[float64].Tanh, math.Tanh, []float64{-1, 0, 2}},
		{"asinh", Dual[float64].Asinh, math.Asinh, []float64{-1, 0, 2}},
		{"acosh", Dual[float64].Acosh, math.Acosh, []float64{1.5, 3}},
		{"atanh", Dual[float64].Atanh, math.Atanh, []float64{-0.5, 0, 0.5}},
		{"abs", Dual[float64].Abs, math.Abs, []float64{-2, 3}},
		{"fract", Dual[float64].Fract, func(x float64) float64 { return x - math.Trunc(x) }, []float64{-1.25, 0.4, 2.6}},
		{"powi3", func(a Dual[float64]) Dual[float64] { return a.Powi(3) },
			func(x float64) float64 { return x * x * x }, []float64{-2, 0.5, 1.5}},
		{"powi-2", func(a Dual[float64]) Dual[float64] { return a.Powi(-2) },
			func(x float64) float64 { return 1 / (x * x) }, []float64{-2, 0.5, 1.5}},
		{"powreal", func(a Dual[float64]) Dual[float64] { return a.PowReal(2.5) },
			func(x float64) float64 { return math.Pow(x, 2.5) }, []float64{0.5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				got := tt.dual(Variable(x, 0, 1))
				want := fd.Derivative(tt.real, x, central)
				assert.InDelta(t, tt.real(x), got.Val(), 1e-12, "value at %v", x)
				assert.InDelta(t, want, got.Partial(0), 1e-5*math.Max(1, math.Abs(want)), "derivative at %v", x)
			}
		})
	}
}

// TestLog2UsesLn2 pins the base-2 logarithm derivative 1/(x ln 2).
func TestLog2UsesLn2(t *testing.T) {
	got := Variable(4.0, 0, 1).Log2()
	assert.InDelta(t, 2.0, got.Val(), tol)
	assert.InDelta(t, 1/(4*math.Ln2), got.Partial(0), tol)
}

// TestBinaryDerivatives checks both partials of two-argument functions.
func TestBinaryDerivatives(t *testing.T) {
	tests := []struct {
		name string
		dual func(a, b Dual[float64]) Dual[float64]
		real func(x, y float64) float64
		x, y float64
	}{
		{"atan2", Dual[float64].Atan2, math.Atan2, 0.8, -1.3},
		{"hypot", Dual[float64].Hypot, math.Hypot, 3, 4},
		{"powf", Dual[float64].Powf, math.Pow, 1.7, 2.3},
		{"log", Dual[float64].Log, func(x, y float64) float64 { return math.Log(x) / math.Log(y) }, 5, 3},
		{"max", Dual[float64].Max, math.Max, 1, 2},
		{"min", Dual[float64].Min, math.Min, 1, 2},
		{"div", Dual[float64].Div, func(x, y float64) float64 { return x / y }, 1.5, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dual(Variable(tt.x, 0, 2), Variable(tt.y, 1, 2))
			dx := fd.Derivative(func(x float64) float64 { return tt.real(x, tt.y) }, tt.x, central)
			dy := fd.Derivative(func(y float64) float64 { return tt.real(tt.x, y) }, tt.y, central)

			assert.InDelta(t, tt.real(tt.x, tt.y), got.Val(), 1e-12)
			assert.InDelta(t, dx, got.Partial(0), 1e-5)
			assert.InDelta(t, dy, got.Partial(1), 1e-5)
		})
	}
}

func TestMulAdd(t *testing.T) {
	a := Variable(2.0, 0, 3)
	b := Variable(-3.0, 1, 3)
	c := Variable(0.5, 2, 3)

	got := a.MulAdd(b, c)
	assert.Equal(t, -5.5, got.Val())
	assert.Equal(t, []float64{-3, 2, 1}, got.E())
}

// TestPowfConstantExponent checks that a constant exponent works with a
// negative base, where ln(a) is undefined.
func TestPowfConstantExponent(t *testing.T) {
	got := Variable(-2.0, 0, 1).Powf(Constant(3.0, 1))
	assert.Equal(t, -8.0, got.Val())
	assert.InDelta(t, 12.0, got.Partial(0), tol)
	assert.False(t, got.IsNaN())
}

func TestPowiZero(t *testing.T) {
	got := Variable(0.0, 0, 1).Powi(0)
	assert.Equal(t, 1.0, got.Val())
	assert.Equal(t, 0.0, got.Partial(0))
}

func TestSinCos(t *testing.T) {
	s, c := Variable(0.3, 0, 1).SinCos()
	assert.InDelta(t, math.Sin(0.3), s.Val(), tol)
	assert.InDelta(t, math.Cos(0.3), s.Partial(0), tol)
	assert.InDelta(t, math.Cos(0.3), c.Val(), tol)
	assert.InDelta(t, -math.Sin(0.3), c.Partial(0), tol)
}

// TestPiecewiseConstant checks that rounding functions have zero partials.
func TestPiecewiseConstant(t *testing.T) {
	x := Variable(-2.5, 0, 1)
	tests := []struct {
		name string
		got  Dual[float64]
		want float64
	}{
		{"floor", x.Floor(), -3},
		{"ceil", x.Ceil(), -2},
		{"round", x.Round(), -3},
		{"trunc", x.Trunc(), -2},
		{"signum", x.Signum(), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Val())
			assert.Equal(t, []float64{0}, tt.got.E())
		})
	}

	assert.Equal(t, 3.0, Constant(2.5, 0).Round().Val(), "round half away from zero")
}

func TestSignumAndAbsAtZero(t *testing.T) {
	assert.Equal(t, 1.0, Constant(0.0, 0).Signum().Val())
	assert.Equal(t, -1.0, Constant(math.Copysign(0, -1), 0).Signum().Val())
	assert.True(t, math.IsNaN(Constant(math.NaN(), 0).Signum().Val()))

	assert.Equal(t, 1.0, Variable(0.0, 0, 1).Abs().Partial(0))
	assert.Equal(t, -1.0, Variable(-3.0, 0, 1).Abs().Partial(0))
}

func TestMaxMinSelection(t *testing.T) {
	a := Variable(1.0, 0, 2)
	b := Variable(2.0, 1, 2)
	nan := Constant(math.NaN(), 2)

	assert.Equal(t, b, a.Max(b))
	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, a, a.Max(nan))
	assert.Equal(t, a, nan.Min(a))

	tie := Variable(1.0, 1, 2)
	assert.Equal(t, a, a.Max(tie))
	assert.Equal(t, a, a.Min(tie))
}

// TestFloat32Path checks that single precision Duals go through the
// float32 math routines and keep their precision.
func TestFloat32Path(t *testing.T) {
	x := Variable(float32(1), 0, 1)
	e := x.Exp()
	assert.InDelta(t, math.E, float64(e.Val()), 1e-6)
	assert.InDelta(t, math.E, float64(e.Partial(0)), 1e-6)

	s := Variable(float32(0.5), 0, 1).Tanh()
	th := math.Tanh(0.5)
	assert.InDelta(t, th, float64(s.Val()), 1e-6)
	assert.InDelta(t, 1-th*th, float64(s.Partial(0)), 1e-6)

	assert.Equal(t, float32(1), Constant(float32(7), 0).RemReal(3).Val())
}

type myFloat float64

func TestNamedFloatType(t *testing.T) {
	x := Variable(myFloat(2), 0, 1)
	got := x.Sqrt()
	assert.InDelta(t, math.Sqrt2, float64(got.Val()), tol)
	assert.InDelta(t, 1/(2*math.Sqrt2), float64(got.Partial(0)), tol)
}

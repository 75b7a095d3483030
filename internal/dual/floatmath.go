package dual

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// unary evaluates a real function on F, using the float32 implementation
// when F is float32 so that single precision values are not widened.
func unary[F Float](x F, f32 func(float32) float32, f64 func(float64) float64) F {
	if v, ok := any(x).(float32); ok {
		return F(f32(v))
	}
	return F(f64(float64(x)))
}

func binary[F Float](x, y F, f32 func(float32, float32) float32, f64 func(float64, float64) float64) F {
	if v, ok := any(x).(float32); ok {
		return F(f32(v, float32(y)))
	}
	return F(f64(float64(x), float64(y)))
}

func fexp[F Float](x F) F   { return unary(x, math32.Exp, math.Exp) }
func fexp2[F Float](x F) F  { return unary(x, math32.Exp2, math.Exp2) }
func fexpm1[F Float](x F) F { return unary(x, math32.Expm1, math.Expm1) }
func flog[F Float](x F) F   { return unary(x, math32.Log, math.Log) }
func flog2[F Float](x F) F  { return unary(x, math32.Log2, math.Log2) }
func flog10[F Float](x F) F { return unary(x, math32.Log10, math.Log10) }
func flog1p[F Float](x F) F { return unary(x, math32.Log1p, math.Log1p) }
func fsqrt[F Float](x F) F  { return unary(x, math32.Sqrt, math.Sqrt) }
func fcbrt[F Float](x F) F  { return unary(x, math32.Cbrt, math.Cbrt) }
func fsin[F Float](x F) F   { return unary(x, math32.Sin, math.Sin) }
func fcos[F Float](x F) F   { return unary(x, math32.Cos, math.Cos) }
func ftan[F Float](x F) F   { return unary(x, math32.Tan, math.Tan) }
func fasin[F Float](x F) F  { return unary(x, math32.Asin, math.Asin) }
func facos[F Float](x F) F  { return unary(x, math32.Acos, math.Acos) }
func fatan[F Float](x F) F  { return unary(x, math32.Atan, math.Atan) }
func fsinh[F Float](x F) F  { return unary(x, math32.Sinh, math.Sinh) }
func fcosh[F Float](x F) F  { return unary(x, math32.Cosh, math.Cosh) }
func ftanh[F Float](x F) F  { return unary(x, math32.Tanh, math.Tanh) }
func fasinh[F Float](x F) F { return unary(x, math32.Asinh, math.Asinh) }
func facosh[F Float](x F) F { return unary(x, math32.Acosh, math.Acosh) }
func fatanh[F Float](x F) F { return unary(x, math32.Atanh, math.Atanh) }
func fabs[F Float](x F) F   { return unary(x, math32.Abs, math.Abs) }
func ffloor[F Float](x F) F { return unary(x, math32.Floor, math.Floor) }
func fceil[F Float](x F) F  { return unary(x, math32.Ceil, math.Ceil) }
func fround[F Float](x F) F { return unary(x, math32.Round, math.Round) }
func ftrunc[F Float](x F) F { return unary(x, math32.Trunc, math.Trunc) }

func fpow[F Float](x, y F) F   { return binary(x, y, math32.Pow, math.Pow) }
func fmod[F Float](x, y F) F   { return binary(x, y, math32.Mod, math.Mod) }
func fatan2[F Float](y, x F) F { return binary(y, x, math32.Atan2, math.Atan2) }
func fhypot[F Float](x, y F) F { return binary(x, y, math32.Hypot, math.Hypot) }

// fma has no single precision counterpart in math32; the product of two
// float32 values is exact in float64, so widening loses nothing before the
// final rounding.
func fma[F Float](x, y, z F) F {
	return F(math.FMA(float64(x), float64(y), float64(z)))
}

func isNaN[F Float](x F) bool { return x != x }

func isInf[F Float](x F) bool {
	return !isNaN(x) && isNaN(x-x)
}

func isFinite[F Float](x F) bool {
	return !isNaN(x - x)
}

func signbit[F Float](x F) bool {
	if v, ok := any(x).(float32); ok {
		return math32.Signbit(v)
	}
	return math.Signbit(float64(x))
}

// isNormal reports whether x is neither zero, subnormal, infinite nor NaN.
func isNormal[F Float](x F) bool {
	if !isFinite(x) || x == 0 {
		return false
	}
	return fabs(x) >= minPositive[F]()
}

// signum returns 1 for values with a clear sign bit (including +0), -1 for
// values with a set sign bit (including -0), and NaN for NaN.
func signum[F Float](x F) F {
	switch {
	case isNaN(x):
		return x
	case signbit(x):
		return -1
	default:
		return 1
	}
}

func is32[F Float]() bool {
	var z F
	return unsafe.Sizeof(z) == 4
}

func minPositive[F Float]() F {
	if is32[F]() {
		return F(math32.Float32frombits(0x00800000))
	}
	return F(math.Float64frombits(0x0010000000000000))
}

func maxValue[F Float]() F {
	if is32[F]() {
		return F(math32.MaxFloat32)
	}
	v := math.MaxFloat64
	return F(v)
}

func epsilon[F Float]() F {
	if is32[F]() {
		return F(math32.Float32frombits(0x34000000)) // 2^-23
	}
	return F(math.Float64frombits(0x3cb0000000000000)) // 2^-52
}

func bitSize[F Float]() int {
	if is32[F]() {
		return 32
	}
	return 64
}

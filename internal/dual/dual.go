// Package dual implements forward-mode automatic differentiation with dual
// numbers.
//
// A Dual carries a real value and a vector of partial derivatives, one per
// tracked variable. Every operation applies the chain rule to the partials,
// so evaluating an expression whose inputs are variables yields both the
// value and its gradient in a single forward pass.
//
// The number of partials (the width) is chosen when constants and variables
// are created. Values of different widths may be mixed: missing partials
// read as zero and the result takes the larger width, which lets a
// zero-width constant stand in for a plain real anywhere.
package dual

import (
	"fmt"
	"slices"
	"strings"
)

// Float is the constraint for the inner real type.
type Float interface {
	~float32 | ~float64
}

// Dual is a real value together with its partial derivatives with respect
// to every tracked variable. Duals are immutable values; operations return
// new Duals and may share the partials slice of an operand, which is never
// written after construction.
type Dual[F Float] struct {
	val F
	e   []F
}

// New creates a Dual from a value and explicit partials. The slice is
// copied.
func New[F Float](val F, e []F) Dual[F] {
	return Dual[F]{val: val, e: slices.Clone(e)}
}

// Constant creates a Dual of width n whose partials are all zero.
func Constant[F Float](val F, n int) Dual[F] {
	if n < 0 {
		panic(fmt.Sprintf("dual: negative width %d", n))
	}
	if n == 0 {
		return Dual[F]{val: val}
	}
	return Dual[F]{val: val, e: make([]F, n)}
}

// Variable creates a Dual of width n tracking the variable with index i:
// its partials are the unit vector δ_i. Every variable in one computation
// must have a distinct index.
func Variable[F Float](val F, i, n int) Dual[F] {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("dual: variable index %d out of range for width %d", i, n))
	}
	d := Constant(val, n)
	d.e[i] = 1
	return d
}

// Val returns the real part.
func (a Dual[F]) Val() F {
	return a.val
}

// Width returns the number of partials carried.
func (a Dual[F]) Width() int {
	return len(a.e)
}

// E returns a copy of the partial derivatives.
func (a Dual[F]) E() []F {
	return slices.Clone(a.e)
}

// Partial returns ∂a/∂x_i. Indices beyond the width read as zero.
func (a Dual[F]) Partial(i int) F {
	if i < 0 || i >= len(a.e) {
		return 0
	}
	return a.e[i]
}

// Conj returns a with its partials negated.
func (a Dual[F]) Conj() Dual[F] {
	return a.withE(a.scale(-1))
}

// String formats a as Dual(val, e0, e1, ...).
func (a Dual[F]) String() string {
	var sb strings.Builder
	sb.WriteString("Dual(")
	fmt.Fprint(&sb, a.val)
	for _, d := range a.e {
		sb.WriteString(", ")
		fmt.Fprint(&sb, d)
	}
	sb.WriteString(")")
	return sb.String()
}

func (a Dual[F]) withE(e []F) Dual[F] {
	return Dual[F]{val: a.val, e: e}
}

// scale returns the partials multiplied by k.
func (a Dual[F]) scale(k F) []F {
	if len(a.e) == 0 {
		return nil
	}
	e := make([]F, len(a.e))
	for i, d := range a.e {
		e[i] = d * k
	}
	return e
}

// chain applies the chain rule for a unary function f with f(a.val) = val
// and f'(a.val) = deriv.
func (a Dual[F]) chain(val, deriv F) Dual[F] {
	return Dual[F]{val: val, e: a.scale(deriv)}
}

// flat returns val with zero partials of a's width, for piecewise constant
// functions.
func (a Dual[F]) flat(val F) Dual[F] {
	return Constant(val, len(a.e))
}

// zip combines the partials of a and b component-wise over the larger of
// the two widths.
func zip[F Float](a, b Dual[F], fn func(da, db F) F) []F {
	n := max(len(a.e), len(b.e))
	if n == 0 {
		return nil
	}
	e := make([]F, n)
	for i := range e {
		e[i] = fn(a.Partial(i), b.Partial(i))
	}
	return e
}

// zip3 is zip over three operands.
func zip3[F Float](a, b, c Dual[F], fn func(da, db, dc F) F) []F {
	n := max(len(a.e), len(b.e), len(c.e))
	if n == 0 {
		return nil
	}
	e := make([]F, n)
	for i := range e {
		e[i] = fn(a.Partial(i), b.Partial(i), c.Partial(i))
	}
	return e
}

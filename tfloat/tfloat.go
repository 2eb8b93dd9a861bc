// Package tfloat implements an error-tracked float64 value type.
//
// This file declares Float, its constructors, accessors, and the arithmetic
// operations with their propagation rules. See doc.go for the full overview.
package tfloat

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero indicates Div or Inv of a zero value, or Pow of a zero
// base with a negative exponent.
var ErrDivisionByZero = errors.New("tfloat: division by zero")

// Float is a float64 value paired with a non-negative absolute error bound.
// The zero value is an exact 0. Float is immutable; every operation returns
// a new instance.
type Float struct {
	val    float64 // the numeric value
	absErr float64 // accumulated absolute error, always ≥ 0
}

// New returns v with an estimated literal error: zero for exact integral
// values, half a ULP otherwise. The half-ULP term models the rounding that
// already happened when the decimal constant was converted to binary.
// Complexity: O(1)
func New(v float64) Float {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return Float{val: v}
	}

	return Float{val: v, absErr: halfULP(v)}
}

// Exact returns v with zero error, regardless of its representation.
func Exact(v float64) Float {
	return Float{val: v}
}

// WithError returns v carrying the explicit absolute error abs.
// A negative abs is folded to its magnitude, keeping the ≥ 0 invariant.
func WithError(v, abs float64) Float {
	return Float{val: v, absErr: math.Abs(abs)}
}

// Value returns the numeric value.
func (f Float) Value() float64 { return f.val }

// AbsError returns the accumulated absolute error bound.
func (f Float) AbsError() float64 { return f.absErr }

// RelError returns the relative error |absErr / value|.
// Conventions: 0 for an exact zero (0 ± 0), +Inf for a zero value carrying
// nonzero error (the value tells us nothing about its own scale).
func (f Float) RelError() float64 {
	if f.val == 0 {
		if f.absErr == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return f.absErr / math.Abs(f.val)
}

// Add returns f + g. Absolute errors add; a half-ULP term accounts for the
// rounding of the addition itself.
func (f Float) Add(g Float) Float {
	sum := f.val + g.val

	return Float{val: sum, absErr: f.absErr + g.absErr + halfULP(sum)}
}

// Sub returns f - g. Uncertainty ranges do not cancel under subtraction, so
// the absolute errors still add.
func (f Float) Sub(g Float) Float {
	diff := f.val - g.val

	return Float{val: diff, absErr: f.absErr + g.absErr + halfULP(diff)}
}

// Neg returns -f with the error magnitude unchanged.
func (f Float) Neg() Float {
	return Float{val: -f.val, absErr: f.absErr}
}

// Mul returns f · g. Relative errors add: the result's absolute error is
// (relF + relG) · |f·g|.
func (f Float) Mul(g Float) Float {
	prod := f.val * g.val

	return Float{val: prod, absErr: relSum(f, g) * math.Abs(prod)}
}

// Div returns f / g, or ErrDivisionByZero when g is zero.
// Relative errors add, exactly as for Mul.
func (f Float) Div(g Float) (Float, error) {
	if g.val == 0 {
		return Float{}, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, f.val)
	}
	quot := f.val / g.val

	return Float{val: quot, absErr: relSum(f, g) * math.Abs(quot)}, nil
}

// Inv returns 1 / f, or ErrDivisionByZero when f is zero.
// The relative error is unchanged: Inv is Div with an exact numerator.
func (f Float) Inv() (Float, error) {
	if f.val == 0 {
		return Float{}, fmt.Errorf("%w: 1 / 0", ErrDivisionByZero)
	}
	inv := 1 / f.val

	return Float{val: inv, absErr: f.RelError() * math.Abs(inv)}, nil
}

// Pow returns f^n for an integer exponent n.
// The relative error multiplies by |n|. Pow(0) is an exact 1 for any base.
// A zero base with negative n fails with ErrDivisionByZero.
func (f Float) Pow(n int) (Float, error) {
	if n == 0 {
		return Float{val: 1}, nil
	}
	if f.val == 0 && n < 0 {
		return Float{}, fmt.Errorf("%w: 0 raised to %d", ErrDivisionByZero, n)
	}
	p := math.Pow(f.val, float64(n))

	return Float{val: p, absErr: f.RelError() * float64(abs(n)) * math.Abs(p)}, nil
}

// String renders the value and its error bound, e.g. "0.1 ± 6.94e-18".
func (f Float) String() string {
	return fmt.Sprintf("%g ± %.3g", f.val, f.absErr)
}

// relSum is the summed relative error of two operands, the shared kernel of
// Mul and Div.
func relSum(f, g Float) float64 {
	return f.RelError() + g.RelError()
}

// halfULP returns half the spacing between v and the next representable
// float64 away from zero; zero for v == 0 and for non-finite v.
func halfULP(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	next := math.Nextafter(v, math.Inf(1))
	if math.IsInf(next, 0) {
		next = math.Nextafter(v, math.Inf(-1))
	}

	return math.Abs(next-v) / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

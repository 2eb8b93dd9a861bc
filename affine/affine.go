// Package affine implements directed affine unit conversions y = m·x + k.
//
// This file declares the Conversion type, its sentinel errors, constructors,
// Apply/Invert, and the TotalAbsError ranking heuristic. The four combination
// operators live in combine.go.
package affine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/unitgraph/tfloat"
)

// Sentinel errors for conversion construction and combination.
var (
	// ErrZeroMultiplier indicates an attempt to construct a conversion whose
	// multiplier is zero, which would not be invertible.
	ErrZeroMultiplier = errors.New("affine: multiplier must be nonzero")

	// ErrUnitMismatch indicates two conversions combined through an operator
	// whose required shared intermediate unit they do not share.
	ErrUnitMismatch = errors.New("affine: conversions do not share the required unit")
)

// Conversion is the directed edge src→dst carrying y = m·x + k.
// It is an immutable value; derived conversions are new values.
type Conversion struct {
	src string       // source unit symbol
	dst string       // destination unit symbol
	m   tfloat.Float // multiplier, never zero
	k   tfloat.Float // offset
}

// New builds a conversion from error-tracked coefficients.
// Fails with ErrZeroMultiplier when m is zero.
func New(src, dst string, m, k tfloat.Float) (Conversion, error) {
	if m.Value() == 0 {
		return Conversion{}, fmt.Errorf("%w: %s→%s", ErrZeroMultiplier, src, dst)
	}

	return Conversion{src: src, dst: dst, m: m, k: k}, nil
}

// NewFactor builds a pure scaling conversion y = m·x from a literal factor,
// estimating the factor's representation error via tfloat.New.
func NewFactor(src, dst string, m float64) (Conversion, error) {
	return New(src, dst, tfloat.New(m), tfloat.Exact(0))
}

// NewScaled builds a full affine conversion y = m·x + k from literal
// coefficients, e.g. NewScaled("C", "F", 1.8, 32).
func NewScaled(src, dst string, m, k float64) (Conversion, error) {
	return New(src, dst, tfloat.New(m), tfloat.New(k))
}

// Src returns the source unit symbol.
func (c Conversion) Src() string { return c.src }

// Dst returns the destination unit symbol.
func (c Conversion) Dst() string { return c.dst }

// Multiplier returns the error-tracked multiplier m.
func (c Conversion) Multiplier() tfloat.Float { return c.m }

// Offset returns the error-tracked offset k.
func (c Conversion) Offset() tfloat.Float { return c.k }

// Apply converts x from src to dst: m·x + k, propagating the coefficients'
// uncertainty together with any uncertainty x already carries.
func (c Conversion) Apply(x tfloat.Float) tfloat.Float {
	return c.m.Mul(x).Add(c.k)
}

// ApplyValue converts a bare float64, discarding the error bound.
func (c Conversion) ApplyValue(x float64) float64 {
	return c.Apply(tfloat.Exact(x)).Value()
}

// Invert returns the dst→src conversion: m' = 1/m, k' = -k/m.
// Double inversion reproduces the original up to floating-point rounding.
func (c Conversion) Invert() Conversion {
	// The multiplier is nonzero by construction, so neither division fails.
	mInv, _ := c.m.Inv()
	kInv, _ := c.k.Neg().Div(c.m)

	return Conversion{src: c.dst, dst: c.src, m: mInv, k: kInv}
}

// TotalAbsError is the path-ranking weight of this edge: the summed absolute
// error of its coefficients. It evaluates the conversion at a representative
// input magnitude of 1 rather than at the live operand, so cached composite
// edges keep a stable rank.
func (c Conversion) TotalAbsError() float64 {
	return c.m.AbsError() + c.k.AbsError()
}

// String renders the edge for diagnostics, e.g. "C→F: y = 1.8·x + 32".
func (c Conversion) String() string {
	return fmt.Sprintf("%s→%s: y = %g·x + %g", c.src, c.dst, c.m.Value(), c.k.Value())
}

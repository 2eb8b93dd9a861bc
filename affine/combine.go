package affine

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/tfloat"
)

// The four combination operators below merge two conversions sharing one
// intermediate unit into a direct conversion between the two unshared
// endpoints. They are exhaustive: two directed edges can share an endpoint
// in exactly these four orientations. Divisions are total because both
// multipliers are nonzero by construction; the tiny chance of a product
// underflowing to zero is caught by re-validating through New.

// CombineSequential merges this A→B with other B→C into A→C.
// Substituting y₁ = m₁x + k₁ into y₂ = m₂y₁ + k₂:
//
//	m = m₁·m₂, k = k₁·m₂ + k₂
func (c Conversion) CombineSequential(other Conversion) (Conversion, error) {
	if c.dst != other.src {
		return Conversion{}, fmt.Errorf("%w: sequential needs %s→[B], [B]→%s; got %s, %s",
			ErrUnitMismatch, c.src, other.dst, c, other)
	}
	m := c.m.Mul(other.m)
	k := c.k.Mul(other.m).Add(other.k)

	return New(c.src, other.dst, m, k)
}

// CombineConvergent merges this A→C with other B→C into A→B: both edges
// point at the shared unit. Solving other for B given C = this(A):
//
//	m = m₁/m₂, k = (k₁ - k₂)/m₂
func (c Conversion) CombineConvergent(other Conversion) (Conversion, error) {
	if c.dst != other.dst {
		return Conversion{}, fmt.Errorf("%w: convergent needs %s→[C], %s→[C]; got %s, %s",
			ErrUnitMismatch, c.src, other.src, c, other)
	}
	m, _ := c.m.Div(other.m)
	k, _ := c.k.Sub(other.k).Div(other.m)

	return New(c.src, other.src, m, k)
}

// CombineDivergent merges this C→A with other C→B into A→B: both edges
// leave the shared unit. Solving this for C given A, substituting into other:
//
//	m = m₂/m₁, k = k₂ - k₁·(m₂/m₁)
func (c Conversion) CombineDivergent(other Conversion) (Conversion, error) {
	if c.src != other.src {
		return Conversion{}, fmt.Errorf("%w: divergent needs [C]→%s, [C]→%s; got %s, %s",
			ErrUnitMismatch, c.dst, other.dst, c, other)
	}
	m, _ := other.m.Div(c.m)
	k := other.k.Sub(c.k.Mul(m))

	return New(c.dst, other.dst, m, k)
}

// CombineOpposite merges this C→A with other B→C into A→B: this leaves the
// shared unit, other enters it. Solving both equations for B in terms of A:
//
//	m = 1/(m₁·m₂), k = (-k₂ - k₁/m₁)/m₂
func (c Conversion) CombineOpposite(other Conversion) (Conversion, error) {
	if c.src != other.dst {
		return Conversion{}, fmt.Errorf("%w: opposite needs [C]→%s, %s→[C]; got %s, %s",
			ErrUnitMismatch, c.dst, other.src, c, other)
	}
	m, _ := tfloat.Exact(1).Div(c.m.Mul(other.m))
	kOverM, _ := c.k.Div(c.m)
	k, _ := other.k.Neg().Sub(kOverM).Div(other.m)

	return New(c.dst, other.src, m, k)
}

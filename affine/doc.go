// Package affine implements the algebraic representation of a single unit
// conversion: the directed edge y = m·x + k from a source unit to a
// destination unit, with error-tracked coefficients.
//
// Overview:
//
//   - A Conversion converts src→dst only; the reverse direction is a distinct
//     derived value obtained through Invert, never assumed to exist.
//   - The multiplier m is never zero (enforced at construction), so Invert
//     and every combination operator that divides by a multiplier is total.
//   - Coefficients are tfloat.Float values; Apply propagates both the
//     conversion's own uncertainty and any uncertainty the operand carries.
//   - TotalAbsError ranks a conversion for path selection. It is a heuristic
//     evaluated at a representative input magnitude of 1, not at the live
//     operand; re-scoring per call would make cached composite edges rank
//     differently per operand, so the heuristic is kept deliberately.
//
// Combination operators:
//
// Two directed edges can share one endpoint in exactly four ways. Each
// operator substitutes one affine equation into the other and solves for a
// direct edge between the two unshared endpoints:
//
//	CombineSequential: this A→B, other B→C ⇒ A→C   m=m₁m₂,     k=k₁m₂+k₂
//	CombineConvergent: this A→C, other B→C ⇒ A→B   m=m₁/m₂,    k=(k₁-k₂)/m₂
//	CombineDivergent:  this C→A, other C→B ⇒ A→B   m=m₂/m₁,    k=k₂-k₁·m₂/m₁
//	CombineOpposite:   this C→A, other B→C ⇒ A→B   m=1/(m₁m₂), k=(-k₂-k₁/m₁)/m₂
//
// Errors (sentinel):
//
//   - ErrZeroMultiplier: constructing a Conversion with m == 0.
//   - ErrUnitMismatch: combining two conversions that do not share the
//     intermediate unit the operator requires.
//
// Example:
//
//	cf, _ := affine.NewScaled("C", "F", 1.8, 32)
//	cf.ApplyValue(0)            // 32
//	cf.Invert().ApplyValue(212) // 100
package affine

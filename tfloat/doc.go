// Package tfloat provides Float, a float64 paired with an estimate of its
// accumulated absolute error.
//
// Overview:
//
//   - Every arithmetic operation returns a new Float whose error field is the
//     propagated uncertainty of its operands plus the rounding error of the
//     operation itself.
//   - Construction via New estimates the error of a literal constant: exact
//     integral values carry zero error, anything else carries half a ULP
//     (half the spacing between adjacent representable float64 values), the
//     unavoidable cost of writing the constant down in binary.
//   - The type knows nothing about units or dimensions; it is pure numeric
//     bookkeeping. The affine and convgraph packages use it both to compute
//     values and to rank candidate conversion paths by accumulated error.
//
// Propagation rules:
//
//   - Add/Sub: absolute errors add (uncertainty ranges never cancel under
//     subtraction), plus a half-ULP rounding term of the result.
//   - Neg: error magnitude unchanged.
//   - Mul/Div: relative errors add; the result's absolute error is its
//     relative error times its magnitude.
//   - Inv: relative error unchanged (Div with an exact numerator of 1).
//   - Pow(n): relative error multiplies by |n|; Pow(0) is an exact 1.
//
// Error handling (sentinel):
//
//   - ErrDivisionByZero: Div or Inv of a zero value, or Pow of a zero base
//     with a negative exponent.
//
// Example:
//
//	a := tfloat.WithError(10, 0.1)
//	b := tfloat.WithError(20, 0.2)
//	p := a.Mul(b) // 200 ± 4 (relative errors 0.01 + 0.01)
package tfloat

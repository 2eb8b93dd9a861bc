// Package dim implements canonical dimension codes: compact strings encoding
// a physical dimension as letter+exponent pairs over a fixed alphabet.
//
// Alphabet (alphabetical, which is also the canonical output order):
//
//	I — electric current
//	J — luminous intensity
//	K — thermodynamic temperature
//	L — length
//	M — mass
//	N — amount of substance
//	T — time
//
// A code is a sequence of letter+signed-decimal-exponent pairs, e.g. "L1" for
// length, "L1M1T-2" for force, "L2M1T-2" for energy. The empty code ""
// denotes a dimensionless quantity (constant Dimensionless).
//
// Invariants of the canonical form:
//
//   - Letters appear at most once, in alphabetical order.
//   - Exponents are nonzero signed integers; "1" is written explicitly.
//   - Zero-exponent pairs are dropped during normalization, so "L1L-1"
//     normalizes to "".
//
// Parse accepts any letter order and repeated letters (merging their
// exponents); Normalize is the string→string convenience on top of it.
// Dim values are immutable and support the exponent arithmetic (Mul, Pow)
// compound units need.
//
// Errors (sentinel):
//
//   - ErrInvalidDimension: a letter outside the alphabet, a missing or
//     malformed exponent, or trailing garbage.
package dim

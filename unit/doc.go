// Package unit models units of measurement: atomic registered units, units
// carrying a metric or binary prefix and an exponent, and compound products
// of base units — plus the static catalogs the converter bootstraps from.
//
// Polymorphic representation:
//
// One capability interface, Unit, is implemented by three concrete variants
// resolved statically (no runtime type switching in the algorithms):
//
//	Term      — an atomic registered unit ("m", "ft", "N"), carrying its
//	            dimension, its multiplier to the dimension's base unit, the
//	            prefix group it accepts, and (for named combinations such as
//	            the newton) an optional base-unit expansion.
//	Prefixed  — a Term under a prefix with an exponent ("km", "µs", "Ki B²").
//	*Compound — an ordered product of base-unit powers with prefix-adjusted
//	            per-term factors ("kg·m·s⁻²"). At most one entry per base
//	            symbol; folding that cancels an exponent removes the entry.
//
// A (value, compound) pair denotes value × Π (factorᵢ · baseᵢ)^expᵢ, so every
// rewriting operation that absorbs a factor returns the scale to apply to the
// accompanying value. There is no string→unit parser here; symbols enter the
// system already structured.
//
// Catalogs:
//
//	Catalog  — registry of Terms keyed by symbol, with prefix-aware Resolve
//	           ("km" → kilo + "m") and per-dimension listing.
//	Builtin  — the default catalog: SI base units, customary length/mass
//	           units, temperatures, and the named combinations (N, J, Pa, L,
//	           Hz) with their base-unit expansions.
//	SeedFor  — the a-priori conversion factors known per dimension
//	           (ft→m = 0.3048, C→F = (1.8, 32), …), consumed once per
//	           dimension by the converter's lazy bootstrap.
//
// Errors (sentinel):
//
//   - ErrInvalidTerm: registering a term with an empty symbol or a zero
//     multiplier.
//   - ErrDuplicateUnit: registering a symbol twice.
//   - ErrUnknownUnit: resolving a symbol no registration and no prefix split
//     can explain.
package unit

// Package unit models units of measurement and their catalogs.
//
// This file declares the Unit capability interface, the Term and Prefixed
// variants, the Expansion record, and the package's sentinel errors.
// The *Compound variant lives in compound.go, prefixes in prefix.go,
// catalogs in catalog.go, and the built-in seed data in seed.go.
package unit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/unitgraph/dim"
)

// Sentinel errors for unit registration and resolution.
var (
	// ErrInvalidTerm indicates a term with an empty symbol or zero multiplier.
	ErrInvalidTerm = errors.New("unit: invalid term")

	// ErrDuplicateUnit indicates a symbol registered twice in one catalog.
	ErrDuplicateUnit = errors.New("unit: duplicate unit symbol")

	// ErrUnknownUnit indicates a symbol that no registration and no prefix
	// split can explain.
	ErrUnknownUnit = errors.New("unit: unknown unit symbol")
)

// Unit is the capability shared by all three unit variants: an ASCII symbol,
// a display (unicode) symbol, a physical dimension, and a rendered form.
type Unit interface {
	// Symbol returns the ASCII symbol, e.g. "km" or "kg*m*s^-2".
	Symbol() string
	// Unicode returns the display symbol, e.g. "µs" or "kg·m·s⁻²".
	Unicode() string
	// Dim returns the physical dimension of the unit.
	Dim() dim.Dim
	// String is the ASCII rendering (same as Symbol for atomic variants).
	String() string
}

// Expansion is the base-unit equivalent of a named combination unit:
// 1 named = Factor × the compound (with each compound entry contributing its
// own prefix-adjusted factor). The newton, for instance, expands to
// (1000·g)·m·s⁻² with Factor 1.
type Expansion struct {
	// Unit is the equivalent compound expression over base symbols.
	Unit *Compound
	// Factor scales the compound to equal one of the named unit.
	Factor float64
}

// Term is an atomic registered unit.
type Term struct {
	// Sym is the unique ASCII symbol, e.g. "m", "ft", "N".
	Sym string

	// Uni is the display symbol; empty means same as Sym.
	Uni string

	// Dimension is the physical dimension of one unit.
	Dimension dim.Dim

	// Factor is the multiplier to the dimension's base unit (1 for the base
	// itself). Offset-bearing units carry 1 here; their relation to the base
	// lives in the conversion catalog, not in a bare factor.
	Factor float64

	// Prefixes is the prefix group this unit accepts.
	Prefixes PrefixGroup

	// Expand is the optional base-unit expansion for named combinations;
	// nil for irreducible units.
	Expand *Expansion
}

// Symbol implements Unit.
func (t Term) Symbol() string { return t.Sym }

// Unicode implements Unit; it falls back to the ASCII symbol.
func (t Term) Unicode() string {
	if t.Uni != "" {
		return t.Uni
	}

	return t.Sym
}

// Dim implements Unit.
func (t Term) Dim() dim.Dim { return t.Dimension }

// String implements Unit.
func (t Term) String() string { return t.Sym }

// Expandable reports whether the term carries a base-unit expansion.
func (t Term) Expandable() bool { return t.Expand != nil }

// Prefixed is a Term under a prefix, raised to an exponent. The exponent
// applies to the prefixed unit as a whole: "km²" is (1000·m)².
type Prefixed struct {
	// Term is the unprefixed base term.
	Term Term

	// Prefix scales the term; NoPrefix for a bare term.
	Prefix Prefix

	// Exp is the exponent, never zero.
	Exp int
}

// Symbol implements Unit: prefix symbol + term symbol, with "^n" for
// exponents other than 1.
func (p Prefixed) Symbol() string {
	s := p.Prefix.Sym + p.Term.Sym
	if p.Exp != 1 {
		s += fmt.Sprintf("^%d", p.Exp)
	}

	return s
}

// Unicode implements Unit with the prefix's display form and superscript
// exponents.
func (p Prefixed) Unicode() string {
	s := p.Prefix.Unicode() + p.Term.Unicode()
	if p.Exp != 1 {
		s += superscript(p.Exp)
	}

	return s
}

// Dim implements Unit: the term's dimension raised to the exponent.
func (p Prefixed) Dim() dim.Dim { return p.Term.Dimension.Pow(p.Exp) }

// String implements Unit.
func (p Prefixed) String() string { return p.Symbol() }

// PrefixFactor is the scale one power of the prefixed symbol carries over the
// bare term: the prefix multiplier.
func (p Prefixed) PrefixFactor() float64 { return p.Prefix.Mul }

// Multiplier is the full scale of the prefixed unit over the dimension's
// base unit: (prefix · term factor)^exp.
func (p Prefixed) Multiplier() float64 {
	return math.Pow(p.Prefix.Mul*p.Term.Factor, float64(p.Exp))
}

package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/unitgraph/dim"
)

// Entry is one base-unit power inside a Compound: (factor·term)^exp.
type Entry struct {
	// Term is the unprefixed base term of this entry.
	Term Term

	// Exp is the exponent, never zero inside a Compound.
	Exp int

	// Factor is the prefix-adjusted multiplier for one power of the term:
	// 1000 for a "kg" entry stored over the base term "g".
	Factor float64
}

// Compound is an ordered product of base-unit powers. Insertion order is
// preserved and significant: the converter's merge keeps the first-seen unit
// of each dimension as canonical. At most one entry exists per base symbol;
// folding that cancels an exponent removes the entry. Compound values are
// immutable; MulTerm returns a new instance.
type Compound struct {
	entries []Entry
}

// NewCompound returns the empty (dimensionless) compound.
func NewCompound() *Compound {
	return &Compound{}
}

// MulTerm multiplies the compound by (factor·term)^exp and returns the new
// compound together with the scale any accompanying numeric value must absorb
// when the fold cannot keep both factors (two entries of one symbol carry a
// single factor; the surplus (factor/existing)^exp moves into the value).
// A zero exp is a no-op with scale 1.
func (c *Compound) MulTerm(t Term, exp int, factor float64) (*Compound, float64) {
	if exp == 0 {
		return c.Clone(), 1
	}

	out := c.Clone()
	for i := range out.entries {
		if out.entries[i].Term.Sym != t.Sym {
			continue
		}

		// Fold into the existing entry, keeping its factor.
		scale := math.Pow(factor/out.entries[i].Factor, float64(exp))
		out.entries[i].Exp += exp
		if out.entries[i].Exp == 0 {
			out.entries = append(out.entries[:i], out.entries[i+1:]...)
		}

		return out, scale
	}

	out.entries = append(out.entries, Entry{Term: t, Exp: exp, Factor: factor})

	return out, 1
}

// Clone returns an independent copy.
func (c *Compound) Clone() *Compound {
	out := &Compound{entries: make([]Entry, len(c.entries))}
	copy(out.entries, c.entries)

	return out
}

// Entries returns a copy of the ordered entry list.
func (c *Compound) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.entries) }

// Dim implements Unit: the sum of the component dimensions scaled by their
// exponents.
func (c *Compound) Dim() dim.Dim {
	d := dim.Dimensionless
	for _, e := range c.entries {
		d = d.Mul(e.Term.Dimension.Pow(e.Exp))
	}

	return d
}

// Symbol implements Unit: the ASCII rendering, e.g. "(1000*g)*m*s^-2".
func (c *Compound) Symbol() string {
	if len(c.entries) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		sym := e.Term.Sym
		if e.Factor != 1 {
			sym = fmt.Sprintf("(%g*%s)", e.Factor, sym)
		}
		if e.Exp != 1 {
			sym += "^" + strconv.Itoa(e.Exp)
		}
		parts = append(parts, sym)
	}

	return strings.Join(parts, "*")
}

// Unicode implements Unit with middle dots and superscript exponents,
// e.g. "(1000·g)·m·s⁻²".
func (c *Compound) Unicode() string {
	if len(c.entries) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		sym := e.Term.Unicode()
		if e.Factor != 1 {
			sym = fmt.Sprintf("(%g·%s)", e.Factor, sym)
		}
		if e.Exp != 1 {
			sym += superscript(e.Exp)
		}
		parts = append(parts, sym)
	}

	return strings.Join(parts, "·")
}

// String implements Unit.
func (c *Compound) String() string { return c.Symbol() }

// superscriptDigits maps '0'..'9' to their superscript forms.
var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

// superscript renders an integer exponent in superscript, e.g. -2 → "⁻²".
func superscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteRune('⁻')
		n = -n
	}
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superscriptDigits[r])
	}

	return b.String()
}

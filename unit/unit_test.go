// Package unit_test validates the three Unit variants, prefix splitting,
// compound folding, and the built-in catalog's seed data.
package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/unit"
)

// ------------------------------------------------------------------------
// 1. Catalog registration and resolution.
// ------------------------------------------------------------------------

func TestCatalog_RegisterValidation(t *testing.T) {
	c := unit.NewCatalog()
	require.ErrorIs(t, c.Register(unit.Term{Sym: "", Factor: 1}), unit.ErrInvalidTerm)
	require.ErrorIs(t, c.Register(unit.Term{Sym: "x", Factor: 0}), unit.ErrInvalidTerm)

	require.NoError(t, c.Register(unit.Term{Sym: "x", Dimension: unit.Length, Factor: 1}))
	require.ErrorIs(t, c.Register(unit.Term{Sym: "x", Dimension: unit.Length, Factor: 2}), unit.ErrDuplicateUnit)
}

func TestBuiltin_ResolveExactBeatsPrefixSplit(t *testing.T) {
	c := unit.Builtin()

	// "min" must resolve to the minute, not milli-inch.
	p, ok := c.Resolve("min")
	require.True(t, ok)
	assert.Equal(t, "min", p.Term.Sym)
	assert.Equal(t, 1.0, p.PrefixFactor())

	// "mi" must resolve to the mile, not milli-<nothing>.
	p, ok = c.Resolve("mi")
	require.True(t, ok)
	assert.Equal(t, "mi", p.Term.Sym)
}

func TestBuiltin_ResolvePrefixes(t *testing.T) {
	c := unit.Builtin()

	cases := []struct {
		sym    string
		base   string
		factor float64
	}{
		{"km", "m", 1e3},
		{"cm", "m", 1e-2},
		{"dam", "m", 1e1},
		{"us", "s", 1e-6},
		{"µs", "s", 1e-6},
		{"kg", "g", 1e3},
		{"mL", "L", 1e-3},
		{"MHz", "Hz", 1e6},
		{"KiB", "B", 1024},
	}
	for _, tc := range cases {
		p, ok := c.Resolve(tc.sym)
		require.True(t, ok, tc.sym)
		assert.Equal(t, tc.base, p.Term.Sym, tc.sym)
		assert.Equal(t, tc.factor, p.PrefixFactor(), tc.sym)
	}
}

func TestBuiltin_ResolveRejectsWrongGroup(t *testing.T) {
	c := unit.Builtin()

	// ft accepts no prefixes, B accepts only binary ones.
	_, ok := c.Resolve("kft")
	assert.False(t, ok)
	_, ok = c.Resolve("kB")
	assert.False(t, ok)
	_, ok = c.Resolve("bogus")
	assert.False(t, ok)
}

func TestCatalog_ByDimensionSorted(t *testing.T) {
	terms := unit.Builtin().ByDimension(unit.Length)
	require.NotEmpty(t, terms)
	syms := make([]string, 0, len(terms))
	for _, tm := range terms {
		syms = append(syms, tm.Sym)
	}
	assert.IsNonDecreasing(t, syms)
	assert.Contains(t, syms, "m")
	assert.Contains(t, syms, "ft")
}

// ------------------------------------------------------------------------
// 2. The Unit capability interface across all three variants.
// ------------------------------------------------------------------------

func TestUnitInterface_Variants(t *testing.T) {
	c := unit.Builtin()
	metre, ok := c.Lookup("m")
	require.True(t, ok)

	km := unit.Prefixed{Term: metre, Prefix: mustPrefix(t, c, "km"), Exp: 2}
	comp, _ := unit.NewCompound().MulTerm(metre, 2, 1)

	// All three variants satisfy the same capability interface.
	for _, u := range []unit.Unit{metre, km, comp} {
		assert.NotEmpty(t, u.Symbol())
		assert.NotEmpty(t, u.Unicode())
		assert.NotEmpty(t, u.String())
	}
	assert.Equal(t, "L1", metre.Dim().String())
	assert.Equal(t, "L2", km.Dim().String())
	assert.Equal(t, "L2", comp.Dim().String())
}

func mustPrefix(t *testing.T, c *unit.Catalog, sym string) unit.Prefix {
	t.Helper()
	p, ok := c.Resolve(sym)
	require.True(t, ok)

	return p.Prefix
}

func TestPrefixed_SymbolsAndMultiplier(t *testing.T) {
	c := unit.Builtin()
	second, ok := c.Lookup("s")
	require.True(t, ok)
	us, ok := c.Resolve("us")
	require.True(t, ok)

	p := unit.Prefixed{Term: second, Prefix: us.Prefix, Exp: 1}
	assert.Equal(t, "us", p.Symbol())
	assert.Equal(t, "µs", p.Unicode())
	assert.Equal(t, 1e-6, p.Multiplier())

	sq := unit.Prefixed{Term: second, Prefix: us.Prefix, Exp: 2}
	assert.Equal(t, "us^2", sq.Symbol())
	assert.Equal(t, "µs²", sq.Unicode())
	assert.Equal(t, "T2", sq.Dim().String())
}

// ------------------------------------------------------------------------
// 3. Compound folding invariants.
// ------------------------------------------------------------------------

func TestCompound_FoldKeepsOneEntryPerSymbol(t *testing.T) {
	c := unit.Builtin()
	metre, _ := c.Lookup("m")

	comp, s1 := unit.NewCompound().MulTerm(metre, 1, 1)
	comp, s2 := comp.MulTerm(metre, 2, 1)
	assert.Equal(t, 1.0, s1)
	assert.Equal(t, 1.0, s2)
	require.Equal(t, 1, comp.Len())
	assert.Equal(t, 3, comp.Entries()[0].Exp)
	assert.Equal(t, "L3", comp.Dim().String())
}

func TestCompound_CancellingExponentRemovesEntry(t *testing.T) {
	c := unit.Builtin()
	metre, _ := c.Lookup("m")
	second, _ := c.Lookup("s")

	comp, _ := unit.NewCompound().MulTerm(metre, 1, 1)
	comp, _ = comp.MulTerm(second, -1, 1)
	comp, _ = comp.MulTerm(metre, -1, 1)
	require.Equal(t, 1, comp.Len())
	assert.Equal(t, "s", comp.Entries()[0].Term.Sym)
	assert.Equal(t, "T-1", comp.Dim().String())
}

func TestCompound_FoldSurplusFactorMovesToScale(t *testing.T) {
	c := unit.Builtin()
	metre, _ := c.Lookup("m")

	// m · (1000·m) keeps the first entry's factor; the surplus 1000 is the
	// scale the accompanying value must absorb.
	comp, _ := unit.NewCompound().MulTerm(metre, 1, 1)
	comp, scale := comp.MulTerm(metre, 1, 1000)
	require.Equal(t, 1, comp.Len())
	assert.Equal(t, 2, comp.Entries()[0].Exp)
	assert.Equal(t, 1.0, comp.Entries()[0].Factor)
	assert.Equal(t, 1000.0, scale)
}

func TestCompound_Rendering(t *testing.T) {
	c := unit.Builtin()
	newton, ok := c.Lookup("N")
	require.True(t, ok)
	require.True(t, newton.Expandable())

	assert.Equal(t, "(1000*g)*m*s^-2", newton.Expand.Unit.Symbol())
	assert.Equal(t, "(1000·g)·m·s⁻²", newton.Expand.Unit.Unicode())
	assert.Equal(t, "1", unit.NewCompound().Symbol())
	assert.Equal(t, "L1M1T-2", newton.Expand.Unit.Dim().String())
}

func TestCompound_MulTermReturnsNewInstance(t *testing.T) {
	c := unit.Builtin()
	metre, _ := c.Lookup("m")

	base, _ := unit.NewCompound().MulTerm(metre, 1, 1)
	grown, _ := base.MulTerm(metre, 1, 1)
	assert.Equal(t, 1, base.Entries()[0].Exp)
	assert.Equal(t, 2, grown.Entries()[0].Exp)
}

// ------------------------------------------------------------------------
// 4. Seed factors.
// ------------------------------------------------------------------------

func TestSeedFor_KnownDimensions(t *testing.T) {
	lengths := unit.SeedFor(unit.Length)
	require.NotEmpty(t, lengths)
	assert.Contains(t, lengths, unit.Factor{Src: "ft", Dst: "m", M: 0.3048})

	temps := unit.SeedFor(unit.Temperature)
	assert.Contains(t, temps, unit.Factor{Src: "C", Dst: "F", M: 1.8, K: 32})

	assert.Nil(t, unit.SeedFor(dim.MustParse("I2")))
}

func TestSeedFor_ReturnsACopy(t *testing.T) {
	a := unit.SeedFor(unit.Length)
	a[0].M = 999
	b := unit.SeedFor(unit.Length)
	assert.Equal(t, 0.3048, b[0].M)
}

package unit

import (
	"sync"

	"github.com/katalvlaran/unitgraph/dim"
)

// Dimensions of the built-in catalog, named for readability in seed data and
// tests.
var (
	Length      = dim.MustParse("L1")
	Mass        = dim.MustParse("M1")
	Time        = dim.MustParse("T1")
	Temperature = dim.MustParse("K1")
	Current     = dim.MustParse("I1")
	Amount      = dim.MustParse("N1")
	Luminous    = dim.MustParse("J1")
	Velocity    = dim.MustParse("L1T-1")
	Force       = dim.MustParse("L1M1T-2")
	Energy      = dim.MustParse("L2M1T-2")
	Pressure    = dim.MustParse("L-1M1T-2")
	Area        = dim.MustParse("L2")
	Volume      = dim.MustParse("L3")
	Frequency   = dim.MustParse("T-1")
)

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the default catalog, built once: SI base units, customary
// length and mass units, temperatures, and the named combinations with their
// base-unit expansions.
func Builtin() *Catalog {
	builtinOnce.Do(func() { builtinCatalog = buildBuiltin() })

	return builtinCatalog
}

func buildBuiltin() *Catalog {
	c := NewCatalog()

	// Base units, one per dimension letter, all metric-prefixable.
	metre := Term{Sym: "m", Dimension: Length, Factor: 1, Prefixes: PrefixMetric}
	gram := Term{Sym: "g", Dimension: Mass, Factor: 1, Prefixes: PrefixMetric}
	second := Term{Sym: "s", Dimension: Time, Factor: 1, Prefixes: PrefixMetric}
	c.MustRegister(metre)
	c.MustRegister(gram)
	c.MustRegister(second)
	c.MustRegister(Term{Sym: "K", Dimension: Temperature, Factor: 1, Prefixes: PrefixMetric})
	c.MustRegister(Term{Sym: "A", Dimension: Current, Factor: 1, Prefixes: PrefixMetric})
	c.MustRegister(Term{Sym: "mol", Dimension: Amount, Factor: 1, Prefixes: PrefixMetric})
	c.MustRegister(Term{Sym: "cd", Dimension: Luminous, Factor: 1, Prefixes: PrefixMetric})

	// Customary lengths; none accepts prefixes.
	c.MustRegister(Term{Sym: "ft", Dimension: Length, Factor: 0.3048})
	c.MustRegister(Term{Sym: "in", Dimension: Length, Factor: 0.0254})
	c.MustRegister(Term{Sym: "yd", Dimension: Length, Factor: 0.9144})
	c.MustRegister(Term{Sym: "mi", Dimension: Length, Factor: 1609.344})
	c.MustRegister(Term{Sym: "au", Dimension: Length, Factor: 1.495978707e11})

	// Customary masses.
	c.MustRegister(Term{Sym: "lb", Dimension: Mass, Factor: 453.59237})
	c.MustRegister(Term{Sym: "oz", Dimension: Mass, Factor: 28.349523125})
	c.MustRegister(Term{Sym: "t", Dimension: Mass, Factor: 1e6})

	// Civil time.
	c.MustRegister(Term{Sym: "min", Dimension: Time, Factor: 60})
	c.MustRegister(Term{Sym: "h", Dimension: Time, Factor: 3600})
	c.MustRegister(Term{Sym: "d", Dimension: Time, Factor: 86400})

	// Offset-bearing temperature scales: the factor is nominal, the real
	// relation to K lives in the conversion seeds.
	c.MustRegister(Term{Sym: "C", Uni: "°C", Dimension: Temperature, Factor: 1})
	c.MustRegister(Term{Sym: "F", Uni: "°F", Dimension: Temperature, Factor: 1})

	// Named combinations with base-unit expansions. The kilogram appears in
	// each expansion as the gram entry with a prefix-adjusted factor of 1000.
	kgms2, _ := NewCompound().MulTerm(gram, 1, 1000)
	kgms2, _ = kgms2.MulTerm(metre, 1, 1)
	kgms2, _ = kgms2.MulTerm(second, -2, 1)
	c.MustRegister(Term{
		Sym: "N", Dimension: Force, Factor: 1, Prefixes: PrefixMetric,
		Expand: &Expansion{Unit: kgms2, Factor: 1},
	})
	c.MustRegister(Term{Sym: "dyn", Dimension: Force, Factor: 1e-5})

	kgm2s2, _ := NewCompound().MulTerm(gram, 1, 1000)
	kgm2s2, _ = kgm2s2.MulTerm(metre, 2, 1)
	kgm2s2, _ = kgm2s2.MulTerm(second, -2, 1)
	c.MustRegister(Term{
		Sym: "J", Dimension: Energy, Factor: 1, Prefixes: PrefixMetric,
		Expand: &Expansion{Unit: kgm2s2, Factor: 1},
	})
	c.MustRegister(Term{Sym: "cal", Dimension: Energy, Factor: 4.184})
	c.MustRegister(Term{Sym: "eV", Dimension: Energy, Factor: 1.602176634e-19, Prefixes: PrefixMetric})

	kgm1s2, _ := NewCompound().MulTerm(gram, 1, 1000)
	kgm1s2, _ = kgm1s2.MulTerm(metre, -1, 1)
	kgm1s2, _ = kgm1s2.MulTerm(second, -2, 1)
	c.MustRegister(Term{
		Sym: "Pa", Dimension: Pressure, Factor: 1, Prefixes: PrefixMetric,
		Expand: &Expansion{Unit: kgm1s2, Factor: 1},
	})
	c.MustRegister(Term{Sym: "bar", Dimension: Pressure, Factor: 1e5, Prefixes: PrefixMetric})

	m3, _ := NewCompound().MulTerm(metre, 3, 1)
	c.MustRegister(Term{
		Sym: "L", Dimension: Volume, Factor: 1e-3, Prefixes: PrefixMetric,
		Expand: &Expansion{Unit: m3, Factor: 1e-3},
	})

	s1, _ := NewCompound().MulTerm(second, -1, 1)
	c.MustRegister(Term{
		Sym: "Hz", Dimension: Frequency, Factor: 1, Prefixes: PrefixMetric,
		Expand: &Expansion{Unit: s1, Factor: 1},
	})

	// Information units, dimensionless by convention, binary-prefixable.
	c.MustRegister(Term{Sym: "bit", Dimension: dim.Dimensionless, Factor: 1, Prefixes: PrefixBinary})
	c.MustRegister(Term{Sym: "B", Dimension: dim.Dimensionless, Factor: 8, Prefixes: PrefixBinary})

	return c
}

// seedFactors are the a-priori conversions per canonical dimension code,
// consumed once per dimension by the converter's bootstrap.
var seedFactors = map[string][]Factor{
	Length.String(): {
		{Src: "ft", Dst: "m", M: 0.3048},
		{Src: "in", Dst: "ft", M: 1.0 / 12},
		{Src: "yd", Dst: "ft", M: 3},
		{Src: "mi", Dst: "ft", M: 5280},
		{Src: "au", Dst: "m", M: 1.495978707e11},
	},
	Mass.String(): {
		{Src: "lb", Dst: "g", M: 453.59237},
		{Src: "oz", Dst: "lb", M: 1.0 / 16},
		{Src: "t", Dst: "g", M: 1e6},
	},
	Time.String(): {
		{Src: "min", Dst: "s", M: 60},
		{Src: "h", Dst: "min", M: 60},
		{Src: "d", Dst: "h", M: 24},
	},
	Temperature.String(): {
		{Src: "C", Dst: "K", M: 1, K: 273.15},
		{Src: "C", Dst: "F", M: 1.8, K: 32},
	},
	Force.String(): {
		{Src: "N", Dst: "dyn", M: 1e5},
	},
	Energy.String(): {
		{Src: "cal", Dst: "J", M: 4.184},
		{Src: "eV", Dst: "J", M: 1.602176634e-19},
	},
	Pressure.String(): {
		{Src: "bar", Dst: "Pa", M: 1e5},
	},
	dim.Dimensionless.String(): {
		{Src: "B", Dst: "bit", M: 8},
	},
}

// SeedFor returns the built-in a-priori conversion tuples for a dimension;
// nil when none are known.
func SeedFor(d dim.Dim) []Factor {
	seeds := seedFactors[d.String()]
	if len(seeds) == 0 {
		return nil
	}
	out := make([]Factor, len(seeds))
	copy(out, seeds)

	return out
}

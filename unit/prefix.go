package unit

import (
	"sort"
	"strings"
)

// PrefixGroup selects which prefix table a unit accepts.
type PrefixGroup int

const (
	// PrefixNone forbids prefixes (customary units: ft, lb, …).
	PrefixNone PrefixGroup = iota
	// PrefixMetric accepts the SI decimal prefixes (k, M, µ, …).
	PrefixMetric
	// PrefixBinary accepts the IEC binary prefixes (Ki, Mi, …).
	PrefixBinary
)

// Prefix is a multiplicative modifier on a unit symbol.
type Prefix struct {
	// Sym is the ASCII prefix symbol, e.g. "k", "u", "Ki".
	Sym string

	// Uni is the display symbol when it differs from Sym ("µ" for "u").
	Uni string

	// Mul is the multiplier, never zero; 1 only for NoPrefix.
	Mul float64

	// Group is the table this prefix belongs to.
	Group PrefixGroup
}

// NoPrefix is the identity prefix carried by bare unit symbols.
var NoPrefix = Prefix{Mul: 1, Group: PrefixNone}

// Unicode returns the display form of the prefix symbol.
func (p Prefix) Unicode() string {
	if p.Uni != "" {
		return p.Uni
	}

	return p.Sym
}

// metricPrefixes is the full SI table, quetta down to quecto.
var metricPrefixes = []Prefix{
	{Sym: "Q", Mul: 1e30, Group: PrefixMetric},
	{Sym: "R", Mul: 1e27, Group: PrefixMetric},
	{Sym: "Y", Mul: 1e24, Group: PrefixMetric},
	{Sym: "Z", Mul: 1e21, Group: PrefixMetric},
	{Sym: "E", Mul: 1e18, Group: PrefixMetric},
	{Sym: "P", Mul: 1e15, Group: PrefixMetric},
	{Sym: "T", Mul: 1e12, Group: PrefixMetric},
	{Sym: "G", Mul: 1e9, Group: PrefixMetric},
	{Sym: "M", Mul: 1e6, Group: PrefixMetric},
	{Sym: "k", Mul: 1e3, Group: PrefixMetric},
	{Sym: "h", Mul: 1e2, Group: PrefixMetric},
	{Sym: "da", Mul: 1e1, Group: PrefixMetric},
	{Sym: "d", Mul: 1e-1, Group: PrefixMetric},
	{Sym: "c", Mul: 1e-2, Group: PrefixMetric},
	{Sym: "m", Mul: 1e-3, Group: PrefixMetric},
	{Sym: "u", Uni: "µ", Mul: 1e-6, Group: PrefixMetric},
	{Sym: "n", Mul: 1e-9, Group: PrefixMetric},
	{Sym: "p", Mul: 1e-12, Group: PrefixMetric},
	{Sym: "f", Mul: 1e-15, Group: PrefixMetric},
	{Sym: "a", Mul: 1e-18, Group: PrefixMetric},
	{Sym: "z", Mul: 1e-21, Group: PrefixMetric},
	{Sym: "y", Mul: 1e-24, Group: PrefixMetric},
	{Sym: "r", Mul: 1e-27, Group: PrefixMetric},
	{Sym: "q", Mul: 1e-30, Group: PrefixMetric},
}

// binaryPrefixes is the IEC table, kibi up to quebi.
var binaryPrefixes = []Prefix{
	{Sym: "Ki", Mul: 1 << 10, Group: PrefixBinary},
	{Sym: "Mi", Mul: 1 << 20, Group: PrefixBinary},
	{Sym: "Gi", Mul: 1 << 30, Group: PrefixBinary},
	{Sym: "Ti", Mul: 1 << 40, Group: PrefixBinary},
	{Sym: "Pi", Mul: 1 << 50, Group: PrefixBinary},
	{Sym: "Ei", Mul: 1 << 60, Group: PrefixBinary},
	{Sym: "Zi", Mul: 1180591620717411303424, Group: PrefixBinary},
	{Sym: "Yi", Mul: 1208925819614629174706176, Group: PrefixBinary},
}

// splitOrder is every prefix of both tables plus unicode aliases, sorted
// longest symbol first so that "da" wins over "d" and "Ki" over "k".
var splitOrder = buildSplitOrder()

func buildSplitOrder() []Prefix {
	all := make([]Prefix, 0, len(metricPrefixes)+len(binaryPrefixes)+1)
	all = append(all, metricPrefixes...)
	all = append(all, binaryPrefixes...)
	// Accept the unicode micro sign as an input alias for "u".
	all = append(all, Prefix{Sym: "µ", Uni: "µ", Mul: 1e-6, Group: PrefixMetric})
	sort.SliceStable(all, func(i, j int) bool {
		return len(all[i].Sym) > len(all[j].Sym)
	})

	return all
}

// SplitPrefix strips the longest prefix from symbol such that the remainder
// satisfies known and the prefix belongs to the group known's unit accepts
// (the group check is the caller's, via accepts). Returns NoPrefix and the
// symbol untouched when no split applies.
func SplitPrefix(symbol string, accepts func(base string, p Prefix) bool) (Prefix, string, bool) {
	var p Prefix
	for _, p = range splitOrder {
		if !strings.HasPrefix(symbol, p.Sym) || len(symbol) == len(p.Sym) {
			continue
		}
		base := symbol[len(p.Sym):]
		if accepts(base, p) {
			return p, base, true
		}
	}

	return NoPrefix, symbol, false
}

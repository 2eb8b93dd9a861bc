package convgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unitgraph/unit"
)

// maxExpandDepth bounds Expand's rewriting passes. A well-formed catalog
// bottoms out in a handful of passes; only a cyclic expansion set can run
// longer, and that is reported rather than looped on.
const maxExpandDepth = 32

// Expand rewrites every expandable term of u into its base-unit expansion,
// scaling value accordingly, until no term is further expandable, then
// merges same-dimension terms. It consults the whole converter registry, not
// one dimension: a compound may mix terms of many dimensions.
// The inputs are not mutated; the returned compound is a new instance.
func Expand(value float64, u *unit.Compound) (float64, *unit.Compound, error) {
	if u == nil {
		return 0, nil, fmt.Errorf("%w: expand", ErrNilUnit)
	}

	cur := u
	for pass := 0; ; pass++ {
		if pass >= maxExpandDepth {
			return 0, nil, fmt.Errorf("%w: %q still expandable after %d passes",
				ErrExpansionDepth, u, maxExpandDepth)
		}

		next := unit.NewCompound()
		changed := false
		var scale float64
		for _, e := range cur.Entries() {
			// Per-term factors fold into the value up front, so every entry
			// of the rewritten compound carries factor 1.
			value *= math.Pow(e.Factor, float64(e.Exp))

			if !e.Term.Expandable() {
				next, scale = next.MulTerm(e.Term, e.Exp, 1)
				value *= scale

				continue
			}

			// Replace term^exp by (expansion factor × compound)^exp.
			changed = true
			value *= math.Pow(e.Term.Expand.Factor, float64(e.Exp))
			for _, se := range e.Term.Expand.Unit.Entries() {
				value *= math.Pow(se.Factor, float64(se.Exp*e.Exp))
				next, scale = next.MulTerm(se.Term, se.Exp*e.Exp, 1)
				value *= scale
			}
		}

		cur = next
		if !changed {
			break
		}
	}

	return Merge(value, cur)
}

// Merge folds same-dimension terms of u into one canonical term per
// dimension: the first unit encountered for a dimension is kept, every later
// term of that dimension is converted into it via the dimension's graph and
// its exponent folded in. Terms whose exponents cancel vanish.
func Merge(value float64, u *unit.Compound) (float64, *unit.Compound, error) {
	if u == nil {
		return 0, nil, fmt.Errorf("%w: merge", ErrNilUnit)
	}

	canonical := make(map[string]unit.Term) // dimension code → first-seen term
	out := unit.NewCompound()
	var scale float64
	for _, e := range u.Entries() {
		value *= math.Pow(e.Factor, float64(e.Exp))

		code := e.Term.Dimension.String()
		canon, seen := canonical[code]
		if !seen {
			canonical[code] = e.Term
			out, scale = out.MulTerm(e.Term, e.Exp, 1)
			value *= scale

			continue
		}
		if canon.Sym == e.Term.Sym {
			out, scale = out.MulTerm(e.Term, e.Exp, 1)
			value *= scale

			continue
		}

		// A later term of an already-seen dimension: convert it into the
		// canonical unit and fold the exponent.
		conv, err := ByDimension(code)
		if err != nil {
			return 0, nil, err
		}
		factor, ok := conv.Factor(e.Term.Sym, canon.Sym)
		if !ok {
			return 0, nil, fmt.Errorf("%w: merging %s into %s",
				ErrNoPathFound, e.Term.Sym, canon.Sym)
		}
		value *= math.Pow(factor, float64(e.Exp))
		out, scale = out.MulTerm(canon, e.Exp, 1)
		value *= scale
	}

	return value, out, nil
}

package convgraph

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/affine"
	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/tfloat"
	"github.com/katalvlaran/unitgraph/unit"
)

// newConverter builds and bootstraps a Converter: registers the catalog's
// units of this dimension as graph nodes and loads the a-priori edges.
func newConverter(d dim.Dim, cfg Options) (*Converter, error) {
	c := &Converter{
		dimension: d,
		catalog:   cfg.Catalog,
		units:     make(map[string]unit.Term),
		edges:     make(map[string]map[string]affine.Conversion),
	}

	// 1) Every registered unit of the dimension becomes a node.
	for _, t := range cfg.Catalog.ByDimension(d) {
		c.units[t.Sym] = t
	}

	// 2) Every a-priori tuple becomes a directed edge; endpoints become
	//    nodes even when the catalog does not list them.
	for _, f := range cfg.Factors {
		conv, err := affine.NewScaled(f.Src, f.Dst, f.M, f.K)
		if err != nil {
			return nil, fmt.Errorf("seed %s→%s: %w", f.Src, f.Dst, err)
		}
		c.insertEdge(conv)
	}

	return c, nil
}

// Dim returns the converter's dimension.
func (c *Converter) Dim() dim.Dim { return c.dimension }

// AddUnit registers an unprefixed unit as a graph node so path discovery can
// reach it later. Fails with ErrInvalidUnit on a dimension mismatch.
func (c *Converter) AddUnit(t unit.Term) error {
	if !t.Dimension.Equal(c.dimension) {
		return fmt.Errorf("%w: %q is %q, converter is %q",
			ErrInvalidUnit, t.Sym, t.Dimension, c.dimension)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.units[t.Sym] = t

	return nil
}

// resolve explains a possibly-prefixed symbol within this dimension:
// units registered via AddUnit win, then the catalog's prefix-aware Resolve.
// The bool is false for unknown symbols and for symbols of other dimensions.
func (c *Converter) resolve(symbol string) (unit.Prefixed, bool) {
	c.mu.RLock()
	t, ok := c.units[symbol]
	c.mu.RUnlock()
	if ok {
		return unit.Prefixed{Term: t, Prefix: unit.NoPrefix, Exp: 1}, true
	}

	p, ok := c.catalog.Resolve(symbol)
	if !ok || !p.Term.Dimension.Equal(c.dimension) {
		return unit.Prefixed{}, false
	}

	return p, true
}

// GetConversion returns the conversion src→dst, discovering and memoizing a
// path when no cached edge exists. A miss after exhaustive search is an
// ordinary false, never an error.
func (c *Converter) GetConversion(src, dst string) (affine.Conversion, bool) {
	// 1) Strip prefixes down to the unprefixed base symbols.
	ps, ok := c.resolve(src)
	if !ok {
		return affine.Conversion{}, false
	}
	pd, ok := c.resolve(dst)
	if !ok {
		return affine.Conversion{}, false
	}

	// 2) A shared base symbol is a pure prefix ratio; no graph involved.
	if ps.Term.Sym == pd.Term.Sym {
		return prefixIdentity(src, dst, ps, pd)
	}

	// 3) Cache hit on the unprefixed pair.
	c.mu.RLock()
	base, ok := c.edges[ps.Term.Sym][pd.Term.Sym]
	c.mu.RUnlock()
	if ok {
		return rescale(src, dst, base, ps, pd)
	}

	// 4) Miss: discover, single-flighted so concurrent misses for this
	//    converter run one search.
	c.discoverMu.Lock()
	defer c.discoverMu.Unlock()

	c.mu.RLock()
	base, ok = c.edges[ps.Term.Sym][pd.Term.Sym]
	c.mu.RUnlock()
	if !ok {
		base, ok = c.discover(ps.Term.Sym, pd.Term.Sym)
		if !ok {
			return affine.Conversion{}, false
		}

		// Insert-then-publish: readers only ever observe a complete edge.
		c.mu.Lock()
		c.insertEdge(base)
		c.mu.Unlock()
	}

	return rescale(src, dst, base, ps, pd)
}

// Factor returns only the multiplier of the discovered conversion, for
// callers that know no offset applies.
func (c *Converter) Factor(src, dst string) (float64, bool) {
	conv, ok := c.GetConversion(src, dst)
	if !ok {
		return 0, false
	}

	return conv.Multiplier().Value(), true
}

// Convert converts value from src to dst. It fails with ErrInvalidUnit when
// a symbol does not resolve within this dimension, and with ErrNoPathFound
// when the units are valid but unconnected.
func (c *Converter) Convert(value float64, src, dst string) (float64, error) {
	if _, ok := c.resolve(src); !ok {
		return 0, fmt.Errorf("%w: %q in %q", ErrInvalidUnit, src, c.dimension)
	}
	if _, ok := c.resolve(dst); !ok {
		return 0, fmt.Errorf("%w: %q in %q", ErrInvalidUnit, dst, c.dimension)
	}

	conv, ok := c.GetConversion(src, dst)
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoPathFound, src, dst)
	}

	return conv.ApplyValue(value), nil
}

// insertEdge stores an edge keyed (src, dst). Callers hold mu (or own the
// converter exclusively during bootstrap).
func (c *Converter) insertEdge(e affine.Conversion) {
	if c.edges[e.Src()] == nil {
		c.edges[e.Src()] = make(map[string]affine.Conversion)
	}
	c.edges[e.Src()][e.Dst()] = e
	if _, ok := c.units[e.Src()]; !ok {
		c.units[e.Src()] = unit.Term{Sym: e.Src(), Dimension: c.dimension, Factor: 1}
	}
	if _, ok := c.units[e.Dst()]; !ok {
		c.units[e.Dst()] = unit.Term{Sym: e.Dst(), Dimension: c.dimension, Factor: 1}
	}
}

// prefixIdentity converts between two prefixed forms of one base symbol:
// y = (prefix(src)/prefix(dst))·x.
func prefixIdentity(src, dst string, ps, pd unit.Prefixed) (affine.Conversion, bool) {
	if ps.PrefixFactor() == pd.PrefixFactor() {
		conv, err := affine.New(src, dst, tfloat.Exact(1), tfloat.Exact(0))

		return conv, err == nil
	}

	m, err := tfloat.New(ps.PrefixFactor()).Div(tfloat.New(pd.PrefixFactor()))
	if err != nil {
		return affine.Conversion{}, false
	}
	conv, err := affine.New(src, dst, m, tfloat.Exact(0))

	return conv, err == nil
}

// rescale layers the prefix multipliers of the requested symbols onto a
// base-symbol conversion: the multiplier scales by prefix(src)/prefix(dst);
// the offset is never rescaled, offset-bearing units are not prefixable.
func rescale(src, dst string, base affine.Conversion, ps, pd unit.Prefixed) (affine.Conversion, bool) {
	if ps.PrefixFactor() == 1 && pd.PrefixFactor() == 1 {
		return base, true
	}

	ratio, err := tfloat.New(ps.PrefixFactor()).Div(tfloat.New(pd.PrefixFactor()))
	if err != nil {
		return affine.Conversion{}, false
	}
	conv, err := affine.New(src, dst, base.Multiplier().Mul(ratio), base.Offset())

	return conv, err == nil
}

package unit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/unitgraph/dim"
)

// Catalog is a registry of Terms keyed by symbol. It is safe for concurrent
// use: registration and lookup take the appropriate lock.
type Catalog struct {
	mu    sync.RWMutex
	terms map[string]Term
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{terms: make(map[string]Term)}
}

// Register adds a term. Fails with ErrInvalidTerm on an empty symbol or a
// zero multiplier, and with ErrDuplicateUnit when the symbol already exists.
func (c *Catalog) Register(t Term) error {
	if t.Sym == "" || t.Factor == 0 {
		return fmt.Errorf("%w: symbol=%q factor=%g", ErrInvalidTerm, t.Sym, t.Factor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.terms[t.Sym]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, t.Sym)
	}
	c.terms[t.Sym] = t

	return nil
}

// MustRegister is Register for trusted seed data; it panics on failure.
func (c *Catalog) MustRegister(t Term) {
	if err := c.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the term registered under the exact symbol.
func (c *Catalog) Lookup(symbol string) (Term, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.terms[symbol]

	return t, ok
}

// Resolve explains a possibly-prefixed symbol: an exact registration wins,
// otherwise the longest prefix split whose remainder is registered and whose
// prefix group the remainder accepts. The result carries exponent 1.
func (c *Catalog) Resolve(symbol string) (Prefixed, bool) {
	if t, ok := c.Lookup(symbol); ok {
		return Prefixed{Term: t, Prefix: NoPrefix, Exp: 1}, true
	}

	p, base, ok := SplitPrefix(symbol, func(base string, p Prefix) bool {
		t, found := c.Lookup(base)

		return found && t.Prefixes == p.Group
	})
	if !ok {
		return Prefixed{}, false
	}
	t, _ := c.Lookup(base)

	return Prefixed{Term: t, Prefix: p, Exp: 1}, true
}

// ByDimension returns every registered term of the given dimension, sorted
// by symbol for deterministic iteration.
func (c *Catalog) ByDimension(d dim.Dim) []Term {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Term, 0)
	for _, t := range c.terms {
		if t.Dimension.Equal(d) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sym < out[j].Sym })

	return out
}

// Factor is one a-priori conversion tuple src→dst: y = M·x + K.
type Factor struct {
	// Src and Dst are unprefixed unit symbols of one dimension.
	Src, Dst string

	// M is the multiplier, K the offset (0 for pure scalings).
	M, K float64
}

// Package convgraph implements the per-dimension unit conversion graph.
//
// This file declares the sentinel errors, the functional options, and the
// multiton registry (ByDimension / ClearAll). The Converter methods live in
// converter.go, path discovery in search.go, Expand/Merge in rewrite.go.
package convgraph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/unitgraph/affine"
	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/unit"
)

// Sentinel errors for converter operations.
var (
	// ErrInvalidDimension indicates a dimension code that cannot be parsed.
	ErrInvalidDimension = errors.New("convgraph: invalid dimension code")

	// ErrInvalidUnit indicates a unit symbol that does not resolve within the
	// converter's dimension.
	ErrInvalidUnit = errors.New("convgraph: unit does not belong to dimension")

	// ErrNoPathFound indicates that no conversion path exists between two
	// otherwise-valid units. Only Convert surfaces it; GetConversion and
	// Factor report a miss as an ordinary false.
	ErrNoPathFound = errors.New("convgraph: no conversion path found")

	// ErrExpansionDepth indicates Expand exceeded its recursion guard,
	// which happens only with a cyclic set of base-unit expansions.
	ErrExpansionDepth = errors.New("convgraph: expansion depth exceeded")

	// ErrNilUnit indicates a nil compound passed to Expand or Merge.
	ErrNilUnit = errors.New("convgraph: nil compound unit")
)

// Options configure a Converter at first creation. Later ByDimension calls
// for the same dimension return the existing instance and ignore options.
type Options struct {
	// Catalog resolves unit symbols; defaults to unit.Builtin().
	Catalog *unit.Catalog

	// Factors, when set, replace the dimension's built-in seed edges.
	Factors []unit.Factor

	// factorsSet distinguishes an explicit empty seed from the default.
	factorsSet bool
}

// Option mutates Options before the Converter is created.
type Option func(*Options)

// WithCatalog overrides the unit catalog backing symbol resolution.
func WithCatalog(c *unit.Catalog) Option {
	return func(o *Options) { o.Catalog = c }
}

// WithFactors replaces the built-in seed edges for the dimension; passing
// none yields a converter with an empty graph.
func WithFactors(fs ...unit.Factor) Option {
	return func(o *Options) {
		o.Factors = fs
		o.factorsSet = true
	}
}

// registry is the process-wide multiton: one Converter per canonical
// dimension code, created lazily and kept for the life of the process.
var (
	regMu    sync.Mutex
	registry = make(map[string]*Converter)
)

// ByDimension returns the Converter for a dimension code, creating and
// bootstrapping it on first call. Fails with ErrInvalidDimension when the
// code cannot be parsed. Options take effect only on the creating call.
func ByDimension(code string, opts ...Option) (*Converter, error) {
	d, err := dim.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimension, err)
	}
	key := d.String()

	regMu.Lock()
	defer regMu.Unlock()
	if c, ok := registry[key]; ok {
		return c, nil
	}

	cfg := Options{Catalog: unit.Builtin()}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = unit.Builtin()
	}
	if !cfg.factorsSet {
		cfg.Factors = unit.SeedFor(d)
	}

	c, err := newConverter(d, cfg)
	if err != nil {
		return nil, err
	}
	registry[key] = c

	return c, nil
}

// ClearAll resets the multiton registry. Intended for test isolation, not
// production use: converters obtained before the reset stay functional but
// are no longer shared.
func ClearAll() {
	regMu.Lock()
	defer regMu.Unlock()
	registry = make(map[string]*Converter)
}

// Converter owns the conversion graph of one dimension: the registered
// unprefixed units (graph nodes) and the directed affine edges, both only
// ever extended, never rewritten.
type Converter struct {
	dimension dim.Dim
	catalog   *unit.Catalog

	// mu guards units and edges; discoverMu single-flights path discovery so
	// concurrent misses for the same pair do not search twice.
	mu         sync.RWMutex
	discoverMu sync.Mutex

	units map[string]unit.Term
	edges map[string]map[string]affine.Conversion // src → dst → edge
}

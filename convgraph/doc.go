// Package convgraph implements the unit converter: a per-dimension cache of
// known unit-to-unit conversions behaving as a weighted directed graph that
// discovers, composes, and memoizes conversion paths.
//
// Overview:
//
//   - One Converter exists per normalized dimension code (a multiton keyed by
//     the canonical code; ByDimension creates and bootstraps lazily, ClearAll
//     resets the registry for test isolation).
//   - Bootstrap loads the dimension's a-priori edges (unit.SeedFor) and its
//     registered units from the catalog (unit.Builtin by default); both can be
//     overridden with options on first creation.
//   - GetConversion answers from the edge cache or runs min-error path
//     discovery; a miss after exhaustive search is an ordinary "no result",
//     not an error. Convert, which promises a usable number, escalates a
//     missing path to ErrNoPathFound.
//   - Expand and Merge rewrite compound units across the whole registry:
//     Expand replaces named combinations by their base-unit expansions until
//     none remains, Merge folds same-dimension terms into the first-seen
//     (canonical) unit of that dimension.
//
// Path discovery:
//
// The per-dimension edge set (a-priori edges plus previously discovered
// composites) is searched Dijkstra-style with a min-heap under the lazy
// decrease-key strategy. A hop traverses a registered edge forward at its own
// TotalAbsError or backward at the inverted edge's error. Priority order:
// total accumulated error, then hop count, then the lexically smaller symbol;
// neighbor lists are sorted so discovery is deterministic. The winning walk
// is composed into a single affine.Conversion — the combination operator at
// each junction is selected by the directions of the two edges relative to
// their shared unit — and published into the edge cache for O(1) reuse.
//
// Prefix handling is layered on top of the graph: both symbols are stripped
// to their unprefixed base symbols before the search, and the resulting
// multiplier is rescaled by prefix(src)/prefix(dst). Offsets are never
// rescaled; offset-bearing units do not take prefixes. A pair sharing one
// base symbol ("km"→"m") short-circuits to a pure prefix-ratio conversion
// without touching the graph.
//
// Concurrency:
//
// Reads are cache hits under an RWMutex read lock. First-time bootstrap and
// composite-edge insertion serialize per dimension; a discovery mutex
// single-flights concurrent misses so duplicate searches do no redundant
// work, and a discovered edge is inserted atomically relative to readers
// (insert-then-publish). Expansion recursion is depth-guarded against a
// cyclic catalog.
//
// Errors (sentinel):
//
//   - ErrInvalidDimension: the dimension code cannot be parsed.
//   - ErrInvalidUnit: a unit symbol does not resolve within the dimension.
//   - ErrNoPathFound: Convert found no path between two valid units.
//   - ErrExpansionDepth: Expand exceeded the recursion guard.
//   - ErrNilUnit: Expand or Merge received a nil compound.
//
// Example:
//
//	c, _ := convgraph.ByDimension("L1")
//	f, _ := c.Factor("km", "m") // 1000
//	v, _ := c.Convert(100, "ft", "m") // 30.48
package convgraph

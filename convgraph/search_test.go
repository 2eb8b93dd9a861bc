// Package convgraph_test: path-discovery tests — error-based preference,
// tie-breaking, reversed-edge traversal, and composition through offsets.
package convgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/convgraph"
	"github.com/katalvlaran/unitgraph/dim"
	"github.com/katalvlaran/unitgraph/unit"
)

// catalogOf registers artificial units of one dimension so tests can inject
// competing paths without touching the built-in seed data.
func catalogOf(t *testing.T, d dim.Dim, syms ...string) *unit.Catalog {
	t.Helper()
	c := unit.NewCatalog()
	for _, s := range syms {
		require.NoError(t, c.Register(unit.Term{Sym: s, Dimension: d, Factor: 1}))
	}

	return c
}

func TestDiscover_PrefersLowerErrorPath(t *testing.T) {
	fresh(t)

	// Two competing two-hop walks p→q: through n with factors carrying
	// representation error, through r with exact integral factors (zero
	// accumulated error). Discovery must compose the exact walk.
	c, err := convgraph.ByDimension("J1",
		convgraph.WithCatalog(catalogOf(t, unit.Luminous, "p", "q", "n", "r")),
		convgraph.WithFactors(
			unit.Factor{Src: "p", Dst: "n", M: 0.1},
			unit.Factor{Src: "n", Dst: "q", M: 0.7},
			unit.Factor{Src: "p", Dst: "r", M: 2},
			unit.Factor{Src: "r", Dst: "q", M: 3},
		),
	)
	require.NoError(t, err)

	f, ok := c.Factor("p", "q")
	require.True(t, ok)
	assert.Equal(t, 6.0, f, "the exact walk must beat the noisy one")
}

func TestDiscover_EqualErrorPrefersFewerHops(t *testing.T) {
	fresh(t)

	// Every factor is exact, so both walks accumulate zero error; the
	// two-hop walk must win the tie over the three-hop one.
	c, err := convgraph.ByDimension("N1",
		convgraph.WithCatalog(catalogOf(t, unit.Amount, "a", "b", "c", "d", "e")),
		convgraph.WithFactors(
			unit.Factor{Src: "a", Dst: "c", M: 2},
			unit.Factor{Src: "c", Dst: "b", M: 3},
			unit.Factor{Src: "a", Dst: "d", M: 5},
			unit.Factor{Src: "d", Dst: "e", M: 2},
			unit.Factor{Src: "e", Dst: "b", M: 1},
		),
	)
	require.NoError(t, err)

	f, ok := c.Factor("a", "b")
	require.True(t, ok)
	assert.Equal(t, 6.0, f)
}

func TestDiscover_ReversedEdgesOnly(t *testing.T) {
	fresh(t)
	c, err := convgraph.ByDimension("L1")
	require.NoError(t, err)

	// m→mi traverses both seed edges backward: ft→m against its direction,
	// then mi→ft against its direction.
	f, ok := c.Factor("m", "mi")
	require.True(t, ok)
	assert.InDelta(t, 1/1609.344, f, 1e-12)
}

func TestDiscover_MixedDirections(t *testing.T) {
	fresh(t)
	c, err := convgraph.ByDimension("L1")
	require.NoError(t, err)

	// in→yd: forward along in→ft, backward along yd→ft. 36 in = 1 yd.
	f, ok := c.Factor("in", "yd")
	require.True(t, ok)
	assert.InDelta(t, 1.0/36, f, 1e-12)
}

func TestDiscover_LongChainThroughTime(t *testing.T) {
	fresh(t)
	c, err := convgraph.ByDimension("T1")
	require.NoError(t, err)

	// s→d composes three sequential hops: s→min→h→d, each backward.
	f, ok := c.Factor("s", "d")
	require.True(t, ok)
	assert.InDelta(t, 1.0/86400, f, 1e-15)

	got, err := c.Convert(2, "d", "h")
	require.NoError(t, err)
	assert.InDelta(t, 48.0, got, 1e-9)
}

func TestDiscover_Deterministic(t *testing.T) {
	// The same request after a registry reset must rediscover the same path.
	var runs []float64
	for i := 0; i < 5; i++ {
		convgraph.ClearAll()
		c, err := convgraph.ByDimension("L1")
		require.NoError(t, err)
		f, ok := c.Factor("in", "mi")
		require.True(t, ok)
		runs = append(runs, f)
	}
	convgraph.ClearAll()

	for _, f := range runs {
		assert.Equal(t, runs[0], f)
	}
}

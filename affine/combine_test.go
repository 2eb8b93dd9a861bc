// Package affine_test: combination-operator tests. Each of the four operators
// is checked against conversions whose correct composite is known in closed
// form (metric lengths and the K/C/F temperature triangle).
package affine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/affine"
)

// temperature edges shared by the orientation tests below.
func tempEdges(t *testing.T) (cf, kc, ck, kf affine.Conversion) {
	t.Helper()
	var err error
	cf, err = affine.NewScaled("C", "F", 1.8, 32)
	require.NoError(t, err)
	kc, err = affine.NewScaled("K", "C", 1, -273.15)
	require.NoError(t, err)
	ck, err = affine.NewScaled("C", "K", 1, 273.15)
	require.NoError(t, err)
	kf, err = affine.NewScaled("K", "F", 1.8, -459.67)
	require.NoError(t, err)

	return cf, kc, ck, kf
}

func TestCombineSequential_MetricChain(t *testing.T) {
	// m→km→mi applied to 1000 m must yield one mile's worth of km.
	mkm, err := affine.NewFactor("m", "km", 0.001)
	require.NoError(t, err)
	kmmi, err := affine.NewFactor("km", "mi", 0.621371)
	require.NoError(t, err)

	mmi, err := mkm.CombineSequential(kmmi)
	require.NoError(t, err)
	assert.Equal(t, "m", mmi.Src())
	assert.Equal(t, "mi", mmi.Dst())
	assert.InDelta(t, 0.621371, mmi.ApplyValue(1000), 1e-9)
}

func TestCombineSequential_OffsetChain(t *testing.T) {
	// K→C then C→F composes into the known K→F edge.
	cf, kc, _, _ := tempEdges(t)
	got, err := kc.CombineSequential(cf)
	require.NoError(t, err)
	assert.Equal(t, "K", got.Src())
	assert.Equal(t, "F", got.Dst())
	assert.InDelta(t, 1.8, got.Multiplier().Value(), 1e-12)
	assert.InDelta(t, -459.67, got.Offset().Value(), 1e-9)
}

func TestCombineConvergent_BothEnterShared(t *testing.T) {
	// this C→F, other K→F share F; the composite is C→K (+273.15).
	cf, _, _, kf := tempEdges(t)
	got, err := cf.CombineConvergent(kf)
	require.NoError(t, err)
	assert.Equal(t, "C", got.Src())
	assert.Equal(t, "K", got.Dst())
	assert.InDelta(t, 1.0, got.Multiplier().Value(), 1e-12)
	assert.InDelta(t, 273.15, got.Offset().Value(), 1e-9)
}

func TestCombineDivergent_BothLeaveShared(t *testing.T) {
	// this C→F, other C→K share C; the composite is F→K.
	cf, _, ck, _ := tempEdges(t)
	got, err := cf.CombineDivergent(ck)
	require.NoError(t, err)
	assert.Equal(t, "F", got.Src())
	assert.Equal(t, "K", got.Dst())
	// 32 F is the freezing point: 273.15 K.
	assert.InDelta(t, 273.15, got.ApplyValue(32), 1e-9)
	assert.InDelta(t, 373.15, got.ApplyValue(212), 1e-9)
}

func TestCombineOpposite_ThroughShared(t *testing.T) {
	// this C→F (leaves C), other K→C (enters C); the composite is F→K.
	cf, kc, _, _ := tempEdges(t)
	got, err := cf.CombineOpposite(kc)
	require.NoError(t, err)
	assert.Equal(t, "F", got.Src())
	assert.Equal(t, "K", got.Dst())
	assert.InDelta(t, 273.15, got.ApplyValue(32), 1e-9)
	assert.InDelta(t, 255.372, got.ApplyValue(0), 1e-3)
}

func TestCombine_AllOperatorsAgree(t *testing.T) {
	// Every orientation that can produce F→K must produce the same edge.
	cf, kc, ck, _ := tempEdges(t)

	viaDivergent, err := cf.CombineDivergent(ck)
	require.NoError(t, err)
	viaOpposite, err := cf.CombineOpposite(kc)
	require.NoError(t, err)
	viaInvert, err := cf.Invert().CombineSequential(ck)
	require.NoError(t, err)

	assert.InDelta(t, viaDivergent.Multiplier().Value(), viaInvert.Multiplier().Value(), 1e-12)
	assert.InDelta(t, viaDivergent.Multiplier().Value(), viaOpposite.Multiplier().Value(), 1e-12)
	assert.InDelta(t, viaDivergent.Offset().Value(), viaOpposite.Offset().Value(), 1e-9)
}

func TestCombine_UnitMismatchRejected(t *testing.T) {
	mkm, err := affine.NewFactor("m", "km", 0.001)
	require.NoError(t, err)
	ftin, err := affine.NewFactor("ft", "in", 12)
	require.NoError(t, err)

	_, err = mkm.CombineSequential(ftin)
	require.ErrorIs(t, err, affine.ErrUnitMismatch)
	_, err = mkm.CombineConvergent(ftin)
	require.ErrorIs(t, err, affine.ErrUnitMismatch)
	_, err = mkm.CombineDivergent(ftin)
	require.ErrorIs(t, err, affine.ErrUnitMismatch)
	_, err = mkm.CombineOpposite(ftin)
	require.ErrorIs(t, err, affine.ErrUnitMismatch)
}

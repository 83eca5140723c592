package composite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okstad/poromodel/internal/composite"
	"github.com/okstad/poromodel/internal/domain"
	"github.com/okstad/poromodel/internal/grid"
)

func testDomain(t *testing.T) *domain.Domain {
	t.Helper()
	g := grid.NewGraph()
	g.Add(grid.NewSubregion("matrix", 2, 10, 24, 15), nil)
	d, err := domain.New(g)
	require.NoError(t, err)
	return d
}

func TestSubstanceNameUniquePerDomain(t *testing.T) {
	d := testDomain(t)

	_, err := composite.NewWater(d)
	require.NoError(t, err)

	// Same substance on the same domain instance fails.
	_, err = composite.NewWater(d)
	require.Error(t, err)
	var dup *domain.DuplicateSubstanceError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Water", dup.Name)

	// A different domain instance is free to reuse the name.
	d2 := testDomain(t)
	_, err = composite.NewWater(d2)
	assert.NoError(t, err)
}

func TestOverallFractionRegisteredEagerly(t *testing.T) {
	d := testDomain(t)

	assert.False(t, d.IsVariable("z_Water"))
	w, err := composite.NewWater(d)
	require.NoError(t, err)
	assert.True(t, d.IsVariable("z_Water"))

	// The substance holds the registry's reference, not a copy.
	v, err := d.Variable("z_Water")
	require.NoError(t, err)
	assert.Same(t, v, w.OverallFraction())
}

func TestFractionInPhaseCached(t *testing.T) {
	d := testDomain(t)
	w, err := composite.NewWater(d)
	require.NoError(t, err)

	assert.False(t, d.IsVariable("x_Water_Liquid"))

	first, err := w.FractionInPhase("Liquid")
	require.NoError(t, err)
	assert.True(t, d.IsVariable("x_Water_Liquid"))

	// Idempotent: the cached reference comes back.
	second, err := w.FractionInPhase("Liquid")
	require.NoError(t, err)
	assert.Same(t, first, second)

	// A different phase gets its own variable.
	gas, err := w.FractionInPhase("Gas")
	require.NoError(t, err)
	assert.NotSame(t, first, gas)
}

func TestMassDensityDerived(t *testing.T) {
	d := testDomain(t)
	w, err := composite.NewWater(d)
	require.NoError(t, err)

	st := composite.ThermoState{Pressure: 1e5, Temperature: 293.15}
	assert.InDelta(t, 998.0, composite.MassDensity(w, st), 1e-9)
}

func TestCapabilityInterfaces(t *testing.T) {
	d := testDomain(t)

	w, err := composite.NewWater(d)
	require.NoError(t, err)
	q, err := composite.NewQuartzSand(d)
	require.NoError(t, err)
	salt, err := composite.NewSalt(d)
	require.NoError(t, err)

	var _ composite.Fluid = w
	var _ composite.Solid = q

	// Salt is a plain substance: neither fluid nor solid capabilities.
	var s composite.Substance = salt
	_, isFluid := s.(composite.Fluid)
	_, isSolid := s.(composite.Solid)
	assert.False(t, isFluid)
	assert.False(t, isSolid)

	assert.Equal(t, 0.25, q.BasePorosity())
	assert.Equal(t, 1e-12, q.BasePermeability())
	assert.Equal(t, 1.0e-3, w.DynamicViscosity(composite.ThermoState{}))
}

func TestPhaseSubstanceOrderAndDedup(t *testing.T) {
	d := testDomain(t)
	w, err := composite.NewWater(d)
	require.NoError(t, err)
	salt, err := composite.NewSalt(d)
	require.NoError(t, err)

	ph, err := composite.NewPhase(d, "Liquid", w, salt, w)
	require.NoError(t, err)

	require.Equal(t, 2, ph.NumSubstances())
	subs := ph.Substances()
	assert.Equal(t, "Water", subs[0].Name())
	assert.Equal(t, "Salt", subs[1].Name())

	// Phase variables are registered at construction.
	assert.True(t, d.IsVariable("s_Liquid"))
	assert.True(t, d.IsVariable("y_Liquid"))
	assert.Same(t, d, ph.Bound())
}

func TestMaterialSubdomain(t *testing.T) {
	d := testDomain(t)
	q, err := composite.NewQuartzSand(d)
	require.NoError(t, err)

	sub := d.Graph().Nodes()[0].Sub
	m := composite.NewMaterialSubdomain(sub, q)
	assert.Equal(t, 0.25, m.Porosity())
	assert.Equal(t, 1e-12, m.Permeability())
	assert.Contains(t, m.String(), "QuartzSand")
}

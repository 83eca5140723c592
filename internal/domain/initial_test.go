package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okstad/poromodel/internal/composite"
	"github.com/okstad/poromodel/internal/domain"
)

// phasedDomain builds a two-subregion domain with a Liquid(Water,Salt) and
// Gas(Water,Methane) phase pair already added.
func phasedDomain(t *testing.T) *domain.Domain {
	t.Helper()
	d, _, _ := twoSubregionDomain(t)

	w, err := composite.NewWater(d)
	require.NoError(t, err)
	salt, err := composite.NewSalt(d)
	require.NoError(t, err)
	m, err := composite.NewMethane(d)
	require.NoError(t, err)

	liquid, err := composite.NewPhase(d, "Liquid", w, salt)
	require.NoError(t, err)
	gas, err := composite.NewPhase(d, "Gas", w, m)
	require.NoError(t, err)
	require.NoError(t, d.AddPhase(liquid, gas))
	return d
}

func uniformState(d *domain.Domain) domain.InitialState {
	n := d.Graph().NumSubregions()
	st := domain.InitialState{
		Pressure:    make([]domain.Field, n),
		Temperature: make([]domain.Field, n),
		Saturations: make([][]domain.Field, n),
	}
	for i := range st.Pressure {
		st.Pressure[i] = domain.Uniform(1e7)
		st.Temperature[i] = domain.Uniform(350)
		st.Saturations[i] = []domain.Field{domain.Uniform(0.8), domain.Uniform(0.2)}
	}
	return st
}

func TestSetInitialValuesWritesNaturalVariables(t *testing.T) {
	d := phasedDomain(t)
	nodes := d.Graph().Nodes()

	// Heterogeneous pressure on the first subregion.
	cells := nodes[0].Sub.Cells
	pvals := make([]float64, cells)
	for i := range pvals {
		pvals[i] = 1e7 + float64(i)
	}
	st := uniformState(d)
	st.Pressure[0] = domain.PerCell(pvals)

	require.NoError(t, d.SetInitialValues(st, nil, false))

	p, err := d.Variable("p")
	require.NoError(t, err)
	seg, err := p.SegmentValues(nodes[0].Sub.ID)
	require.NoError(t, err)
	assert.Equal(t, pvals, seg)
	seg, err = p.SegmentValues(nodes[1].Sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 1e7, seg[0])

	temp, err := d.Variable("T")
	require.NoError(t, err)
	assert.Equal(t, 350.0, temp.Values()[0])

	// Saturations follow canonical phase order: Liquid first, Gas second.
	phases := d.Phases()
	assert.Equal(t, 0.8, phases[0].Saturation().Values()[0])
	assert.Equal(t, 0.2, phases[1].Saturation().Values()[0])
}

func TestSetInitialValuesFlashSequencing(t *testing.T) {
	d := phasedDomain(t)

	require.NoError(t, d.SetInitialValues(uniformState(d), domain.SaturationFlash{}, false))

	phases := d.Phases()
	// Phase molar fractions mirror saturations under the simple flash.
	assert.Equal(t, 0.8, phases[0].MolarFraction().Values()[0])
	assert.Equal(t, 0.2, phases[1].MolarFraction().Values()[0])

	// Water: 0.8/2 from Liquid plus 0.2/2 from Gas.
	zw, err := d.Variable("z_Water")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, zw.Values()[0], 1e-12)

	zs, err := d.Variable("z_Salt")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, zs.Values()[0], 1e-12)

	zm, err := d.Variable("z_Methane")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, zm.Values()[0], 1e-12)
}

func TestSetInitialValuesEquilibriumIterationIsStable(t *testing.T) {
	d := phasedDomain(t)

	require.NoError(t, d.SetInitialValues(uniformState(d), domain.SaturationFlash{}, true))

	// The second flash round is a full recompute, not an accumulation.
	zw, err := d.Variable("z_Water")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, zw.Values()[0], 1e-12)
}

func TestSetInitialValuesValidation(t *testing.T) {
	d := phasedDomain(t)
	nodes := d.Graph().Nodes()

	// Wrong subregion count.
	st := uniformState(d)
	st.Pressure = st.Pressure[:1]
	assert.Error(t, d.SetInitialValues(st, nil, false))

	// Wrong phase count.
	st = uniformState(d)
	st.Saturations[0] = st.Saturations[0][:1]
	assert.Error(t, d.SetInitialValues(st, nil, false))

	// Per-cell array of the wrong length.
	st = uniformState(d)
	st.Temperature[1] = domain.PerCell(make([]float64, nodes[1].Sub.Cells+1))
	assert.Error(t, d.SetInitialValues(st, nil, false))

	// Saturations must sum to one per cell.
	st = uniformState(d)
	st.Saturations[0] = []domain.Field{domain.Uniform(0.8), domain.Uniform(0.3)}
	err := d.SetInitialValues(st, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum")
}

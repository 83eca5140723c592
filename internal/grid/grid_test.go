package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphMembershipAndCounts(t *testing.T) {
	g := NewGraph()
	a := NewSubregion("a", 2, 100, 220, 121)
	b := NewSubregion("b", 1, 8, 9, 9)
	outside := NewSubregion("outside", 2, 4, 12, 9)

	g.Add(a, nil)
	g.Add(b, map[string]any{"role": "fracture"})

	assert.True(t, g.Contains(a))
	assert.True(t, g.Contains(b))
	assert.False(t, g.Contains(outside))
	assert.False(t, g.Contains(nil))

	assert.Equal(t, 2, g.NumSubregions())
	assert.Equal(t, 108, g.NumCells())

	// Insertion order is stable.
	nodes := g.Nodes()
	require.Len(t, nodes, 2)
	assert.Same(t, a, nodes[0].Sub)
	assert.Same(t, b, nodes[1].Sub)

	// Re-adding is a no-op.
	g.Add(a, nil)
	assert.Equal(t, 2, g.NumSubregions())
}

func TestGraphConnect(t *testing.T) {
	g := NewGraph()
	a := NewSubregion("a", 2, 100, 220, 121)
	b := NewSubregion("b", 1, 8, 9, 9)
	outside := NewSubregion("outside", 2, 4, 12, 9)
	g.Add(a, nil)
	g.Add(b, nil)

	intf, err := g.Connect(a, b, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, intf.Cells)
	assert.Same(t, a, intf.Primary)
	assert.Same(t, b, intf.Secondary)

	_, err = g.Connect(a, outside, 4)
	assert.Error(t, err)

	require.Len(t, g.Interfaces(), 1)
	assert.Len(t, g.InterfacesOf(a), 1)
	assert.Len(t, g.InterfacesOf(b), 1)
	assert.Empty(t, g.InterfacesOf(outside))
}

func TestBuild(t *testing.T) {
	cfg := BuildConfig{Nx: 4, Ny: 3, Fractures: 2, FracCells: 5, Seed: 1}
	g, err := Build(cfg)
	require.NoError(t, err)

	require.Equal(t, 3, g.NumSubregions())
	nodes := g.Nodes()
	assert.Equal(t, "matrix", nodes[0].Sub.Name)
	assert.Equal(t, 12, nodes[0].Sub.Cells)
	assert.Equal(t, 4*4+3*5, nodes[0].Sub.Faces)
	assert.Equal(t, 20, nodes[0].Sub.Nodes)

	require.Len(t, g.Interfaces(), 2)
	for _, intf := range g.Interfaces() {
		assert.Equal(t, 10, intf.Cells)
	}
	assert.Equal(t, 12+5+5, g.NumCells())
}

func TestBuildRejectsEmptyGrid(t *testing.T) {
	_, err := Build(BuildConfig{Nx: 0, Ny: 3})
	assert.Error(t, err)
}

func TestFieldSampler(t *testing.T) {
	sub := NewSubregion("matrix", 2, 50, 0, 0)

	s1 := NewFieldSampler(7)
	s2 := NewFieldSampler(7)

	a := s1.Sample(sub, 1e7, 1e5, 4.0)
	b := s2.Sample(sub, 1e7, 1e5, 4.0)

	require.Len(t, a, 50)
	// Same seed, same field.
	assert.Equal(t, a, b)

	// Amplitude bounds the deviation from the base value.
	for _, v := range a {
		assert.InDelta(t, 1e7, v, 1e5)
	}
}

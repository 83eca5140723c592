package variable

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/okstad/poromodel/internal/grid"
)

// Factory creates domain-wide variables laid out over a domain graph. The
// registry dispatches to one of the two constructors based on name parsing;
// implementations own the layout details.
type Factory interface {
	NewSubregionVariable(g *grid.Graph, dof DOFInfo, name string) (*Variable, error)
	NewInterfaceVariable(g *grid.Graph, dof DOFInfo, name string) (*Variable, error)
}

// GridFactory is the default Factory. It sizes variables directly from the
// graph's entity counts: subregion variables get one segment per subregion
// in graph order, interface variables one segment per interface.
type GridFactory struct{}

// NewSubregionVariable creates a variable defined on every subregion.
func (GridFactory) NewSubregionVariable(g *grid.Graph, dof DOFInfo, name string) (*Variable, error) {
	symbol, _ := Parse(name)
	v := newVariable(name, symbol, ScopeSubregion, dof)
	for _, n := range g.Nodes() {
		v.addSegment(n.Sub.ID, entityDOFs(dof, n.Sub))
	}
	v.values = make([]float64, v.size)
	return v, nil
}

// NewInterfaceVariable creates a variable defined on every interface.
// Interfaces carry cells only, so face and node DOF counts must be zero.
func (GridFactory) NewInterfaceVariable(g *grid.Graph, dof DOFInfo, name string) (*Variable, error) {
	if dof.Faces != 0 || dof.Nodes != 0 {
		return nil, fmt.Errorf("interface variable %q: interfaces carry cell unknowns only", name)
	}
	symbol, _ := Parse(name)
	v := newVariable(name, symbol, ScopeInterface, dof)
	for _, intf := range g.Interfaces() {
		v.addSegment(intf.ID, intf.Cells*dof.Cells)
	}
	v.values = make([]float64, v.size)
	return v, nil
}

func newVariable(name, symbol string, scope Scope, dof DOFInfo) *Variable {
	return &Variable{
		name:     name,
		symbol:   symbol,
		scope:    scope,
		dof:      dof,
		segments: make(map[uuid.UUID]segment),
	}
}

func (v *Variable) addSegment(id uuid.UUID, size int) {
	v.segments[id] = segment{offset: v.size, size: size}
	v.size += size
}

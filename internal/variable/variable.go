// Package variable provides the domain-wide symbolic unknowns of a
// compositional model: their naming, degree-of-freedom layout over a domain
// graph, and the bookkeeping collaborators that size and index them.
package variable

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/okstad/poromodel/internal/grid"
)

// Scope distinguishes where a variable lives.
type Scope uint8

const (
	ScopeSubregion Scope = iota // defined on every subregion of the graph
	ScopeInterface              // defined on every interface between subregions
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeSubregion:
		return "subregion"
	case ScopeInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// DOFInfo specifies unknowns per geometric entity.
type DOFInfo struct {
	Cells int
	Faces int
	Nodes int
}

// DefaultDOF is the standard layout: one unknown per cell.
func DefaultDOF() DOFInfo {
	return DOFInfo{Cells: 1}
}

// segment is one contiguous block of a variable's values belonging to a
// single subregion or interface.
type segment struct {
	offset int
	size   int
}

// Variable is a named, domain-wide symbolic unknown. Immutable in identity
// and layout once created; only its values change. Variables are created by
// a Factory and shared by reference through the registry.
type Variable struct {
	name     string
	symbol   string
	scope    Scope
	dof      DOFInfo
	size     int
	segments map[uuid.UUID]segment // per subregion (or interface) ID
	values   []float64
}

// Name returns the full variable name, unique within a domain.
func (v *Variable) Name() string { return v.name }

// Symbol returns the base symbol parsed from the name.
func (v *Variable) Symbol() string { return v.symbol }

// Scope reports whether the variable lives on subregions or interfaces.
func (v *Variable) Scope() Scope { return v.scope }

// DOF returns the per-entity unknown counts.
func (v *Variable) DOF() DOFInfo { return v.dof }

// Size returns the total number of unknowns across the graph.
func (v *Variable) Size() int { return v.size }

// Values returns the backing value slice. Shared, not copied.
func (v *Variable) Values() []float64 { return v.values }

// SetConstant assigns the same value to every unknown.
func (v *Variable) SetConstant(val float64) {
	for i := range v.values {
		v.values[i] = val
	}
}

// SetValues replaces all values. The length must match Size.
func (v *Variable) SetValues(vals []float64) error {
	if len(vals) != v.size {
		return fmt.Errorf("variable %q: got %d values, layout holds %d", v.name, len(vals), v.size)
	}
	copy(v.values, vals)
	return nil
}

// SegmentValues returns the value slice belonging to one subregion or
// interface, identified by its ID. The slice aliases the backing storage.
func (v *Variable) SegmentValues(id uuid.UUID) ([]float64, error) {
	seg, ok := v.segments[id]
	if !ok {
		return nil, fmt.Errorf("variable %q: no segment for entity %s", v.name, id)
	}
	return v.values[seg.offset : seg.offset+seg.size], nil
}

// SetSegmentConstant assigns one value to every unknown of a single
// subregion or interface.
func (v *Variable) SetSegmentConstant(id uuid.UUID, val float64) error {
	seg, err := v.SegmentValues(id)
	if err != nil {
		return err
	}
	for i := range seg {
		seg[i] = val
	}
	return nil
}

// SetSegmentValues replaces the values of a single subregion or interface.
func (v *Variable) SetSegmentValues(id uuid.UUID, vals []float64) error {
	seg, err := v.SegmentValues(id)
	if err != nil {
		return err
	}
	if len(vals) != len(seg) {
		return fmt.Errorf("variable %q: got %d values for entity %s, segment holds %d",
			v.name, len(vals), id, len(seg))
	}
	copy(seg, vals)
	return nil
}

// String returns a short summary of the variable.
func (v *Variable) String() string {
	return fmt.Sprintf("Variable(%s, scope=%s, size=%d)", v.name, v.scope, v.size)
}

// entityDOFs returns the unknown count one subregion contributes.
func entityDOFs(dof DOFInfo, sub *grid.Subregion) int {
	return sub.Cells*dof.Cells + sub.Faces*dof.Faces + sub.Nodes*dof.Nodes
}

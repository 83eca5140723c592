package composite

import (
	"fmt"

	"github.com/okstad/poromodel/internal/grid"
)

// MaterialSubdomain binds one geometric subregion to the solid substance
// acting as its skeleton material. Every subregion of a domain carries
// exactly one, defaulting to the unit solid until overridden.
type MaterialSubdomain struct {
	Sub      *grid.Subregion
	Material Solid
}

// NewMaterialSubdomain pairs a subregion with its material model.
func NewMaterialSubdomain(sub *grid.Subregion, material Solid) *MaterialSubdomain {
	return &MaterialSubdomain{Sub: sub, Material: material}
}

// Porosity returns the material's base porosity.
func (m *MaterialSubdomain) Porosity() float64 {
	return m.Material.BasePorosity()
}

// Permeability returns the material's base permeability. [m^2]
func (m *MaterialSubdomain) Permeability() float64 {
	return m.Material.BasePermeability()
}

// String returns a short summary of the binding.
func (m *MaterialSubdomain) String() string {
	return fmt.Sprintf("MaterialSubdomain(%s: %s)", m.Sub.Name, m.Material.Name())
}

// Package composite models the chemical makeup of a compositional flow
// model: substances with constant and state-dependent properties, phases
// grouping them, and the material binding of subregions to solids.
//
// Substances and phases are constructed against a Domain and self-register
// their fractional variables through it. They never own geometry.
package composite

import (
	"github.com/okstad/poromodel/internal/grid"
	"github.com/okstad/poromodel/internal/variable"
)

// ThermoState carries the thermodynamic arguments passed to state-dependent
// property functions. Property functions are pure: they read the state and
// persist nothing.
type ThermoState struct {
	Pressure    float64 // [Pa]
	Temperature float64 // [K]
	Enthalpy    float64 // [J / mol]
}

// Domain is the slice of the computational domain that substances and
// phases need: the central variable registry, the per-domain substance-name
// set, and the underlying geometry.
type Domain interface {
	// Variable returns the unique domain-wide variable with the given name,
	// creating it with the default DOF layout when dof is omitted.
	Variable(name string, dof ...variable.DOFInfo) (*variable.Variable, error)
	// AdoptSubstanceName claims a substance name on this domain. Fails if
	// the name is already taken on this exact domain instance.
	AdoptSubstanceName(name string) error
	// Graph returns the domain geometry.
	Graph() *grid.Graph
}

// Substance is a modeled chemical species. Each instance owns an overall
// molar fraction variable (created at construction) and one fraction-in-
// phase variable per phase it appears in (created lazily).
//
// Property functions are scalar, pure functions of the thermodynamic state.
// Doc strings note the intended physical dimension; keep them consistent
// when adding concrete substances.
type Substance interface {
	// Name is the substance's unique name on its domain.
	Name() string
	// OverallFraction is the overall molar fraction variable. Fractional:
	// values in [0, 1].
	OverallFraction() *variable.Variable
	// FractionInPhase returns the molar fraction variable of this substance
	// in the named phase, creating it on first request.
	FractionInPhase(phase string) (*variable.Variable, error)

	// MolarMass returns the constant molar mass. [kg / mol]
	MolarMass() float64
	// MolarDensity returns the molar density. [mol / m^3]
	MolarDensity(s ThermoState) float64
	// FickDiffusivity returns Fick's diffusivity coefficient. [m^2 / s]
	FickDiffusivity(s ThermoState) float64
	// ThermalConductivity returns the thermal conductivity. [W / m / K]
	ThermalConductivity(s ThermoState) float64
}

// Fluid extends Substance with fluid-only properties.
type Fluid interface {
	Substance
	// DynamicViscosity returns the dynamic viscosity. [kg / m / s]
	DynamicViscosity(s ThermoState) float64
}

// Solid extends Substance with properties of porous skeleton materials.
type Solid interface {
	Substance
	// BasePorosity returns the constant base porosity. Dimensionless, fractional.
	BasePorosity() float64
	// BasePermeability returns the constant base permeability. [m^2]
	BasePermeability() float64
}

// MassDensity derives mass density as molar mass times molar density.
// [kg / m^3]. A free function so concrete substances cannot redefine the
// derivation.
func MassDensity(s Substance, st ThermoState) float64 {
	return s.MolarMass() * s.MolarDensity(st)
}

// Base carries the fraction-variable bookkeeping shared by every substance.
// Concrete substances embed it and add their property functions.
type Base struct {
	name    string
	dom     Domain
	overall *variable.Variable
	inPhase map[string]*variable.Variable
}

// NewBase claims the substance name on the domain and eagerly registers the
// overall molar fraction variable. Fails with the domain's duplicate-name
// error if the name is already taken on that instance.
func NewBase(d Domain, name string) (*Base, error) {
	if err := d.AdoptSubstanceName(name); err != nil {
		return nil, err
	}
	overall, err := d.Variable(variable.OverallFractionVar(name))
	if err != nil {
		return nil, err
	}
	return &Base{
		name:    name,
		dom:     d,
		overall: overall,
		inPhase: make(map[string]*variable.Variable),
	}, nil
}

// Name returns the substance name.
func (b *Base) Name() string { return b.name }

// OverallFraction returns the overall molar fraction variable.
func (b *Base) OverallFraction() *variable.Variable { return b.overall }

// FractionInPhase returns the fraction-in-phase variable for the named
// phase. The first request per phase goes through the registry; later
// requests return the cached reference without a registry round-trip.
func (b *Base) FractionInPhase(phase string) (*variable.Variable, error) {
	if v, ok := b.inPhase[phase]; ok {
		return v, nil
	}
	v, err := b.dom.Variable(variable.FractionInPhaseVar(b.name, phase))
	if err != nil {
		return nil, err
	}
	b.inPhase[phase] = v
	return v, nil
}

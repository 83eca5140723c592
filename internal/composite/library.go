// Concrete substances shipped with the framework. Property values are
// standard-condition approximations; models needing accuracy should define
// their own substances with proper correlations.
package composite

// Universal gas constant. [J / mol / K]
const gasConstant = 8.31446

// UnitSolid is the placeholder skeleton material: every property is one.
// It keeps a freshly constructed domain runnable before the modeler assigns
// real materials.
type UnitSolid struct {
	*Base
}

// NewUnitSolid constructs the unit solid on the given domain.
func NewUnitSolid(d Domain) (*UnitSolid, error) {
	b, err := NewBase(d, "UnitSolid")
	if err != nil {
		return nil, err
	}
	return &UnitSolid{Base: b}, nil
}

func (*UnitSolid) MolarMass() float64 { return 1 }
func (*UnitSolid) MolarDensity(ThermoState) float64 { return 1 }
func (*UnitSolid) FickDiffusivity(ThermoState) float64 { return 1 }
func (*UnitSolid) ThermalConductivity(ThermoState) float64 { return 1 }
func (*UnitSolid) BasePorosity() float64 { return 1 }
func (*UnitSolid) BasePermeability() float64 { return 1 }

// QuartzSand is a simple sandstone-like skeleton material.
type QuartzSand struct {
	*Base
}

// NewQuartzSand constructs a quartz sand material on the given domain.
func NewQuartzSand(d Domain) (*QuartzSand, error) {
	b, err := NewBase(d, "QuartzSand")
	if err != nil {
		return nil, err
	}
	return &QuartzSand{Base: b}, nil
}

func (*QuartzSand) MolarMass() float64 { return 0.060084 }

// Incompressible: 2650 kg/m^3 over the molar mass.
func (*QuartzSand) MolarDensity(ThermoState) float64 { return 2650.0 / 0.060084 }
func (*QuartzSand) FickDiffusivity(ThermoState) float64 { return 0 }
func (*QuartzSand) ThermalConductivity(ThermoState) float64 { return 7.7 }
func (*QuartzSand) BasePorosity() float64 { return 0.25 }
func (*QuartzSand) BasePermeability() float64 { return 1e-12 }

// Water is liquid water under ambient conditions.
type Water struct {
	*Base
}

// NewWater constructs water on the given domain.
func NewWater(d Domain) (*Water, error) {
	b, err := NewBase(d, "Water")
	if err != nil {
		return nil, err
	}
	return &Water{Base: b}, nil
}

func (*Water) MolarMass() float64 { return 0.018015 }

// Incompressible: 998 kg/m^3 over the molar mass.
func (*Water) MolarDensity(ThermoState) float64 { return 998.0 / 0.018015 }
func (*Water) FickDiffusivity(ThermoState) float64 { return 2.3e-9 }
func (*Water) ThermalConductivity(ThermoState) float64 { return 0.6 }
func (*Water) DynamicViscosity(ThermoState) float64 { return 1.0e-3 }

// Salt is dissolved sodium chloride.
type Salt struct {
	*Base
}

// NewSalt constructs salt on the given domain.
func NewSalt(d Domain) (*Salt, error) {
	b, err := NewBase(d, "Salt")
	if err != nil {
		return nil, err
	}
	return &Salt{Base: b}, nil
}

func (*Salt) MolarMass() float64 { return 0.058443 }
func (*Salt) MolarDensity(ThermoState) float64 { return 2165.0 / 0.058443 }
func (*Salt) FickDiffusivity(ThermoState) float64 { return 1.3e-9 }
func (*Salt) ThermalConductivity(ThermoState) float64 { return 6.5 }

// Methane is gaseous methane, treated as an ideal gas.
type Methane struct {
	*Base
}

// NewMethane constructs methane on the given domain.
func NewMethane(d Domain) (*Methane, error) {
	b, err := NewBase(d, "Methane")
	if err != nil {
		return nil, err
	}
	return &Methane{Base: b}, nil
}

func (*Methane) MolarMass() float64 { return 0.016043 }

// Ideal gas law: n/V = p / (R T).
func (*Methane) MolarDensity(s ThermoState) float64 {
	if s.Temperature <= 0 {
		return 0
	}
	return s.Pressure / (gasConstant * s.Temperature)
}
func (*Methane) FickDiffusivity(ThermoState) float64 { return 1.5e-5 }
func (*Methane) ThermalConductivity(ThermoState) float64 { return 0.034 }
func (*Methane) DynamicViscosity(ThermoState) float64 { return 1.1e-5 }

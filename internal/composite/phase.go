package composite

import (
	"fmt"

	"github.com/okstad/poromodel/internal/variable"
)

// Phase is a named grouping of substances representing one thermodynamic
// phase. A phase is bound to exactly one domain at construction; the domain
// validates that binding when the phase is added to it.
//
// A phase owns two variables of its own, registered eagerly: its saturation
// and its molar fraction.
type Phase struct {
	name          string
	dom           Domain
	substances    []Substance
	present       map[string]bool
	saturation    *variable.Variable
	molarFraction *variable.Variable
}

// NewPhase constructs a phase against the given domain and registers its
// saturation and molar fraction variables. The given substances are added
// in order.
func NewPhase(d Domain, name string, subs ...Substance) (*Phase, error) {
	sat, err := d.Variable(variable.SaturationVar(name))
	if err != nil {
		return nil, fmt.Errorf("phase %q: %w", name, err)
	}
	frac, err := d.Variable(variable.PhaseFractionVar(name))
	if err != nil {
		return nil, fmt.Errorf("phase %q: %w", name, err)
	}
	p := &Phase{
		name:          name,
		dom:           d,
		present:       make(map[string]bool),
		saturation:    sat,
		molarFraction: frac,
	}
	p.Add(subs...)
	return p, nil
}

// Name returns the phase name.
func (p *Phase) Name() string { return p.name }

// Bound returns the domain the phase was constructed against.
func (p *Phase) Bound() Domain { return p.dom }

// Add appends substances to the phase, preserving order and skipping any
// already present by name.
func (p *Phase) Add(subs ...Substance) {
	for _, s := range subs {
		if p.present[s.Name()] {
			continue
		}
		p.present[s.Name()] = true
		p.substances = append(p.substances, s)
	}
}

// Substances returns the phase's substances in insertion order.
// The returned slice is a copy.
func (p *Phase) Substances() []Substance {
	out := make([]Substance, len(p.substances))
	copy(out, p.substances)
	return out
}

// NumSubstances returns the number of substances in the phase.
func (p *Phase) NumSubstances() int { return len(p.substances) }

// Saturation returns the phase saturation variable.
func (p *Phase) Saturation() *variable.Variable { return p.saturation }

// MolarFraction returns the phase molar fraction variable.
func (p *Phase) MolarFraction() *variable.Variable { return p.molarFraction }

// String returns a short summary of the phase.
func (p *Phase) String() string {
	return fmt.Sprintf("Phase(%s, %d substances)", p.name, len(p.substances))
}

// Initial-state orchestration. The domain's job here is sequencing only:
// validate the natural-variable inputs against graph and phase order, write
// them into the registered variables, then drive the flash collaborator to
// derive the molar unknowns.
package domain

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/okstad/poromodel/internal/variable"
)

// Field is one subregion's worth of a physical quantity: either a
// homogeneous scalar or a heterogeneous per-cell array.
type Field struct {
	scalar float64
	cells  []float64
}

// Uniform returns a homogeneous field.
func Uniform(v float64) Field { return Field{scalar: v} }

// PerCell returns a heterogeneous field with one value per cell.
func PerCell(vals []float64) Field { return Field{cells: vals} }

// at returns the field value for one cell.
func (f Field) at(i int) float64 {
	if f.cells == nil {
		return f.scalar
	}
	return f.cells[i]
}

// check validates the field against a subregion cell count.
func (f Field) check(cells int) error {
	if f.cells != nil && len(f.cells) != cells {
		return fmt.Errorf("field has %d values, subregion has %d cells", len(f.cells), cells)
	}
	return nil
}

// InitialState carries the natural-variable initial conditions. The outer
// index follows graph subregion order; the inner saturation index follows
// the domain's canonical phase order.
type InitialState struct {
	Pressure    []Field
	Temperature []Field
	Saturations [][]Field
}

// Flash is the equilibrium collaborator deriving molar unknowns from the
// natural variables already written into the registry.
type Flash interface {
	// PhaseMolarFractions derives each phase's molar fraction variable.
	PhaseMolarFractions(d *Domain) error
	// OverallFractions derives each substance's overall molar fraction
	// variable.
	OverallFractions(d *Domain) error
}

const saturationTol = 1e-8

// SetInitialValues writes the initial thermodynamic state into the
// registered pressure, temperature, and per-phase saturation variables,
// then sequences the flash computation: phase molar fractions first,
// overall substance fractions second. With iterateEquilibrium set, the two
// flash steps are repeated once more to settle the coupled values.
//
// Saturations must sum to one in every cell.
func (d *Domain) SetInitialValues(st InitialState, flash Flash, iterateEquilibrium bool) error {
	nodes := d.graph.Nodes()
	if len(st.Pressure) != len(nodes) {
		return fmt.Errorf("initial values: %d pressure fields for %d subregions", len(st.Pressure), len(nodes))
	}
	if len(st.Temperature) != len(nodes) {
		return fmt.Errorf("initial values: %d temperature fields for %d subregions", len(st.Temperature), len(nodes))
	}
	if len(st.Saturations) != len(nodes) {
		return fmt.Errorf("initial values: %d saturation field sets for %d subregions", len(st.Saturations), len(nodes))
	}

	phases := d.phases
	for i, n := range nodes {
		if err := st.Pressure[i].check(n.Sub.Cells); err != nil {
			return fmt.Errorf("pressure on %q: %w", n.Sub.Name, err)
		}
		if err := st.Temperature[i].check(n.Sub.Cells); err != nil {
			return fmt.Errorf("temperature on %q: %w", n.Sub.Name, err)
		}
		if len(st.Saturations[i]) != len(phases) {
			return fmt.Errorf("initial values: %d saturation fields on %q for %d phases",
				len(st.Saturations[i]), n.Sub.Name, len(phases))
		}
		for j, sat := range st.Saturations[i] {
			if err := sat.check(n.Sub.Cells); err != nil {
				return fmt.Errorf("saturation of %q on %q: %w", phases[j].Name(), n.Sub.Name, err)
			}
		}
		// Saturations are volume fractions: unitarity per cell.
		for c := 0; c < n.Sub.Cells; c++ {
			sum := 0.0
			for _, sat := range st.Saturations[i] {
				sum += sat.at(c)
			}
			if math.Abs(sum-1.0) > saturationTol {
				return fmt.Errorf("saturations on %q sum to %g in cell %d", n.Sub.Name, sum, c)
			}
		}
	}

	pressure, err := d.Variable(variable.SymPressure)
	if err != nil {
		return err
	}
	temperature, err := d.Variable(variable.SymTemperature)
	if err != nil {
		return err
	}

	for i, n := range nodes {
		if err := writeField(pressure, n.Sub.ID, st.Pressure[i]); err != nil {
			return err
		}
		if err := writeField(temperature, n.Sub.ID, st.Temperature[i]); err != nil {
			return err
		}
		for j, ph := range phases {
			if err := writeField(ph.Saturation(), n.Sub.ID, st.Saturations[i][j]); err != nil {
				return err
			}
		}
	}

	if flash == nil {
		return nil
	}

	rounds := 1
	if iterateEquilibrium {
		rounds = 2
	}
	for r := 0; r < rounds; r++ {
		if err := flash.PhaseMolarFractions(d); err != nil {
			return fmt.Errorf("phase molar fractions: %w", err)
		}
		if err := flash.OverallFractions(d); err != nil {
			return fmt.Errorf("overall fractions: %w", err)
		}
	}
	return nil
}

func writeField(v *variable.Variable, id uuid.UUID, f Field) error {
	if f.cells != nil {
		return v.SetSegmentValues(id, f.cells)
	}
	return v.SetSegmentConstant(id, f.scalar)
}

// SaturationFlash is a simple Flash: it equates phase molar fractions with
// saturations and splits each phase's fraction evenly over its substances.
// A stand-in for a real equilibrium solver; adequate for model setup and
// tests.
type SaturationFlash struct{}

// PhaseMolarFractions copies each phase's saturation values into its molar
// fraction variable.
func (SaturationFlash) PhaseMolarFractions(d *Domain) error {
	for _, ph := range d.phases {
		if err := ph.MolarFraction().SetValues(ph.Saturation().Values()); err != nil {
			return err
		}
	}
	return nil
}

// OverallFractions accumulates, per substance, the even share of every
// phase the substance appears in.
func (SaturationFlash) OverallFractions(d *Domain) error {
	// Zero all overall fractions first: full recompute.
	overall := make(map[string]*variable.Variable)
	for _, ph := range d.phases {
		for _, s := range ph.Substances() {
			if _, ok := overall[s.Name()]; !ok {
				v := s.OverallFraction()
				v.SetConstant(0)
				overall[s.Name()] = v
			}
		}
	}

	for _, ph := range d.phases {
		subs := ph.Substances()
		if len(subs) == 0 {
			continue
		}
		frac := ph.MolarFraction().Values()
		for _, s := range subs {
			vals := overall[s.Name()].Values()
			for i := range vals {
				vals[i] += frac[i] / float64(len(subs))
			}
		}
	}
	return nil
}

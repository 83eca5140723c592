// Recognized symbolic-name fragments. This is static configuration: the
// registry and the composite layer build and parse variable names from these
// fragments, never from free-form strings.
package variable

import "strings"

// Reserved symbols and prefixes for domain-wide variables.
const (
	MortarPrefix = "mortar" // first token of interface-scoped variable names

	SymPressure        = "p"
	SymEnthalpy        = "h"
	SymTemperature     = "T"
	SymSaturation      = "s"
	SymPhaseFraction   = "y" // molar fraction of a phase
	SymOverallFraction = "z" // overall molar fraction of a substance
	SymFractionInPhase = "x" // molar fraction of a substance in a phase
)

// OverallFractionVar returns the name of a substance's overall molar
// fraction variable.
func OverallFractionVar(substance string) string {
	return SymOverallFraction + "_" + substance
}

// FractionInPhaseVar returns the name of the variable holding a substance's
// molar fraction in the named phase.
func FractionInPhaseVar(substance, phase string) string {
	return SymFractionInPhase + "_" + substance + "_" + phase
}

// SaturationVar returns the name of a phase's saturation variable.
func SaturationVar(phase string) string {
	return SymSaturation + "_" + phase
}

// PhaseFractionVar returns the name of a phase's molar fraction variable.
func PhaseFractionVar(phase string) string {
	return SymPhaseFraction + "_" + phase
}

// MortarVar returns the interface-scoped counterpart of a variable name.
func MortarVar(name string) string {
	return MortarPrefix + "_" + name
}

// Parse splits a variable name into its base symbol and scope. A name whose
// first underscore-delimited token equals MortarPrefix is interface-scoped
// with the remainder as base symbol; anything else is subregion-scoped with
// the first token as base symbol. A name without underscores degenerates to
// a subregion-scoped variable whose symbol is the whole name.
func Parse(name string) (symbol string, scope Scope) {
	first, rest, found := strings.Cut(name, "_")
	if found && first == MortarPrefix {
		sym, _, _ := strings.Cut(rest, "_")
		return sym, ScopeInterface
	}
	return first, ScopeSubregion
}

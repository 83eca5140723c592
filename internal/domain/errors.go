package domain

import "fmt"

// DuplicateSubstanceError reports a substance name already claimed on the
// same domain instance. Different domain instances may reuse names freely.
type DuplicateSubstanceError struct {
	Name string
}

func (e *DuplicateSubstanceError) Error() string {
	return fmt.Sprintf("substance %q already present on this domain", e.Name)
}

// UnknownSubregionError reports an operation on a subregion that is not
// part of the domain's graph.
type UnknownSubregionError struct {
	Name string
}

func (e *UnknownSubregionError) Error() string {
	return fmt.Sprintf("subregion %q not among subregions of this domain", e.Name)
}

// PhaseBindingError reports a phase added to a domain other than the one it
// was constructed against.
type PhaseBindingError struct {
	Phase string
}

func (e *PhaseBindingError) Error() string {
	return fmt.Sprintf("phase %q constructed on a different domain", e.Phase)
}

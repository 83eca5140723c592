package variable

// Residual evaluates one named equation against the global unknown vector.
type Residual func(state []float64) []float64

// EquationSet is the equation-bookkeeping peer instantiated alongside the
// registry. The compositional core only hosts it; assembly code registers
// and evaluates residuals through it.
type EquationSet struct {
	residuals map[string]Residual
	order     []string
}

// NewEquationSet creates an empty equation set.
func NewEquationSet() *EquationSet {
	return &EquationSet{residuals: make(map[string]Residual)}
}

// Set registers or replaces the residual for a named equation.
func (e *EquationSet) Set(name string, r Residual) {
	if _, ok := e.residuals[name]; !ok {
		e.order = append(e.order, name)
	}
	e.residuals[name] = r
}

// Get returns the residual registered under name.
func (e *EquationSet) Get(name string) (Residual, bool) {
	r, ok := e.residuals[name]
	return r, ok
}

// Names returns equation names in registration order.
func (e *EquationSet) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of registered equations.
func (e *EquationSet) Len() int { return len(e.residuals) }

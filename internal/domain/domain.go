// Package domain implements the computational domain: the single place a
// compositional model declares, looks up, and reuses its named unknowns,
// resolves which substances appear in which phases, and maps subregions to
// material models. Geometry, DOF indexing, and equation assembly stay with
// their collaborators; this package only orchestrates them.
package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/okstad/poromodel/internal/composite"
	"github.com/okstad/poromodel/internal/grid"
	"github.com/okstad/poromodel/internal/variable"
)

// Composition is the derived substance/phase makeup of the model: for each
// phase, the names of its substances in phase iteration order, plus the set
// of all distinct substance names across phases.
type Composition struct {
	InPhase map[string][]string
	Names   map[string]bool
}

// Subdomain is one subregion with its associated data and material model,
// as yielded by Domain.Subdomains.
type Subdomain struct {
	Sub      *grid.Subregion
	Data     map[string]any
	Material *composite.MaterialSubdomain
}

// Domain is the compositional extension of a domain graph. It owns the
// variable registry exclusively, shares the graph by reference, and keeps
// the phase list in insertion order — that order is the only ordering
// callers may rely on when supplying per-phase values positionally.
type Domain struct {
	graph     *grid.Graph
	factory   variable.Factory
	dofs      variable.Bookkeeper
	equations *variable.EquationSet

	registry map[string]*variable.Variable

	// Substance names claimed on this instance. Guarded for parallel model
	// construction; every other field is setup-time single-threaded.
	subMu      sync.Mutex
	substances map[string]bool

	phases      []*composite.Phase
	composition Composition
	compDirty   bool

	materials map[uuid.UUID]*composite.MaterialSubdomain

	// Default material shared by all subregions until overridden.
	unitSolid *composite.UnitSolid
}

// New builds a computational domain over the given graph. It instantiates
// the DOF manager and equation set, and assigns the unit solid as default
// material to every subregion so the model is runnable before the modeler
// sets real materials.
func New(g *grid.Graph) (*Domain, error) {
	d := &Domain{
		graph:      g,
		factory:    variable.GridFactory{},
		equations:  variable.NewEquationSet(),
		registry:   make(map[string]*variable.Variable),
		substances: make(map[string]bool),
		materials:  make(map[uuid.UUID]*composite.MaterialSubdomain),
	}
	d.dofs = variable.NewManager(d.variables)

	unit, err := composite.NewUnitSolid(d)
	if err != nil {
		return nil, fmt.Errorf("default material: %w", err)
	}
	d.unitSolid = unit

	for _, n := range g.Nodes() {
		d.materials[n.Sub.ID] = composite.NewMaterialSubdomain(n.Sub, unit)
	}
	return d, nil
}

// Variable returns the unique domain-wide variable with the given name,
// creating it if absent. Re-requesting a name returns the same reference;
// a DOF spec passed for an existing name is ignored. When dof is omitted
// the default layout (one unknown per cell) is used.
//
// Names whose first underscore-delimited token is the mortar prefix become
// interface-scoped; all others, including names without underscores, are
// subregion-scoped.
func (d *Domain) Variable(name string, dof ...variable.DOFInfo) (*variable.Variable, error) {
	if v, ok := d.registry[name]; ok {
		return v, nil
	}

	info := variable.DefaultDOF()
	if len(dof) > 0 {
		info = dof[0]
	}

	_, scope := variable.Parse(name)
	var v *variable.Variable
	var err error
	if scope == variable.ScopeInterface {
		v, err = d.factory.NewInterfaceVariable(d.graph, info, name)
	} else {
		v, err = d.factory.NewSubregionVariable(d.graph, info, name)
	}
	if err != nil {
		return nil, fmt.Errorf("create variable %q: %w", name, err)
	}

	d.registry[name] = v
	// A new variable shifts the global unknown layout.
	d.dofs.Update()
	return v, nil
}

// IsVariable reports whether a variable name has been registered.
// Pure query: never creates anything.
func (d *Domain) IsVariable(name string) bool {
	_, ok := d.registry[name]
	return ok
}

// AdoptSubstanceName claims a substance name on this domain instance.
// Returns DuplicateSubstanceError if already claimed here; other domain
// instances are unaffected.
func (d *Domain) AdoptSubstanceName(name string) error {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	if d.substances[name] {
		return &DuplicateSubstanceError{Name: name}
	}
	d.substances[name] = true
	return nil
}

// AddPhase adds one or more phases to the domain and re-resolves the
// composition. The whole batch is validated before any mutation: a phase
// bound to a different domain aborts the call with PhaseBindingError and no
// phase of the batch is added. Phases whose name is already present (in the
// domain or earlier in the batch) are skipped with a warning. Accepted
// phases are appended in call order.
func (d *Domain) AddPhase(phases ...*composite.Phase) error {
	seen := make(map[string]bool, len(d.phases))
	for _, ph := range d.phases {
		seen[ph.Name()] = true
	}

	var accepted []*composite.Phase
	for _, ph := range phases {
		if ph.Bound() != composite.Domain(d) {
			return &PhaseBindingError{Phase: ph.Name()}
		}
		if seen[ph.Name()] {
			slog.Warn("phase already added, skipping", "phase", ph.Name())
			continue
		}
		seen[ph.Name()] = true
		accepted = append(accepted, ph)
	}

	d.phases = append(d.phases, accepted...)
	d.compDirty = true
	d.resolveComposition()
	return nil
}

// Composition returns the current substance/phase makeup, recomputing it if
// the phase list changed since the last read.
func (d *Domain) Composition() Composition {
	if d.compDirty {
		d.resolveComposition()
	}
	return d.composition
}

// resolveComposition rebuilds the composition from scratch by walking every
// phase in order. Full rebuild, not an incremental merge: running it twice
// with an unchanged phase list yields the same result.
func (d *Domain) resolveComposition() {
	inPhase := make(map[string][]string, len(d.phases))
	names := make(map[string]bool)

	for _, ph := range d.phases {
		subs := ph.Substances()
		inThis := make([]string, 0, len(subs))
		for _, s := range subs {
			inThis = append(inThis, s.Name())
			names[s.Name()] = true
		}
		inPhase[ph.Name()] = inThis
	}

	d.composition = Composition{InPhase: inPhase, Names: names}
	d.compDirty = false
}

// AssignMaterial replaces the material model of a subregion. The subregion
// must belong to the domain's graph; the previous binding (default or
// explicit) is overwritten in place. The same solid may serve any number of
// subregions.
func (d *Domain) AssignMaterial(sub *grid.Subregion, material composite.Solid) error {
	if !d.graph.Contains(sub) {
		name := "<nil>"
		if sub != nil {
			name = sub.Name
		}
		return &UnknownSubregionError{Name: name}
	}
	d.materials[sub.ID] = composite.NewMaterialSubdomain(sub, material)
	return nil
}

// Material returns the material binding of a subregion.
func (d *Domain) Material(sub *grid.Subregion) (*composite.MaterialSubdomain, bool) {
	m, ok := d.materials[sub.ID]
	return m, ok
}

// Subdomains returns every subregion with its data and material, in graph
// order.
func (d *Domain) Subdomains() []Subdomain {
	out := make([]Subdomain, 0, d.graph.NumSubregions())
	for _, n := range d.graph.Nodes() {
		out = append(out, Subdomain{Sub: n.Sub, Data: n.Data, Material: d.materials[n.Sub.ID]})
	}
	return out
}

// Graph returns the underlying domain graph (shared reference).
func (d *Domain) Graph() *grid.Graph { return d.graph }

// Equations returns the equation-bookkeeping peer.
func (d *Domain) Equations() *variable.EquationSet { return d.equations }

// DOFs returns the degree-of-freedom bookkeeping collaborator.
func (d *Domain) DOFs() variable.Bookkeeper { return d.dofs }

// NumCells returns the total cell count of the domain graph.
func (d *Domain) NumCells() int { return d.graph.NumCells() }

// NumPhases returns the number of added phases.
func (d *Domain) NumPhases() int { return len(d.phases) }

// NumSubstances returns the number of distinct substances across all added
// phases.
func (d *Domain) NumSubstances() int {
	return len(d.Composition().Names)
}

// Phases returns the added phases in insertion order. This order is
// canonical: use it whenever per-phase values are supplied positionally.
func (d *Domain) Phases() []*composite.Phase {
	out := make([]*composite.Phase, len(d.phases))
	copy(out, d.phases)
	return out
}

// VariableNames returns all registered variable names, sorted.
func (d *Domain) VariableNames() []string {
	names := make([]string, 0, len(d.registry))
	for name := range d.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// variables snapshots the registry for the DOF manager.
func (d *Domain) variables() []*variable.Variable {
	out := make([]*variable.Variable, 0, len(d.registry))
	for _, v := range d.registry {
		out = append(out, v)
	}
	return out
}

// String lists the registered variables and phases, followed by the graph
// summary.
func (d *Domain) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Computational domain with %d variables:\n", len(d.registry))
	for _, name := range d.VariableNames() {
		b.WriteString(name + "\n")
	}
	fmt.Fprintf(&b, "\nand %d phases:\n", len(d.phases))
	for _, ph := range d.phases {
		b.WriteString(ph.Name() + "\n")
	}
	b.WriteString("\non graph\n")
	b.WriteString(d.graph.String())
	return b.String()
}

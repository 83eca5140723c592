// Package grid provides the discretized multi-region geometry: subregions,
// the interfaces connecting them, and the graph that ties them together.
// The compositional core treats all of this as opaque topology; only entity
// counts and membership are ever inspected.
package grid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Subregion is one discretized piece of the simulation domain.
// Immutable after construction and used as a key throughout the model.
type Subregion struct {
	ID    uuid.UUID
	Name  string
	Dim   int // topological dimension (3 for matrix blocks, 2/1 for fractures)
	Cells int
	Faces int
	Nodes int
}

// NewSubregion creates a subregion handle with a fresh identity.
func NewSubregion(name string, dim, cells, faces, nodes int) *Subregion {
	return &Subregion{
		ID:    uuid.New(),
		Name:  name,
		Dim:   dim,
		Cells: cells,
		Faces: faces,
		Nodes: nodes,
	}
}

// String returns a short summary of the subregion.
func (s *Subregion) String() string {
	return fmt.Sprintf("Subregion(%s, dim=%d, cells=%d)", s.Name, s.Dim, s.Cells)
}

// Interface is the shared boundary connecting two subregions. It carries its
// own cells so interface-scoped unknowns (e.g. fluxes) have somewhere to live.
type Interface struct {
	ID        uuid.UUID
	Name      string
	Primary   *Subregion // higher-dimensional side
	Secondary *Subregion // lower-dimensional side
	Cells     int
}

// String returns a short summary of the interface.
func (i *Interface) String() string {
	return fmt.Sprintf("Interface(%s <-> %s, cells=%d)", i.Primary.Name, i.Secondary.Name, i.Cells)
}

// Node pairs a subregion with its associated simulation data.
type Node struct {
	Sub  *Subregion
	Data map[string]any
}

// Graph is the collection of subregions and their connecting interfaces.
// Subregion order is insertion order and is stable for the life of the graph.
type Graph struct {
	nodes      []Node
	members    map[uuid.UUID]bool
	interfaces []*Interface
}

// NewGraph creates an empty domain graph.
func NewGraph() *Graph {
	return &Graph{members: make(map[uuid.UUID]bool)}
}

// Add inserts a subregion with its associated data. Adding the same
// subregion twice is a no-op.
func (g *Graph) Add(sub *Subregion, data map[string]any) {
	if g.members[sub.ID] {
		return
	}
	if data == nil {
		data = make(map[string]any)
	}
	g.members[sub.ID] = true
	g.nodes = append(g.nodes, Node{Sub: sub, Data: data})
}

// Connect creates an interface between two member subregions with the given
// number of interface cells.
func (g *Graph) Connect(primary, secondary *Subregion, cells int) (*Interface, error) {
	if !g.Contains(primary) {
		return nil, fmt.Errorf("connect: subregion %q not in graph", primary.Name)
	}
	if !g.Contains(secondary) {
		return nil, fmt.Errorf("connect: subregion %q not in graph", secondary.Name)
	}
	intf := &Interface{
		ID:        uuid.New(),
		Name:      primary.Name + "_" + secondary.Name,
		Primary:   primary,
		Secondary: secondary,
		Cells:     cells,
	}
	g.interfaces = append(g.interfaces, intf)
	return intf, nil
}

// Contains reports whether the subregion belongs to this graph.
func (g *Graph) Contains(sub *Subregion) bool {
	return sub != nil && g.members[sub.ID]
}

// Nodes returns the (subregion, data) pairs in insertion order.
// The returned slice is shared; callers must not reorder it.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Interfaces returns all interfaces in creation order.
func (g *Graph) Interfaces() []*Interface {
	return g.interfaces
}

// InterfacesOf returns the interfaces touching the given subregion.
func (g *Graph) InterfacesOf(sub *Subregion) []*Interface {
	var out []*Interface
	for _, intf := range g.interfaces {
		if intf.Primary == sub || intf.Secondary == sub {
			out = append(out, intf)
		}
	}
	return out
}

// NumSubregions returns the number of subregions in the graph.
func (g *Graph) NumSubregions() int {
	return len(g.nodes)
}

// NumCells returns the total cell count over all subregions.
// Interface cells are not included.
func (g *Graph) NumCells() int {
	total := 0
	for _, n := range g.nodes {
		total += n.Sub.Cells
	}
	return total
}

// String returns a summary of the graph.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph(%d subregions, %d interfaces, %d cells)\n",
		len(g.nodes), len(g.interfaces), g.NumCells())
	for _, n := range g.nodes {
		b.WriteString("  " + n.Sub.String() + "\n")
	}
	for _, intf := range g.interfaces {
		b.WriteString("  " + intf.String() + "\n")
	}
	return b.String()
}

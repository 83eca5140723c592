package variable

import "sort"

// Bookkeeper is the degree-of-freedom bookkeeping collaborator. Update must
// be called after every newly created variable; redundant calls are
// harmless.
type Bookkeeper interface {
	Update()
}

// Block is one variable's slice of the global unknown vector.
type Block struct {
	Offset int
	Size   int
}

// Manager is the default Bookkeeper. It assigns each registered variable a
// contiguous block of global unknown indices, ordered by variable name so
// the layout is deterministic regardless of registration order.
type Manager struct {
	snapshot func() []*Variable
	blocks   map[string]Block
	total    int
	updates  int
}

// NewManager creates a Manager reading the current registry contents
// through the snapshot function.
func NewManager(snapshot func() []*Variable) *Manager {
	return &Manager{
		snapshot: snapshot,
		blocks:   make(map[string]Block),
	}
}

// Update recomputes the global index blocks from the current registry.
// Idempotent: repeated calls with an unchanged registry produce the same
// layout.
func (m *Manager) Update() {
	vars := m.snapshot()
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name() < vars[j].Name() })

	m.blocks = make(map[string]Block, len(vars))
	offset := 0
	for _, v := range vars {
		m.blocks[v.Name()] = Block{Offset: offset, Size: v.Size()}
		offset += v.Size()
	}
	m.total = offset
	m.updates++
}

// NumDOFs returns the total number of global unknowns.
func (m *Manager) NumDOFs() int { return m.total }

// Block returns the global index block of a variable by name.
func (m *Manager) Block(name string) (Block, bool) {
	b, ok := m.blocks[name]
	return b, ok
}

// Updates returns how many times Update has run.
func (m *Manager) Updates() int { return m.updates }

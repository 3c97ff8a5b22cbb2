package sections

// Block is the content committed under one canonical heading spelling.
type Block struct {
	Canonical string
	Kind      Kind
	Lines     []string
}

// Map is an insertion-ordered map of blocks keyed by canonical spelling.
//
// Put overwrites: committing a spelling again replaces its earlier block and
// moves it to the most recent position. Latest resolves a kind to the most
// recently committed block of any of its spellings, so a repeated heading
// always wins over earlier ones.
type Map struct {
	order  []string
	blocks map[string]*Block
}

// NewMap creates an empty section map.
func NewMap() *Map {
	return &Map{blocks: make(map[string]*Block)}
}

// Put commits lines under the heading, replacing any earlier block.
func (m *Map) Put(h Heading, lines []string) {
	if _, ok := m.blocks[h.Canonical]; ok {
		m.remove(h.Canonical)
	}

	m.order = append(m.order, h.Canonical)
	m.blocks[h.Canonical] = &Block{
		Canonical: h.Canonical,
		Kind:      h.Kind,
		Lines:     append([]string(nil), lines...),
	}
}

func (m *Map) remove(canonical string) {
	for idx, name := range m.order {
		if name == canonical {
			m.order = append(m.order[:idx], m.order[idx+1:]...)
			break
		}
	}
	delete(m.blocks, canonical)
}

// Get returns the block stored under a canonical spelling.
func (m *Map) Get(canonical string) (*Block, bool) {
	b, ok := m.blocks[canonical]
	return b, ok
}

// Latest returns the most recently committed block of the kind.
func (m *Map) Latest(kind Kind) (*Block, bool) {
	for idx := len(m.order) - 1; idx >= 0; idx-- {
		b := m.blocks[m.order[idx]]
		if b.Kind == kind {
			return b, true
		}
	}
	return nil, false
}

// Has reports whether any block of the kind was committed.
func (m *Map) Has(kind Kind) bool {
	_, ok := m.Latest(kind)
	return ok
}

// Blocks returns blocks in commit order.
func (m *Map) Blocks() []*Block {
	result := make([]*Block, 0, len(m.order))
	for _, name := range m.order {
		result = append(result, m.blocks[name])
	}
	return result
}

// Len returns the number of stored blocks.
func (m *Map) Len() int {
	return len(m.order)
}

package cow

import "github.com/jadedm/feed-the-cow/internal/core"

// Kind identifies what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindGrass
	KindHazard
)

// String returns the sprite name used for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "cow"
	case KindGrass:
		return "grass"
	case KindHazard:
		return "injection"
	default:
		return "unknown"
	}
}

// Entity is anything that moves through the world.
// Pos is the top-left corner of its bounding box.
type Entity struct {
	Kind   Kind
	Pos    core.Vec
	Vel    core.Vec
	Size   core.Vec
	Active bool
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.Pos, e.Size)
}

// OutOfWorld reports whether the entity has fully left the world on the left.
func (e Entity) OutOfWorld() bool {
	return e.Pos.X+e.Size.X < 0
}

// Pool is a homogeneous collection of entities. Entities are recycled in
// place and never removed, so indices stay stable for a whole session.
type Pool struct {
	kind  Kind
	items []Entity
}

// NewPool creates an empty pool for entities of the given kind.
func NewPool(kind Kind, capacity int) *Pool {
	return &Pool{
		kind:  kind,
		items: make([]Entity, 0, capacity),
	}
}

// Kind returns the kind of entity the pool holds.
func (p *Pool) Kind() Kind {
	return p.kind
}

// Len returns the number of entities in the pool.
func (p *Pool) Len() int {
	return len(p.items)
}

// Add appends an entity and returns its index.
func (p *Pool) Add(e Entity) int {
	e.Kind = p.kind
	p.items = append(p.items, e)
	return len(p.items) - 1
}

// At returns a pointer to the i-th entity for in-place updates.
func (p *Pool) At(i int) *Entity {
	return &p.items[i]
}

// Items returns the entities. Callers must not append to the slice.
func (p *Pool) Items() []Entity {
	return p.items
}

package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

// Box is an axis-aligned rectangle given by its corners.
type Box struct {
	Min geom.Vector2 `json:"min" yaml:"min"`
	Max geom.Vector2 `json:"max" yaml:"max"`
}

// Model owns the drawing. It is not safe for concurrent use.
type Model struct {
	entities []*Entity

	Axes         *AxisManager
	Layers       *LayerManager
	Definitions  *Definitions
	ExportRegion *Box

	// nextID is the last id handed out; it only ever grows.
	nextID uint64
}

func NewModel() *Model {
	return &Model{
		Axes:        NewAxisManager(),
		Layers:      NewLayerManager(),
		Definitions: NewDefinitions(),
	}
}

// NextID allocates a fresh entity id.
func (m *Model) NextID() uint64 {
	m.nextID++
	return m.nextID
}

// LastID is the most recently allocated id.
func (m *Model) LastID() uint64 { return m.nextID }

// reserve keeps the counter past every id in list.
func (m *Model) reserve(list []*Entity) {
	for _, e := range list {
		e.Walk(func(n *Entity, _ int) bool {
			if n.ID > m.nextID {
				m.nextID = n.ID
			}
			return true
		})
	}
}

// NewEntity wraps s in an entity with a fresh id on the active layer. The
// entity is not added to the model.
func (m *Model) NewEntity(s Shape) *Entity {
	name := ShapeNone.TypeName()
	if s != nil {
		name = s.Kind().TypeName()
	}
	return &Entity{ID: m.NextID(), Name: name, LayerID: m.Layers.Active, Shape: s}
}

// NewGroup builds a container around children.
func (m *Model) NewGroup(name string, children ...*Entity) *Entity {
	g := m.NewEntity(nil)
	if name != "" {
		g.Name = name
	}
	g.Children = children
	return g
}

// Add appends a new top-level entity for s and returns it.
func (m *Model) Add(s Shape) *Entity {
	e := m.NewEntity(s)
	m.entities = append(m.entities, e)
	return e
}

// AddEntity appends e as a top-level entity. An entity without an id gets
// one.
func (m *Model) AddEntity(e *Entity) {
	if e.ID == 0 {
		e.ID = m.NextID()
	} else {
		m.reserve([]*Entity{e})
	}
	if e.Name == "" {
		e.Name = e.TypeName()
	}
	m.entities = append(m.entities, e)
}

// CloneEntity deep-copies e with fresh ids throughout the subtree.
func (m *Model) CloneEntity(e *Entity) *Entity {
	cp := &Entity{ID: m.NextID(), Name: e.Name, LayerID: e.LayerID}
	if e.Shape != nil {
		cp.Shape = e.Shape.Clone()
	}
	for _, c := range e.Children {
		cp.Children = append(cp.Children, m.CloneEntity(c))
	}
	return cp
}

// Entities returns the top-level list. Callers must not append to it.
func (m *Model) Entities() []*Entity { return m.entities }

func (m *Model) Len() int { return len(m.entities) }

// SetEntities replaces the top-level list. The id counter is never moved
// backwards.
func (m *Model) SetEntities(list []*Entity) {
	m.entities = list
	m.reserve(list)
}

// Snapshot deep-copies the top-level list, keeping ids.
func (m *Model) Snapshot() []*Entity { return CloneEntities(m.entities) }

// Clear drops every entity. Ids are not reused.
func (m *Model) Clear() { m.entities = nil }

func (m *Model) Find(id uint64) *Entity {
	for _, e := range m.entities {
		if f := e.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Walk visits every entity depth first in list order.
func (m *Model) Walk(fn func(e *Entity, depth int) bool) {
	for _, e := range m.entities {
		e.Walk(fn)
	}
}

// Pick returns the top-most entity under p; later entities are on top.
func (m *Model) Pick(p geom.Vector2, tol float32) (uint64, bool) {
	for i := len(m.entities) - 1; i >= 0; i-- {
		if id, ok := m.entities[i].Pick(p, tol); ok {
			return id, true
		}
	}
	return 0, false
}

// Remove deletes every entity whose id is in ids, at any depth, and returns
// how many were removed. Descendants of a removed entity are not counted.
func (m *Model) Remove(ids Selection) int {
	var n int
	m.entities = removeFrom(m.entities, ids, &n)
	return n
}

func removeFrom(list []*Entity, ids Selection, n *int) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if ids.Has(e.ID) {
			*n++
			continue
		}
		if len(e.Children) > 0 {
			e.Children = removeFrom(e.Children, ids, n)
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// TopLevelSelected returns the selected ids that have no selected ancestor,
// in tree order.
func (m *Model) TopLevelSelected(sel Selection) []uint64 {
	var out []uint64
	m.Walk(func(e *Entity, _ int) bool {
		if sel.Has(e.ID) {
			out = append(out, e.ID)
			return false
		}
		return true
	})
	return out
}

// SelectedEntities resolves TopLevelSelected to entities.
func (m *Model) SelectedEntities(sel Selection) []*Entity {
	ids := m.TopLevelSelected(sel)
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.Find(id))
	}
	return out
}

// Bounds is the union of all entity boxes. An empty model reports
// (0,0)-(100,100); each extent is at least 1.
func (m *Model) Bounds() (geom.Vector2, geom.Vector2) {
	lo, hi := emptyBox()
	for _, e := range m.entities {
		elo, ehi := e.BoundingBox()
		lo, hi = geom.Min(lo, elo), geom.Max(hi, ehi)
	}
	if lo.X > hi.X || lo.Y > hi.Y {
		return geom.Vec(0, 0), geom.Vec(100, 100)
	}
	if hi.X-lo.X < 1 {
		hi.X = lo.X + 1
	}
	if hi.Y-lo.Y < 1 {
		hi.Y = lo.Y + 1
	}
	return lo, hi
}

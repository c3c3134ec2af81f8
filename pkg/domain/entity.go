package domain

import (
	"encoding/json"
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Entity is a node of the drawing tree. A leaf wraps a Shape; a container
// has a nil Shape and groups Children.
type Entity struct {
	ID       uint64
	Name     string
	LayerID  uint64
	Shape    Shape
	Children []*Entity
}

// Kind returns the shape kind, ShapeNone for containers.
func (e *Entity) Kind() ShapeKind {
	if e.Shape == nil {
		return ShapeNone
	}
	return e.Shape.Kind()
}

func (e *Entity) TypeName() string { return e.Kind().TypeName() }

func (e *Entity) IsContainer() bool { return e.Shape == nil }

// AddChild appends c. Children are only ever appended, never re-parented,
// so the tree stays acyclic.
func (e *Entity) AddChild(c *Entity) {
	e.Children = append(e.Children, c)
}

// HitTest checks the entity's own shape, then its children.
func (e *Entity) HitTest(p geom.Vector2, tol float32) bool {
	if e.Shape != nil && e.Shape.HitTest(p, tol) {
		return true
	}
	for _, c := range e.Children {
		if c.HitTest(p, tol) {
			return true
		}
	}
	return false
}

// Pick returns the id of the deepest, top-most entity hit at p.
// Children are tried last-first before the entity itself.
func (e *Entity) Pick(p geom.Vector2, tol float32) (uint64, bool) {
	for i := len(e.Children) - 1; i >= 0; i-- {
		if id, ok := e.Children[i].Pick(p, tol); ok {
			return id, true
		}
	}
	if e.Shape != nil && e.Shape.HitTest(p, tol) {
		return e.ID, true
	}
	return 0, false
}

// Find searches the subtree rooted at e.
func (e *Entity) Find(id uint64) *Entity {
	if e.ID == id {
		return e
	}
	for _, c := range e.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the node's children.
func (e *Entity) Walk(fn func(e *Entity, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Entity) walk(fn func(*Entity, int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		c.walk(fn, depth+1)
	}
}

// Center is the shape centre, or the centre of the bounding box for a
// container.
func (e *Entity) Center() geom.Vector2 {
	if e.Shape != nil {
		return e.Shape.Center()
	}
	lo, hi := e.BoundingBox()
	return lo.Lerp(hi, 0.5)
}

// BoundingBox is the union over the shape and all children. An empty
// container yields an inverted box (min > max).
func (e *Entity) BoundingBox() (geom.Vector2, geom.Vector2) {
	lo, hi := emptyBox()
	if e.Shape != nil {
		lo, hi = e.Shape.BoundingBox()
	}
	for _, c := range e.Children {
		clo, chi := c.BoundingBox()
		lo, hi = geom.Min(lo, clo), geom.Max(hi, chi)
	}
	return lo, hi
}

// Polyline returns the shape outline; containers have none.
func (e *Entity) Polyline() []geom.Vector2 {
	if e.Shape == nil {
		return nil
	}
	return e.Shape.Polyline()
}

func (e *Entity) Translate(d geom.Vector2) {
	if e.Shape != nil {
		e.Shape.Translate(d)
	}
	for _, c := range e.Children {
		c.Translate(d)
	}
}

func (e *Entity) Rotate(pivot geom.Vector2, angle float32) {
	if e.Shape != nil {
		e.Shape.Rotate(pivot, angle)
	}
	for _, c := range e.Children {
		c.Rotate(pivot, angle)
	}
}

func (e *Entity) Scale(base geom.Vector2, factor float32) {
	if e.Shape != nil {
		e.Shape.Scale(base, factor)
	}
	for _, c := range e.Children {
		c.Scale(base, factor)
	}
}

func (e *Entity) IsClosed() bool {
	return (e.Shape != nil && e.Shape.IsClosed()) || len(e.Children) > 0
}

func (e *Entity) IsFilled() bool {
	if e.Shape != nil && e.Shape.IsFilled() {
		return true
	}
	for _, c := range e.Children {
		if c.IsFilled() {
			return true
		}
	}
	return false
}

// Clone deep-copies the subtree, keeping ids.
func (e *Entity) Clone() *Entity {
	cp := &Entity{ID: e.ID, Name: e.Name, LayerID: e.LayerID}
	if e.Shape != nil {
		cp.Shape = e.Shape.Clone()
	}
	if len(e.Children) > 0 {
		cp.Children = make([]*Entity, len(e.Children))
		for i, c := range e.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return cp
}

// CloneEntities deep-copies a list of trees.
func CloneEntities(list []*Entity) []*Entity {
	out := make([]*Entity, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}

type entityDoc struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	LayerID  uint64          `json:"layer_id"`
	Kind     ShapeKind       `json:"kind,omitempty"`
	Shape    json.RawMessage `json:"shape,omitempty"`
	Children []*Entity       `json:"children,omitempty"`
}

// MarshalJSON writes the shape under "shape" with its "kind" discriminator.
func (e *Entity) MarshalJSON() ([]byte, error) {
	doc := entityDoc{ID: e.ID, Name: e.Name, LayerID: e.LayerID, Children: e.Children}
	if e.Shape != nil {
		raw, err := json.Marshal(e.Shape)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s shape of entity %d: %w", e.Shape.Kind(), e.ID, err)
		}
		doc.Kind = e.Shape.Kind()
		doc.Shape = raw
	}
	return json.Marshal(doc)
}

func (e *Entity) UnmarshalJSON(data []byte) error {
	var doc entityDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*e = Entity{ID: doc.ID, Name: doc.Name, LayerID: doc.LayerID, Children: doc.Children}
	if doc.Kind == ShapeNone {
		return nil
	}
	s, ok := newShape(doc.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShape, doc.Kind)
	}
	if len(doc.Shape) > 0 {
		if err := json.Unmarshal(doc.Shape, s); err != nil {
			return fmt.Errorf("failed to decode %s shape of entity %d: %w", doc.Kind, doc.ID, err)
		}
	}
	e.Shape = s
	return nil
}

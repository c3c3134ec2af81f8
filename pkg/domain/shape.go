package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

// ShapeKind tags the concrete type behind a Shape.
type ShapeKind string

const (
	ShapeNone      ShapeKind = ""
	ShapeLine      ShapeKind = "line"
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
	ShapeArc       ShapeKind = "arc"
	ShapeText      ShapeKind = "text"
	ShapeColumn    ShapeKind = "column"
	ShapeBeam      ShapeKind = "beam"
)

// TypeName returns the display name used as the default entity name.
func (k ShapeKind) TypeName() string {
	switch k {
	case ShapeLine:
		return "Line"
	case ShapeCircle:
		return "Circle"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeArc:
		return "Arc"
	case ShapeText:
		return "Text"
	case ShapeColumn:
		return "Column"
	case ShapeBeam:
		return "Beam"
	default:
		return "Empty"
	}
}

// Shape is a drawable primitive. The set of implementations is closed.
type Shape interface {
	Kind() ShapeKind

	// HitTest reports whether p lies on (or, for filled shapes, inside) the
	// shape within tol.
	HitTest(p geom.Vector2, tol float32) bool
	Center() geom.Vector2
	// BoundingBox returns the axis-aligned box as (min, max).
	BoundingBox() (geom.Vector2, geom.Vector2)
	Polyline() []geom.Vector2

	Translate(delta geom.Vector2)
	Rotate(pivot geom.Vector2, angle float32)
	Scale(base geom.Vector2, factor float32)

	IsClosed() bool
	IsFilled() bool

	Clone() Shape
}

func newShape(kind ShapeKind) (Shape, bool) {
	switch kind {
	case ShapeLine:
		return &Line{}, true
	case ShapeCircle:
		return &Circle{}, true
	case ShapeRectangle:
		return &Rectangle{}, true
	case ShapeArc:
		return &Arc{}, true
	case ShapeText:
		return &Text{}, true
	case ShapeColumn:
		return &Column{}, true
	case ShapeBeam:
		return &Beam{}, true
	}
	return nil, false
}

// emptyBox is the inverted box used as the identity for unions.
func emptyBox() (geom.Vector2, geom.Vector2) {
	const big = float32(3.4e38)
	return geom.Vec(big, big), geom.Vec(-big, -big)
}

package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

// Rectangle is axis aligned. Min and Max are normalised by NewRectangle.
type Rectangle struct {
	Min    geom.Vector2 `json:"min" yaml:"min"`
	Max    geom.Vector2 `json:"max" yaml:"max"`
	Filled bool         `json:"filled" yaml:"filled"`
}

// NewRectangle builds a rectangle from two opposite corners in any order.
func NewRectangle(a, b geom.Vector2, filled bool) *Rectangle {
	return &Rectangle{Min: geom.Min(a, b), Max: geom.Max(a, b), Filled: filled}
}

func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }

func (r *Rectangle) corners() [4]geom.Vector2 {
	return [4]geom.Vector2{
		r.Min,
		geom.Vec(r.Max.X, r.Min.Y),
		r.Max,
		geom.Vec(r.Min.X, r.Max.Y),
	}
}

// Edges returns the four sides as start/end pairs, counter-clockwise.
func (r *Rectangle) Edges() [4][2]geom.Vector2 {
	c := r.corners()
	return [4][2]geom.Vector2{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
}

func (r *Rectangle) HitTest(p geom.Vector2, tol float32) bool {
	inside := p.X >= r.Min.X-tol && p.X <= r.Max.X+tol &&
		p.Y >= r.Min.Y-tol && p.Y <= r.Max.Y+tol
	if r.Filled || !inside {
		return inside
	}
	nearX := geom.Abs(p.X-r.Min.X) < tol || geom.Abs(p.X-r.Max.X) < tol
	nearY := geom.Abs(p.Y-r.Min.Y) < tol || geom.Abs(p.Y-r.Max.Y) < tol
	return nearX || nearY
}

func (r *Rectangle) Center() geom.Vector2 { return r.Min.Lerp(r.Max, 0.5) }

func (r *Rectangle) BoundingBox() (geom.Vector2, geom.Vector2) {
	return geom.Min(r.Min, r.Max), geom.Max(r.Min, r.Max)
}

func (r *Rectangle) Polyline() []geom.Vector2 {
	c := r.corners()
	return []geom.Vector2{c[0], c[1], c[2], c[3], c[0]}
}

func (r *Rectangle) Translate(d geom.Vector2) {
	r.Min = r.Min.Add(d)
	r.Max = r.Max.Add(d)
}

// Rotate keeps the rectangle axis aligned: it becomes the bounding box of
// the rotated corners, so repeated rotation grows it.
func (r *Rectangle) Rotate(pivot geom.Vector2, angle float32) {
	c := r.corners()
	for i := range c {
		c[i] = c[i].Rotate(pivot, angle)
	}
	lo, hi, _ := geom.BoundsOf(c[:])
	r.Min, r.Max = lo, hi
}

func (r *Rectangle) Scale(base geom.Vector2, factor float32) {
	a, b := r.Min.ScaleFrom(base, factor), r.Max.ScaleFrom(base, factor)
	r.Min, r.Max = geom.Min(a, b), geom.Max(a, b)
}

func (r *Rectangle) IsClosed() bool { return true }
func (r *Rectangle) IsFilled() bool { return r.Filled }

func (r *Rectangle) Clone() Shape {
	cp := *r
	return &cp
}

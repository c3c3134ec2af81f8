package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

const circleSegments = 32

// Circle is stored by its Origin (centre point) and radius.
type Circle struct {
	Origin geom.Vector2 `json:"center" yaml:"center"`
	Radius float32      `json:"radius" yaml:"radius"`
	Filled bool         `json:"filled" yaml:"filled"`
}

func NewCircle(center geom.Vector2, radius float32, filled bool) *Circle {
	return &Circle{Origin: center, Radius: radius, Filled: filled}
}

func (c *Circle) Kind() ShapeKind { return ShapeCircle }

func (c *Circle) HitTest(p geom.Vector2, tol float32) bool {
	d := p.Dist(c.Origin)
	if c.Filled {
		return d <= c.Radius+tol
	}
	return geom.Abs(d-c.Radius) < tol
}

func (c *Circle) Center() geom.Vector2 { return c.Origin }

func (c *Circle) BoundingBox() (geom.Vector2, geom.Vector2) {
	r := geom.Vec(c.Radius, c.Radius)
	return c.Origin.Sub(r), c.Origin.Add(r)
}

func (c *Circle) Polyline() []geom.Vector2 {
	pts := make([]geom.Vector2, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := float32(i) / circleSegments * geom.TwoPi
		pts = append(pts, geom.PointOnCircle(c.Origin, c.Radius, a))
	}
	return pts
}

func (c *Circle) Translate(d geom.Vector2) { c.Origin = c.Origin.Add(d) }

func (c *Circle) Rotate(pivot geom.Vector2, angle float32) {
	c.Origin = c.Origin.Rotate(pivot, angle)
}

func (c *Circle) Scale(base geom.Vector2, factor float32) {
	c.Origin = c.Origin.ScaleFrom(base, factor)
	c.Radius *= factor
}

func (c *Circle) IsClosed() bool { return true }
func (c *Circle) IsFilled() bool { return c.Filled }

func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

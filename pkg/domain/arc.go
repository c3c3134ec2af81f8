package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

const arcSegments = 24

// Arc is the counter-clockwise sweep from StartAngle to EndAngle (radians).
type Arc struct {
	Origin     geom.Vector2 `json:"center" yaml:"center"`
	Radius     float32      `json:"radius" yaml:"radius"`
	StartAngle float32      `json:"start_angle" yaml:"start_angle"`
	EndAngle   float32      `json:"end_angle" yaml:"end_angle"`
	Filled     bool         `json:"filled" yaml:"filled"`
}

// NewArcDirected builds an arc through start and end around center. The
// radius comes from start. A clockwise arc is stored as the counter-clockwise
// sweep from end to start.
func NewArcDirected(center, start, end geom.Vector2, filled, clockwise bool) *Arc {
	a := &Arc{
		Origin:     center,
		Radius:     start.Dist(center),
		StartAngle: start.Sub(center).Angle(),
		EndAngle:   end.Sub(center).Angle(),
		Filled:     filled,
	}
	if clockwise {
		a.StartAngle, a.EndAngle = a.EndAngle, a.StartAngle
	}
	return a
}

func (a *Arc) Kind() ShapeKind { return ShapeArc }

func (a *Arc) StartPoint() geom.Vector2 { return geom.PointOnCircle(a.Origin, a.Radius, a.StartAngle) }
func (a *Arc) EndPoint() geom.Vector2   { return geom.PointOnCircle(a.Origin, a.Radius, a.EndAngle) }

// Contains reports whether angle lies on the sweep.
func (a *Arc) Contains(angle float32) bool {
	return geom.AngleInRange(angle, a.StartAngle, a.EndAngle)
}

func (a *Arc) HitTest(p geom.Vector2, tol float32) bool {
	d := p.Sub(a.Origin)
	if geom.Abs(d.Length()-a.Radius) > tol {
		return false
	}
	return a.Contains(d.Angle())
}

func (a *Arc) Center() geom.Vector2 { return a.Origin }

// BoundingBox is the box of the full circle.
func (a *Arc) BoundingBox() (geom.Vector2, geom.Vector2) {
	r := geom.Vec(a.Radius, a.Radius)
	return a.Origin.Sub(r), a.Origin.Add(r)
}

func (a *Arc) Polyline() []geom.Vector2 {
	start, end := a.StartAngle, a.EndAngle
	if end < start {
		end += geom.TwoPi
	}
	pts := make([]geom.Vector2, 0, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		t := float32(i) / arcSegments
		pts = append(pts, geom.PointOnCircle(a.Origin, a.Radius, start+t*(end-start)))
	}
	return pts
}

func (a *Arc) Translate(d geom.Vector2) { a.Origin = a.Origin.Add(d) }

func (a *Arc) Rotate(pivot geom.Vector2, angle float32) {
	a.Origin = a.Origin.Rotate(pivot, angle)
	a.StartAngle += angle
	a.EndAngle += angle
}

func (a *Arc) Scale(base geom.Vector2, factor float32) {
	a.Origin = a.Origin.ScaleFrom(base, factor)
	a.Radius *= factor
}

func (a *Arc) IsClosed() bool { return false }
func (a *Arc) IsFilled() bool { return a.Filled }

func (a *Arc) Clone() Shape {
	cp := *a
	return &cp
}

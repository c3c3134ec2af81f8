package domain

import (
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Line is a straight segment.
type Line struct {
	Start       geom.Vector2 `json:"start" yaml:"start"`
	End         geom.Vector2 `json:"end" yaml:"end"`
	ShowLength  bool         `json:"show_length,omitempty" yaml:"show_length,omitempty"`
	LabelOffset geom.Vector2 `json:"label_offset" yaml:"label_offset"`
}

func NewLine(start, end geom.Vector2) *Line {
	return &Line{Start: start, End: end}
}

func (l *Line) Kind() ShapeKind { return ShapeLine }

func (l *Line) Length() float32 { return l.Start.Dist(l.End) }

func (l *Line) Midpoint() geom.Vector2 { return l.Start.Lerp(l.End, 0.5) }

// LabelPosition is where the length label sits when ShowLength is set:
// the midpoint pushed 3*tol along the upward-facing normal, plus LabelOffset.
func (l *Line) LabelPosition(tol float32) geom.Vector2 {
	d := l.End.Sub(l.Start)
	n := geom.Vec(0, 15)
	if length := d.Length(); length >= 0.001 {
		n = d.Perp().Mul(1 / length)
		if n.Y < 0 {
			n = n.Neg()
		}
		n = n.Mul(3 * tol)
	}
	return l.Midpoint().Add(n).Add(l.LabelOffset)
}

// HitTestLabel reports a hit on the length label. Always false when
// ShowLength is off.
func (l *Line) HitTestLabel(p geom.Vector2, tol float32) bool {
	if !l.ShowLength {
		return false
	}
	pos := l.LabelPosition(tol)
	w := float32(len(fmt.Sprintf("%.2f", l.Length()))) * 1.4 * tol
	h := 2.8 * tol
	return geom.Abs(p.X-pos.X) < w/2+tol && geom.Abs(p.Y-pos.Y) < h/2+tol
}

func (l *Line) HitTest(p geom.Vector2, tol float32) bool {
	if p.DistToSegment(l.Start, l.End) < tol {
		return true
	}
	return l.HitTestLabel(p, tol)
}

func (l *Line) Center() geom.Vector2 { return l.Midpoint() }

func (l *Line) BoundingBox() (geom.Vector2, geom.Vector2) {
	return geom.Min(l.Start, l.End), geom.Max(l.Start, l.End)
}

func (l *Line) Polyline() []geom.Vector2 { return []geom.Vector2{l.Start, l.End} }

func (l *Line) Translate(d geom.Vector2) {
	l.Start = l.Start.Add(d)
	l.End = l.End.Add(d)
}

func (l *Line) Rotate(pivot geom.Vector2, angle float32) {
	l.Start = l.Start.Rotate(pivot, angle)
	l.End = l.End.Rotate(pivot, angle)
}

func (l *Line) Scale(base geom.Vector2, factor float32) {
	l.Start = l.Start.ScaleFrom(base, factor)
	l.End = l.End.ScaleFrom(base, factor)
}

func (l *Line) IsClosed() bool { return false }
func (l *Line) IsFilled() bool { return false }

func (l *Line) Clone() Shape {
	c := *l
	return &c
}

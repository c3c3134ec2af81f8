package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

// BeamAnchor says which face of the beam runs along the drawn centre line.
type BeamAnchor int

const (
	BeamCenter BeamAnchor = iota
	BeamTop
	BeamBottom
)

func (a BeamAnchor) String() string {
	switch a {
	case BeamTop:
		return "Top"
	case BeamBottom:
		return "Bottom"
	default:
		return "Center"
	}
}

// Next cycles Center, Top, Bottom.
func (a BeamAnchor) Next() BeamAnchor { return (a + 1) % 3 }

// Flip swaps Top and Bottom; Center is unchanged.
func (a BeamAnchor) Flip() BeamAnchor {
	switch a {
	case BeamTop:
		return BeamBottom
	case BeamBottom:
		return BeamTop
	default:
		return a
	}
}

// beamHitBuffer approximates half the drawn beam width.
const (
	beamHitBuffer = 15
	beamBoxPad    = 20
)

type Beam struct {
	Start  geom.Vector2 `json:"start" yaml:"start"`
	End    geom.Vector2 `json:"end" yaml:"end"`
	TypeID uint64       `json:"beam_type_id" yaml:"beam_type_id"`
	Label  string       `json:"label" yaml:"label"`
	Anchor BeamAnchor   `json:"anchor" yaml:"anchor"`
}

func NewBeam(start, end geom.Vector2, typeID uint64, label string, anchor BeamAnchor) *Beam {
	return &Beam{Start: start, End: end, TypeID: typeID, Label: label, Anchor: anchor}
}

func (b *Beam) Kind() ShapeKind { return ShapeBeam }

func (b *Beam) Length() float32 { return b.Start.Dist(b.End) }

func (b *Beam) Angle() float32 { return b.End.Sub(b.Start).Angle() }

// Corners returns the outline for a beam of the given width, shifted by the
// anchor: p1, p2 on the left side, p3, p4 on the right.
func (b *Beam) Corners(width float32) [4]geom.Vector2 {
	perp := b.End.Sub(b.Start).Normalized().Perp()
	var offset float32
	switch b.Anchor {
	case BeamTop:
		offset = width / 2
	case BeamBottom:
		offset = -width / 2
	}
	hw := width / 2
	return [4]geom.Vector2{
		b.Start.Add(perp.Mul(offset + hw)),
		b.End.Add(perp.Mul(offset + hw)),
		b.End.Add(perp.Mul(offset - hw)),
		b.Start.Add(perp.Mul(offset - hw)),
	}
}

func (b *Beam) HitTest(p geom.Vector2, tol float32) bool {
	if b.Start == b.End {
		return p.Dist(b.Start) < tol
	}
	return p.DistToSegment(b.Start, b.End) < tol+beamHitBuffer
}

func (b *Beam) Center() geom.Vector2 { return b.Start.Lerp(b.End, 0.5) }

func (b *Beam) BoundingBox() (geom.Vector2, geom.Vector2) {
	pad := geom.Vec(beamBoxPad, beamBoxPad)
	return geom.Min(b.Start, b.End).Sub(pad), geom.Max(b.Start, b.End).Add(pad)
}

func (b *Beam) Polyline() []geom.Vector2 { return []geom.Vector2{b.Start, b.End} }

func (b *Beam) Translate(d geom.Vector2) {
	b.Start = b.Start.Add(d)
	b.End = b.End.Add(d)
}

func (b *Beam) Rotate(pivot geom.Vector2, angle float32) {
	b.Start = b.Start.Rotate(pivot, angle)
	b.End = b.End.Rotate(pivot, angle)
}

func (b *Beam) Scale(base geom.Vector2, factor float32) {
	b.Start = b.Start.ScaleFrom(base, factor)
	b.End = b.End.ScaleFrom(base, factor)
}

func (b *Beam) IsClosed() bool { return false }
func (b *Beam) IsFilled() bool { return false }

func (b *Beam) Clone() Shape {
	cp := *b
	return &cp
}

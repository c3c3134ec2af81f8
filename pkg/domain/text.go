package domain

import (
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// AnnotationType tells where a Text came from.
type AnnotationType string

const (
	AnnotationCustom    AnnotationType = "custom"
	AnnotationDistance  AnnotationType = "distance"
	AnnotationArea      AnnotationType = "area"
	AnnotationRadius    AnnotationType = "radius"
	AnnotationPerimeter AnnotationType = "perimeter"
)

type TextAlignment string

const (
	AlignLeft   TextAlignment = "left"
	AlignCenter TextAlignment = "center"
	AlignRight  TextAlignment = "right"
)

type TextStyle struct {
	FontSize  float32       `json:"font_size" yaml:"font_size"`
	Color     [3]uint8      `json:"color" yaml:"color"`
	Alignment TextAlignment `json:"alignment" yaml:"alignment"`
}

// DefaultTextStyle is 14pt white, centred.
func DefaultTextStyle() TextStyle {
	return TextStyle{FontSize: 14, Color: [3]uint8{255, 255, 255}, Alignment: AlignCenter}
}

// Text is a free or measurement annotation. Anchors are the points the
// annotation was measured from.
type Text struct {
	Position geom.Vector2   `json:"position" yaml:"position"`
	Content  string         `json:"text" yaml:"text"`
	Type     AnnotationType `json:"annotation_type" yaml:"annotation_type"`
	Style    TextStyle      `json:"style" yaml:"style"`
	Anchors  []geom.Vector2 `json:"anchor_points,omitempty" yaml:"anchor_points,omitempty"`
	Rotation float32        `json:"rotation" yaml:"rotation"`
}

func NewCustomText(pos geom.Vector2, content string) *Text {
	return &Text{Position: pos, Content: content, Type: AnnotationCustom, Style: DefaultTextStyle()}
}

// NewDistanceText labels the segment start-end with its length, 15 units
// off the midpoint along the left normal and rotated with the segment.
func NewDistanceText(start, end geom.Vector2) *Text {
	d := end.Sub(start)
	length := d.Length()
	offset := geom.Vec(0, 15)
	if length > 0 {
		offset = d.Perp().Mul(15 / length)
	}
	return &Text{
		Position: start.Lerp(end, 0.5).Add(offset),
		Content:  fmt.Sprintf("%.2f", length),
		Type:     AnnotationDistance,
		Style:    TextStyle{FontSize: 12, Color: [3]uint8{255, 200, 100}, Alignment: AlignCenter},
		Anchors:  []geom.Vector2{start, end},
		Rotation: d.Angle(),
	}
}

func NewAreaText(centroid geom.Vector2, area float32, polygon []geom.Vector2) *Text {
	return &Text{
		Position: centroid,
		Content:  fmt.Sprintf("Area: %.2f", area),
		Type:     AnnotationArea,
		Style:    TextStyle{FontSize: 14, Color: [3]uint8{100, 255, 100}, Alignment: AlignCenter},
		Anchors:  append([]geom.Vector2(nil), polygon...),
	}
}

// NewPerimeterText sits 18 units below centroid so it does not cover an
// area label at the same spot.
func NewPerimeterText(centroid geom.Vector2, perimeter float32, path []geom.Vector2) *Text {
	return &Text{
		Position: geom.Vec(centroid.X, centroid.Y-18),
		Content:  fmt.Sprintf("Perim: %.2f", perimeter),
		Type:     AnnotationPerimeter,
		Style:    TextStyle{FontSize: 14, Color: [3]uint8{100, 200, 255}, Alignment: AlignCenter},
		Anchors:  append([]geom.Vector2(nil), path...),
	}
}

func (t *Text) Kind() ShapeKind { return ShapeText }

func (t *Text) halfExtent() geom.Vector2 {
	w := float32(len(t.Content)) * t.Style.FontSize * 0.6
	h := t.Style.FontSize * 1.5
	return geom.Vec(w/2, h/2)
}

func (t *Text) HitTest(p geom.Vector2, tol float32) bool {
	half := t.halfExtent()
	margin := tol + 10
	return geom.Abs(p.X-t.Position.X) <= half.X+margin &&
		geom.Abs(p.Y-t.Position.Y) <= half.Y+margin
}

func (t *Text) Center() geom.Vector2 { return t.Position }

func (t *Text) BoundingBox() (geom.Vector2, geom.Vector2) {
	half := t.halfExtent()
	return t.Position.Sub(half), t.Position.Add(half)
}

// Polyline is empty; text has no outline.
func (t *Text) Polyline() []geom.Vector2 { return nil }

func (t *Text) Translate(d geom.Vector2) {
	t.Position = t.Position.Add(d)
	for i := range t.Anchors {
		t.Anchors[i] = t.Anchors[i].Add(d)
	}
}

func (t *Text) Rotate(pivot geom.Vector2, angle float32) {
	t.Position = t.Position.Rotate(pivot, angle)
	for i := range t.Anchors {
		t.Anchors[i] = t.Anchors[i].Rotate(pivot, angle)
	}
	t.Rotation += angle
}

func (t *Text) Scale(base geom.Vector2, factor float32) {
	t.Position = t.Position.ScaleFrom(base, factor)
	for i := range t.Anchors {
		t.Anchors[i] = t.Anchors[i].ScaleFrom(base, factor)
	}
}

func (t *Text) IsClosed() bool { return false }
func (t *Text) IsFilled() bool { return false }

func (t *Text) Clone() Shape {
	cp := *t
	cp.Anchors = append([]geom.Vector2(nil), t.Anchors...)
	return &cp
}

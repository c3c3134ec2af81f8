package domain

import "github.com/Hakkology/MuginCAD-sub000/pkg/geom"

// ColumnAnchor is the column point that lands on the clicked position.
type ColumnAnchor int

const (
	ColumnCenter ColumnAnchor = iota
	ColumnTopLeft
	ColumnTopRight
	ColumnBottomRight
	ColumnBottomLeft
)

var columnAnchorNames = [...]string{"Center", "TopLeft", "TopRight", "BottomRight", "BottomLeft"}

func (a ColumnAnchor) String() string {
	if a < 0 || int(a) >= len(columnAnchorNames) {
		return "Center"
	}
	return columnAnchorNames[a]
}

// Next cycles through the five anchors.
func (a ColumnAnchor) Next() ColumnAnchor { return (a + 1) % 5 }

// Offset is the anchor position relative to the centre before rotation.
func (a ColumnAnchor) Offset(width, height float32) geom.Vector2 {
	hw, hh := width/2, height/2
	switch a {
	case ColumnTopLeft:
		return geom.Vec(-hw, -hh)
	case ColumnTopRight:
		return geom.Vec(hw, -hh)
	case ColumnBottomRight:
		return geom.Vec(hw, hh)
	case ColumnBottomLeft:
		return geom.Vec(-hw, hh)
	default:
		return geom.Vector2{}
	}
}

// Column is a rotated rectangular structural column.
type Column struct {
	Origin   geom.Vector2 `json:"center" yaml:"center"`
	Width    float32      `json:"width" yaml:"width"`
	Height   float32      `json:"height" yaml:"height"`
	Rotation float32      `json:"rotation" yaml:"rotation"`
	TypeID   uint64       `json:"column_type_id" yaml:"column_type_id"`
	Label    string       `json:"label" yaml:"label"`
	Anchor   ColumnAnchor `json:"anchor" yaml:"anchor"`
}

// PlaceColumn positions a column so that its anchor point lands on pos.
func PlaceColumn(pos geom.Vector2, width, height, rotation float32, typeID uint64, label string, anchor ColumnAnchor) *Column {
	local := anchor.Offset(width, height)
	center := pos.Sub(local.Rotate(geom.Vector2{}, rotation))
	return &Column{
		Origin:   center,
		Width:    width,
		Height:   height,
		Rotation: rotation,
		TypeID:   typeID,
		Label:    label,
		Anchor:   anchor,
	}
}

func (c *Column) Kind() ShapeKind { return ShapeColumn }

// Corners returns the four corners rotated about the centre.
func (c *Column) Corners() [4]geom.Vector2 {
	hw, hh := c.Width/2, c.Height/2
	local := [4]geom.Vector2{geom.Vec(-hw, -hh), geom.Vec(hw, -hh), geom.Vec(hw, hh), geom.Vec(-hw, hh)}
	for i, p := range local {
		local[i] = c.Origin.Add(p).Rotate(c.Origin, c.Rotation)
	}
	return local
}

func (c *Column) HitTest(p geom.Vector2, tol float32) bool {
	local := p.Rotate(c.Origin, -c.Rotation).Sub(c.Origin)
	x, y := geom.Abs(local.X), geom.Abs(local.Y)
	hw, hh := c.Width/2, c.Height/2
	if x <= hw && y <= hh {
		return true
	}
	onX := geom.Abs(x-hw) < tol && y <= hh+tol
	onY := geom.Abs(y-hh) < tol && x <= hw+tol
	return onX || onY
}

func (c *Column) Center() geom.Vector2 { return c.Origin }

func (c *Column) BoundingBox() (geom.Vector2, geom.Vector2) {
	corners := c.Corners()
	lo, hi, _ := geom.BoundsOf(corners[:])
	return lo, hi
}

func (c *Column) Polyline() []geom.Vector2 {
	k := c.Corners()
	return []geom.Vector2{k[0], k[1], k[2], k[3], k[0]}
}

func (c *Column) Translate(d geom.Vector2) { c.Origin = c.Origin.Add(d) }

func (c *Column) Rotate(pivot geom.Vector2, angle float32) {
	c.Origin = c.Origin.Rotate(pivot, angle)
	c.Rotation += angle
}

func (c *Column) Scale(base geom.Vector2, factor float32) {
	c.Origin = c.Origin.ScaleFrom(base, factor)
	c.Width *= factor
	c.Height *= factor
}

func (c *Column) IsClosed() bool { return true }
func (c *Column) IsFilled() bool { return true }

func (c *Column) Clone() Shape {
	cp := *c
	return &cp
}

package command

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Preview returns the rubber-band polyline for cmd with the cursor at
// cursor, or nil when the command has nothing to show yet.
func Preview(cmd Command, cursor geom.Vector2) []geom.Vector2 {
	pts := cmd.Points()
	switch c := cmd.(type) {
	case *Rectangle:
		if len(pts) == 1 {
			return domain.NewRectangle(pts[0], cursor, false).Polyline()
		}
	case *Circle:
		if len(pts) == 1 {
			return domain.NewCircle(pts[0], pts[0].Dist(cursor), false).Polyline()
		}
	case *Arc:
		switch len(pts) {
		case 1:
			return []geom.Vector2{pts[0], cursor}
		case 2:
			return domain.NewArcDirected(pts[0], pts[1], cursor, false, c.Clockwise).Polyline()
		}
	case *PlaceColumn:
		if c.typ != nil {
			col := domain.PlaceColumn(cursor, c.typ.Width, c.typ.Depth, c.Rotation, c.typ.ID, c.typ.Name, c.Anchor)
			return col.Polyline()
		}
	case *Offset, *Trim, *RegionMeasure, *Text, *Axis:
		return nil
	case *SelectRegion:
		if c.first != nil {
			return domain.NewRectangle(*c.first, cursor, false).Polyline()
		}
	default:
		if len(pts) > 0 {
			return []geom.Vector2{pts[len(pts)-1], cursor}
		}
	}
	return nil
}

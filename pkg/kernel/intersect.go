package kernel

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// LineIntersections returns the points where the segment of line meets
// other. Arcs are tested as full circles. Text never intersects.
func LineIntersections(line *domain.Line, other domain.Shape) []geom.Vector2 {
	a, b := line.Start, line.End
	switch s := other.(type) {
	case *domain.Line:
		if p, ok := geom.SegmentIntersection(a, b, s.Start, s.End); ok {
			return []geom.Vector2{p}
		}
	case *domain.Circle:
		return geom.SegmentCircleIntersections(a, b, s.Origin, s.Radius)
	case *domain.Arc:
		return geom.SegmentCircleIntersections(a, b, s.Origin, s.Radius)
	case *domain.Rectangle:
		var out []geom.Vector2
		for _, e := range s.Edges() {
			if p, ok := geom.SegmentIntersection(a, b, e[0], e[1]); ok {
				out = append(out, p)
			}
		}
		return out
	case *domain.Column:
		var out []geom.Vector2
		k := s.Corners()
		for i := range k {
			if p, ok := geom.SegmentIntersection(a, b, k[i], k[(i+1)%4]); ok {
				out = append(out, p)
			}
		}
		return out
	case *domain.Beam:
		if p, ok := geom.SegmentIntersection(a, b, s.Start, s.End); ok {
			return []geom.Vector2{p}
		}
	}
	return nil
}

// EntityIntersections collects LineIntersections over an entity subtree.
func EntityIntersections(line *domain.Line, e *domain.Entity) []geom.Vector2 {
	var out []geom.Vector2
	e.Walk(func(n *domain.Entity, _ int) bool {
		if n.Shape != nil {
			out = append(out, LineIntersections(line, n.Shape)...)
		}
		return true
	})
	return out
}

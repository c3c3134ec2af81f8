package geom

// PolygonArea returns the unsigned shoelace area. A duplicated closing
// vertex contributes nothing.
func PolygonArea(pts []Vector2) float32 {
	if len(pts) < 3 {
		return 0
	}
	var sum float32
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return Abs(sum / 2)
}

// PathPerimeter sums the distances between consecutive points. The path is
// not closed implicitly.
func PathPerimeter(pts []Vector2) float32 {
	var sum float32
	for i := 1; i < len(pts); i++ {
		sum += pts[i-1].Dist(pts[i])
	}
	return sum
}

// Centroid returns the unweighted mean of the vertices, skipping a closing
// vertex equal to the first one. This is the vertex average, not the area
// centroid.
func Centroid(pts []Vector2) Vector2 {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if len(pts) == 0 {
		return Vector2{}
	}
	var c Vector2
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / float32(len(pts)))
}

// BoundsOf returns the axis-aligned box of the points. ok is false for an
// empty slice.
func BoundsOf(pts []Vector2) (lo, hi Vector2, ok bool) {
	if len(pts) == 0 {
		return Vector2{}, Vector2{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = Min(lo, p)
		hi = Max(hi, p)
	}
	return lo, hi, true
}

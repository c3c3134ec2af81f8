package geom

import "sort"

const (
	parallelEpsilon = 1e-10
	rayEpsilon      = 1e-5
)

// SegmentIntersection returns the crossing point of segments a1-a2 and
// b1-b2. Parallel segments (|det| < 1e-10) and crossings outside either
// segment report false.
func SegmentIntersection(a1, a2, b1, b2 Vector2) (Vector2, bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	det := r.Cross(s)
	if Abs(det) < parallelEpsilon {
		return Vector2{}, false
	}
	qp := b1.Sub(a1)
	t := qp.Cross(s) / det
	u := qp.Cross(r) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector2{}, false
	}
	return a1.Add(r.Mul(t)), true
}

// segmentCircleParams solves |a + t(b-a) - c| = r for t and returns the
// roots inside [0,1] in ascending order.
func segmentCircleParams(a, b, center Vector2, r float32) []float32 {
	d := b.Sub(a)
	f := a.Sub(center)
	qa := d.Dot(d)
	if qa == 0 {
		return nil
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - r*r
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return nil
	}
	sq := Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)

	var ts []float32
	if t1 >= 0 && t1 <= 1 {
		ts = append(ts, t1)
	}
	if disc > 0 && t2 >= 0 && t2 <= 1 {
		ts = append(ts, t2)
	}
	return ts
}

// SegmentCircleIntersections returns zero, one or two points where the
// segment a-b meets the circle.
func SegmentCircleIntersections(a, b, center Vector2, r float32) []Vector2 {
	ts := segmentCircleParams(a, b, center, r)
	out := make([]Vector2, 0, len(ts))
	d := b.Sub(a)
	for _, t := range ts {
		out = append(out, a.Add(d.Mul(t)))
	}
	return out
}

// SegmentArcIntersections is SegmentCircleIntersections restricted to the
// arc's angular range.
func SegmentArcIntersections(a, b, center Vector2, r, start, end float32) []Vector2 {
	var out []Vector2
	for _, p := range SegmentCircleIntersections(a, b, center, r) {
		if AngleInRange(p.Sub(center).Angle(), start, end) {
			out = append(out, p)
		}
	}
	return out
}

// RaySegment intersects the ray origin + t*dir (t >= 0) with segment a-b.
func RaySegment(origin, dir, a, b Vector2) (Vector2, bool) {
	v1 := origin.Sub(a)
	v2 := b.Sub(a)
	v3 := dir.Perp()
	dot := v2.Dot(v3)
	if Abs(dot) < rayEpsilon {
		return Vector2{}, false
	}
	t1 := v2.Cross(v1) / dot
	t2 := v1.Dot(v3) / dot
	if t1 >= 0 && t2 >= 0 && t2 <= 1 {
		return origin.Add(dir.Mul(t1)), true
	}
	return Vector2{}, false
}

// RayArc intersects a ray with unit direction dir and an arc, returning
// the nearest hit whose angle lies on the arc.
func RayArc(origin, dir, center Vector2, r, start, end float32) (Vector2, bool) {
	l := origin.Sub(center)
	b := 2 * l.Dot(dir)
	c := l.Dot(l) - r*r
	det := b*b - 4*c
	if det < 0 {
		return Vector2{}, false
	}
	sq := Sqrt(det)
	var candidates []float32
	for _, t := range []float32{(-b - sq) / 2, (-b + sq) / 2} {
		if t >= 0 {
			candidates = append(candidates, t)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	for _, t := range candidates {
		p := origin.Add(dir.Mul(t))
		if AngleInRange(p.Sub(center).Angle(), start, end) {
			return p, true
		}
	}
	return Vector2{}, false
}

// ProjectOnSegment returns the unclamped parameter t of p projected onto
// the line through a and b. A degenerate segment yields 0.
func ProjectOnSegment(p, a, b Vector2) float32 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return 0
	}
	return p.Sub(a).Dot(ab) / l2
}

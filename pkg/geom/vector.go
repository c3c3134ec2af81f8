package geom

import (
	"fmt"
	"math"
)

// Vector2 is a point or a displacement in drawing space.
type Vector2 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Vec is shorthand for Vector2{X: x, Y: y}.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o, the displacement from o to v.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Mul scales both components by s.
func (v Vector2) Mul(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Neg returns the opposite displacement.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns the scalar product.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vector2) Cross(o Vector2) float32 { return v.X*o.Y - v.Y*o.X }

// LengthSquared avoids the square root when only comparing lengths.
func (v Vector2) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y }

// Length returns the euclidean norm.
func (v Vector2) Length() float32 { return Sqrt(v.LengthSquared()) }

// Dist returns the euclidean distance between two points.
func (v Vector2) Dist(o Vector2) float32 { return v.Sub(o).Length() }

// Angle returns atan2(y, x).
func (v Vector2) Angle() float32 { return Atan2(v.Y, v.X) }

// Normalized returns the unit vector, or the zero vector for a zero input.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// Perp returns v rotated by +90 degrees.
func (v Vector2) Perp() Vector2 { return Vector2{-v.Y, v.X} }

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Rotate turns v about pivot by angle radians, counter-clockwise.
func (v Vector2) Rotate(pivot Vector2, angle float32) Vector2 {
	sin, cos := Sincos(angle)
	d := v.Sub(pivot)
	return Vector2{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}

// ScaleFrom moves v away from base by factor.
func (v Vector2) ScaleFrom(base Vector2, factor float32) Vector2 {
	return base.Add(v.Sub(base).Mul(factor))
}

// DistToSegment returns the distance from v to the segment a-b.
// A zero-length segment degrades to the distance to a.
func (v Vector2) DistToSegment(a, b Vector2) float32 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return v.Dist(a)
	}
	t := Clamp(v.Sub(a).Dot(ab)/l2, 0, 1)
	return v.Dist(a.Add(ab.Mul(t)))
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vector2) ApproxEqual(o Vector2, eps float32) bool {
	return Abs(v.X-o.X) <= eps && Abs(v.Y-o.Y) <= eps
}

func (v Vector2) String() string {
	return fmt.Sprintf("%.2f, %.2f", v.X, v.Y)
}

// Min returns the component-wise minimum.
func Min(a, b Vector2) Vector2 {
	return Vector2{min(a.X, b.X), min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func Max(a, b Vector2) Vector2 {
	return Vector2{max(a.X, b.X), max(a.Y, b.Y)}
}

// float32 wrappers over package math.

func Sqrt(x float32) float32     { return float32(math.Sqrt(float64(x))) }
func Abs(x float32) float32      { return float32(math.Abs(float64(x))) }
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
func Round(x float32) float32    { return float32(math.Round(float64(x))) }

func Sincos(a float32) (sin, cos float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

func Clamp(x, lo, hi float32) float32 {
	return max(lo, min(hi, x))
}

package geom

import "math"

const (
	Pi    = float32(math.Pi)
	TwoPi = float32(2 * math.Pi)
)

// NormalizeAngle maps a into [0, 2pi).
func NormalizeAngle(a float32) float32 {
	m := float32(math.Mod(float64(a), 2*math.Pi))
	if m < 0 {
		m += TwoPi
	}
	if m >= TwoPi {
		m = 0
	}
	return m
}

// WrapPi maps a into (-pi, pi].
func WrapPi(a float32) float32 {
	for a <= -Pi {
		a += TwoPi
	}
	for a > Pi {
		a -= TwoPi
	}
	return a
}

// AngleInRange reports whether angle a lies on the counter-clockwise sweep
// from start to end. When the normalised start exceeds the normalised end
// the sweep crosses angle zero.
func AngleInRange(a, start, end float32) bool {
	s := NormalizeAngle(start)
	e := NormalizeAngle(end)
	t := NormalizeAngle(a)
	if s <= e {
		return t >= s && t <= e
	}
	return t >= s || t <= e
}

// PointOnCircle returns center + r*(cos a, sin a).
func PointOnCircle(center Vector2, r, a float32) Vector2 {
	sin, cos := Sincos(a)
	return Vector2{center.X + r*cos, center.Y + r*sin}
}

// Radians converts degrees.
func Radians(deg float32) float32 { return deg * Pi / 180 }

// Degrees converts radians.
func Degrees(rad float32) float32 { return rad * 180 / Pi }

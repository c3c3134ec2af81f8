package command

import (
	"strconv"
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// ParsePoint reads "x,y". Whitespace around either number is allowed.
func ParsePoint(s string) (geom.Vector2, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Vector2{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return geom.Vector2{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return geom.Vector2{}, false
	}
	return geom.Vec(float32(x), float32(y)), true
}

// ParseNumber reads a single number.
func ParseNumber(s string) (float32, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

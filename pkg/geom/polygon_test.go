package geom_test

import (
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
)

func TestPolygonMeasures_UnitSquare(t *testing.T) {
	closed := []geom.Vector2{
		geom.Vec(1, 0), geom.Vec(1, 1), geom.Vec(0, 1), geom.Vec(0, 0), geom.Vec(1, 0),
	}

	assert.InDelta(t, 1.0, geom.PolygonArea(closed), 1e-6)
	assert.InDelta(t, 4.0, geom.PathPerimeter(closed), 1e-6)
	assert.Equal(t, geom.Vec(0.5, 0.5), geom.Centroid(closed))
}

func TestPolygonArea_OrientationIndependent(t *testing.T) {
	ccw := []geom.Vector2{geom.Vec(0, 0), geom.Vec(4, 0), geom.Vec(4, 3)}
	cw := []geom.Vector2{geom.Vec(0, 0), geom.Vec(4, 3), geom.Vec(4, 0)}

	assert.InDelta(t, 6.0, geom.PolygonArea(ccw), 1e-6)
	assert.InDelta(t, 6.0, geom.PolygonArea(cw), 1e-6)
	assert.Zero(t, geom.PolygonArea(ccw[:2]))
}

func TestCentroid_Empty(t *testing.T) {
	assert.Equal(t, geom.Vector2{}, geom.Centroid(nil))
}

func TestBoundsOf(t *testing.T) {
	lo, hi, ok := geom.BoundsOf([]geom.Vector2{geom.Vec(3, -1), geom.Vec(-2, 5), geom.Vec(0, 0)})
	assert.True(t, ok)
	assert.Equal(t, geom.Vec(-2, -1), lo)
	assert.Equal(t, geom.Vec(3, 5), hi)

	_, _, ok = geom.BoundsOf(nil)
	assert.False(t, ok)
}

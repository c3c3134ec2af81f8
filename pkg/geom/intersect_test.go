package geom_test

import (
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentIntersection(t *testing.T) {
	t.Run("Crossing Diagonals", func(t *testing.T) {
		p, ok := geom.SegmentIntersection(geom.Vec(0, 0), geom.Vec(10, 10), geom.Vec(0, 10), geom.Vec(10, 0))
		require.True(t, ok)
		assert.Equal(t, geom.Vec(5, 5), p)
	})

	t.Run("Parallel", func(t *testing.T) {
		_, ok := geom.SegmentIntersection(geom.Vec(0, 0), geom.Vec(10, 0), geom.Vec(0, 1), geom.Vec(10, 1))
		assert.False(t, ok)
	})

	t.Run("Lines Cross Outside Segments", func(t *testing.T) {
		_, ok := geom.SegmentIntersection(geom.Vec(0, 0), geom.Vec(1, 1), geom.Vec(0, 10), geom.Vec(10, 0))
		assert.False(t, ok)
	})
}

func TestSegmentCircleIntersections(t *testing.T) {
	t.Run("Secant", func(t *testing.T) {
		pts := geom.SegmentCircleIntersections(geom.Vec(-10, 0), geom.Vec(10, 0), geom.Vec(0, 0), 5)
		require.Len(t, pts, 2)
		assert.Equal(t, geom.Vec(-5, 0), pts[0])
		assert.Equal(t, geom.Vec(5, 0), pts[1])
	})

	t.Run("Miss", func(t *testing.T) {
		pts := geom.SegmentCircleIntersections(geom.Vec(-10, 6), geom.Vec(10, 6), geom.Vec(0, 0), 5)
		assert.Empty(t, pts)
	})

	t.Run("Segment Ends Inside", func(t *testing.T) {
		pts := geom.SegmentCircleIntersections(geom.Vec(0, 0), geom.Vec(10, 0), geom.Vec(0, 0), 5)
		require.Len(t, pts, 1)
		assert.Equal(t, geom.Vec(5, 0), pts[0])
	})

	t.Run("Degenerate Segment", func(t *testing.T) {
		assert.Empty(t, geom.SegmentCircleIntersections(geom.Vec(5, 0), geom.Vec(5, 0), geom.Vec(0, 0), 5))
	})
}

func TestSegmentArcIntersections(t *testing.T) {
	// Upper half arc: only the crossing at (0,5) counts, not (0,-5).
	pts := geom.SegmentArcIntersections(geom.Vec(0, -10), geom.Vec(0, 10), geom.Vec(0, 0), 5, 0, geom.Pi)
	require.Len(t, pts, 1)
	assert.True(t, pts[0].ApproxEqual(geom.Vec(0, 5), 1e-5))
}

func TestRaySegment(t *testing.T) {
	dir := geom.Vec(1, 0)

	p, ok := geom.RaySegment(geom.Vec(0.5, 0.5), dir, geom.Vec(1, 0), geom.Vec(1, 1))
	require.True(t, ok)
	assert.Equal(t, geom.Vec(1, 0.5), p)

	_, ok = geom.RaySegment(geom.Vec(0.5, 0.5), dir, geom.Vec(0, 0), geom.Vec(0, 1))
	assert.False(t, ok, "segment behind the origin")

	_, ok = geom.RaySegment(geom.Vec(0.5, 0.5), dir, geom.Vec(0, 1), geom.Vec(1, 1))
	assert.False(t, ok, "parallel segment")
}

func TestRayArc(t *testing.T) {
	// Right half circle centred at origin.
	p, ok := geom.RayArc(geom.Vec(0, 0), geom.Vec(1, 0), geom.Vec(0, 0), 2, -geom.Pi/2, geom.Pi/2)
	require.True(t, ok)
	assert.True(t, p.ApproxEqual(geom.Vec(2, 0), 1e-5))

	// Left half only: the ray from the origin towards +X misses.
	_, ok = geom.RayArc(geom.Vec(0, 0), geom.Vec(1, 0), geom.Vec(0, 0), 2, geom.Pi/2, 3*geom.Pi/2)
	assert.False(t, ok)
}

func TestProjectOnSegment(t *testing.T) {
	assert.InDelta(t, 0.25, geom.ProjectOnSegment(geom.Vec(2.5, 7), geom.Vec(0, 0), geom.Vec(10, 0)), 1e-6)
	assert.InDelta(t, 1.5, geom.ProjectOnSegment(geom.Vec(15, 0), geom.Vec(0, 0), geom.Vec(10, 0)), 1e-6)
	assert.Equal(t, float32(0), geom.ProjectOnSegment(geom.Vec(1, 1), geom.Vec(2, 2), geom.Vec(2, 2)))
}

package kernel_test

import (
	"math"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addLines(m *domain.Model, pts ...geom.Vector2) []*domain.Entity {
	var out []*domain.Entity
	for i := 0; i+1 < len(pts); i++ {
		out = append(out, m.Add(domain.NewLine(pts[i], pts[i+1])))
	}
	return out
}

func unitSquare(m *domain.Model) []*domain.Entity {
	return addLines(m, geom.Vec(0, 0), geom.Vec(1, 0), geom.Vec(1, 1), geom.Vec(0, 1), geom.Vec(0, 0))
}

func TestFindClosedRegion_UnitSquare(t *testing.T) {
	m := domain.NewModel()
	sides := unitSquare(m)

	r, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0.5, 0.5))
	require.True(t, ok)
	require.Len(t, r.Vertices, 5)
	assert.Equal(t, r.Vertices[0], r.Vertices[4])
	assert.Len(t, r.EntityIDs, 4)
	assert.Equal(t, sides[1].ID, r.EntityIDs[0], "walk starts at the edge hit by the +X ray")

	assert.InDelta(t, 1, geom.PolygonArea(r.Vertices), 1e-5)
	assert.InDelta(t, 4, geom.PathPerimeter(r.Vertices), 1e-5)
	c := geom.Centroid(r.Vertices)
	assert.InDelta(t, 0.5, c.X, 1e-5)
	assert.InDelta(t, 0.5, c.Y, 1e-5)
}

func TestFindClosedRegion_Failures(t *testing.T) {
	t.Run("nothing to the right", func(t *testing.T) {
		m := domain.NewModel()
		unitSquare(m)
		_, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(5, 0.5))
		assert.False(t, ok)
	})

	t.Run("open outline dead ends", func(t *testing.T) {
		m := domain.NewModel()
		addLines(m, geom.Vec(0, 0), geom.Vec(1, 0), geom.Vec(1, 1), geom.Vec(0, 1))
		_, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0.5, 0.5))
		assert.False(t, ok)
	})

	t.Run("empty model", func(t *testing.T) {
		_, ok := kernel.FindClosedRegion(nil, geom.Vec(0, 0))
		assert.False(t, ok)
	})
}

func TestFindClosedRegion_SplitSquare(t *testing.T) {
	m := domain.NewModel()
	sides := unitSquare(m)
	diag := m.Add(domain.NewLine(geom.Vec(0, 0), geom.Vec(1, 1)))

	t.Run("lower right triangle", func(t *testing.T) {
		r, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0.7, 0.3))
		require.True(t, ok)
		require.Len(t, r.Vertices, 4)
		assert.ElementsMatch(t, []uint64{sides[0].ID, sides[1].ID, diag.ID}, r.EntityIDs)
		assert.InDelta(t, 0.5, geom.PolygonArea(r.Vertices), 1e-5)
		c := geom.Centroid(r.Vertices)
		assert.InDelta(t, 2.0/3, c.X, 1e-5)
		assert.InDelta(t, 1.0/3, c.Y, 1e-5)
	})

	t.Run("upper left triangle", func(t *testing.T) {
		r, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0.2, 0.8))
		require.True(t, ok)
		require.Len(t, r.Vertices, 4)
		assert.Equal(t, diag.ID, r.EntityIDs[0], "the diagonal is nearer than the right side")
		assert.ElementsMatch(t, []uint64{sides[2].ID, sides[3].ID, diag.ID}, r.EntityIDs)
		assert.InDelta(t, 0.5, geom.PolygonArea(r.Vertices), 1e-5)
		c := geom.Centroid(r.Vertices)
		assert.InDelta(t, 1.0/3, c.X, 1e-5)
		assert.InDelta(t, 2.0/3, c.Y, 1e-5)
	})
}

func TestFindClosedRegion_SpurIntoTriangle(t *testing.T) {
	m := domain.NewModel()
	m.Add(domain.NewLine(geom.Vec(1, -1), geom.Vec(1, 1)))
	addLines(m, geom.Vec(1, -1), geom.Vec(3, -1), geom.Vec(2, -3), geom.Vec(1, -1))

	_, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0, 0))
	assert.False(t, ok, "walking back out along the spur is not a region")
}

// ring adds an n-sided regular polygon of radius r around the origin.
func ring(m *domain.Model, n int, r float64) {
	pts := make([]geom.Vector2, 0, n+1)
	for i := 0; i < n; i++ {
		a := (float64(i) + 0.5) * 2 * math.Pi / float64(n)
		pts = append(pts, geom.Vec(float32(r*math.Cos(a)), float32(r*math.Sin(a))))
	}
	pts = append(pts, pts[0])
	addLines(m, pts...)
}

func TestFindClosedRegion_WalkLimit(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		m := domain.NewModel()
		ring(m, 500, 100)
		r, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0, 0))
		require.True(t, ok)
		assert.Len(t, r.EntityIDs, 500)
	})

	t.Run("past limit", func(t *testing.T) {
		m := domain.NewModel()
		ring(m, 1100, 100)
		_, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0, 0))
		assert.False(t, ok)
	})
}

func TestFindClosedRegion_ArcAndChord(t *testing.T) {
	m := domain.NewModel()
	arc := m.Add(&domain.Arc{Origin: geom.Vec(0, 0), Radius: 1, StartAngle: 0, EndAngle: geom.Pi})
	chord := m.Add(domain.NewLine(geom.Vec(-1, 0), geom.Vec(1, 0)))

	r, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0, 0.5))
	require.True(t, ok)
	assert.ElementsMatch(t, []uint64{arc.ID, chord.ID}, r.EntityIDs)
	assert.Len(t, r.Vertices, 3)
}

func TestFindClosedRegion_IgnoresOtherShapes(t *testing.T) {
	m := domain.NewModel()
	m.Add(domain.NewCircle(geom.Vec(0.5, 0.5), 0.2, false))
	unitSquare(m)
	m.Add(domain.NewCustomText(geom.Vec(0.7, 0.5), "x"))

	r, ok := kernel.FindClosedRegion(m.Entities(), geom.Vec(0.5, 0.5))
	require.True(t, ok)
	assert.Len(t, r.EntityIDs, 4)
}

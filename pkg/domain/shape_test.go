package domain_test

import (
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-3

func assertNear(t *testing.T, want, got geom.Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, eps, "y of %v", got)
}

func sampleShapes() map[string]domain.Shape {
	return map[string]domain.Shape{
		"line":      domain.NewLine(geom.Vec(1, 2), geom.Vec(11, 7)),
		"circle":    domain.NewCircle(geom.Vec(3, 4), 5, false),
		"rectangle": domain.NewRectangle(geom.Vec(10, 10), geom.Vec(0, 0), true),
		"arc":       domain.NewArcDirected(geom.Vec(0, 0), geom.Vec(5, 0), geom.Vec(0, 5), false, false),
		"text":      domain.NewDistanceText(geom.Vec(0, 0), geom.Vec(10, 0)),
		"column":    domain.PlaceColumn(geom.Vec(50, 50), 40, 30, 0.3, 1, "C1", domain.ColumnCenter),
		"beam":      domain.NewBeam(geom.Vec(0, 0), geom.Vec(100, 20), 1, "B1", domain.BeamTop),
	}
}

func TestShapes_HitTestCenterAndBoundary(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		l := domain.NewLine(geom.Vec(0, 0), geom.Vec(10, 0))
		assert.True(t, l.HitTest(l.Center(), 0.5))
		assert.True(t, l.HitTest(geom.Vec(10, 0), 0.5))
		assert.False(t, l.HitTest(geom.Vec(5, 2), 1))
	})

	t.Run("circle", func(t *testing.T) {
		c := domain.NewCircle(geom.Vec(0, 0), 5, false)
		assert.True(t, c.HitTest(geom.Vec(5, 0), 0.5))
		assert.False(t, c.HitTest(geom.Vec(0, 0), 0.5), "unfilled circle is hollow")
		c.Filled = true
		assert.True(t, c.HitTest(geom.Vec(0, 0), 0.5))
		assert.False(t, c.HitTest(geom.Vec(7, 0), 0.5))
	})

	t.Run("rectangle", func(t *testing.T) {
		r := domain.NewRectangle(geom.Vec(0, 0), geom.Vec(10, 10), false)
		assert.False(t, r.HitTest(geom.Vec(5, 5), 1))
		assert.True(t, r.HitTest(geom.Vec(0, 5), 1))
		assert.True(t, r.HitTest(geom.Vec(5, 10.5), 1))
		assert.False(t, r.HitTest(geom.Vec(20, 20), 1))
		r.Filled = true
		assert.True(t, r.HitTest(geom.Vec(5, 5), 1))
	})

	t.Run("arc", func(t *testing.T) {
		a := domain.NewArcDirected(geom.Vec(0, 0), geom.Vec(5, 0), geom.Vec(0, 5), false, false)
		assert.True(t, a.HitTest(geom.Vec(3.5355, 3.5355), 0.1))
		assert.False(t, a.HitTest(geom.Vec(0, -5), 0.1))
		assert.False(t, a.HitTest(geom.Vec(1, 1), 0.1))
	})

	t.Run("column", func(t *testing.T) {
		c := domain.PlaceColumn(geom.Vec(0, 0), 40, 20, 0, 0, "", domain.ColumnCenter)
		assert.True(t, c.HitTest(geom.Vec(0, 0), 1))
		assert.True(t, c.HitTest(geom.Vec(20.5, 0), 1))
		assert.False(t, c.HitTest(geom.Vec(30, 0), 1))

		c.Rotation = geom.Pi / 2
		assert.True(t, c.HitTest(geom.Vec(0, 15), 1))
		assert.False(t, c.HitTest(geom.Vec(15, 0), 1))
	})

	t.Run("beam", func(t *testing.T) {
		b := domain.NewBeam(geom.Vec(0, 0), geom.Vec(100, 0), 0, "Beam", domain.BeamCenter)
		assert.True(t, b.HitTest(geom.Vec(50, 10), 1))
		assert.False(t, b.HitTest(geom.Vec(50, 20), 1))
	})

	t.Run("text", func(t *testing.T) {
		txt := domain.NewCustomText(geom.Vec(0, 0), "abc")
		assert.True(t, txt.HitTest(geom.Vec(0, 0), 1))
		assert.True(t, txt.HitTest(geom.Vec(22, 0), 1))
		assert.False(t, txt.HitTest(geom.Vec(40, 0), 1))
	})
}

func TestArc_WrapAroundRange(t *testing.T) {
	a := &domain.Arc{Origin: geom.Vec(0, 0), Radius: 5, StartAngle: -geom.Pi / 2, EndAngle: geom.Pi / 2}
	assert.True(t, a.HitTest(geom.Vec(5, 0), 0.1))
	assert.False(t, a.HitTest(geom.Vec(-5, 0), 0.1))

	cw := domain.NewArcDirected(geom.Vec(0, 0), geom.Vec(5, 0), geom.Vec(0, 5), false, true)
	assert.False(t, cw.HitTest(geom.Vec(3.5355, 3.5355), 0.1))
	assert.True(t, cw.HitTest(geom.Vec(-5, 0), 0.1))

	pts := a.Polyline()
	assert.Len(t, pts, 25)
	assertNear(t, geom.Vec(0, -5), pts[0])
	assertNear(t, geom.Vec(5, 0), pts[12])
}

func TestShapes_TranslateRoundTrip(t *testing.T) {
	d := geom.Vec(12.5, -7)
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			lo, hi := s.BoundingBox()
			c := s.Clone()
			c.Translate(d)
			assertNear(t, s.Center().Add(d), c.Center())
			c.Translate(d.Neg())
			clo, chi := c.BoundingBox()
			assertNear(t, lo, clo)
			assertNear(t, hi, chi)
			assertNear(t, s.Center(), c.Center())
		})
	}
}

func TestShapes_IdentityTransforms(t *testing.T) {
	pivot := geom.Vec(3, -2)
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			lo, hi := s.BoundingBox()

			r := s.Clone()
			r.Rotate(pivot, 0)
			rlo, rhi := r.BoundingBox()
			assertNear(t, lo, rlo)
			assertNear(t, hi, rhi)

			sc := s.Clone()
			sc.Scale(pivot, 1)
			slo, shi := sc.BoundingBox()
			assertNear(t, lo, slo)
			assertNear(t, hi, shi)
			assertNear(t, s.Center(), sc.Center())
		})
	}
}

func TestShapes_CloneIsIndependent(t *testing.T) {
	txt := domain.NewAreaText(geom.Vec(0, 0), 1, []geom.Vector2{{X: 1, Y: 1}})
	c := txt.Clone().(*domain.Text)
	c.Translate(geom.Vec(5, 5))
	assert.Equal(t, geom.Vec(1, 1), txt.Anchors[0])
	assert.Equal(t, geom.Vec(6, 6), c.Anchors[0])
}

func TestRectangle_RotateGrowsAABB(t *testing.T) {
	r := domain.NewRectangle(geom.Vec(-1, -1), geom.Vec(1, 1), false)
	r.Rotate(geom.Vec(0, 0), geom.Pi/4)
	assert.InDelta(t, 1.4142, r.Max.X, eps)
	assert.InDelta(t, -1.4142, r.Min.Y, eps)
}

func TestColumn_PlacementAnchor(t *testing.T) {
	c := domain.PlaceColumn(geom.Vec(0, 0), 40, 20, 0, 3, "S1", domain.ColumnTopLeft)
	assertNear(t, geom.Vec(20, 10), c.Center())
	assertNear(t, geom.Vec(0, 0), c.Corners()[0])

	assert.Equal(t, domain.ColumnCenter, domain.ColumnBottomLeft.Next())
	assert.Equal(t, "TopRight", domain.ColumnTopRight.String())
}

func TestBeam_CornersFollowAnchor(t *testing.T) {
	b := domain.NewBeam(geom.Vec(0, 0), geom.Vec(100, 0), 0, "Beam", domain.BeamCenter)
	k := b.Corners(20)
	assertNear(t, geom.Vec(0, 10), k[0])
	assertNear(t, geom.Vec(100, -10), k[2])

	b.Anchor = domain.BeamTop
	k = b.Corners(20)
	assertNear(t, geom.Vec(0, 20), k[0])
	assertNear(t, geom.Vec(100, 0), k[2])

	lo, hi := b.BoundingBox()
	assertNear(t, geom.Vec(-20, -20), lo)
	assertNear(t, geom.Vec(120, 20), hi)

	assert.Equal(t, domain.BeamBottom, domain.BeamTop.Flip())
	assert.Equal(t, domain.BeamCenter, domain.BeamBottom.Next())
}

func TestAnnotations(t *testing.T) {
	d := domain.NewDistanceText(geom.Vec(0, 0), geom.Vec(10, 0))
	assert.Equal(t, "10.00", d.Content)
	assert.Equal(t, domain.AnnotationDistance, d.Type)
	assertNear(t, geom.Vec(5, 15), d.Position)
	assert.InDelta(t, 0, d.Rotation, eps)

	zero := domain.NewDistanceText(geom.Vec(2, 2), geom.Vec(2, 2))
	assertNear(t, geom.Vec(2, 17), zero.Position)

	a := domain.NewAreaText(geom.Vec(5, 5), 1, nil)
	assert.Equal(t, "Area: 1.00", a.Content)

	p := domain.NewPerimeterText(geom.Vec(5, 5), 4, nil)
	assert.Equal(t, "Perim: 4.00", p.Content)
	assertNear(t, geom.Vec(5, -13), p.Position)
}

func TestLine_LengthLabel(t *testing.T) {
	l := domain.NewLine(geom.Vec(0, 0), geom.Vec(100, 0))
	label := l.LabelPosition(5)
	assertNear(t, geom.Vec(50, 15), label)
	assert.False(t, l.HitTest(label, 5))

	l.ShowLength = true
	assert.True(t, l.HitTest(label, 5))
}

package command_test

import (
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedLine(a, b geom.Vector2) (command.Context, *domain.Entity) {
	ctx := newCtx()
	e := ctx.Model.Add(domain.NewLine(a, b))
	ctx.Selection.Add(e.ID)
	return ctx, e
}

func TestManipulation_RequiresSelection(t *testing.T) {
	ctx := newCtx()
	ctx.Model.Add(domain.NewLine(geom.Vec(0, 0), geom.Vec(1, 0)))

	for _, c := range []command.Command{command.NewMove(), command.NewRotate(), command.NewScale(), command.NewCopy(), command.NewCut()} {
		assert.Equal(t, command.Manipulation, c.Category(), c.Name())
		assert.False(t, c.CanExecute(ctx), c.Name())
		assert.Equal(t, "No entities selected. Select entities first.", c.RefusalMessage(), c.Name())
	}
}

func TestMove(t *testing.T) {
	ctx, e := selectedLine(geom.Vec(0, 0), geom.Vec(10, 0))
	c := command.NewMove()
	require.True(t, c.CanExecute(ctx))
	c.OnStart(ctx)

	assert.Equal(t, "Specify destination point (Shift for ortho):", c.PushPoint(geom.Vec(0, 0), ctx).Prompt)
	ctx.Modifiers.Shift = true
	assert.True(t, c.PushPoint(geom.Vec(5, 2), ctx).Complete)

	l := e.Shape.(*domain.Line)
	assert.Equal(t, geom.Vec(5, 0), l.Start)
	assert.Equal(t, geom.Vec(15, 0), l.End)
}

func TestRotate(t *testing.T) {
	ctx, e := selectedLine(geom.Vec(10, 0), geom.Vec(20, 0))
	c := command.NewRotate()
	c.OnStart(ctx)
	c.PushPoint(geom.Vec(0, 0), ctx)
	assert.True(t, c.PushPoint(geom.Vec(0, 5), ctx).Complete)

	l := e.Shape.(*domain.Line)
	assertVec(t, geom.Vec(0, 10), l.Start)
	assertVec(t, geom.Vec(0, 20), l.End)
}

func TestRotate_ShiftSnapsTo45(t *testing.T) {
	ctx, e := selectedLine(geom.Vec(10, 0), geom.Vec(20, 0))
	ctx.Modifiers.Shift = true
	c := command.NewRotate()
	c.OnStart(ctx)
	c.PushPoint(geom.Vec(0, 0), ctx)
	c.PushPoint(geom.Vec(10, 9), ctx)

	l := e.Shape.(*domain.Line)
	assert.InDelta(t, geom.Pi/4, l.End.Sub(l.Start).Angle(), 1e-4)
}

func TestScale(t *testing.T) {
	t.Run("typed factor scales about base", func(t *testing.T) {
		ctx, e := selectedLine(geom.Vec(1, 0), geom.Vec(2, 0))
		c := command.NewScale()
		require.True(t, c.CanExecute(ctx))
		c.OnStart(ctx)
		c.PushPoint(geom.Vec(0, 0), ctx)

		assert.Equal(t, command.InputInvalid, c.ProcessInput("0", ctx).Kind)
		res := c.ProcessInput("2", ctx)
		assert.Equal(t, command.InputParameter, res.Kind)
		assert.True(t, res.Complete())

		l := e.Shape.(*domain.Line)
		assertVec(t, geom.Vec(2, 0), l.Start)
		assertVec(t, geom.Vec(4, 0), l.End)
	})

	t.Run("second point scales about each center", func(t *testing.T) {
		ctx, e := selectedLine(geom.Vec(0, 0), geom.Vec(10, 0))
		c := command.NewScale()
		c.OnStart(ctx)
		c.PushPoint(geom.Vec(15, 0), ctx)
		assert.True(t, c.PushPoint(geom.Vec(25, 0), ctx).Complete)

		l := e.Shape.(*domain.Line)
		assertVec(t, geom.Vec(-5, 0), l.Start)
		assertVec(t, geom.Vec(15, 0), l.End)
	})

	t.Run("refuses columns", func(t *testing.T) {
		ctx := newCtx()
		col := ctx.Model.Add(domain.PlaceColumn(geom.Vec(0, 0), 40, 40, 0, 1, "S40x40", domain.ColumnCenter))
		ctx.Selection.Add(col.ID)

		c := command.NewScale()
		assert.False(t, c.CanExecute(ctx))
		assert.Equal(t, "Cannot scale Columns. Edit properties instead.", c.RefusalMessage())
	})
}

func TestCopyAndCut(t *testing.T) {
	t.Run("copy", func(t *testing.T) {
		ctx, e := selectedLine(geom.Vec(0, 0), geom.Vec(10, 0))
		c := command.NewCopy()
		assert.Equal(t, "COPY Specify base point:", c.InitialPrompt())
		c.OnStart(ctx)
		c.PushPoint(geom.Vec(0, 0), ctx)
		assert.True(t, c.PushPoint(geom.Vec(5, 5), ctx).Complete)

		require.Equal(t, 2, ctx.Model.Len())
		cp := ctx.Model.Entities()[1]
		assert.NotEqual(t, e.ID, cp.ID)
		assert.Equal(t, geom.Vec(5, 5), cp.Shape.(*domain.Line).Start)
		assert.Equal(t, geom.Vec(0, 0), e.Shape.(*domain.Line).Start)
	})

	t.Run("cut", func(t *testing.T) {
		ctx, e := selectedLine(geom.Vec(0, 0), geom.Vec(10, 0))
		c := command.NewCut()
		assert.Equal(t, "CUT", c.Name())
		c.OnStart(ctx)
		c.PushPoint(geom.Vec(0, 0), ctx)
		c.PushPoint(geom.Vec(0, 3), ctx)

		require.Equal(t, 1, ctx.Model.Len())
		assert.Nil(t, ctx.Model.Find(e.ID))
		assert.Equal(t, geom.Vec(0, 3), ctx.Model.Entities()[0].Shape.(*domain.Line).Start)
	})
}

func TestOffset(t *testing.T) {
	t.Run("needs a selected line", func(t *testing.T) {
		ctx := newCtx()
		circle := ctx.Model.Add(domain.NewCircle(geom.Vec(0, 0), 5, false))
		ctx.Selection.Add(circle.ID)

		c := command.NewOffset()
		assert.False(t, c.CanExecute(ctx))
		assert.Equal(t, "No lines selected. Select lines first.", c.RefusalMessage())
	})

	t.Run("click distance then side", func(t *testing.T) {
		ctx, _ := selectedLine(geom.Vec(0, 0), geom.Vec(10, 0))
		c := command.NewOffset()
		require.True(t, c.CanExecute(ctx))
		c.OnStart(ctx)

		assert.Equal(t, "Offset distance: 3.00. Click side to offset:", c.PushPoint(geom.Vec(5, 3), ctx).Prompt)
		assert.True(t, c.PushPoint(geom.Vec(5, -1), ctx).Complete)

		l := onlyShape[*domain.Line](t, ctx.Model, 1)
		assertVec(t, geom.Vec(0, -3), l.Start)
		assertVec(t, geom.Vec(10, -3), l.End)
	})

	t.Run("typed distance", func(t *testing.T) {
		ctx, _ := selectedLine(geom.Vec(0, 0), geom.Vec(10, 0))
		c := command.NewOffset()
		c.OnStart(ctx)

		assert.Equal(t, "Offset distance must be positive.", c.ProcessInput("-2", ctx).Message)
		res := c.ProcessInput("2", ctx)
		assert.Equal(t, command.InputParameter, res.Kind)
		d, ok := c.Distance()
		assert.True(t, ok)
		assert.Equal(t, float32(2), d)

		assert.True(t, c.ProcessInput("5,10", ctx).Complete())
		assertVec(t, geom.Vec(0, 2), onlyShape[*domain.Line](t, ctx.Model, 1).Start)
	})
}

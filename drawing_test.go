package mugincad_test

import (
	"strconv"
	"testing"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawLine(d *mugincad.Drawing, a, b geom.Vector2) {
	d.Submit("line")
	d.Click(a)
	d.Click(b)
	d.Submit("")
}

func TestDrawing_LineAndHistoryLog(t *testing.T) {
	d := mugincad.New()
	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))

	assert.False(t, d.Executor().IsActive(), "an empty token cancels the chained line")
	require.Len(t, d.Model().Entities(), 1)
	assert.Equal(t, []string{"> line", "Point: 0.00, 0.00", "Point: 10.00, 0.00"}, d.History())
}

func TestDrawing_UndoRedo(t *testing.T) {
	d := mugincad.New()
	d.Submit("undo")
	assert.Equal(t, "Nothing to undo", d.Status())
	d.Submit("redo")
	assert.Equal(t, "Nothing to redo", d.Status())

	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))
	require.Len(t, d.Model().Entities(), 1)

	d.Submit("u")
	assert.Equal(t, "Undo", d.Status())
	assert.Empty(t, d.Model().Entities())

	d.Submit("redo")
	assert.Equal(t, "Redo", d.Status())
	assert.Len(t, d.Model().Entities(), 1)
}

func TestDrawing_IdleClickSelects(t *testing.T) {
	d := mugincad.New()
	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))
	drawLine(d, geom.Vec(0, 50), geom.Vec(10, 50))
	first := d.Model().Entities()[0].ID
	second := d.Model().Entities()[1].ID

	d.Click(geom.Vec(5, 1))
	assert.Equal(t, "Selected 1 items", d.Status())
	assert.True(t, d.Selection().Has(first))

	d.SetModifiers(command.Modifiers{Shift: true})
	d.Click(geom.Vec(5, 49))
	assert.Equal(t, "Selected 2 items", d.Status())
	assert.True(t, d.Selection().Has(second))

	d.Click(geom.Vec(5, 49))
	assert.False(t, d.Selection().Has(second), "shift click toggles")

	d.SetModifiers(command.Modifiers{})
	d.Click(geom.Vec(500, 500))
	assert.Equal(t, "Selection cleared", d.Status())
	assert.Equal(t, 0, d.Selection().Len())
}

func TestDrawing_DeleteConfirmation(t *testing.T) {
	d := mugincad.New()
	d.Submit("delete")
	assert.Equal(t, "Nothing selected to delete", d.Status())

	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))
	d.Submit("select all")
	assert.Equal(t, "Selected 1 items", d.Status())

	d.Submit("d")
	assert.Equal(t, "Are you sure you want to delete? (Y/N)", d.Status())
	d.Submit("n")
	assert.Equal(t, "Delete cancelled", d.Status())
	assert.Len(t, d.Model().Entities(), 1)

	d.Submit("d")
	d.Submit("maybe")
	assert.Equal(t, "Delete cancelled (invalid input)", d.Status())

	d.Submit("d")
	d.Submit("Y")
	assert.Equal(t, "Deleted 1 items", d.Status())
	assert.Empty(t, d.Model().Entities())

	d.Submit("undo")
	assert.Len(t, d.Model().Entities(), 1)
}

func TestDrawing_ShadeAndClear(t *testing.T) {
	d := mugincad.New()
	d.Submit("shade")
	assert.Equal(t, "SHADE mode: ON", d.Status())

	d.Submit("rect")
	d.Submit("0,0")
	d.Submit("4,4")
	require.Len(t, d.Model().Entities(), 1)
	assert.True(t, d.Model().Entities()[0].IsFilled())

	d.Submit("fill")
	assert.Equal(t, "SHADE mode: OFF", d.Status())

	d.Submit("clear")
	assert.Empty(t, d.Model().Entities())
	assert.Empty(t, d.History())
	assert.True(t, d.CanUndo())
}

func TestDrawing_SelectPickAndManipulate(t *testing.T) {
	d := mugincad.New()
	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))
	id := d.Model().Entities()[0].ID

	d.Submit("select 999")
	assert.Equal(t, `Unknown entity "999".`, d.Status())

	d.Submit("pick 5,0")
	assert.True(t, d.Selection().Has(id))

	d.Submit("move")
	d.Click(geom.Vec(0, 0))
	d.Click(geom.Vec(0, 7))
	l := d.Model().Find(id).Shape.(*domain.Line)
	assert.Equal(t, geom.Vec(0, 7), l.Start)

	d.Submit("select none")
	assert.Equal(t, 0, d.Selection().Len())
}

func TestDrawing_CutPrunesSelection(t *testing.T) {
	d := mugincad.New()
	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))
	drawLine(d, geom.Vec(0, 5), geom.Vec(10, 5))
	cut, kept := d.Model().Entities()[0].ID, d.Model().Entities()[1].ID

	d.Submit("select " + strconv.FormatUint(cut, 10) + "," + strconv.FormatUint(kept, 10))
	require.Equal(t, 2, d.Selection().Len())

	t.Run("cut removes the originals from the selection", func(t *testing.T) {
		d.Submit("cut")
		d.Click(geom.Vec(0, 0))
		d.Click(geom.Vec(0, 20))

		assert.False(t, d.Executor().IsActive())
		assert.Nil(t, d.Model().Find(cut))
		assert.Nil(t, d.Model().Find(kept))
		assert.Len(t, d.Model().Entities(), 2)
		assert.Equal(t, 0, d.Selection().Len())
	})

	t.Run("copy leaves the selection alone", func(t *testing.T) {
		id := d.Model().Entities()[0].ID
		d.Submit("select " + strconv.FormatUint(id, 10))
		d.Submit("copy")
		d.Click(geom.Vec(0, 0))
		d.Click(geom.Vec(5, 0))

		assert.Len(t, d.Model().Entities(), 3)
		assert.True(t, d.Selection().Has(id))
	})
}

func TestDrawing_TextContentIsNotAMetaToken(t *testing.T) {
	d := mugincad.New()
	d.Submit("text")
	d.Click(geom.Vec(1, 1))
	d.Submit("undo")

	require.Len(t, d.Model().Entities(), 1)
	assert.Equal(t, "undo", d.Model().Entities()[0].Shape.(*domain.Text).Content)
}

func TestDrawing_Layers(t *testing.T) {
	d := mugincad.New()
	id := d.Model().Layers.Add("Walls", [4]uint8{255, 0, 0, 255})

	d.Submit("layer Walls")
	assert.Equal(t, "Active layer: Walls", d.Status())
	drawLine(d, geom.Vec(0, 0), geom.Vec(1, 0))
	assert.Equal(t, id, d.Model().Entities()[0].LayerID)

	d.Submit("layer 0")
	assert.Equal(t, "Active layer: Default", d.Status())

	d.Submit("layer Roof")
	assert.Equal(t, `Unknown layer "Roof".`, d.Status())
}

func TestDrawing_ProjectRoundTrip(t *testing.T) {
	d := mugincad.New()
	d.Name = "plan"
	drawLine(d, geom.Vec(0, 0), geom.Vec(10, 0))
	d.Submit("axis")
	d.Submit("v")
	d.Submit("25")
	d.Submit("esc")

	p := d.Project()
	assert.Equal(t, domain.ProjectVersion, p.Version)
	assert.Equal(t, "plan", p.Name)

	restored, err := mugincad.Open(p)
	require.NoError(t, err)
	assert.Equal(t, "plan", restored.Name)
	require.Len(t, restored.Model().Entities(), 1)
	assert.Len(t, restored.Model().Axes.Axes, 1)

	drawLine(restored, geom.Vec(0, 5), geom.Vec(10, 5))
	assert.Greater(t, restored.Model().Entities()[1].ID, restored.Model().Entities()[0].ID)

	_, err = mugincad.Open(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidProject)
	_, err = mugincad.Open(&domain.Project{})
	assert.ErrorIs(t, err, domain.ErrInvalidProject)
}

func TestDrawing_Hooks(t *testing.T) {
	var completed []string
	d := mugincad.New(mugincad.WithLifecycleHooks(domain.LifecycleHooks{
		OnCommandComplete: func(ev *domain.CommandEvent) { completed = append(completed, ev.Command) },
	}))
	d.Submit("circle")
	d.Click(geom.Vec(0, 0))
	d.Click(geom.Vec(0, 3))
	assert.Equal(t, []string{"CIRCLE"}, completed)
}

func TestDrawing_WithFilled(t *testing.T) {
	d := mugincad.New(mugincad.WithFilled(true))
	d.Submit("rect")
	d.Submit("0,0")
	d.Submit("4,4")
	require.Len(t, d.Model().Entities(), 1)
	assert.True(t, d.Model().Entities()[0].IsFilled())

	d.Submit("fill")
	assert.Equal(t, "SHADE mode: OFF", d.Status())
}

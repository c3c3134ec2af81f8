package command

import (
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// base carries the collected points and the category defaults shared by
// every variant.
type base struct {
	category Category
	points   []geom.Vector2
}

func (b *base) Category() Category { return b.category }

func (b *base) CanExecute(ctx Context) bool {
	if b.category == Manipulation {
		return ctx.Selection.Len() > 0
	}
	return true
}

func (b *base) RefusalMessage() string {
	if b.category == Manipulation {
		return "No entities selected."
	}
	return "Cannot execute command."
}

func (b *base) OnStart(Context) {}

// ConstrainPoint locks p to the horizontal or vertical through last while
// shift is held, whichever is closer to the cursor direction.
func (b *base) ConstrainPoint(p geom.Vector2, last *geom.Vector2, mods Modifiers) geom.Vector2 {
	return orthoLock(p, last, mods)
}

func (b *base) Points() []geom.Vector2 {
	return append([]geom.Vector2(nil), b.points...)
}

func (b *base) last() *geom.Vector2 {
	if len(b.points) == 0 {
		return nil
	}
	p := b.points[len(b.points)-1]
	return &p
}

func (b *base) push(p geom.Vector2) { b.points = append(b.points, p) }

func (b *base) sealed() {}

func orthoLock(p geom.Vector2, last *geom.Vector2, mods Modifiers) geom.Vector2 {
	if !mods.Shift || last == nil {
		return p
	}
	if geom.Abs(p.X-last.X) > geom.Abs(p.Y-last.Y) {
		return geom.Vec(p.X, last.Y)
	}
	return geom.Vec(last.X, p.Y)
}

// defaultInput parses "x,y", constrains it against the last point and
// pushes it.
func defaultInput(c Command, token string, ctx Context) InputResult {
	p, ok := ParsePoint(token)
	if !ok {
		return Invalid(invalidInput(token, ""))
	}
	var last *geom.Vector2
	if pts := c.Points(); len(pts) > 0 {
		last = &pts[len(pts)-1]
	}
	return PointInput(c.PushPoint(c.ConstrainPoint(p, last, ctx.Modifiers), ctx))
}

func invalidInput(token, hint string) string {
	msg := fmt.Sprintf("Invalid input %q.", token)
	if hint != "" {
		msg += " " + hint
	}
	return msg
}

const noSelection = "No entities selected. Select entities first."

package command

import (
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/kernel"
)

// selectionBase captures the top-level selection when a manipulation
// starts. Later selection changes do not affect the running command.
type selectionBase struct {
	base
	ids []uint64
}

func manipulation() selectionBase { return selectionBase{base: base{category: Manipulation}} }

func (b *selectionBase) RefusalMessage() string { return noSelection }

func (b *selectionBase) OnStart(ctx Context) {
	b.ids = ctx.Model.TopLevelSelected(ctx.Selection)
}

// Targets returns the ids captured on start.
func (b *selectionBase) Targets() []uint64 { return append([]uint64(nil), b.ids...) }

func (b *selectionBase) each(m *domain.Model, fn func(e *domain.Entity)) {
	for _, id := range b.ids {
		if e := m.Find(id); e != nil {
			fn(e)
		}
	}
}

// Move translates the selection by destination minus base.
type Move struct{ selectionBase }

func NewMove() *Move { return &Move{manipulation()} }

func (c *Move) Name() string          { return "MOVE" }
func (c *Move) Kind() Kind            { return KindMove }
func (c *Move) InitialPrompt() string { return "MOVE Specify base point:" }

func (c *Move) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) == 1 {
		return NeedMore("Specify destination point (Shift for ortho):")
	}
	delta := p.Sub(c.points[0])
	if ctx.Modifiers.Shift {
		if geom.Abs(delta.X) > geom.Abs(delta.Y) {
			delta.Y = 0
		} else {
			delta.X = 0
		}
	}
	c.each(ctx.Model, func(e *domain.Entity) { e.Translate(delta) })
	return Done()
}

func (c *Move) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

// Rotate turns the selection about a pivot by the angle of the second
// point seen from the pivot.
type Rotate struct{ selectionBase }

func NewRotate() *Rotate { return &Rotate{manipulation()} }

func (c *Rotate) Name() string          { return "ROTATE" }
func (c *Rotate) Kind() Kind            { return KindRotate }
func (c *Rotate) InitialPrompt() string { return "ROTATE Specify base point (pivot):" }

// ConstrainPoint leaves points alone: shift snaps the angle instead.
func (c *Rotate) ConstrainPoint(p geom.Vector2, _ *geom.Vector2, _ Modifiers) geom.Vector2 {
	return p
}

func (c *Rotate) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) == 1 {
		return NeedMore("Specify rotation angle point (Shift for 45° snap):")
	}
	pivot := c.points[0]
	angle := p.Sub(pivot).Angle()
	if ctx.Modifiers.Shift {
		const step = geom.Pi / 4
		angle = geom.Round(angle/step) * step
	}
	c.each(ctx.Model, func(e *domain.Entity) { e.Rotate(pivot, angle) })
	return Done()
}

func (c *Rotate) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

// Scale resizes the selection. A typed factor scales about the base point;
// a second point derives the factor from the first entity's center and
// scales every entity about its own center.
type Scale struct {
	selectionBase
	columns bool
}

func NewScale() *Scale { return &Scale{selectionBase: manipulation()} }

func (c *Scale) Name() string          { return "SCALE" }
func (c *Scale) Kind() Kind            { return KindScale }
func (c *Scale) InitialPrompt() string { return "SCALE Specify base point:" }

// CanExecute refuses selections containing a Column; their size comes
// from the column type.
func (c *Scale) CanExecute(ctx Context) bool {
	c.columns = false
	if ctx.Selection.Len() == 0 {
		return false
	}
	for _, id := range ctx.Selection.IDs() {
		if e := ctx.Model.Find(id); e != nil && e.Kind() == domain.ShapeColumn {
			c.columns = true
			return false
		}
	}
	return true
}

func (c *Scale) RefusalMessage() string {
	if c.columns {
		return "Cannot scale Columns. Edit properties instead."
	}
	return noSelection
}

func (c *Scale) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) == 1 {
		return NeedMore("Specify scale factor or second point:")
	}
	if len(c.ids) == 0 {
		return Done()
	}
	first := ctx.Model.Find(c.ids[0])
	if first == nil {
		return Done()
	}
	center := first.Center()
	baseDist := c.points[0].Dist(center)
	if baseDist <= 0.1 {
		return Done()
	}
	factor := p.Dist(center) / baseDist
	c.each(ctx.Model, func(e *domain.Entity) { e.Scale(e.Center(), factor) })
	return Done()
}

func (c *Scale) ProcessInput(token string, ctx Context) InputResult {
	if _, ok := ParsePoint(token); ok {
		return defaultInput(c, token, ctx)
	}
	if f, ok := ParseNumber(token); ok && f > 0 && len(c.points) == 1 {
		origin := c.points[0]
		c.each(ctx.Model, func(e *domain.Entity) { e.Scale(origin, f) })
		return ParameterInput(Done())
	}
	return Invalid(invalidInput(token, ""))
}

// Copy duplicates the selection, as captured on start, by destination
// minus base. With Cut set the originals are removed afterwards.
type Copy struct {
	selectionBase
	Cut    bool
	copied []*domain.Entity
}

func NewCopy() *Copy { return &Copy{selectionBase: manipulation()} }
func NewCut() *Copy  { return &Copy{selectionBase: manipulation(), Cut: true} }

func (c *Copy) Name() string {
	if c.Cut {
		return "CUT"
	}
	return "COPY"
}

func (c *Copy) Kind() Kind            { return KindCopy }
func (c *Copy) InitialPrompt() string { return c.Name() + " Specify base point:" }

func (c *Copy) OnStart(ctx Context) {
	c.selectionBase.OnStart(ctx)
	c.copied = c.copied[:0]
	c.each(ctx.Model, func(e *domain.Entity) { c.copied = append(c.copied, e.Clone()) })
}

func (c *Copy) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) == 1 {
		return NeedMore("Specify destination point:")
	}
	delta := p.Sub(c.points[0])
	for _, e := range c.copied {
		cp := ctx.Model.CloneEntity(e)
		cp.Translate(delta)
		ctx.Model.AddEntity(cp)
	}
	if c.Cut {
		ctx.Model.Remove(domain.NewSelection(c.ids...))
	}
	return Done()
}

func (c *Copy) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

// Offset creates parallel copies of the selected lines.
type Offset struct {
	selectionBase
	lines    []*domain.Line
	distance float32
	hasDist  bool
}

func NewOffset() *Offset { return &Offset{selectionBase: manipulation()} }

func (c *Offset) Name() string           { return "OFFSET" }
func (c *Offset) Kind() Kind             { return KindOffset }
func (c *Offset) InitialPrompt() string  { return "OFFSET Specify offset distance:" }
func (c *Offset) RefusalMessage() string { return "No lines selected. Select lines first." }

func (c *Offset) CanExecute(ctx Context) bool {
	for _, e := range ctx.Model.SelectedEntities(ctx.Selection) {
		if _, ok := e.Shape.(*domain.Line); ok {
			return true
		}
	}
	return false
}

func (c *Offset) OnStart(ctx Context) {
	c.selectionBase.OnStart(ctx)
	c.lines = c.lines[:0]
	c.each(ctx.Model, func(e *domain.Entity) {
		if l, ok := e.Shape.(*domain.Line); ok {
			c.lines = append(c.lines, l.Clone().(*domain.Line))
		}
	})
}

// Distance reports the chosen distance, if any.
func (c *Offset) Distance() (float32, bool) { return c.distance, c.hasDist }

func (c *Offset) sidePrompt() string {
	return fmt.Sprintf("Offset distance: %.2f. Click side to offset:", c.distance)
}

func (c *Offset) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if !c.hasDist && len(c.lines) > 0 {
		first := c.lines[0]
		c.distance, c.hasDist = p.DistToSegment(first.Start, first.End), true
		return NeedMore(c.sidePrompt())
	}
	if c.hasDist {
		for _, l := range c.lines {
			ctx.Model.Add(kernel.OffsetLine(l, c.distance, p))
		}
	}
	return Done()
}

func (c *Offset) ProcessInput(token string, ctx Context) InputResult {
	if !c.hasDist {
		if d, ok := ParseNumber(token); ok {
			if d <= 0 {
				return Invalid("Offset distance must be positive.")
			}
			c.distance, c.hasDist = d, true
			return ParameterInput(NeedMore(c.sidePrompt()))
		}
	}
	if _, ok := ParsePoint(token); ok {
		return defaultInput(c, token, ctx)
	}
	return Invalid(invalidInput(token, "Enter distance or coordinates."))
}

package command

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/kernel"
)

// TrimTolerance is the default distance a click may be from a line to trim it.
const TrimTolerance = 10

// Trim shortens lines at their intersections, one click per line. It
// stays active until cancelled.
type Trim struct {
	base
	Tolerance float32
}

func NewTrim() *Trim { return &Trim{base: base{category: Creation}, Tolerance: TrimTolerance} }

func (c *Trim) Name() string          { return "Trim" }
func (c *Trim) Kind() Kind            { return KindTrim }
func (c *Trim) InitialPrompt() string { return "Click on the portion of line to trim:" }

func (c *Trim) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	switch kernel.Trim(ctx.Model.Entities(), p, c.Tolerance).Status {
	case kernel.TrimNoLine:
		return NeedMore("No line found. Click on a line to trim:")
	case kernel.TrimNoIntersections:
		return NeedMore("No intersections found. Click another line:")
	case kernel.TrimNoValidIntersections:
		return NeedMore("No valid intersections on line segment. Click another line:")
	default:
		return NeedMore("Trimmed! Click another line or press Enter/Escape to exit:")
	}
}

func (c *Trim) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

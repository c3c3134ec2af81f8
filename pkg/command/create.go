package command

import (
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Line draws chained segments: every point after the first closes a
// segment from the previous one. It never completes on its own.
type Line struct{ base }

func NewLine() *Line { return &Line{base{category: Creation}} }

func (c *Line) Name() string          { return "LINE" }
func (c *Line) Kind() Kind            { return KindLine }
func (c *Line) InitialPrompt() string { return "LINE Specify first point:" }

func (c *Line) PushPoint(p geom.Vector2, ctx Context) PointResult {
	if prev := c.last(); prev != nil {
		ctx.Model.Add(domain.NewLine(*prev, p))
	}
	c.push(p)
	return NeedMore("Specify next point (Shift for ortho):")
}

func (c *Line) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

// Rectangle takes two opposite corners.
type Rectangle struct{ base }

func NewRectangle() *Rectangle { return &Rectangle{base{category: Creation}} }

func (c *Rectangle) Name() string          { return "RECTANGLE" }
func (c *Rectangle) Kind() Kind            { return KindRectangle }
func (c *Rectangle) InitialPrompt() string { return "RECTANGLE Specify first corner:" }

func (c *Rectangle) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) < 2 {
		return NeedMore("Specify other corner:")
	}
	ctx.Model.Add(domain.NewRectangle(c.points[0], c.points[1], ctx.Filled))
	return Done()
}

func (c *Rectangle) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

// Circle takes a center and then either a point on the circle or a typed
// radius.
type Circle struct{ base }

func NewCircle() *Circle { return &Circle{base{category: Creation}} }

func (c *Circle) Name() string          { return "CIRCLE" }
func (c *Circle) Kind() Kind            { return KindCircle }
func (c *Circle) InitialPrompt() string { return "CIRCLE Specify center point:" }

func (c *Circle) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) < 2 {
		return NeedMore("Specify radius point or enter radius:")
	}
	center := c.points[0]
	ctx.Model.Add(domain.NewCircle(center, center.Dist(c.points[1]), ctx.Filled))
	return Done()
}

func (c *Circle) ProcessInput(token string, ctx Context) InputResult {
	if _, ok := ParsePoint(token); ok {
		return defaultInput(c, token, ctx)
	}
	if r, ok := ParseNumber(token); ok && r > 0 && len(c.points) == 1 {
		ctx.Model.Add(domain.NewCircle(c.points[0], r, ctx.Filled))
		return ParameterInput(Done())
	}
	return Invalid(invalidInput(token, ""))
}

// Arc takes a center, a start point fixing the radius and an end point
// fixing the sweep. Direction is counter-clockwise unless reversed.
type Arc struct {
	base
	Clockwise bool
}

func NewArc() *Arc { return &Arc{base: base{category: Creation}} }

func (c *Arc) Name() string          { return "Arc" }
func (c *Arc) Kind() Kind            { return KindArc }
func (c *Arc) InitialPrompt() string { return "ARC Specify center point:" }

func (c *Arc) endPrompt() string {
	return "Specify end point [" + c.direction() + "] (type 'r' to reverse):"
}

func (c *Arc) direction() string {
	if c.Clockwise {
		return "CW"
	}
	return "CCW"
}

// Reverse flips the sweep direction and returns the new end-point prompt.
func (c *Arc) Reverse() string {
	c.Clockwise = !c.Clockwise
	return c.endPrompt()
}

func (c *Arc) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	switch len(c.points) {
	case 1:
		return NeedMore("Specify start point of arc:")
	case 2:
		return NeedMore(c.endPrompt())
	}
	ctx.Model.Add(domain.NewArcDirected(c.points[0], c.points[1], c.points[2], ctx.Filled, c.Clockwise))
	return Done()
}

func (c *Arc) ClaimsToken(token string) bool {
	return len(c.points) == 2 && isReverse(token)
}

func (c *Arc) ProcessInput(token string, ctx Context) InputResult {
	if len(c.points) == 2 && isReverse(token) {
		return ParameterInput(NeedMore(c.Reverse()))
	}
	if _, ok := ParsePoint(token); ok {
		return defaultInput(c, token, ctx)
	}
	return Invalid(invalidInput(token, "Enter point or 'r' to reverse."))
}

func isReverse(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	return t == "r" || t == "reverse"
}

// Text places a free annotation: a position first, then the content.
type Text struct{ base }

func NewText() *Text { return &Text{base{category: Creation}} }

func (c *Text) Name() string          { return "Text" }
func (c *Text) Kind() Kind            { return KindText }
func (c *Text) InitialPrompt() string { return "Specify text position:" }

func (c *Text) PushPoint(p geom.Vector2, _ Context) PointResult {
	if len(c.points) == 0 {
		c.push(p)
	}
	return NeedMore("Enter text content:")
}

// ClaimsToken reports true once a position is set: everything typed from
// then on is content.
func (c *Text) ClaimsToken(string) bool { return len(c.points) > 0 }

func (c *Text) ProcessInput(token string, ctx Context) InputResult {
	if len(c.points) == 0 {
		if _, ok := ParsePoint(token); ok {
			return defaultInput(c, token, ctx)
		}
		return Invalid("Please specify a position first.")
	}
	content := strings.TrimSpace(token)
	if content == "" {
		return Invalid("Text cannot be empty.")
	}
	ctx.Model.Add(domain.NewCustomText(c.points[0], content))
	return PointInput(Done())
}

package command

import (
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Axis adds grid axes of one orientation, chosen first with H or V. Each
// click or typed coordinate adds one axis.
type Axis struct {
	base
	orientation *domain.AxisOrientation
}

func NewAxis() *Axis { return &Axis{base: base{category: Creation}} }

func (c *Axis) Name() string          { return "AXIS" }
func (c *Axis) Kind() Kind            { return KindAxis }
func (c *Axis) InitialPrompt() string { return "AXIS Enter orientation (H=horizontal, V=vertical):" }

// Orientation reports the chosen orientation, if any.
func (c *Axis) Orientation() (domain.AxisOrientation, bool) {
	if c.orientation == nil {
		return "", false
	}
	return *c.orientation, true
}

func (c *Axis) word() string {
	if *c.orientation == domain.AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

func (c *Axis) add(m *domain.Model, coord float32) {
	if *c.orientation == domain.AxisVertical {
		m.Axes.AddVertical(coord)
		c.push(geom.Vec(coord, 0))
		return
	}
	m.Axes.AddHorizontal(coord)
	c.push(geom.Vec(0, coord))
}

func (c *Axis) PushPoint(p geom.Vector2, ctx Context) PointResult {
	if c.orientation == nil {
		return NeedMore("Enter orientation first (H or V):")
	}
	if *c.orientation == domain.AxisVertical {
		ctx.Model.Axes.AddVertical(p.X)
	} else {
		ctx.Model.Axes.AddHorizontal(p.Y)
	}
	c.push(p)
	return NeedMore("Specify " + c.word() + " axis position or Enter to finish:")
}

func parseOrientation(token string) (domain.AxisOrientation, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "h", "horizontal":
		return domain.AxisHorizontal, true
	case "v", "vertical":
		return domain.AxisVertical, true
	}
	return "", false
}

func (c *Axis) ClaimsToken(token string) bool {
	if c.orientation != nil {
		return false
	}
	_, ok := parseOrientation(token)
	return ok
}

func (c *Axis) ProcessInput(token string, ctx Context) InputResult {
	if c.orientation == nil {
		o, ok := parseOrientation(token)
		if !ok {
			return Invalid("Enter H for horizontal or V for vertical")
		}
		c.orientation = &o
		if o == domain.AxisVertical {
			return ParameterInput(NeedMore("AXIS (V) Click position or enter X coordinate:"))
		}
		return ParameterInput(NeedMore("AXIS (H) Click position or enter Y coordinate:"))
	}
	if v, ok := ParseNumber(token); ok {
		c.add(ctx.Model, v)
		return ParameterInput(NeedMore("Specify next " + c.word() + " axis position or Enter to finish:"))
	}
	if _, ok := ParsePoint(token); ok {
		return defaultInput(c, token, ctx)
	}
	return Invalid(invalidInput(token, "Enter coordinate or click position."))
}

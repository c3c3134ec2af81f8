package command

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// SelectRegion stores two clicked corners as the model's export region.
type SelectRegion struct {
	base
	first *geom.Vector2
}

func NewSelectRegion() *SelectRegion { return &SelectRegion{base: base{category: Utility}} }

func (c *SelectRegion) Name() string          { return "Select Export Region" }
func (c *SelectRegion) Kind() Kind            { return KindSelectRegion }
func (c *SelectRegion) InitialPrompt() string { return "Click first corner of export region:" }

func (c *SelectRegion) PushPoint(p geom.Vector2, ctx Context) PointResult {
	if c.first == nil {
		c.first = &p
		return NeedMore("Click second corner:")
	}
	ctx.Model.ExportRegion = &domain.Box{Min: geom.Min(*c.first, p), Max: geom.Max(*c.first, p)}
	return Done()
}

func (c *SelectRegion) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

package command

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/kernel"
)

// Distance places a length annotation between two points. The "measure"
// variant differs only in its name and its message for bad input.
type Distance struct {
	base
	measure bool
}

func NewDistance() *Distance { return &Distance{base: base{category: Creation}} }
func NewMeasure() *Distance  { return &Distance{base: base{category: Creation}, measure: true} }

func (c *Distance) Name() string {
	if c.measure {
		return "Measure"
	}
	return "Distance"
}

func (c *Distance) Kind() Kind {
	if c.measure {
		return KindMeasure
	}
	return KindDistance
}

func (c *Distance) InitialPrompt() string { return "Specify first point:" }

func (c *Distance) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) == 1 {
		return NeedMore("Specify second point:")
	}
	ctx.Model.Add(domain.NewDistanceText(c.points[0], c.points[1]))
	return Done()
}

func (c *Distance) ProcessInput(token string, ctx Context) InputResult {
	if _, ok := ParsePoint(token); !ok && c.measure {
		return Invalid("Please specify a point or click.")
	}
	return defaultInput(c, token, ctx)
}

// RegionMeasure annotates the closed region around a click with its area
// or its perimeter. Clicks outside any region keep the command waiting.
type RegionMeasure struct {
	base
	perimeter bool
}

func NewArea() *RegionMeasure { return &RegionMeasure{base: base{category: Creation}} }
func NewPerimeter() *RegionMeasure {
	return &RegionMeasure{base: base{category: Creation}, perimeter: true}
}

func (c *RegionMeasure) Name() string {
	if c.perimeter {
		return "Measure Perimeter"
	}
	return "Measure Area"
}

func (c *RegionMeasure) Kind() Kind {
	if c.perimeter {
		return KindPerimeter
	}
	return KindArea
}

func (c *RegionMeasure) InitialPrompt() string {
	if c.perimeter {
		return "Click inside a closed region to measure Perimeter:"
	}
	return "Click inside a closed region to measure Area:"
}

func (c *RegionMeasure) PushPoint(p geom.Vector2, ctx Context) PointResult {
	region, ok := kernel.FindClosedRegion(ctx.Model.Entities(), p)
	if !ok {
		if c.perimeter {
			return NeedMore("Region not closed. Try another point.")
		}
		return NeedMore("Region not closed or empty. Try another point.")
	}
	centroid := geom.Centroid(region.Vertices)
	if c.perimeter {
		ctx.Model.Add(domain.NewPerimeterText(centroid, geom.PathPerimeter(region.Vertices), region.Vertices))
	} else {
		ctx.Model.Add(domain.NewAreaText(centroid, geom.PolygonArea(region.Vertices), region.Vertices))
	}
	return Done()
}

func (c *RegionMeasure) ProcessInput(token string, ctx Context) InputResult {
	return defaultInput(c, token, ctx)
}

package command

import (
	"fmt"
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Placer is implemented by the structural placement commands, whose anchor
// and orientation the host can change between clicks.
type Placer interface {
	Command
	CycleAnchor() string
	RotatePlacement() string
}

// PlaceColumn inserts one column of the active column type.
type PlaceColumn struct {
	base
	Anchor   domain.ColumnAnchor
	Rotation float32
	typ      *domain.ColumnType
}

func NewPlaceColumn() *PlaceColumn { return &PlaceColumn{base: base{category: Creation}} }

func (c *PlaceColumn) Name() string { return "Place Column" }
func (c *PlaceColumn) Kind() Kind   { return KindPlaceColumn }
func (c *PlaceColumn) InitialPrompt() string {
	return "Specify insertion point (Q: Anchor, E: Rotate):"
}

func (c *PlaceColumn) OnStart(ctx Context) {
	c.typ, _ = ctx.Model.Definitions.ResolveColumnType(ctx.ActiveColumnType)
}

// ConstrainPoint is the identity: the anchor decides where the column sits.
func (c *PlaceColumn) ConstrainPoint(p geom.Vector2, _ *geom.Vector2, _ Modifiers) geom.Vector2 {
	return p
}

func (c *PlaceColumn) CycleAnchor() string {
	c.Anchor = c.Anchor.Next()
	return fmt.Sprintf("Anchor: %s. Specify insertion point (Q: Anchor, E: Rotate):", c.Anchor)
}

func (c *PlaceColumn) RotatePlacement() string {
	c.Rotation = geom.NormalizeAngle(c.Rotation + geom.Pi/2)
	return fmt.Sprintf("Rotation: %.0f°. Specify insertion point (Q: Anchor, E: Rotate):", geom.Degrees(c.Rotation))
}

func (c *PlaceColumn) PushPoint(p geom.Vector2, ctx Context) PointResult {
	if c.typ == nil {
		t, ok := ctx.Model.Definitions.ResolveColumnType(ctx.ActiveColumnType)
		if !ok {
			return NeedMore("No column types defined!")
		}
		c.typ = t
	}
	c.push(p)
	ctx.Model.Add(domain.PlaceColumn(p, c.typ.Width, c.typ.Depth, c.Rotation, c.typ.ID, c.typ.Name, c.Anchor))
	return Done()
}

func (c *PlaceColumn) ClaimsToken(token string) bool { return isPlacementKey(token) }

func (c *PlaceColumn) ProcessInput(token string, ctx Context) InputResult {
	return placementInput(c, token, ctx)
}

// PlaceBeam draws chained beams of the active beam type.
type PlaceBeam struct {
	base
	Anchor domain.BeamAnchor
	typ    *domain.BeamType
}

func NewPlaceBeam() *PlaceBeam { return &PlaceBeam{base: base{category: Creation}} }

func (c *PlaceBeam) Name() string          { return "Place Beam" }
func (c *PlaceBeam) Kind() Kind            { return KindPlaceBeam }
func (c *PlaceBeam) InitialPrompt() string { return "Specify beam start point (Q: Anchor, E: Flip):" }

func (c *PlaceBeam) OnStart(ctx Context) {
	c.typ, _ = ctx.Model.Definitions.ResolveBeamType(ctx.ActiveBeamType)
}

func (c *PlaceBeam) CycleAnchor() string {
	c.Anchor = c.Anchor.Next()
	return fmt.Sprintf("Anchor: %s. %s", c.Anchor, c.pointPrompt())
}

// RotatePlacement flips a top or bottom anchor to the other face.
func (c *PlaceBeam) RotatePlacement() string {
	c.Anchor = c.Anchor.Flip()
	return fmt.Sprintf("Anchor: %s. %s", c.Anchor, c.pointPrompt())
}

func (c *PlaceBeam) pointPrompt() string {
	switch len(c.points) {
	case 0:
		return c.InitialPrompt()
	case 1:
		return "Specify beam end point:"
	default:
		return "Specify next beam point:"
	}
}

func (c *PlaceBeam) PushPoint(p geom.Vector2, ctx Context) PointResult {
	c.push(p)
	if len(c.points) == 1 {
		return NeedMore(c.pointPrompt())
	}
	var typeID uint64
	label := "Beam"
	if c.typ != nil {
		typeID, label = c.typ.ID, c.typ.Name
	}
	n := len(c.points)
	ctx.Model.Add(domain.NewBeam(c.points[n-2], c.points[n-1], typeID, label, c.Anchor))
	return NeedMore(c.pointPrompt())
}

func (c *PlaceBeam) ClaimsToken(token string) bool { return isPlacementKey(token) }

func (c *PlaceBeam) ProcessInput(token string, ctx Context) InputResult {
	return placementInput(c, token, ctx)
}

func isPlacementKey(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	return t == "q" || t == "e"
}

func placementInput(c Placer, token string, ctx Context) InputResult {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "q":
		return ParameterInput(NeedMore(c.CycleAnchor()))
	case "e":
		return ParameterInput(NeedMore(c.RotatePlacement()))
	}
	if _, ok := ParsePoint(token); ok {
		return defaultInput(c, token, ctx)
	}
	return Invalid(invalidInput(token, "Use Q to change the anchor or E to rotate."))
}

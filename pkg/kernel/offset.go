package kernel

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// OffsetLine returns a copy of line moved distance units along its normal,
// towards side. Degenerate lines come back unchanged.
func OffsetLine(line *domain.Line, distance float32, side geom.Vector2) *domain.Line {
	d := line.End.Sub(line.Start)
	length := d.Length()
	if length < 1e-4 {
		return line.Clone().(*domain.Line)
	}
	n := d.Perp().Mul(1 / length)
	if n.Dot(side.Sub(line.Midpoint())) < 0 {
		n = n.Neg()
	}
	shift := n.Mul(distance)
	return domain.NewLine(line.Start.Add(shift), line.End.Add(shift))
}

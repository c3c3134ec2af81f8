package kernel

import (
	"sort"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// TrimStatus reports how a trim attempt ended.
type TrimStatus int

const (
	TrimNoLine TrimStatus = iota
	TrimNoIntersections
	TrimNoValidIntersections
	TrimApplied
)

// TrimResult describes a trim. EntityID is set whenever a line was found.
type TrimResult struct {
	Status   TrimStatus
	EntityID uint64
}

// Trim shortens the top-level line nearest to click (within tol) at its
// intersections with every other top-level entity. If an intersection lies
// before the click along the line, the end is moved to the last such
// point; otherwise the start is moved to the first intersection after it.
// Intersections at the line's own endpoints are ignored.
func Trim(entities []*domain.Entity, click geom.Vector2, tol float32) TrimResult {
	var target *domain.Entity
	var line *domain.Line
	best := tol
	for _, e := range entities {
		l, ok := e.Shape.(*domain.Line)
		if !ok {
			continue
		}
		if d := click.DistToSegment(l.Start, l.End); d < best {
			best = d
			target, line = e, l
		}
	}
	if line == nil {
		return TrimResult{Status: TrimNoLine}
	}
	res := TrimResult{EntityID: target.ID}

	var hits []geom.Vector2
	for _, e := range entities {
		if e == target {
			continue
		}
		hits = append(hits, EntityIntersections(line, e)...)
	}
	if len(hits) == 0 {
		res.Status = TrimNoIntersections
		return res
	}

	type param struct {
		t float32
		p geom.Vector2
	}
	var ts []param
	for _, p := range hits {
		if t := geom.ProjectOnSegment(p, line.Start, line.End); t > 0 && t < 1 {
			ts = append(ts, param{t, p})
		}
	}
	if len(ts) == 0 {
		res.Status = TrimNoValidIntersections
		return res
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].t < ts[j].t })

	clickT := geom.ProjectOnSegment(click, line.Start, line.End)
	var left, right *geom.Vector2
	for i := range ts {
		if ts[i].t < clickT {
			left = &ts[i].p
		} else if right == nil {
			right = &ts[i].p
		}
	}
	switch {
	case left != nil:
		line.End = *left
	case right != nil:
		line.Start = *right
	}
	res.Status = TrimApplied
	return res
}

package kernel

import (
	"math"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

const (
	nodeSnap     = 0.01
	minRayHit    = 1e-4
	maxWalkSteps = 1000
)

// Region is a closed loop found by FindClosedRegion. Vertices ends with a
// repeat of the first vertex.
type Region struct {
	EntityIDs []uint64
	Vertices  []geom.Vector2
}

type edge struct {
	entity int
	target int
}

type graph struct {
	nodes []geom.Vector2
	adj   [][]edge
}

// node returns the index of the node within nodeSnap of p, adding one if
// none exists.
func (g *graph) node(p geom.Vector2) int {
	for i, n := range g.nodes {
		if n.Dist(p) < nodeSnap {
			return i
		}
	}
	g.nodes = append(g.nodes, p)
	g.adj = append(g.adj, nil)
	return len(g.nodes) - 1
}

func (g *graph) connect(u, v, entity int) {
	g.adj[u] = append(g.adj[u], edge{entity: entity, target: v})
	g.adj[v] = append(g.adj[v], edge{entity: entity, target: u})
}

// endpoints returns the two ends of a line or arc.
func endpoints(s domain.Shape) (geom.Vector2, geom.Vector2, bool) {
	switch s := s.(type) {
	case *domain.Line:
		return s.Start, s.End, true
	case *domain.Arc:
		return s.StartPoint(), s.EndPoint(), true
	}
	return geom.Vector2{}, geom.Vector2{}, false
}

func rayHit(origin, dir geom.Vector2, s domain.Shape) (geom.Vector2, bool) {
	switch s := s.(type) {
	case *domain.Line:
		return geom.RaySegment(origin, dir, s.Start, s.End)
	case *domain.Arc:
		return geom.RayArc(origin, dir, s.Origin, s.Radius, s.StartAngle, s.EndAngle)
	}
	return geom.Vector2{}, false
}

// FindClosedRegion finds the loop of lines and arcs that encloses p.
//
// A ray is cast from p towards +X; the nearest line or arc it hits is the
// first edge, walked so that p lies on its right. Line and arc endpoints
// are merged into graph nodes and the loop is followed by always taking the
// smallest signed turn (the right-most edge) until the walk returns to its
// starting node. A walk that dead-ends, reuses an entity or runs past
// maxWalkSteps finds no region. Only top-level entities take part.
func FindClosedRegion(entities []*domain.Entity, p geom.Vector2) (Region, bool) {
	dir := geom.Vec(1, 0)
	first := -1
	best := float32(math.MaxFloat32)
	for i, e := range entities {
		hit, ok := rayHit(p, dir, e.Shape)
		if !ok {
			continue
		}
		if d := hit.X - p.X; d > minRayHit && d < best {
			best = d
			first = i
		}
	}
	if first < 0 {
		return Region{}, false
	}

	g := &graph{}
	for i, e := range entities {
		a, b, ok := endpoints(e.Shape)
		if !ok {
			continue
		}
		g.connect(g.node(a), g.node(b), i)
	}

	pa, pb, _ := endpoints(entities[first].Shape)
	u, v := g.node(pa), g.node(pb)
	curr, start := v, u
	if dir.Cross(pb.Sub(pa)) > 0 {
		curr, start = u, v
	}

	ids := []uint64{entities[first].ID}
	verts := []geom.Vector2{g.nodes[start]}
	prev, prevEntity := start, first
	used := map[int]bool{first: true}

	for step := 0; step < maxWalkSteps; step++ {
		if curr == start {
			verts = append(verts, g.nodes[curr])
			return Region{EntityIDs: ids, Vertices: verts}, true
		}
		verts = append(verts, g.nodes[curr])

		heading := g.nodes[curr].Sub(g.nodes[prev]).Angle()
		next, nextEntity := -1, -1
		minDelta := float32(math.MaxFloat32)
		for _, e := range g.adj[curr] {
			if e.target == prev && e.entity == prevEntity {
				continue
			}
			delta := geom.WrapPi(g.nodes[e.target].Sub(g.nodes[curr]).Angle() - heading)
			if delta < minDelta {
				minDelta = delta
				next, nextEntity = e.target, e.entity
			}
		}
		if next < 0 || used[nextEntity] {
			return Region{}, false
		}
		used[nextEntity] = true
		prev, prevEntity = curr, nextEntity
		curr = next
		ids = append(ids, entities[nextEntity].ID)
	}
	return Region{}, false
}

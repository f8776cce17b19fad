package visibility

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/plangraph/graphbase"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInsideObstacle is returned when a node would be placed strictly inside an obstacle.
var ErrInsideObstacle = errors.New("visibility: point inside obstacle")

// Graph is a visibility graph: nodes are planar points, edges carry the
// straight segment they follow.
type Graph = graphbase.Graph[orb.Point, orb.LineString]

// Policy builds visibility graphs around polygonal obstacles.
// It implements graphbase.Policy and graphbase.Creator.
type Policy struct {
	graphbase.BasePolicy[orb.Point, orb.LineString]

	obstacles *obstacleIndex
}

// NewPolicy indexes obstacles. Polygons with fewer than three outer ring
// points are ignored.
func NewPolicy(obstacles []orb.Polygon) *Policy {
	return &Policy{obstacles: newObstacleIndex(obstacles)}
}

// Create adds every distinct obstacle vertex as a node. PopulateEdges wires
// them as they arrive.
func (p *Policy) Create(g *Graph) error {
	seen := make(map[orb.Point]struct{})
	for _, poly := range p.obstacles.polys {
		for _, ring := range poly {
			for _, v := range ring {
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				if err := g.AddNode(v); err != nil {
					// A vertex of one obstacle may sit inside another.
					if errors.Is(err, ErrInsideObstacle) {
						continue
					}
					return fmt.Errorf("obstacle vertex %v: %w", v, err)
				}
			}
		}
	}

	return nil
}

// PopulateEdges connects node id in both directions to every node it can see.
// The edge cost is the Euclidean length.
func (p *Policy) PopulateEdges(g *Graph, id int) error {
	a, err := g.NodeProperty(id)
	if err != nil {
		return err
	}
	if p.obstacles.inside(a) {
		return fmt.Errorf("node %d at %v: %w", id, a, ErrInsideObstacle)
	}
	for other := 0; other < g.NodeCount(); other++ {
		if other == id {
			continue
		}
		b, err := g.NodeProperty(other)
		if err != nil || !p.obstacles.visible(a, b) {
			continue
		}
		d := planar.Distance(a, b)
		if err := g.AddEdge(graphbase.EdgeID{From: id, To: other}, orb.LineString{a, b}, d); err != nil {
			return err
		}
		if err := g.AddEdge(graphbase.EdgeID{From: other, To: id}, orb.LineString{b, a}, d); err != nil {
			return err
		}
	}

	return nil
}

// Heuristic returns the straight-line distance from every node to goal,
// which never overestimates a path around obstacles.
func (p *Policy) Heuristic(g *Graph, goal int) (graphbase.Heuristic, error) {
	target, err := g.NodeProperty(goal)
	if err != nil {
		return nil, err
	}
	h := make(graphbase.Heuristic, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		pt, err := g.NodeProperty(id)
		if err != nil {
			return nil, err
		}
		h[id] = planar.Distance(pt, target)
	}

	return h, nil
}

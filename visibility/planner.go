package visibility

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/plangraph/graphbase"
	"github.com/paulmach/orb"
)

// Planner finds shortest collision-free polylines between two points.
// A Planner is not safe for concurrent use.
type Planner struct {
	graph *Graph
	log   logr.Logger
}

// NewPlanner returns a Planner for obstacles. opts are passed to the
// underlying graph; the graph logs under the "graph" name of log.
func NewPlanner(obstacles []orb.Polygon, log logr.Logger, opts ...graphbase.Option) *Planner {
	all := append([]graphbase.Option{graphbase.WithLogger(log.WithName("graph"))}, opts...)

	return &Planner{
		graph: graphbase.New[orb.Point, orb.LineString](NewPolicy(obstacles), all...),
		log:   log,
	}
}

// Graph exposes the visibility graph of the last Plan call.
func (p *Planner) Graph() *Graph { return p.graph }

// Reset drops the visibility graph. The next Plan rebuilds it.
func (p *Planner) Reset() { p.graph.Clear() }

// Plan rebuilds the visibility graph with start and goal and returns the
// shortest waypoint polyline between them together with its length.
//
// Errors:
//   - ErrInsideObstacle (wrapped) if start or goal lies inside an obstacle.
//   - graphbase.ErrNoPath if the obstacles separate start from goal.
func (p *Planner) Plan(start, goal orb.Point) (orb.LineString, float64, error) {
	p.log.V(1).Info("start solving", "start", start, "goal", goal)

	p.graph.Clear()
	if err := p.graph.Create(); err != nil {
		return nil, 0, fmt.Errorf("build visibility graph: %w", err)
	}
	if err := p.graph.AddStartNode(start); err != nil {
		return nil, 0, err
	}
	if err := p.graph.AddGoalNode(goal); err != nil {
		return nil, 0, err
	}

	sol, err := p.graph.SolveAStarMarked()
	if err != nil {
		p.log.Error(err, "failed calculating plan")
		return nil, 0, err
	}
	cost, err := p.graph.PathCost(sol)
	if err != nil {
		return nil, 0, err
	}
	path := make(orb.LineString, 0, len(sol))
	for _, id := range sol {
		pt, err := p.graph.NodeProperty(id)
		if err != nil {
			return nil, 0, err
		}
		path = append(path, pt)
	}
	p.log.Info("finished plan", "waypoints", len(path), "cost", cost,
		"nodes", p.graph.NodeCount(), "edges", p.graph.EdgeCount())

	return path, cost, nil
}

package graphbase_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/plangraph/graphbase"
	"github.com/stretchr/testify/require"
)

// point is the node property used throughout the tests.
type point struct{ X, Y float64 }

func dist(a, b point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// manual is the graph type built with ManualPolicy: nodes carry points,
// edges carry labels.
type manual = graphbase.Graph[point, string]

// newManual returns an empty graph whose edges are wired by hand.
func newManual(opts ...graphbase.Option) *manual {
	return graphbase.New[point, string](graphbase.ManualPolicy[point, string]{}, opts...)
}

// newEuclidean returns a hand-wired graph whose A* heuristic is the straight
// line distance between node properties.
func newEuclidean(opts ...graphbase.Option) *manual {
	policy := graphbase.ManualPolicy[point, string]{
		Estimate: func(g *manual, id, goal int) float64 {
			a, _ := g.NodeProperty(id)
			b, _ := g.NodeProperty(goal)
			return dist(a, b)
		},
	}

	return graphbase.New[point, string](policy, opts...)
}

// buildChain builds the graph {0,1,2} with edges 0->1 (1.0) and 1->2 (2.0).
func buildChain(t *testing.T) *manual {
	t.Helper()
	g := newManual()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(point{X: float64(i)}))
	}
	mustEdge(t, g, 0, 1, 1.0)
	mustEdge(t, g, 1, 2, 2.0)

	return g
}

func mustEdge(t *testing.T, g *manual, from, to int, cost float64) {
	t.Helper()
	id := graphbase.EdgeID{From: from, To: to}
	require.NoError(t, g.AddEdge(id, id.String(), cost), "AddEdge(%s)", id)
}

// completePolicy connects every new node to all existing nodes in both
// directions with Euclidean costs, like a visibility graph without obstacles.
// Insertion fails when the new node's property equals reject.
type completePolicy struct {
	graphbase.BasePolicy[point, string]
	reject *point
}

var errRejected = errors.New("rejected by policy")

func (p completePolicy) PopulateEdges(g *manual, id int) error {
	np, err := g.NodeProperty(id)
	if err != nil {
		return err
	}
	for other := 0; other < id; other++ {
		op, err := g.NodeProperty(other)
		if err != nil {
			return err
		}
		d := dist(np, op)
		fwd := graphbase.EdgeID{From: id, To: other}
		if err := g.AddEdge(fwd, fwd.String(), d); err != nil {
			return err
		}
		if err := g.AddEdge(fwd.Reverse(), fmt.Sprintf("back %s", fwd.Reverse()), d); err != nil {
			return err
		}
	}
	if p.reject != nil && *p.reject == np {
		return errRejected
	}

	return nil
}

func (completePolicy) Heuristic(g *manual, goal int) (graphbase.Heuristic, error) {
	gp, err := g.NodeProperty(goal)
	if err != nil {
		return nil, err
	}
	h := make(graphbase.Heuristic, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		np, err := g.NodeProperty(id)
		if err != nil {
			return nil, err
		}
		h[id] = dist(np, gp)
	}

	return h, nil
}

// File: queries.go
// Role: Read-only queries over nodes, edges, properties and markers.
//
// Determinism:
//   - OutgoingEdges lists targets in first-insertion order; overwriting a cost
//     keeps the original position.

package graphbase

import (
	"errors"
	"fmt"
)

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored directed edges.
// Complexity: O(V)
func (g *Graph[N, E]) EdgeCount() int {
	n := 0
	for _, adj := range g.nodes {
		n += adj.Len()
	}

	return n
}

// Start returns the start marker, or Unset.
func (g *Graph[N, E]) Start() int { return g.start }

// Goal returns the goal marker, or Unset.
func (g *Graph[N, E]) Goal() int { return g.goal }

// IsCreated reports whether Create has completed successfully since the last Clear.
func (g *Graph[N, E]) IsCreated() bool { return g.created }

// NodeExists reports whether 0 <= id < NodeCount().
func (g *Graph[N, E]) NodeExists(id int) bool { return id >= 0 && id < len(g.nodes) }

// NodePropertyExists reports whether a property was stored for id.
func (g *Graph[N, E]) NodePropertyExists(id int) bool {
	_, ok := g.nodeProps[id]
	return ok
}

// EdgeExists reports whether the source node exists and has a cost entry for the target.
func (g *Graph[N, E]) EdgeExists(id EdgeID) bool {
	if !g.NodeExists(id.From) {
		return false
	}
	_, ok := g.nodes[id.From].Get(id.To)

	return ok
}

// EdgePropertyExists reports whether a property was stored for the ordered pair.
func (g *Graph[N, E]) EdgePropertyExists(id EdgeID) bool {
	_, ok := g.edgeProps[id]
	return ok
}

// EdgeCost returns the cost of edge id.
// If the edge does not exist it returns -1 and an error wrapping ErrEdgeNotFound.
func (g *Graph[N, E]) EdgeCost(id EdgeID) (float64, error) {
	if !g.EdgeExists(id) {
		g.opts.log.V(1).Info("edge does not exist", "from", id.From, "to", id.To)
		return invalidCost, fmt.Errorf("edge %s: %w", id, ErrEdgeNotFound)
	}
	cost, _ := g.nodes[id.From].Get(id.To)

	return cost, nil
}

// NodeProperty returns a copy of the property stored for node id.
// The zero value and ErrNodePropertyNotFound are returned when absent.
func (g *Graph[N, E]) NodeProperty(id int) (N, error) {
	p, ok := g.nodeProps[id]
	if !ok {
		g.opts.log.V(1).Info("cannot access node property", "node", id)
		return p, fmt.Errorf("node %d: %w", id, ErrNodePropertyNotFound)
	}

	return p, nil
}

// EdgeProperty returns a copy of the property stored for edge id.
// The zero value and ErrEdgePropertyNotFound are returned when absent.
func (g *Graph[N, E]) EdgeProperty(id EdgeID) (E, error) {
	p, ok := g.edgeProps[id]
	if !ok {
		g.opts.log.V(1).Info("cannot access edge property", "from", id.From, "to", id.To)
		return p, fmt.Errorf("edge %s: %w", id, ErrEdgePropertyNotFound)
	}

	return p, nil
}

// OutgoingEdges lists the edges leaving node id in insertion order.
func (g *Graph[N, E]) OutgoingEdges(id int) ([]EdgeID, error) {
	if !g.NodeExists(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	out := make([]EdgeID, 0, g.nodes[id].Len())
	for pair := g.nodes[id].Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, EdgeID{From: id, To: pair.Key})
	}

	return out, nil
}

// PathCost sums the edge costs along s.
// A single-node solution costs 0.
//
// Errors:
//   - ErrInvalidSolution if s is empty or any consecutive pair is not an edge.
func (g *Graph[N, E]) PathCost(s Solution) (float64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty solution: %w", ErrInvalidSolution)
	}
	if !g.NodeExists(s[0]) {
		return 0, fmt.Errorf("solution starts at %d: %w: %w", s[0], ErrInvalidSolution, ErrNodeNotFound)
	}
	total := 0.0
	for i := 1; i < len(s); i++ {
		c, err := g.EdgeCost(EdgeID{From: s[i-1], To: s[i]})
		if err != nil {
			return 0, fmt.Errorf("step %d: %w: %w", i, ErrInvalidSolution, err)
		}
		total += c
	}

	return total, nil
}

// Validate reports every edge whose target is not a node (ErrDanglingEdge) and
// any set marker that is not a node (ErrDanglingMarker), joined into one error.
// It returns nil for a consistent graph.
// Complexity: O(V + E)
func (g *Graph[N, E]) Validate() error {
	var errs []error
	for from, adj := range g.nodes {
		for pair := adj.Oldest(); pair != nil; pair = pair.Next() {
			if !g.NodeExists(pair.Key) {
				errs = append(errs, fmt.Errorf("edge %d->%d: %w", from, pair.Key, ErrDanglingEdge))
			}
		}
	}
	if g.start != Unset && !g.NodeExists(g.start) {
		errs = append(errs, fmt.Errorf("start %d: %w", g.start, ErrDanglingMarker))
	}
	if g.goal != Unset && !g.NodeExists(g.goal) {
		errs = append(errs, fmt.Errorf("goal %d: %w", g.goal, ErrDanglingMarker))
	}

	return errors.Join(errs...)
}

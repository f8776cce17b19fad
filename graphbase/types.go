// SPDX-License-Identifier: MIT
// Package graphbase declares the identifiers, sentinel errors and policy
// contracts shared by the generic planning graph.
//
// Errors:
//
//	ErrNodeNotFound          - referenced node index is outside the dense range.
//	ErrEdgeNotFound          - ordered pair has no stored cost.
//	ErrNodePropertyNotFound  - node exists (or not) but carries no property.
//	ErrEdgePropertyNotFound  - ordered pair carries no property.
//	ErrNegativeCost          - edge cost is negative or NaN.
//	ErrPopulateEdges         - edge-population hook rejected a new node.
//	ErrNotImplemented        - a placeholder hook was called without an override.
//	ErrNoPath                - search exhausted the open set before reaching goal.
//	ErrHeuristic             - heuristic hook failed.
//	ErrHeuristicMissing      - heuristic has no entry for a node the search reached.
//	ErrInvalidSolution       - a solution is empty or walks a missing edge.
//	ErrDanglingEdge          - an edge targets a node that does not exist.
//	ErrDanglingMarker        - start or goal marker points at a missing node.
package graphbase

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node index that does not exist.
	ErrNodeNotFound = errors.New("graphbase: node not found")

	// ErrEdgeNotFound indicates an operation referenced an ordered pair without a cost.
	ErrEdgeNotFound = errors.New("graphbase: edge not found")

	// ErrNodePropertyNotFound indicates no property was stored for the node.
	ErrNodePropertyNotFound = errors.New("graphbase: node property not found")

	// ErrEdgePropertyNotFound indicates no property was stored for the edge.
	ErrEdgePropertyNotFound = errors.New("graphbase: edge property not found")

	// ErrNegativeCost indicates an edge cost below zero (or NaN) was rejected.
	ErrNegativeCost = errors.New("graphbase: edge cost must be non-negative")

	// ErrPopulateEdges indicates the policy failed to populate edges for a new node;
	// the node was rolled back.
	ErrPopulateEdges = errors.New("graphbase: populate edges failed")

	// ErrNotImplemented indicates a placeholder hook was invoked without an override.
	ErrNotImplemented = errors.New("graphbase: not implemented")

	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("graphbase: no path found")

	// ErrHeuristic indicates the heuristic hook could not produce an estimate mapping.
	ErrHeuristic = errors.New("graphbase: heuristic calculation failed")

	// ErrHeuristicMissing indicates the heuristic lacks an entry for a reached node.
	ErrHeuristicMissing = errors.New("graphbase: heuristic value missing")

	// ErrInvalidSolution indicates a solution that does not describe a walk in the graph.
	ErrInvalidSolution = errors.New("graphbase: invalid solution")

	// ErrDanglingEdge indicates an edge whose target index is not a node.
	ErrDanglingEdge = errors.New("graphbase: edge targets missing node")

	// ErrDanglingMarker indicates a start or goal marker that is set but not a node.
	ErrDanglingMarker = errors.New("graphbase: marker points at missing node")
)

// Unset is the start/goal marker value before the marker is assigned.
// It is larger than any valid node index.
const Unset = math.MaxInt

// NoEdge is the adjacency matrix entry for an absent edge.
const NoEdge = math.MaxInt

// invalidCost is reported by EdgeCost when the edge does not exist.
const invalidCost = -1.0

// EdgeID identifies a directed edge by its ordered (From, To) node pair.
type EdgeID struct {
	From int // source node index
	To   int // target node index
}

// String renders the pair as "from->to".
func (e EdgeID) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }

// Reverse returns the pair with endpoints swapped.
func (e EdgeID) Reverse() EdgeID { return EdgeID{From: e.To, To: e.From} }

// Solution is an ordered node index sequence from start to goal, inclusive.
type Solution []int

// Heuristic maps a node index to its estimated remaining cost to a goal.
// A* is optimal only when every estimate is admissible (never overestimates).
type Heuristic map[int]float64

// Policy is the capability a derived planner injects into a Graph.
//
// PopulateEdges is called after every node insertion with the new node's index.
// It typically adds the new node's outgoing edges and revisits existing nodes to
// add edges pointing back at it. Returning an error rolls the insertion back.
//
// Heuristic is called once per A* search and must return an estimate for every
// node the search may reach.
type Policy[N, E any] interface {
	PopulateEdges(g *Graph[N, E], id int) error
	Heuristic(g *Graph[N, E], goal int) (Heuristic, error)
}

// Creator is implemented by policies that know how to build their full graph.
type Creator[N, E any] interface {
	Create(g *Graph[N, E]) error
}

// BasePolicy is an embeddable placeholder policy. Every hook reports
// ErrNotImplemented; derived policies override the hooks they support.
type BasePolicy[N, E any] struct{}

// PopulateEdges reports ErrNotImplemented.
func (BasePolicy[N, E]) PopulateEdges(*Graph[N, E], int) error {
	return fmt.Errorf("populate edges: %w", ErrNotImplemented)
}

// Heuristic reports ErrNotImplemented.
func (BasePolicy[N, E]) Heuristic(*Graph[N, E], int) (Heuristic, error) {
	return nil, fmt.Errorf("heuristic: %w", ErrNotImplemented)
}

// Create reports ErrNotImplemented.
func (BasePolicy[N, E]) Create(*Graph[N, E]) error {
	return fmt.Errorf("create: %w", ErrNotImplemented)
}

// ManualPolicy accepts every node without adding edges; callers wire the
// topology themselves with AddEdge. If Estimate is set, Heuristic evaluates it
// for every node, otherwise it reports ErrNotImplemented.
type ManualPolicy[N, E any] struct {
	BasePolicy[N, E]

	// Estimate returns the remaining cost from node id to goal.
	Estimate func(g *Graph[N, E], id, goal int) float64
}

// PopulateEdges accepts the node and adds nothing.
func (ManualPolicy[N, E]) PopulateEdges(*Graph[N, E], int) error { return nil }

// Heuristic evaluates Estimate for every node in g.
func (p ManualPolicy[N, E]) Heuristic(g *Graph[N, E], goal int) (Heuristic, error) {
	if p.Estimate == nil {
		return p.BasePolicy.Heuristic(g, goal)
	}
	h := make(Heuristic, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		h[id] = p.Estimate(g, id, goal)
	}

	return h, nil
}

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction and mutation (nodes, edges, markers, lifecycle hooks).
// Policy:
//   - Node indices are dense: 0..NodeCount()-1, assigned in insertion order, never reused.
//   - AddNode is atomic: a failing PopulateEdges hook leaves no trace of the node.
//   - No internal locking; a Graph is owned by one goroutine at a time.

package graphbase

import (
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// adjacency maps a neighbor index to the edge cost, in insertion order.
type adjacency = orderedmap.OrderedMap[int, float64]

// edgeChange journals one AddEdge performed inside PopulateEdges so a failed
// insertion can be undone exactly.
type edgeChange[E any] struct {
	id      EdgeID
	hadCost bool
	cost    float64
	hadProp bool
	prop    E
}

// Graph is a mutable, directed, weighted graph over dense integer node indices
// with optional per-node properties of type N and per-edge properties of type E.
//
// Topology is populated by the injected Policy every time a node is added.
// The start and goal markers are Unset until AddStartNode / AddGoalNode.
type Graph[N, E any] struct {
	nodes     []*adjacency    // nodes[i] = outgoing edges of node i
	nodeProps map[int]N       // sparse node properties
	edgeProps map[EdgeID]E    // sparse edge properties
	start     int             // start marker or Unset
	goal      int             // goal marker or Unset
	created   bool            // set by a successful Create
	policy    Policy[N, E]    // edge-population and heuristic hooks
	journal   []edgeChange[E] // edge changes made by the running PopulateEdges
	recording bool            // true while PopulateEdges runs

	opts options
}

// New creates an empty Graph driven by policy.
// A nil policy behaves like BasePolicy: every node insertion fails.
// Complexity: O(1)
func New[N, E any](policy Policy[N, E], opts ...Option) *Graph[N, E] {
	if policy == nil {
		policy = BasePolicy[N, E]{}
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, E]{
		nodeProps: make(map[int]N),
		edgeProps: make(map[EdgeID]E),
		start:     Unset,
		goal:      Unset,
		policy:    policy,
		opts:      cfg,
	}
}

// AddNode appends a node carrying property, then asks the policy to populate
// its edges.
//
// Implementation:
//   - Stage 1: Append an empty outgoing-edge table and store the property.
//   - Stage 2: Run Policy.PopulateEdges with edge journaling enabled.
//   - Stage 3: On hook failure undo every journaled edge change, drop the node
//     slot and its property, and return an error wrapping ErrPopulateEdges.
//
// Errors:
//   - ErrPopulateEdges (wrapping the hook's error).
//
// Complexity:
//   - O(1) plus the cost of the hook; rollback is O(edges added by the hook).
func (g *Graph[N, E]) AddNode(property N) error {
	id := len(g.nodes)
	g.nodes = append(g.nodes, orderedmap.New[int, float64]())
	g.nodeProps[id] = property

	g.journal, g.recording = g.journal[:0], true
	err := g.policy.PopulateEdges(g, id)
	g.recording = false
	if err != nil {
		g.rollback(id)
		g.opts.log.V(1).Info("node insertion rolled back", "node", id, "reason", err.Error())
		err = fmt.Errorf("node %d: %w: %w", id, ErrPopulateEdges, err)
	}
	g.journal = g.journal[:0]
	g.opts.metrics.observeInsertion(err)

	return err
}

// rollback undoes the journal in reverse order and removes node id, which
// must be the last node.
func (g *Graph[N, E]) rollback(id int) {
	for i := len(g.journal) - 1; i >= 0; i-- {
		c := g.journal[i]
		if c.hadProp {
			g.edgeProps[c.id] = c.prop
		} else {
			delete(g.edgeProps, c.id)
		}
		if c.id.From == id {
			continue // the whole slot goes away below
		}
		if c.hadCost {
			g.nodes[c.id.From].Set(c.id.To, c.cost)
		} else {
			g.nodes[c.id.From].Delete(c.id.To)
		}
	}
	g.nodes = g.nodes[:id]
	delete(g.nodeProps, id)
}

// AddStartNode adds a node like AddNode and records it as the start marker.
// If the insertion fails the previous start marker is restored.
func (g *Graph[N, E]) AddStartNode(property N) error {
	prev := g.start
	g.start = len(g.nodes)
	if err := g.AddNode(property); err != nil {
		g.start = prev
		g.opts.log.Error(err, "failed adding start node")
		return fmt.Errorf("start node: %w", err)
	}

	return nil
}

// AddGoalNode adds a node like AddNode and records it as the goal marker.
// If the insertion fails the previous goal marker is restored.
func (g *Graph[N, E]) AddGoalNode(property N) error {
	prev := g.goal
	g.goal = len(g.nodes)
	if err := g.AddNode(property); err != nil {
		g.goal = prev
		g.opts.log.Error(err, "failed adding goal node")
		return fmt.Errorf("goal node: %w", err)
	}

	return nil
}

// AddEdge stores the directed edge id with property and cost, overwriting any
// cost and property already stored for the same ordered pair.
//
// The target node is not validated: edges may point at indices that will only
// exist later. Use Validate (or WithValidateBeforeSearch) for a strict check.
//
// Errors:
//   - ErrNegativeCost if cost < 0 or cost is NaN.
//   - ErrNodeNotFound if id.From is not a node.
//
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(id EdgeID, property E, cost float64) error {
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("edge %s cost=%g: %w", id, cost, ErrNegativeCost)
	}
	if !g.NodeExists(id.From) {
		return fmt.Errorf("edge %s: %w", id, ErrNodeNotFound)
	}

	if g.recording {
		c := edgeChange[E]{id: id}
		c.cost, c.hadCost = g.nodes[id.From].Get(id.To)
		c.prop, c.hadProp = g.edgeProps[id]
		g.journal = append(g.journal, c)
	}
	g.nodes[id.From].Set(id.To, cost)
	g.edgeProps[id] = property

	return nil
}

// ClearEdges removes every edge and edge property; nodes, node properties and
// markers are kept.
func (g *Graph[N, E]) ClearEdges() {
	clear(g.edgeProps)
	for i := range g.nodes {
		g.nodes[i] = orderedmap.New[int, float64]()
	}
}

// Clear resets the graph to its freshly constructed state: no nodes, no
// properties, markers Unset, not created.
func (g *Graph[N, E]) Clear() {
	g.nodes = nil
	clear(g.nodeProps)
	clear(g.edgeProps)
	g.start, g.goal = Unset, Unset
	g.created = false
}

// Create runs the policy's full graph-building protocol and marks the graph
// created on success.
//
// Errors:
//   - ErrNotImplemented if the policy does not implement Creator, or uses the
//     BasePolicy placeholder.
//   - Any error returned by the policy.
func (g *Graph[N, E]) Create() error {
	c, ok := g.policy.(Creator[N, E])
	if !ok {
		err := fmt.Errorf("create: %w", ErrNotImplemented)
		g.opts.log.Error(err, "policy does not build graphs", "policy", fmt.Sprintf("%T", g.policy))
		return err
	}
	if err := c.Create(g); err != nil {
		g.opts.log.Error(err, "create failed")
		return err
	}
	g.created = true

	return nil
}

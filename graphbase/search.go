// File: search.go
// Role: Dijkstra and A* over a Graph snapshot.
//
// Both searches share one runner. The open set is a binary min-heap with the
// "lazy decrease-key" strategy: an improved node is pushed again and stale
// entries are skipped when popped. Entries with equal priority pop in push
// order, so a given graph always yields the same path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)

package graphbase

import (
	"container/heap"
	"fmt"
	"math"
)

// SolveDijkstra returns a minimum-cost path from start to goal.
//
// Errors (the returned Solution is nil):
//   - ErrNodeNotFound if start or goal is not a node.
//   - ErrNoPath if goal is unreachable.
//   - Validate's errors when WithValidateBeforeSearch is set.
func (g *Graph[N, E]) SolveDijkstra(start, goal int) (Solution, error) {
	sol, expanded, err := g.solve(start, goal, nil)
	g.opts.metrics.observeSearch(algorithmDijkstra, expanded, err)
	if err != nil {
		return nil, fmt.Errorf("dijkstra %d->%d: %w", start, goal, err)
	}

	return sol, nil
}

// SolveDijkstraMarked runs SolveDijkstra between the start and goal markers.
func (g *Graph[N, E]) SolveDijkstraMarked() (Solution, error) {
	return g.SolveDijkstra(g.start, g.goal)
}

// SolveAStar returns a path from start to goal ranked by cost plus the
// policy's heuristic. The path is optimal only if the heuristic is admissible;
// that is not checked.
//
// Errors (the returned Solution is nil):
//   - ErrNodeNotFound if start or goal is not a node.
//   - ErrHeuristic if the policy's Heuristic hook fails.
//   - ErrHeuristicMissing if the heuristic lacks start or a node reached by relaxation.
//   - ErrNoPath if goal is unreachable.
func (g *Graph[N, E]) SolveAStar(start, goal int) (Solution, error) {
	sol, expanded, err := g.solveAStar(start, goal)
	g.opts.metrics.observeSearch(algorithmAStar, expanded, err)
	if err != nil {
		return nil, fmt.Errorf("astar %d->%d: %w", start, goal, err)
	}

	return sol, nil
}

// SolveAStarMarked runs SolveAStar between the start and goal markers.
func (g *Graph[N, E]) SolveAStarMarked() (Solution, error) {
	return g.SolveAStar(g.start, g.goal)
}

func (g *Graph[N, E]) solveAStar(start, goal int) (Solution, int, error) {
	if err := g.checkEndpoints(start, goal); err != nil {
		return nil, 0, err
	}
	h, err := g.policy.Heuristic(g, goal)
	if err != nil {
		g.opts.log.V(1).Info("heuristic unavailable", "goal", goal, "reason", err.Error())
		return nil, 0, fmt.Errorf("%w: %w", ErrHeuristic, err)
	}
	if h == nil {
		// A nil map would make the runner behave as Dijkstra.
		h = Heuristic{}
	}

	return g.solve(start, goal, h)
}

// checkEndpoints validates the search endpoints, and the whole graph when
// WithValidateBeforeSearch is set.
func (g *Graph[N, E]) checkEndpoints(start, goal int) error {
	if !g.NodeExists(start) || !g.NodeExists(goal) {
		return fmt.Errorf("endpoints %d,%d: %w", start, goal, ErrNodeNotFound)
	}
	if g.opts.validateBeforeSearch {
		return g.Validate()
	}

	return nil
}

// solve runs Dijkstra (h == nil) or A* (h != nil) and reports the number of
// expanded nodes.
func (g *Graph[N, E]) solve(start, goal int, h Heuristic) (Solution, int, error) {
	if h == nil {
		if err := g.checkEndpoints(start, goal); err != nil {
			return nil, 0, err
		}
	}
	if start == goal {
		return Solution{start}, 0, nil
	}

	r := newRunner(g.nodes, goal, h)
	if err := r.init(start); err != nil {
		return nil, 0, err
	}
	found, err := r.process()
	if err != nil {
		return nil, r.expanded, err
	}
	if !found {
		return nil, r.expanded, ErrNoPath
	}

	return r.reconstruct(), r.expanded, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	nodes    []*adjacency // graph snapshot; read-only
	goal     int          // target node
	h        Heuristic    // nil for Dijkstra
	cost     []float64    // best known cost from start
	prev     []int        // predecessor on best path, -1 if none
	closed   []bool       // node already expanded
	pq       openSet      // min-heap of open entries
	seq      uint64       // push counter for tie-breaking
	expanded int          // nodes moved to the closed set
}

func newRunner(nodes []*adjacency, goal int, h Heuristic) *runner {
	n := len(nodes)
	r := &runner{
		nodes:  nodes,
		goal:   goal,
		h:      h,
		cost:   make([]float64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		pq:     make(openSet, 0, n),
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.prev[i] = -1
	}

	return r
}

// init seeds the open set with start at cost 0.
func (r *runner) init(start int) error {
	r.cost[start] = 0
	priority, err := r.priority(start)
	if err != nil {
		return err
	}
	heap.Init(&r.pq)
	r.push(start, priority)

	return nil
}

// process expands nodes in priority order until goal is popped (true) or the
// open set runs dry (false). Each node is expanded at most once, so the loop
// terminates after at most V expansions.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*openItem)
		u := item.id
		if r.closed[u] {
			continue // stale entry
		}
		if u == r.goal {
			return true, nil
		}
		r.closed[u] = true
		r.expanded++

		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve every neighbor of u that is not closed yet.
// Edges to indices outside the graph are skipped.
func (r *runner) relax(u int) error {
	for pair := r.nodes[u].Oldest(); pair != nil; pair = pair.Next() {
		v, w := pair.Key, pair.Value
		if v < 0 || v >= len(r.nodes) || r.closed[v] {
			continue
		}
		tentative := r.cost[u] + w
		if tentative >= r.cost[v] {
			continue
		}
		r.cost[v] = tentative
		r.prev[v] = u
		priority, err := r.priority(v)
		if err != nil {
			return err
		}
		r.push(v, priority)
	}

	return nil
}

// priority ranks node id: cost for Dijkstra, cost plus estimate for A*.
func (r *runner) priority(id int) (float64, error) {
	if r.h == nil {
		return r.cost[id], nil
	}
	est, ok := r.h[id]
	if !ok {
		return 0, fmt.Errorf("node %d: %w", id, ErrHeuristicMissing)
	}

	return r.cost[id] + est, nil
}

func (r *runner) push(id int, priority float64) {
	heap.Push(&r.pq, &openItem{id: id, priority: priority, seq: r.seq})
	r.seq++
}

// reconstruct walks predecessors back from goal and returns start..goal.
func (r *runner) reconstruct() Solution {
	var sol Solution
	for cur := r.goal; cur != -1; cur = r.prev[cur] {
		sol = append(sol, cur)
	}
	for i, j := 0, len(sol)-1; i < j; i, j = i+1, j-1 {
		sol[i], sol[j] = sol[j], sol[i]
	}

	return sol
}

// openItem is one entry of the open set.
type openItem struct {
	id       int     // node index
	priority float64 // cost (Dijkstra) or cost + heuristic (A*)
	seq      uint64  // push order, breaks priority ties
}

// openSet is a min-heap of *openItem ordered by priority, then push order.
type openSet []*openItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

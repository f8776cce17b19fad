// Package graphbase provides a generic, mutable, directed weighted graph for
// path and coverage planners, with Dijkstra and A* shortest-path search.
//
// Overview:
//
//   - Nodes are dense integer indices 0..NodeCount()-1 assigned in insertion order.
//   - Each node may carry a property of type N; each directed edge (From, To)
//     may carry a property of type E and always carries a non-negative cost.
//   - Topology is owned by an injected Policy: every AddNode calls
//     Policy.PopulateEdges for the new node, and a failing hook rolls the
//     insertion back completely.
//   - A* asks Policy.Heuristic once per search for a node → estimate mapping.
//   - Two markers, Start and Goal, are set by AddStartNode / AddGoalNode.
//
// Policies:
//
//	type Policy[N, E any] interface {
//	    PopulateEdges(g *Graph[N, E], id int) error
//	    Heuristic(g *Graph[N, E], goal int) (Heuristic, error)
//	}
//
//	– BasePolicy:   placeholder, every hook returns ErrNotImplemented. Embed it
//	                and override the hooks you support.
//	– ManualPolicy: accepts nodes without edges; wire them with AddEdge.
//	– Creator:      optional Create hook behind Graph.Create.
//
// Configuration Options (Option):
//
//	– WithLogger(logr.Logger)      diagnostics sink (default: discard)
//	– WithMetrics(*Metrics)        Prometheus counters and histograms
//	– WithValidateBeforeSearch()   fail searches on dangling edges or markers
//
// Core Methods:
//
//	AddNode / AddStartNode / AddGoalNode(p N) error       // O(1) + hook
//	AddEdge(id EdgeID, p E, cost float64) error           // O(1)
//	ClearEdges(), Clear()
//	Create() error
//	NodeExists, NodePropertyExists, EdgeExists, EdgePropertyExists
//	EdgeCost(id) (float64, error)                          // -1 on failure
//	NodeProperty(id) (N, error), EdgeProperty(id) (E, error)
//	SolveDijkstra(start, goal) (Solution, error)           // O((V+E) log V)
//	SolveAStar(start, goal) (Solution, error)              // O((V+E) log V)
//	AdjacencyMatrix() [][]int                              // O(V²)
//
// Edge targets are not validated by AddEdge, so an edge may point at an index
// that does not exist (yet). Searches skip such edges; Validate reports them.
//
// Thread safety:
//
//   - A Graph has no internal locking. Do not mutate it while a search or
//     export runs, and synchronize externally if several goroutines share it.
//   - Search results are never cached; every call recomputes.
//
// Errors are sentinel values wrapped with context; match them with errors.Is.
package graphbase

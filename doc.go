// Package plangraph is a small toolkit for path planning on weighted graphs
// whose edges are discovered incrementally.
//
// What is in here?
//
//	graphbase/   generic Graph[N, E] with dense node ids, a pluggable edge
//	             policy, Dijkstra and A*, and an adjacency-matrix export
//	visibility/  planar visibility-graph policy and planner over polygonal
//	             obstacles (orb geometry, R-tree index, GeoJSON loader)
//	examples/    a runnable demo of both
//
// A policy decides which edges a new node gets. Every node insertion calls
// the policy; if it fails the insertion is undone and the graph is left
// exactly as it was.
//
//	A───B
//	│ ╲ │     nodes A..D, edges added by the policy
//	C───D     as each node arrives
//
//	go get github.com/katalvlaran/plangraph
package plangraph

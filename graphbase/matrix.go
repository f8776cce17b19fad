package graphbase

import "math"

// costScale converts float costs to the fixed-point integers of AdjacencyMatrix.
const costScale = 1000.0

// AdjacencyMatrix exports the graph as an N×N integer matrix for consumers that
// need integer costs (e.g. combinatorial tour solvers). Entry [i][j] is
// round(cost*1000) when edge i->j exists and NoEdge otherwise. Finite costs
// too large to represent saturate at NoEdge-1 so they stay distinguishable
// from a missing edge. Edges to missing nodes do not appear.
//
// Complexity: O(V² + E)
func (g *Graph[N, E]) AdjacencyMatrix() [][]int {
	n := len(g.nodes)
	m := make([][]int, n)
	for i := range m {
		row := make([]int, n)
		for j := range row {
			row[j] = NoEdge
		}
		for pair := g.nodes[i].Oldest(); pair != nil; pair = pair.Next() {
			if pair.Key >= 0 && pair.Key < n {
				row[pair.Key] = milliInt(pair.Value)
			}
		}
		m[i] = row
	}

	return m
}

// milliInt scales a non-negative cost to thousandths, rounded half away from zero.
func milliInt(cost float64) int {
	v := math.Round(cost * costScale)
	if v >= float64(NoEdge-1) {
		return NoEdge - 1
	}

	return int(v)
}

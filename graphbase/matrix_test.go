package graphbase_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/plangraph/graphbase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyMatrix_Chain(t *testing.T) {
	g := buildChain(t)
	inf := math.MaxInt
	want := [][]int{
		{inf, 1000, inf},
		{inf, inf, 2000},
		{inf, inf, inf},
	}
	if diff := cmp.Diff(want, g.AdjacencyMatrix()); diff != "" {
		t.Fatalf("AdjacencyMatrix mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjacencyMatrix_Empty(t *testing.T) {
	assert.Empty(t, newManual().AdjacencyMatrix())
}

func TestAdjacencyMatrix_Rounding(t *testing.T) {
	g := newManual()
	for i := 0; i < 2; i++ {
		require.NoError(t, g.AddNode(point{}))
	}
	cases := []struct {
		cost float64
		want int
	}{
		{0, 0},
		{0.0006, 1},
		{0.0004, 0},
		{2.0004, 2000},
		{12.3456, 12346},
		{1e300, graphbase.NoEdge - 1},
		{math.Inf(1), graphbase.NoEdge - 1},
	}
	for _, tc := range cases {
		mustEdge(t, g, 0, 1, tc.cost)
		assert.Equal(t, tc.want, g.AdjacencyMatrix()[0][1], "cost %g", tc.cost)
	}
}

func TestAdjacencyMatrix_MatchesEdgeCost(t *testing.T) {
	g := graphbase.New[point, string](completePolicy{})
	for _, p := range []point{{0, 0}, {3, 4}, {1, 1}, {-2, 5}} {
		require.NoError(t, g.AddNode(p))
	}
	mustEdge(t, g, 0, 7, 1) // dangling, not exported

	m := g.AdjacencyMatrix()
	require.Len(t, m, g.NodeCount())
	for i := range m {
		require.Len(t, m[i], g.NodeCount())
		for j := range m[i] {
			id := graphbase.EdgeID{From: i, To: j}
			if !g.EdgeExists(id) {
				assert.Equal(t, math.MaxInt, m[i][j], "entry %s", id)
				continue
			}
			c, err := g.EdgeCost(id)
			require.NoError(t, err)
			assert.Equal(t, int(math.Round(c*1000)), m[i][j], "entry %s", id)
		}
	}
}

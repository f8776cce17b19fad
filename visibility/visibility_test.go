package visibility_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/katalvlaran/plangraph/graphbase"
	"github.com/katalvlaran/plangraph/visibility"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns the closed axis-aligned ring [x0,x1]×[y0,y1] as a polygon.
func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}}
}

func TestPlan_NoObstacles(t *testing.T) {
	p := visibility.NewPlanner(nil, testr.New(t))
	path, cost, err := p.Plan(orb.Point{0, 0}, orb.Point{3, 4})
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {3, 4}}, path)
	assert.InDelta(t, 5.0, cost, 1e-9)
}

func TestPlan_AroundSquare(t *testing.T) {
	obstacles := []orb.Polygon{square(4, -1, 6, 1)}
	p := visibility.NewPlanner(obstacles, testr.New(t))

	path, cost, err := p.Plan(orb.Point{0, 0}, orb.Point{10, 0})
	require.NoError(t, err)

	// Over the top or under the bottom: both touch two corners.
	require.Len(t, path, 4)
	assert.Equal(t, orb.Point{0, 0}, path[0])
	assert.Equal(t, orb.Point{10, 0}, path[3])
	assert.InDelta(t, 2+2*math.Sqrt(17), cost, 1e-9)
	assert.InDelta(t, planar.Length(path), cost, 1e-9)
	for i := 1; i < len(path); i++ {
		mid := orb.Point{(path[i-1][0] + path[i][0]) / 2, (path[i-1][1] + path[i][1]) / 2}
		inside := mid[0] > 4 && mid[0] < 6 && mid[1] > -1 && mid[1] < 1
		assert.False(t, inside, "segment %d passes through the obstacle", i)
	}

	// Dijkstra on the same graph agrees on cost.
	g := p.Graph()
	sol, err := g.SolveDijkstraMarked()
	require.NoError(t, err)
	dCost, err := g.PathCost(sol)
	require.NoError(t, err)
	assert.InDelta(t, cost, dCost, 1e-9)
}

func TestPlan_StartInsideObstacle(t *testing.T) {
	p := visibility.NewPlanner([]orb.Polygon{square(0, 0, 2, 2)}, testr.New(t))
	_, _, err := p.Plan(orb.Point{1, 1}, orb.Point{5, 5})
	require.ErrorIs(t, err, visibility.ErrInsideObstacle)
	require.ErrorIs(t, err, graphbase.ErrPopulateEdges)

	// Only the obstacle corners remain and the start marker stays unset.
	g := p.Graph()
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, graphbase.Unset, g.Start())
	assert.NoError(t, g.Validate())
}

func TestPlan_GoalEnclosed(t *testing.T) {
	// A ring-shaped wall (outer square with a square hole) encloses the goal.
	wall := orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{3, 3}, {3, 7}, {7, 7}, {7, 3}, {3, 3}},
	}
	p := visibility.NewPlanner([]orb.Polygon{wall}, testr.New(t))
	_, _, err := p.Plan(orb.Point{-5, 5}, orb.Point{5, 5})
	require.ErrorIs(t, err, graphbase.ErrNoPath)
}

func TestPolicy_CreateDedupesVertices(t *testing.T) {
	// Two unit squares sharing the corner (1,1).
	policy := visibility.NewPolicy([]orb.Polygon{square(0, 0, 1, 1), square(1, 1, 2, 2)})
	g := graphbase.New[orb.Point, orb.LineString](policy)
	require.NoError(t, g.Create())
	assert.True(t, g.IsCreated())
	assert.Equal(t, 7, g.NodeCount())

	// Walking along a side is allowed; crossing a square's diagonal is not.
	ids := map[orb.Point]int{}
	for id := 0; id < g.NodeCount(); id++ {
		pt, err := g.NodeProperty(id)
		require.NoError(t, err)
		ids[pt] = id
	}
	assert.True(t, g.EdgeExists(graphbase.EdgeID{From: ids[orb.Point{0, 0}], To: ids[orb.Point{1, 0}]}))
	assert.False(t, g.EdgeExists(graphbase.EdgeID{From: ids[orb.Point{0, 0}], To: ids[orb.Point{1, 1}]}))

	seg, err := g.EdgeProperty(graphbase.EdgeID{From: ids[orb.Point{0, 0}], To: ids[orb.Point{1, 0}]})
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}}, seg)
}

func TestPolicy_Heuristic(t *testing.T) {
	g := graphbase.New[orb.Point, orb.LineString](visibility.NewPolicy(nil))
	require.NoError(t, g.AddNode(orb.Point{0, 0}))
	require.NoError(t, g.AddNode(orb.Point{6, 8}))
	require.NoError(t, g.AddNode(orb.Point{3, 4}))

	h, err := visibility.NewPolicy(nil).Heuristic(g, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, h[0], 1e-12)
	assert.InDelta(t, 5.0, h[1], 1e-12)
	assert.InDelta(t, 0.0, h[2], 1e-12)
}

const obstaclesJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "tower"},
     "geometry": {"type": "Polygon", "coordinates": [[[4,-1],[6,-1],[6,1],[4,1],[4,-1]]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[20,0],[21,0],[21,1],[20,0]]],
        [[[30,0],[31,0],[31,1],[30,0]]]
     ]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "Point", "coordinates": [1, 1]}}
  ]
}`

func TestLoadObstacles(t *testing.T) {
	obstacles, err := visibility.LoadObstacles(strings.NewReader(obstaclesJSON))
	require.NoError(t, err)
	require.Len(t, obstacles, 3)
	assert.Equal(t, orb.Point{4, -1}, obstacles[0][0][0])

	_, err = visibility.LoadObstacles(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestPlanner_Reset(t *testing.T) {
	p := visibility.NewPlanner([]orb.Polygon{square(4, -1, 6, 1)}, testr.New(t))
	_, _, err := p.Plan(orb.Point{0, 0}, orb.Point{10, 0})
	require.NoError(t, err)
	require.Equal(t, 6, p.Graph().NodeCount())

	p.Reset()
	assert.Zero(t, p.Graph().NodeCount())
	assert.False(t, p.Graph().IsCreated())
	assert.Equal(t, graphbase.Unset, p.Graph().Goal())

	// Plan works again after a reset.
	_, cost, err := p.Plan(orb.Point{0, 0}, orb.Point{10, 0})
	require.NoError(t, err)
	assert.InDelta(t, 2+2*math.Sqrt(17), cost, 1e-9)
}

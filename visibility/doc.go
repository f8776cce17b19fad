// Package visibility is a planar visibility-graph planner built on graphbase.
//
// Nodes are obstacle vertices plus the start and goal points; an edge joins
// two nodes when the straight segment between them does not pass through an
// obstacle. Obstacles are indexed in an R-tree so each line-of-sight test only
// inspects polygons near the segment. The straight-line heuristic is
// admissible, so A* returns shortest paths.
//
//	obstacles, _ := visibility.LoadObstacles(file)
//	p := visibility.NewPlanner(obstacles, logr.Discard())
//	path, length, err := p.Plan(orb.Point{0, 0}, orb.Point{10, 0})
//
// Building the graph inserts every obstacle vertex and tests it against all
// earlier nodes, so construction is O(V² · k) for k nearby obstacle edges.
package visibility

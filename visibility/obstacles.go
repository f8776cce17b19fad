package visibility

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// eps pads bounding boxes (rtreego rejects zero-length sides) and absorbs
// rounding in the collinearity tests.
const eps = 1e-9

// obstacle wraps a polygon for R-tree storage.
type obstacle struct {
	poly orb.Polygon
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacle) Bounds() rtreego.Rect { return o.rect }

// obstacleIndex answers line-of-sight queries against a fixed obstacle set.
type obstacleIndex struct {
	tree  *rtreego.Rtree
	polys []orb.Polygon
}

func newObstacleIndex(polys []orb.Polygon) *obstacleIndex {
	ix := &obstacleIndex{tree: rtreego.NewTree(2, 25, 50)}
	for _, p := range polys {
		if len(p) == 0 || len(p[0]) < 3 {
			continue // degenerate, cannot block anything
		}
		b := p.Bound()
		rect, err := boxRect(b.Min, b.Max)
		if err != nil {
			continue
		}
		ix.tree.Insert(&obstacle{poly: p, rect: rect})
		ix.polys = append(ix.polys, p)
	}

	return ix
}

// boxRect builds the padded rectangle spanning the two corners.
func boxRect(a, b orb.Point) (rtreego.Rect, error) {
	minX, maxX := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	minY, maxY := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())

	return rtreego.NewRect(
		rtreego.Point{minX - eps, minY - eps},
		[]float64{maxX - minX + 2*eps, maxY - minY + 2*eps},
	)
}

// candidates returns the obstacles whose bounds meet the segment's bounds.
func (ix *obstacleIndex) candidates(a, b orb.Point) []*obstacle {
	rect, err := boxRect(a, b)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(rect)
	out := make([]*obstacle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*obstacle))
	}

	return out
}

// visible reports whether the straight segment a-b is collision free.
func (ix *obstacleIndex) visible(a, b orb.Point) bool {
	for _, o := range ix.candidates(a, b) {
		if blocks(o.poly, a, b) {
			return false
		}
	}

	return true
}

// inside reports whether p lies strictly inside any obstacle.
func (ix *obstacleIndex) inside(p orb.Point) bool {
	for _, o := range ix.candidates(p, p) {
		if strictlyInside(o.poly, p) {
			return true
		}
	}

	return false
}

// blocks reports whether segment a-b properly crosses an edge of poly, or
// whether its endpoints or midpoint lie strictly inside poly. Running along
// the boundary is allowed.
func blocks(poly orb.Polygon, a, b orb.Point) bool {
	for _, ring := range poly {
		blocked := false
		eachEdge(ring, func(p, q orb.Point) bool {
			blocked = crosses(a, b, p, q)
			return !blocked
		})
		if blocked {
			return true
		}
	}
	mid := orb.Point{(a.X() + b.X()) / 2, (a.Y() + b.Y()) / 2}
	for _, p := range []orb.Point{a, b, mid} {
		if strictlyInside(poly, p) {
			return true
		}
	}

	return false
}

// eachEdge calls fn for every edge of ring, open or closed, until fn returns false.
func eachEdge(ring orb.Ring, fn func(p, q orb.Point) bool) {
	n := len(ring)
	if n > 1 && ring[0].Equal(ring[n-1]) {
		n--
	}
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		if !fn(ring[i], ring[(i+1)%n]) {
			return
		}
	}
}

// crosses reports whether segments a-b and p-q intersect. Segments sharing an
// endpoint do not count, so edges may start and end on obstacle vertices.
func crosses(a, b, p, q orb.Point) bool {
	if a.Equal(p) || a.Equal(q) || b.Equal(p) || b.Equal(q) {
		return false
	}
	d1 := direction(p, q, a)
	d2 := direction(p, q, b)
	d3 := direction(a, b, p)
	d4 := direction(a, b, q)

	if ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps)) {
		return true
	}

	// Collinear touches.
	switch {
	case math.Abs(d1) <= eps && onSegment(p, q, a):
		return true
	case math.Abs(d2) <= eps && onSegment(p, q, b):
		return true
	case math.Abs(d3) <= eps && onSegment(a, b, p):
		return true
	case math.Abs(d4) <= eps && onSegment(a, b, q):
		return true
	}

	return false
}

// direction is the cross product (r - p) × (q - p).
func direction(p, q, r orb.Point) float64 {
	return (r.X()-p.X())*(q.Y()-p.Y()) - (q.X()-p.X())*(r.Y()-p.Y())
}

// onSegment reports whether r, known to be collinear with p-q, lies within its box.
func onSegment(p, q, r orb.Point) bool {
	return r.X() <= math.Max(p.X(), q.X())+eps && r.X() >= math.Min(p.X(), q.X())-eps &&
		r.Y() <= math.Max(p.Y(), q.Y())+eps && r.Y() >= math.Min(p.Y(), q.Y())-eps
}

// strictlyInside reports whether p is inside poly and not on any ring boundary.
func strictlyInside(poly orb.Polygon, p orb.Point) bool {
	if !planar.PolygonContains(poly, p) {
		return false
	}
	for _, ring := range poly {
		on := false
		eachEdge(ring, func(a, b orb.Point) bool {
			on = math.Abs(direction(a, b, p)) <= eps && onSegment(a, b, p)
			return !on
		})
		if on {
			return false
		}
	}

	return true
}

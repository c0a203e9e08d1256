package internal

import "go.uber.org/zap"

// Greedy fan triangulation. Every site grows a fan of triangles whose other two
// corners are consecutive entries of the remaining sites. The smallest candidate
// that does not overlap anything accepted so far, by any site, is taken, and the
// scan repeats until no candidate qualifies. This is best effort: sparse inputs
// leave gaps, and nothing tries to fill them.

// Accumulator owns the triangles accepted during one triangulation run. It is
// threaded through the per-site work so that later sites see the triangles of
// earlier ones.
type Accumulator struct {
	Triangles TriangleList
}

// TriangulateFans runs the greedy fan triangulation over the sites in order.
// Fewer than three sites produce nothing.
func TriangulateFans(sites []Point) TriangleList {
	acc := &Accumulator{}
	for i := range sites {
		acc.AddFan(sites[i], withoutIndex(sites, i))
	}
	Logger().Debug("fan triangulation done",
		zap.Int("sites", len(sites)),
		zap.Int("triangles", len(acc.Triangles)),
	)
	return acc.Triangles
}

// AddFan accepts triangles around center until no candidate remains.
func (acc *Accumulator) AddFan(center Point, others []Point) {
	for {
		tri, ok := acc.smallestCandidate(center, others)
		if !ok {
			return
		}
		Logger().Debug("accepted fan triangle",
			zap.Stringer("triangle", dbgNamer(tri)),
			zap.Float64("area", tri.Area()),
		)
		acc.Triangles = append(acc.Triangles, tri)
	}
}

// Scan the cyclic pairs (others[i], others[i+1]) and return the smallest
// non-degenerate triangle with center that overlaps nothing accepted. Ties keep
// the first candidate found.
func (acc *Accumulator) smallestCandidate(center Point, others []Point) (Triangle, bool) {
	if len(others) < 2 {
		return Triangle{}, false
	}

	var best Triangle
	bestArea := InitialBestArea
	found := false
	for i := range others {
		candidate := Triangle{center, others[i], others[CircularIndex(i+1, len(others))]}
		area := candidate.Area()
		if Zero(area) || area >= bestArea {
			continue
		}
		if acc.Overlaps(candidate) {
			continue
		}
		best, bestArea, found = candidate, area, true
	}
	return best, found
}

// Overlaps reports whether tri intersects any accepted triangle.
func (acc *Accumulator) Overlaps(tri Triangle) bool {
	for _, accepted := range acc.Triangles {
		if TrianglesIntersect(tri, accepted) {
			return true
		}
	}
	return false
}

// Copy of points with index i removed, order preserved.
func withoutIndex(points []Point, i int) []Point {
	result := make([]Point, 0, len(points)-1)
	result = append(result, points[:i]...)
	return append(result, points[i+1:]...)
}

package internal

import "go.uber.org/zap"

// Voronoi-edge candidates. Instead of triangulating, this works directly from
// the perpendicular bisectors between sites: their pairwise intersections are
// candidate Voronoi vertices, and every (site, vertex, midpoint) triple is tried
// as a triangle in enumeration order. There is no ranking between candidates;
// the first non-overlapping one wins.

// EdgeCandidates holds the intermediate point sets of the builder, in
// enumeration order.
type EdgeCandidates struct {
	Bisectors     []Line
	Intersections []Point // every pairwise bisector intersection
	Vertices      []Point // Intersections after filtering
	Midpoints     []Point
}

// Bisectors of every unordered site pair i<j. Pairs with a vertical bisector
// (horizontally aligned sites) are skipped.
func PairBisectors(sites []Point) []Line {
	var bisectors []Line
	for i := range sites {
		for j := i + 1; j < len(sites); j++ {
			if l, ok := PerpendicularBisector(sites[i], sites[j]); ok {
				bisectors = append(bisectors, l)
			}
		}
	}
	return bisectors
}

// Intersections of every unordered pair of lines, skipping parallel pairs.
func LineIntersections(lines []Line) []Point {
	var points []Point
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			if p, ok := Intersect(lines[i], lines[j]); ok {
				points = append(points, p)
			}
		}
	}
	return points
}

// Midpoints of every ordered site pair, so each unordered pair appears twice.
func PairMidpoints(sites []Point) []Point {
	var points []Point
	for i := range sites {
		for j := range sites {
			if i != j {
				points = append(points, Midpoint(sites[i], sites[j]))
			}
		}
	}
	return points
}

// FilterVertices drops duplicates (first occurrence kept), points equal to a
// site and points outside the domain.
func FilterVertices(candidates, sites []Point) []Point {
	var result []Point
	for _, p := range candidates {
		if !InDomain(p) {
			continue
		}
		if indexOfPoint(sites, p) >= 0 {
			continue
		}
		if indexOfPoint(result, p) >= 0 {
			continue
		}
		result = append(result, p)
	}
	return result
}

func BuildEdgeCandidates(sites []Point) EdgeCandidates {
	c := EdgeCandidates{
		Bisectors: PairBisectors(sites),
		Midpoints: PairMidpoints(sites),
	}
	c.Intersections = LineIntersections(c.Bisectors)
	c.Vertices = FilterVertices(c.Intersections, sites)
	return c
}

// TriangulateEdges runs the whole builder and returns the accepted triangles.
func TriangulateEdges(sites []Point) TriangleList {
	c := BuildEdgeCandidates(sites)
	acc := &Accumulator{}
	for _, site := range sites {
		for _, vertex := range c.Vertices {
			for _, mid := range c.Midpoints {
				candidate := Triangle{site, vertex, mid}
				if !acc.acceptsEdgeCandidate(candidate, sites, c.Intersections) {
					continue
				}
				Logger().Debug("accepted edge triangle",
					zap.Stringer("triangle", dbgNamer(candidate)),
				)
				acc.Triangles = append(acc.Triangles, candidate)
			}
		}
	}
	Logger().Debug("edge triangulation done",
		zap.Int("sites", len(sites)),
		zap.Int("bisectors", len(c.Bisectors)),
		zap.Int("vertices", len(c.Vertices)),
		zap.Int("midpoints", len(c.Midpoints)),
		zap.Int("triangles", len(acc.Triangles)),
	)
	return acc.Triangles
}

// A candidate qualifies if it has area, no site or bisector intersection other
// than its own corners touches it, and it overlaps nothing accepted.
func (acc *Accumulator) acceptsEdgeCandidate(candidate Triangle, sites, intersections []Point) bool {
	if candidate.IsDegenerate() {
		return false
	}
	if candidate.coversAny(sites) || candidate.coversAny(intersections) {
		return false
	}
	return !acc.Overlaps(candidate)
}

// Whether any of the points lies inside or on the triangle, ignoring points
// equal to one of its corners.
func (t Triangle) coversAny(points []Point) bool {
	corners := t.Points()
	for _, p := range points {
		if indexOfPoint(corners[:], p) >= 0 {
			continue
		}
		if PointInTriangle(t, p, true) {
			return true
		}
	}
	return false
}

package internal

import "math"

// Geometric predicates shared by every strategy. Nothing here allocates or
// mutates, and none of it uses exact arithmetic: all comparisons go through the
// tolerance helpers in util.go.

// LineThrough gives the line through both points. It fails for (tolerantly)
// vertical segments, which slope-intercept form can't express.
func LineThrough(p1, p2 Point) (Line, bool) {
	if Equal(p1.X, p2.X) {
		return Line{}, false
	}
	a := (p1.Y - p2.Y) / (p1.X - p2.X)
	return Line{A: a, B: p1.Y - a*p1.X}, true
}

// Intersect fails when the lines are parallel (or the same line).
func Intersect(l1, l2 Line) (Point, bool) {
	if Equal(l1.A, l2.A) {
		return Point{}, false
	}
	x := (l2.B - l1.B) / (l1.A - l2.A)
	// Solve for y on the flatter line. This keeps the result independent of
	// argument order and loses less precision on steep lines.
	flat := l1
	if math.Abs(l2.A) < math.Abs(l1.A) {
		flat = l2
	}
	return Point{X: x, Y: flat.A*x + flat.B}, true
}

// PerpendicularBisector gives the line through the midpoint of p1 and p2 with
// slope -1/slope(p1,p2). A vertical segment has a horizontal bisector, which is
// fine. A horizontal segment has a vertical bisector, which fails.
func PerpendicularBisector(p1, p2 Point) (Line, bool) {
	if Equal(p1.Y, p2.Y) {
		return Line{}, false
	}
	mid := Midpoint(p1, p2)
	a := -(p2.X - p1.X) / (p2.Y - p1.Y)
	return Line{A: a, B: mid.Y - a*mid.X}, true
}

func (l Line) SolveForY(x float64) float64 {
	return l.A*x + l.B
}

func Midpoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// Centroid is the center of gravity of the points. Zero points give the origin.
func Centroid(points ...Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return Point{X: sum.X / n, Y: sum.Y / n}
}

func (t Triangle) Centroid() Point {
	return Centroid(t.A, t.B, t.C)
}

// Euclidean distance.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// Perpendicular distance from p to the line.
func PointLineDistance(p Point, l Line) float64 {
	return math.Abs(l.A*p.X-p.Y+l.B) / math.Sqrt(l.A*l.A+1)
}

// TriangleArea is the unsigned area. It uses the cross product rather than
// base times height, so it is defined for every input, including triangles with
// a vertical first edge.
func TriangleArea(p1, p2, p3 Point) float64 {
	return math.Abs(SignedArea(p1, p2, p3))
}

// Positive for counterclockwise input.
func SignedArea(p1, p2, p3 Point) float64 {
	return ((p2.X-p1.X)*(p3.Y-p1.Y) - (p3.X-p1.X)*(p2.Y-p1.Y)) / 2
}

func (t Triangle) Area() float64 {
	return TriangleArea(t.A, t.B, t.C)
}

// A triangle whose area is within tolerance of zero.
func (t Triangle) IsDegenerate() bool {
	return Zero(t.Area())
}

// PointInTriangle compares the triangle's area to the sum of the three
// triangles formed by replacing one vertex with p. The two agree exactly when p
// is inside or on the boundary. When inclusive is false, points on an edge or
// vertex (any sub-area of zero) are rejected as well.
func PointInTriangle(tri Triangle, p Point, inclusive bool) bool {
	a1 := TriangleArea(p, tri.B, tri.C)
	a2 := TriangleArea(tri.A, p, tri.C)
	a3 := TriangleArea(tri.A, tri.B, p)
	if !Equal(tri.Area(), a1+a2+a3) {
		return false
	}
	if inclusive {
		return true
	}
	return !Zero(a1) && !Zero(a2) && !Zero(a3)
}

// SegmentsIntersect reports whether segments a1a2 and b1b2 cross. The crossing
// point of the two supporting lines must lie within both segments, and must not
// be one of the four endpoints, so segments that only share an endpoint do not
// count.
//
// Parallel segments always count as intersecting, whether or not they overlap
// or are even collinear. Two triangles sharing an edge get one crossing from
// that edge pair in CountEdgeCrossings.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	p, ok := supportingLinesIntersection(a1, a2, b1, b2)
	if !ok {
		return true
	}
	if !withinSegment(p, a1, a2) || !withinSegment(p, b1, b2) {
		return false
	}
	for _, end := range [...]Point{a1, a2, b1, b2} {
		if p.Equal(end) {
			return false
		}
	}
	return true
}

// Intersection of the infinite lines through the two segments. A vertical
// segment is handled directly since it has no Line. Two vertical segments are
// parallel.
func supportingLinesIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	la, okA := LineThrough(a1, a2)
	lb, okB := LineThrough(b1, b2)
	switch {
	case !okA && !okB:
		return Point{}, false
	case !okA:
		return Point{X: a1.X, Y: lb.SolveForY(a1.X)}, true
	case !okB:
		return Point{X: b1.X, Y: la.SolveForY(b1.X)}, true
	}
	return Intersect(la, lb)
}

// p is assumed to be on the line through a and b, so a bounding box check is
// enough. Checking both axes covers vertical segments.
func withinSegment(p, a, b Point) bool {
	return LessOrEqual(math.Min(a.X, b.X), p.X) && LessOrEqual(p.X, math.Max(a.X, b.X)) &&
		LessOrEqual(math.Min(a.Y, b.Y), p.Y) && LessOrEqual(p.Y, math.Max(a.Y, b.Y))
}

// CountEdgeCrossings counts how many of the nine (edge of t1, edge of t2)
// pairs intersect per SegmentsIntersect.
func CountEdgeCrossings(t1, t2 Triangle) int {
	count := 0
	for _, e1 := range t1.Edges() {
		for _, e2 := range t2.Edges() {
			if SegmentsIntersect(e1[0], e1[1], e2[0], e2[1]) {
				count++
			}
		}
	}
	return count
}

// TrianglesIntersect is an approximate overlap test, not polygon clipping.
// See TrianglesIntersectWithThreshold.
func TrianglesIntersect(t1, t2 Triangle) bool {
	return TrianglesIntersectWithThreshold(t1, t2, DefaultOverlapThreshold)
}

// TrianglesIntersectWithThreshold treats the triangles as overlapping if any
// vertex of either lies strictly inside the other, or if at least k of the nine
// edge pairs cross. With k=2, neighbours sharing a full edge are allowed (their
// shared edge scores one parallel "crossing") while two triangles whose
// boundaries genuinely cross are caught, since a crossing boundary always
// crosses at least twice.
func TrianglesIntersectWithThreshold(t1, t2 Triangle, k int) bool {
	for _, p := range t1.Points() {
		if PointInTriangle(t2, p, false) {
			return true
		}
	}
	for _, p := range t2.Points() {
		if PointInTriangle(t1, p, false) {
			return true
		}
	}
	return CountEdgeCrossings(t1, t2) >= k
}

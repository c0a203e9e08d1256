package internal

import "math"

const (
	// Absolute tolerance for values at the scale of the [-1,1] domain. Values
	// larger than 1 get a proportionally larger tolerance.
	Tolerance = 1e-5

	// How many of the nine edge pairs of two triangles must cross before the
	// triangles count as overlapping. See CountEdgeCrossings.
	DefaultOverlapThreshold = 2

	// Starting value for the smallest-area search in the fan triangulator.
	// Larger than any triangle that fits in the domain.
	InitialBestArea = 4.0

	DomainMin = -1.0
	DomainMax = 1.0
)

// Floats accumulate error quickly once a few subtractions are involved, so
// equality is tolerance based, with the tolerance growing with the magnitude of
// the values compared.
func Equal(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

// Less reports a < b by more than the tolerance.
func Less(a, b float64) bool {
	return a < b && !Equal(a, b)
}

func LessOrEqual(a, b float64) bool {
	return a < b || Equal(a, b)
}

// Zero compares against zero with the plain domain tolerance.
func Zero(a float64) bool {
	return math.Abs(a) <= Tolerance
}

func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Inclusive, tolerant check against the [-1,1]x[-1,1] domain.
func InDomain(p Point) bool {
	return LessOrEqual(DomainMin, p.X) && LessOrEqual(p.X, DomainMax) &&
		LessOrEqual(DomainMin, p.Y) && LessOrEqual(p.Y, DomainMax)
}

// Index of the first point in the list tolerantly equal to p, or -1.
func indexOfPoint(points []Point, p Point) int {
	for i, q := range points {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}

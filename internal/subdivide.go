package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Cell subdivision. Both strategies split a triangle into six wedges around an
// interior point, two per edge:
/*
	        C
	       /|\
	  mCA / | \ mBC
	     /  X  \
	    / /   \ \
	   A----+----B
	       mAB
*/
// The centroid fan always works. The circumcenter fan only has an answer for
// acute triangles, where the circumcenter is inside.

var (
	ErrVerticalLine       = errors.New("vertical line")
	ErrParallelLines      = errors.New("parallel lines")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrUnsupportedShape   = errors.New("unsupported triangle shape")
)

type Shape int

const (
	Degenerate Shape = iota
	Acute
	Right
	Obtuse
)

func (s Shape) String() string {
	switch s {
	case Acute:
		return "acute"
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	}
	return "degenerate"
}

// Skipped records a triangle that produced no output, and why. Reason always
// wraps one of the Err* sentinels above.
type Skipped struct {
	Triangle Triangle
	Reason   error
}

// CentroidFan splits the triangle into six around its centroid.
func CentroidFan(tri Triangle) TriangleList {
	return fanAround(tri, tri.Centroid())
}

func fanAround(tri Triangle, center Point) TriangleList {
	mAB := Midpoint(tri.A, tri.B)
	mBC := Midpoint(tri.B, tri.C)
	mCA := Midpoint(tri.C, tri.A)
	result := make(TriangleList, 0, 6)
	result = appendTriangle(result, Triangle{tri.A, mAB, center})
	result = appendTriangle(result, Triangle{mAB, tri.B, center})
	result = appendTriangle(result, Triangle{tri.B, mBC, center})
	result = appendTriangle(result, Triangle{mBC, tri.C, center})
	result = appendTriangle(result, Triangle{tri.C, mCA, center})
	result = appendTriangle(result, Triangle{mCA, tri.A, center})
	return result
}

// This is pulled out so that it's easy to add instrumentation. Sub-triangles of
// a tiny triangle can fall under the tolerance, so only exactly flat output is
// treated as a bug.
func appendTriangle(triangles TriangleList, tri Triangle) TriangleList {
	if !(tri.Area() > 0) {
		fatalf("emitted zero-area triangle: %v", tri)
	}
	return append(triangles, tri)
}

// Circumcenter intersects the perpendicular bisectors of the edges. The pairs
// (AB,BC), (BC,CA), (CA,AB) are tried in that order and the first pair where
// both bisectors exist and are not parallel decides the result. The other
// bisector is not consulted.
func Circumcenter(tri Triangle) (Point, error) {
	edges := tri.Edges()
	var reason error = ErrDegenerateTriangle
	for i := range edges {
		e1 := edges[i]
		e2 := edges[CircularIndex(i+1, len(edges))]
		l1, ok1 := PerpendicularBisector(e1[0], e1[1])
		l2, ok2 := PerpendicularBisector(e2[0], e2[1])
		if !ok1 || !ok2 {
			reason = ErrVerticalLine
			continue
		}
		center, ok := Intersect(l1, l2)
		if !ok {
			reason = ErrParallelLines
			continue
		}
		return center, nil
	}
	return Point{}, errors.Wrapf(reason, "no circumcenter for %v", tri)
}

// Classify uses the position of the circumcenter: strictly inside for acute
// triangles, on an edge for right triangles and outside for obtuse ones.
func Classify(tri Triangle) Shape {
	shape, _ := classify(tri)
	return shape
}

func classify(tri Triangle) (Shape, Point) {
	if tri.IsDegenerate() {
		return Degenerate, Point{}
	}
	center, err := Circumcenter(tri)
	if err != nil {
		return Degenerate, Point{}
	}
	switch {
	case PointInTriangle(tri, center, false):
		return Acute, center
	case PointInTriangle(tri, center, true):
		return Right, center
	}
	return Obtuse, center
}

// CircumcenterFan splits an acute triangle into six around its circumcenter.
// Right and obtuse triangles have no construction yet; they produce no
// triangles and an error wrapping ErrUnsupportedShape. Degenerate input wraps
// ErrDegenerateTriangle.
func CircumcenterFan(tri Triangle) (TriangleList, error) {
	shape, center := classify(tri)
	switch shape {
	case Acute:
		return fanAround(tri, center), nil
	case Degenerate:
		return nil, errors.Wrapf(ErrDegenerateTriangle, "circumcenter fan of %v", tri)
	}
	return nil, errors.Wrapf(ErrUnsupportedShape, "%s triangle %v", shape, tri)
}

// Subdivide each triangle with the centroid fan.
func SubdivideByCentroid(triangles TriangleList) TriangleList {
	result := make(TriangleList, 0, 6*len(triangles))
	for _, tri := range triangles {
		result = append(result, CentroidFan(tri)...)
	}
	return result
}

// Subdivide each triangle with the circumcenter fan, collecting the triangles
// that could not be split.
func SubdivideByCircumcenter(triangles TriangleList) (TriangleList, []Skipped) {
	var result TriangleList
	var skipped []Skipped
	for _, tri := range triangles {
		fan, err := CircumcenterFan(tri)
		if err != nil {
			Logger().Debug("skipped circumcenter fan",
				zap.Stringer("triangle", dbgNamer(tri)),
				zap.Error(err),
			)
			skipped = append(skipped, Skipped{Triangle: tri, Reason: err})
			continue
		}
		result = append(result, fan...)
	}
	return result, skipped
}

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var acuteSites = []Point{{-0.5, -0.4}, {0.5, -0.3}, {0.1, 0.6}}

func TestPairBisectors(t *testing.T) {
	assert.Len(t, PairBisectors(acuteSites), 3)

	// Horizontally aligned sites have a vertical bisector, which is skipped
	assert.Empty(t, PairBisectors([]Point{{-0.5, 0.2}, {0.5, 0.2}}))
	assert.Len(t, PairBisectors([]Point{{-0.5, 0.2}, {0.5, 0.2}, {0, 0.8}}), 2)
}

func TestLineIntersections(t *testing.T) {
	lines := []Line{{A: 1, B: 0}, {A: -1, B: 0}, {A: 1, B: 1}}
	points := LineIntersections(lines)
	// The first and last lines are parallel
	require.Len(t, points, 2)
	assert.True(t, points[0].Equal(Point{0, 0}))
	assert.True(t, points[1].Equal(Point{-0.5, 0.5}))
}

func TestPairMidpoints(t *testing.T) {
	midpoints := PairMidpoints(acuteSites)
	assert.Len(t, midpoints, 6)
	assert.Equal(t, Midpoint(acuteSites[0], acuteSites[1]), midpoints[0])
	assert.Equal(t, Midpoint(acuteSites[1], acuteSites[0]), midpoints[2])
}

func TestFilterVertices(t *testing.T) {
	sites := []Point{{0, 0}, {0.5, 0.5}}
	candidates := []Point{
		{0.2, 0.1},
		{0.2, 0.1 + Tolerance/10}, // duplicate
		{0.5, 0.5},                // a site
		{1.5, 0},                  // outside the domain
		{-1, 1},                   // on the domain boundary
	}
	assert.Equal(t, []Point{{0.2, 0.1}, {-1, 1}}, FilterVertices(candidates, sites))
}

func TestBuildEdgeCandidates(t *testing.T) {
	c := BuildEdgeCandidates(acuteSites)
	assert.Len(t, c.Bisectors, 3)
	// All three bisectors of a triangle meet at its circumcenter
	assert.Len(t, c.Intersections, 3)
	require.Len(t, c.Vertices, 1)

	center, err := Circumcenter(Triangle{acuteSites[0], acuteSites[1], acuteSites[2]})
	require.NoError(t, err)
	assert.True(t, c.Vertices[0].Equal(center))
	assert.Len(t, c.Midpoints, 6)
}

func TestTriangulateEdges(t *testing.T) {
	triangles := TriangulateEdges(acuteSites)
	require.NotEmpty(t, triangles)
	AssertValidTriangles(t, triangles)

	// The first candidate in enumeration order is the half cell of the first
	// site against the second, and nothing can block it.
	center, _ := Circumcenter(Triangle{acuteSites[0], acuteSites[1], acuteSites[2]})
	first := triangles[0]
	assert.Equal(t, acuteSites[0], first.A)
	assert.True(t, first.B.Equal(center))
	assert.Equal(t, Midpoint(acuteSites[0], acuteSites[1]), first.C)

	for _, tri := range triangles {
		corners := tri.Points()
		for _, site := range acuteSites {
			if indexOfPoint(corners[:], site) >= 0 {
				continue
			}
			assert.False(t, PointInTriangle(tri, site, true), "%v covers site %v", tri, site)
		}
	}
}

func TestTriangulateEdges_TooFewSites(t *testing.T) {
	assert.Empty(t, TriangulateEdges(nil))
	assert.Empty(t, TriangulateEdges([]Point{{0, 0}, {0.5, 0.3}}), "one bisector has no intersections")
}

func TestTriangleCoversAny(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{1, 0}, Point{0, 1}}
	assert.False(t, tri.coversAny([]Point{{0, 0}, {1, 0}}), "own corners are ignored")
	assert.True(t, tri.coversAny([]Point{{0.5, 0}}), "edges count")
	assert.True(t, tri.coversAny([]Point{{2, 2}, {0.2, 0.2}}))
	assert.False(t, tri.coversAny([]Point{{2, 2}}))
}

func TestTriangulateEdges_LargerSets(t *testing.T) {
	var grid []Point
	for _, y := range []float64{-0.9, -0.7, -0.5} {
		for _, x := range []float64{-0.9, -0.7, -0.5} {
			grid = append(grid, Point{x, y})
		}
	}

	for name, sites := range map[string][]Point{
		"grid":     grid,
		"pentagon": pentagonWithCenter(),
	} {
		t.Run(name, func(t *testing.T) {
			triangles := TriangulateEdges(sites)
			AssertValidTriangles(t, triangles)

			c := BuildEdgeCandidates(sites)
			for _, tri := range triangles {
				assert.False(t, tri.coversAny(sites), "%v covers a site", tri)
				assert.False(t, tri.coversAny(c.Intersections), "%v covers a bisector intersection", tri)
			}
		})
	}
}

// The ring sites of the pentagon are all 0.7 from the origin, so every bisector
// between two of them passes through the origin. That point is a duplicated
// intersection sitting inside the cell of the off-center site, and the wedge
// of that cell around it must be rejected even though it covers no site.
func TestTriangulateEdges_BlockedByIntersection(t *testing.T) {
	sites := pentagonWithCenter()
	c := BuildEdgeCandidates(sites)

	var blocked TriangleList
	for _, site := range sites {
		for _, vertex := range c.Vertices {
			for _, mid := range c.Midpoints {
				candidate := Triangle{site, vertex, mid}
				if candidate.IsDegenerate() || candidate.coversAny(sites) {
					continue
				}
				if candidate.coversAny(c.Intersections) {
					blocked = append(blocked, candidate)
				}
			}
		}
	}
	require.NotEmpty(t, blocked)

	triangles := TriangulateEdges(sites)
	for _, tri := range blocked {
		assert.NotContains(t, triangles, tri)
	}
}

func TestAcceptsEdgeCandidate(t *testing.T) {
	candidate := Triangle{Point{0, 0}, Point{0.5, 0}, Point{0, 0.5}}
	sites := []Point{{0, 0}, {0.9, 0.9}}

	acc := &Accumulator{}
	assert.True(t, acc.acceptsEdgeCandidate(candidate, sites, []Point{{0.5, 0}, {-0.5, -0.5}}))
	assert.False(t, acc.acceptsEdgeCandidate(candidate, sites, []Point{{0.1, 0.1}}), "intersection inside")
	assert.False(t, acc.acceptsEdgeCandidate(candidate, []Point{{0.1, 0.1}}, nil), "site inside")
	assert.False(t, acc.acceptsEdgeCandidate(Triangle{Point{0, 0}, Point{0.1, 0.1}, Point{0.2, 0.2}}, sites, nil), "flat")

	acc.Triangles = TriangleList{{Point{0.1, 0.1}, Point{0.8, 0.1}, Point{0.1, 0.8}}}
	assert.False(t, acc.acceptsEdgeCandidate(candidate, sites, nil), "overlaps an accepted triangle")
}

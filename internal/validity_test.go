package internal

// This contains no actual tests. It is just a helper for checking the output of
// the triangulators.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check the invariants every triangulation must keep. The rules are:
// 1. No triangle has zero area.
// 2. No two triangles intersect per TrianglesIntersect, in either order.
func AssertValidTriangles(t *testing.T, triangles TriangleList) {
	for i, tri := range triangles {
		require.False(t, tri.IsDegenerate(), "degenerate triangle %d: %v", i, tri)
	}
	for i := range triangles {
		for j := i + 1; j < len(triangles); j++ {
			assert.False(t, TrianglesIntersect(triangles[i], triangles[j]), "triangles %d and %d intersect: %v, %v", i, j, triangles[i], triangles[j])
			assert.False(t, TrianglesIntersect(triangles[j], triangles[i]), "triangles %d and %d intersect: %v, %v", j, i, triangles[j], triangles[i])
		}
	}
}

// Sample the domain on a grid and make sure no sample lies strictly inside two
// triangles. This catches real overlap that the approximate pairwise test would
// let through.
func validateNoOverlapBySampling(t *testing.T, triangles TriangleList) {
	const steps = 100
	step := (DomainMax - DomainMin) / steps
	for yi := 0; yi <= steps; yi++ {
		for xi := 0; xi <= steps; xi++ {
			p := Point{X: DomainMin + float64(xi)*step, Y: DomainMin + float64(yi)*step}
			count := 0
			for _, tri := range triangles {
				if PointInTriangle(tri, p, false) {
					count++
				}
			}
			assert.LessOrEqual(t, count, 1, "point %v is inside %d triangles", p, count)
		}
	}
}

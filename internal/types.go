package internal

type Point struct {
	X float64
	Y float64
}

// RGB in [0,1]^3, laid out the way the vertex stream expects it.
type Color struct {
	R, G, B float64
}

// A site generates one cell. Sites are never modified once loaded.
type Site struct {
	Point
	Color Color
}

// Line in slope-intercept form, y = A*x + B. Vertical lines cannot be
// represented, so every constructor of a Line also reports whether it
// succeeded.
type Line struct {
	A float64
	B float64
}

// Triangles are undirected. Nothing in the core depends on winding.
type Triangle struct {
	A, B, C Point
}

// A RenderTriangle is what gets handed to the drawing layer: geometry plus the
// color of the nearest site.
type RenderTriangle struct {
	Triangle
	Color Color
}

type TriangleList []Triangle

type SiteList []Site

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges in A->B, B->C, C->A order.
func (t Triangle) Edges() [3][2]Point {
	return [3][2]Point{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (sites SiteList) Points() []Point {
	points := make([]Point, len(sites))
	for i, site := range sites {
		points[i] = site.Point
	}
	return points
}

func (list TriangleList) TotalArea() float64 {
	var total float64
	for _, tri := range list {
		total += tri.Area()
	}
	return total
}

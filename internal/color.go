package internal

// NearestSite returns the index of the site closest to p, or -1 for an empty
// list. On a tie the site that comes first wins.
func NearestSite(sites SiteList, p Point) int {
	nearest := -1
	var nearestDistance float64
	for i, site := range sites {
		d := Distance(site.Point, p)
		if nearest < 0 || d < nearestDistance {
			nearest, nearestDistance = i, d
		}
	}
	return nearest
}

// Colorize gives each triangle the color of the site nearest its centroid.
// Without sites every triangle is black.
func Colorize(triangles TriangleList, sites SiteList) []RenderTriangle {
	result := make([]RenderTriangle, len(triangles))
	for i, tri := range triangles {
		result[i].Triangle = tri
		if nearest := NearestSite(sites, tri.Centroid()); nearest >= 0 {
			result[i].Color = sites[nearest].Color
		}
	}
	return result
}

package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/voronoiable"
	"github.com/pkg/errors"
)

// Clear color behind the triangles, and the size of the site markers in
// pixels.
var (
	Background     = voronoiable.Color{R: 1.00, G: 0.49, B: 0.04}
	SiteMarkerSize = 10.0
)

// Rasterize draws the triangles, then the sites on top, into a square image
// covering the [-1,1] domain with y pointing up.
func Rasterize(triangles []voronoiable.RenderTriangle, sites []voronoiable.Site, size int) image.Image {
	return draw(triangles, sites, size).Image()
}

func draw(triangles []voronoiable.RenderTriangle, sites []voronoiable.Site, size int) *gg.Context {
	c := gg.NewContext(size, size)
	c.SetRGB(Background.R, Background.G, Background.B)
	c.Clear()

	// Flip the context so the origin is at the bottom left, then map [-1,1] onto
	// the canvas
	c.Translate(0, float64(size))
	c.Scale(1, -1)
	c.Scale(float64(size)/2, float64(size)/2)
	c.Translate(1, 1)

	for _, tri := range triangles {
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetRGB(tri.Color.R, tri.Color.G, tri.Color.B)
		c.Fill()
	}

	// Markers are sized in pixels, so draw them in device space
	for _, site := range sites {
		x, y := c.TransformPoint(site.X, site.Y)
		c.Push()
		c.Identity()
		c.DrawRectangle(x-SiteMarkerSize/2, y-SiteMarkerSize/2, SiteMarkerSize, SiteMarkerSize)
		c.SetRGB(site.Color.R, site.Color.G, site.Color.B)
		c.Fill()
		c.Pop()
	}
	return c
}

func SavePNG(path string, triangles []voronoiable.RenderTriangle, sites []voronoiable.Site, size int) error {
	if err := draw(triangles, sites, size).SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

func EncodePNG(w io.Writer, triangles []voronoiable.RenderTriangle, sites []voronoiable.Site, size int) error {
	if err := draw(triangles, sites, size).EncodePNG(w); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// Preview prints a saved PNG to the terminal (iTerm only).
func Preview(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "preview %s", path)
	}
	return nil
}

// Package scene loads site lists. Scenes come from YAML files, from SVG
// drawings (one circle per site) or from the built-in default grid.
package scene

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/voronoiable"
	"github.com/pkg/errors"
)

// Load reads a scene file, picking the format from the extension. Sites without
// a color get one from rng.
func Load(path string, rng *rand.Rand) ([]voronoiable.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	var sites []voronoiable.Site
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		sites, err = LoadYAML(f, rng)
	case ".svg":
		sites, err = LoadSVG(f, rng)
	default:
		return nil, errors.Errorf("scene %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return sites, nil
}

// Default is the 3x3 grid of sites in the lower left corner of the domain.
func Default(rng *rand.Rand) []voronoiable.Site {
	var sites []voronoiable.Site
	for _, p := range []voronoiable.Point{
		{X: -0.9, Y: -0.9},
		{X: -0.7, Y: -0.9},
		{X: -0.9, Y: -0.7},
		{X: -0.7, Y: -0.7},
		{X: -0.5, Y: -0.7},
		{X: -0.7, Y: -0.5},
		{X: -0.5, Y: -0.5},
		{X: -0.9, Y: -0.5},
		{X: -0.5, Y: -0.9},
	} {
		sites = append(sites, voronoiable.Site{Point: p, Color: RandomColor(rng)})
	}
	return sites
}

// Uniform in [0,1] per channel.
func RandomColor(rng *rand.Rand) voronoiable.Color {
	return voronoiable.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
}

func validColor(c voronoiable.Color) bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

package scene

import (
	"io"
	"math/rand"

	"github.com/osuushi/voronoiable"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A YAML scene looks like
//
//	sites:
//	  - {x: -0.5, y: 0.2, color: [1, 0, 0]}
//	  - {x: 0.4, y: -0.1}
//
// Colors are optional.
type yamlScene struct {
	Sites []yamlSite `yaml:"sites"`
}

type yamlSite struct {
	X     float64   `yaml:"x"`
	Y     float64   `yaml:"y"`
	Color []float64 `yaml:"color"`
}

func LoadYAML(r io.Reader, rng *rand.Rand) ([]voronoiable.Site, error) {
	var scene yamlScene
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&scene); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	sites := make([]voronoiable.Site, 0, len(scene.Sites))
	for i, s := range scene.Sites {
		site := voronoiable.Site{Point: voronoiable.Point{X: s.X, Y: s.Y}}
		switch len(s.Color) {
		case 0:
			site.Color = RandomColor(rng)
		case 3:
			site.Color = voronoiable.Color{R: s.Color[0], G: s.Color[1], B: s.Color[2]}
			if !validColor(site.Color) {
				return nil, errors.Errorf("site %d: color %v out of range", i, s.Color)
			}
		default:
			return nil, errors.Errorf("site %d: color needs 3 channels, got %d", i, len(s.Color))
		}
		sites = append(sites, site)
	}
	return sites, nil
}

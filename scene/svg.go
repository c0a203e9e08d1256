package scene

import (
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/voronoiable"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// This is not a full (or even correct) svg parser. Every <circle> is a site,
// with its center mapped from the drawing's viewBox (or width and height) onto
// the [-1,1] square, y pointing up. The fill attribute gives the color; circles
// without one get a random color.

func LoadSVG(r io.Reader, rng *rand.Rand) ([]voronoiable.Site, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}
	box, err := viewBox(root)
	if err != nil {
		return nil, err
	}

	circles := root.FindAll("circle")
	sites := make([]voronoiable.Site, 0, len(circles))
	for i, circle := range circles {
		cx, err := parseFloatAttribute(circle, "cx")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		cy, err := parseFloatAttribute(circle, "cy")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}

		site := voronoiable.Site{Point: box.toDomain(cx, cy)}
		fill := strings.TrimSpace(circle.Attributes["fill"])
		if fill == "" || fill == "none" {
			site.Color = RandomColor(rng)
		} else if site.Color, err = ParseColor(fill); err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		sites = append(sites, site)
	}
	return sites, nil
}

type box struct {
	minX, minY, width, height float64
}

func (b box) toDomain(x, y float64) voronoiable.Point {
	return voronoiable.Point{
		X: -1 + 2*(x-b.minX)/b.width,
		Y: 1 - 2*(y-b.minY)/b.height,
	}
}

func viewBox(root *svgparser.Element) (box, error) {
	if attr, ok := root.Attributes["viewBox"]; ok {
		fields := strings.FieldsFunc(attr, func(r rune) bool { return r == ' ' || r == ',' })
		if len(fields) != 4 {
			return box{}, errors.Errorf("invalid viewBox %q", attr)
		}
		var values [4]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return box{}, errors.Wrapf(err, "invalid viewBox %q", attr)
			}
			values[i] = v
		}
		return checkBox(box{values[0], values[1], values[2], values[3]})
	}

	width, err := parseFloatAttribute(root, "width")
	if err != nil {
		return box{}, errors.Wrap(err, "svg without viewBox")
	}
	height, err := parseFloatAttribute(root, "height")
	if err != nil {
		return box{}, errors.Wrap(err, "svg without viewBox")
	}
	return checkBox(box{0, 0, width, height})
}

func checkBox(b box) (box, error) {
	if b.width <= 0 || b.height <= 0 {
		return box{}, errors.Errorf("empty drawing area %gx%g", b.width, b.height)
	}
	return b, nil
}

func parseFloatAttribute(el *svgparser.Element, name string) (float64, error) {
	attr, ok := el.Attributes[name]
	if !ok {
		return 0, errors.Errorf("missing %s", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(attr), "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", name, attr)
	}
	return v, nil
}

// ParseColor understands #rrggbb, #rgb and CSS color names.
func ParseColor(s string) (voronoiable.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return voronoiable.Color{}, errors.Errorf("unknown color %q", s)
		}
		return voronoiable.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return voronoiable.Color{}, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return voronoiable.Color{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return voronoiable.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

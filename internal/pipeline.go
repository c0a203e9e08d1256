package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// The two top-level pipelines share the kernel but nothing else:
//
//	sites -> fans -> centroid or circumcenter fan -> colors
//	sites -> Voronoi-edge candidates -> colors

type Strategy int

const (
	CentroidStrategy Strategy = iota
	CircumcenterStrategy
	EdgesStrategy
)

var strategyNames = map[Strategy]string{
	CentroidStrategy:     "centroid",
	CircumcenterStrategy: "circumcenter",
	EdgesStrategy:        "edges",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Names accepted by ParseStrategy, in declaration order.
func StrategyNames() []string {
	return []string{CentroidStrategy.String(), CircumcenterStrategy.String(), EdgesStrategy.String()}
}

func ParseStrategy(name string) (Strategy, error) {
	for strategy, strategyName := range strategyNames {
		if strategyName == name {
			return strategy, nil
		}
	}
	return 0, errors.Errorf("unknown strategy %q", name)
}

type Result struct {
	Strategy Strategy
	// Fan triangles before subdivision. Empty for the edge strategy.
	Fans      TriangleList
	Triangles []RenderTriangle
	Skipped   []Skipped
}

// Run computes the render triangles for the sites with the given strategy.
// Everything is recomputed from scratch on each call.
func Run(sites SiteList, strategy Strategy) Result {
	points := sites.Points()
	result := Result{Strategy: strategy}

	var triangles TriangleList
	switch strategy {
	case CentroidStrategy:
		result.Fans = TriangulateFans(points)
		triangles = SubdivideByCentroid(result.Fans)
	case CircumcenterStrategy:
		result.Fans = TriangulateFans(points)
		triangles, result.Skipped = SubdivideByCircumcenter(result.Fans)
	case EdgesStrategy:
		triangles = TriangulateEdges(points)
	default:
		fatalf("unknown strategy %d", strategy)
	}
	result.Triangles = Colorize(triangles, sites)

	Logger().Info("tessellated sites",
		zap.Stringer("strategy", strategy),
		zap.Int("sites", len(sites)),
		zap.Int("fans", len(result.Fans)),
		zap.Int("triangles", len(result.Triangles)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result
}

// Coverage is the fraction of the domain covered by render triangles.
func (r Result) Coverage() float64 {
	var area float64
	for _, tri := range r.Triangles {
		area += tri.Area()
	}
	return area / ((DomainMax - DomainMin) * (DomainMax - DomainMin))
}

// Colored, Voronoi-like tilings of the [-1,1]x[-1,1] square.
//
// Given a handful of sites (points with a color), this package produces a list
// of colored triangles approximating the Voronoi diagram of the sites: every
// triangle takes the color of the site nearest its centroid. The result is an
// approximation. It is neither exact nor guaranteed to cover the whole domain,
// and everything is recomputed from scratch for every call. See the readme for
// the strategies.
package voronoiable

import (
	"github.com/osuushi/voronoiable/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Color = internal.Color
type Site = internal.Site
type Triangle = internal.Triangle
type RenderTriangle = internal.RenderTriangle
type Strategy = internal.Strategy
type Result = internal.Result
type Skipped = internal.Skipped

const (
	// Fan triangulation, each fan triangle split around its centroid.
	CentroidFan = internal.CentroidStrategy
	// Fan triangulation, each acute fan triangle split around its
	// circumcenter. Other triangles are reported in Result.Skipped.
	CircumcenterFan = internal.CircumcenterStrategy
	// Triangles built directly from bisector intersections and site midpoints.
	VoronoiEdges = internal.EdgesStrategy
)

// Sentinel reasons found (wrapped) in Skipped.Reason. Use errors.Cause or
// errors.Is to compare.
var (
	ErrVerticalLine       = internal.ErrVerticalLine
	ErrParallelLines      = internal.ErrParallelLines
	ErrDegenerateTriangle = internal.ErrDegenerateTriangle
	ErrUnsupportedShape   = internal.ErrUnsupportedShape
)

func ParseStrategy(name string) (Strategy, error) {
	return internal.ParseStrategy(name)
}

func StrategyNames() []string {
	return internal.StrategyNames()
}

// SetLogger enables logging for the geometry core. By default nothing is
// logged. Pass nil to disable logging again.
func SetLogger(l *zap.Logger) {
	internal.SetLogger(l)
}

// Tessellate turns the sites into render triangles with the given strategy.
//
// Degenerate input (collinear sites, horizontally or vertically aligned pairs,
// too few sites) is not an error; it just yields fewer triangles. An error is
// only returned if the core hits an internal inconsistency.
func Tessellate(sites []Site, strategy Strategy) (result Result, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()
	return internal.Run(internal.SiteList(sites), strategy), nil
}

// Command voronoiable tessellates a scene and writes the result as a PNG, a raw
// vertex stream, or both. Without a scene it uses a 3x3 grid of sites.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoiable"
	"github.com/osuushi/voronoiable/dbg"
	"github.com/osuushi/voronoiable/render"
	"github.com/osuushi/voronoiable/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	strategy string
	scene    string
	seed     int64
	png      string
	size     int
	imgcat   bool
	vertices string
	verbose  bool
	noColor  bool
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("voronoiable", "Approximate a colored Voronoi diagram with triangles.")
	app.Flag("strategy", "Tessellation strategy.").
		Short('s').Default(voronoiable.CentroidFan.String()).EnumVar(&opts.strategy, voronoiable.StrategyNames()...)
	app.Flag("scene", "Scene file (.yaml, .yml or .svg). Defaults to a 3x3 grid.").
		ExistingFileVar(&opts.scene)
	app.Flag("seed", "Seed for random site colors. Defaults to the current time.").
		Int64Var(&opts.seed)
	app.Flag("png", "Write a preview PNG to this path.").StringVar(&opts.png)
	app.Flag("size", "Width and height of the PNG in pixels.").Default("800").IntVar(&opts.size)
	app.Flag("imgcat", "Print the PNG to the terminal (iTerm).").BoolVar(&opts.imgcat)
	app.Flag("vertices", "Write the little endian float32 vertex stream to this path.").StringVar(&opts.vertices)
	app.Flag("verbose", "Log everything the core does.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	return app
}

func main() {
	opts := &options{}
	app := newApp(opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(opts, os.Stdout); err != nil {
		app.Fatalf("%v", err)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return config.Build()
}

func run(opts *options, out io.Writer) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer logger.Sync() //nolint:errcheck
	voronoiable.SetLogger(logger)
	defer voronoiable.SetLogger(nil)

	strategy, err := voronoiable.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var sites []voronoiable.Site
	if opts.scene == "" {
		sites = scene.Default(rng)
	} else if sites, err = scene.Load(opts.scene, rng); err != nil {
		return err
	}
	logger.Debug("loaded scene",
		zap.String("scene", opts.scene),
		zap.Int64("seed", seed),
		zap.Int("sites", len(sites)),
	)

	result, err := voronoiable.Tessellate(sites, strategy)
	if err != nil {
		return err
	}
	printSummary(out, aurora.NewAurora(!opts.noColor), sites, result)
	if opts.verbose {
		dbg.Dump(out, result.Skipped)
	}

	if opts.vertices != "" {
		if err := writeVertices(opts.vertices, result.Triangles); err != nil {
			return err
		}
	}

	if opts.png != "" {
		if err := render.SavePNG(opts.png, result.Triangles, sites, opts.size); err != nil {
			return err
		}
		if opts.imgcat {
			if err := render.Preview(opts.png, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeVertices(path string, triangles []voronoiable.RenderTriangle) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create vertex file")
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return render.WriteVertexStream(f, triangles)
}

func printSummary(out io.Writer, au aurora.Aurora, sites []voronoiable.Site, result voronoiable.Result) {
	fmt.Fprintf(out, "%s %s\n", au.Bold("strategy:"), au.Cyan(result.Strategy))
	fmt.Fprintf(out, "%s %d\n", au.Bold("sites:"), len(sites))
	if result.Strategy != voronoiable.VoronoiEdges {
		fmt.Fprintf(out, "%s %d\n", au.Bold("fan triangles:"), len(result.Fans))
	}
	fmt.Fprintf(out, "%s %d\n", au.Bold("render triangles:"), len(result.Triangles))
	fmt.Fprintf(out, "%s %.1f%%\n", au.Bold("coverage:"), 100*result.Coverage())
	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "%s %d\n", au.Yellow("skipped:"), len(result.Skipped))
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Demo of triangulation. Points are read from --input (or stdin with "-") as
// newline separated "x y" pairs, optionally surrounded by outer vertices and
// random vertices, and the triangles are printed as text or YAML. Blank lines
// and lines starting with # are ignored.

var (
	app        = kingpin.New("delaunay", "Delaunay triangulation of points in a rectangular region.")
	width      = app.Flag("width", "Region width.").Default("100").Float64()
	height     = app.Flag("height", "Region height.").Default("100").Float64()
	configPath = app.Flag("config", "YAML config file.").Short('c').Default("").String()
	input      = app.Flag("input", `Points file, or "-" for stdin.`).Short('i').Default("").String()
	outer      = app.Flag("outer", "Spacing of outer vertices. Zero falls back to the config interval, and adds none if that is zero too.").Default("0").Float64()
	jitter     = app.Flag("jitter", "Jitter the outer vertices.").Default("false").Bool()
	random     = app.Flag("random", "Fill with random vertices this far apart (0 to skip).").Default("0").Float64()
	format     = app.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	pngPath    = app.Flag("png", "Write a debug PNG of the triangulation here.").Default("").String()
	scale      = app.Flag("scale", "Debug PNG scale.").Default("4").Float64()
	inline     = app.Flag("inline", "Print the debug PNG inline (iTerm).").Default("false").Bool()
	labels     = app.Flag("labels", "Label triangles in the debug PNG.").Default("false").Bool()
	verbose    = app.Flag("verbose", "Debug logging.").Short('v').Default("false").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	if err := run(logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, out io.Writer) error {
	config := delaunay.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return errors.Wrap(err, "opening config")
		}
		defer f.Close()
		if config, err = delaunay.LoadConfig(f); err != nil {
			return err
		}
	}

	var points []delaunay.Point
	if *input != "" {
		var in io.Reader = os.Stdin
		if *input != "-" {
			f, err := os.Open(*input)
			if err != nil {
				return errors.Wrap(err, "opening input")
			}
			defer f.Close()
			in = f
		}
		var err error
		if points, err = readPoints(in); err != nil {
			return err
		}
	}

	engine := delaunay.New(*width, *height, delaunay.WithConfig(config), delaunay.WithLogger(logger))

	outerInterval := config.Interval
	if *outer != 0 {
		outerInterval = *outer
	}
	var vertices []delaunay.Point
	if outerInterval > 0 {
		vertices = engine.OuterVertices(outerInterval, *jitter)
	}
	engine.SetVertices(append(vertices, points...))

	if *random > 0 {
		if err := engine.RandomVertices(*random); err != nil {
			return err
		}
	}

	triangles, err := engine.CreateDelaunay()
	if err != nil {
		return err
	}

	switch *format {
	case "yaml":
		err = writeYAML(out, engine, triangles)
	default:
		err = writeText(out, engine, triangles)
	}
	if err != nil {
		return err
	}

	if *pngPath != "" {
		if err := triangles.DebugDraw(*pngPath, *scale, *labels); err != nil {
			return errors.Wrap(err, "drawing")
		}
		if *inline {
			internal.CatImage(*pngPath, out)
		}
	}
	return nil
}

func readPoints(in io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return delaunay.Point{X: x, Y: y}, nil
}

type output struct {
	Region    delaunay.Region       `yaml:"region"`
	Vertices  []delaunay.Point      `yaml:"vertices"`
	Triangles delaunay.TriangleList `yaml:"triangles"`
}

func writeYAML(out io.Writer, engine *delaunay.Engine, triangles delaunay.TriangleList) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(output{
		Region:    engine.Size(),
		Vertices:  engine.Vertices(),
		Triangles: triangles,
	}); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return encoder.Close()
}

func writeText(out io.Writer, engine *delaunay.Engine, triangles delaunay.TriangleList) error {
	vertices := engine.Vertices()
	hull := delaunay.ConvexHull(vertices)
	fmt.Fprintf(out, "%s %s, %d vertices (%d on hull), %d triangles\n",
		aurora.Bold("region"),
		engine.Size(),
		aurora.Cyan(len(vertices)),
		len(hull.Points),
		aurora.Green(len(triangles)),
	)
	for _, t := range triangles {
		if _, err := fmt.Fprintf(out, "%g %g %g %g %g %g\n", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y); err != nil {
			return errors.Wrap(err, "writing triangles")
		}
	}
	return nil
}

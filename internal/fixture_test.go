package internal

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into vertex sets. This is not a full (or
// even correct) svg parser. The region comes from the root width and height,
// and every <circle> center is a vertex, in document order. If anything goes
// wrong, it bails out.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (Region, []Point) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	region := Region{
		Width:  parseFixtureFloat(name, rootEl.Attributes["width"]),
		Height: parseFixtureFloat(name, rootEl.Attributes["height"]),
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		points = append(points, Point{
			X: parseFixtureFloat(name, circleEl.Attributes["cx"]),
			Y: parseFixtureFloat(name, circleEl.Attributes["cy"]),
		})
	}
	return region, points
}

func parseFixtureFloat(name, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid number %q in fixture %q: %v", value, name, err)
	}
	return f
}

// Some ad hoc fixtures

// Corners of a square, which are cocircular
func SquareCorners(size float64) []Point {
	return []Point{{0, 0}, {size, 0}, {size, size}, {0, size}}
}

// A flat triangle along the bottom edge, with an interior point hugging it.
// The hull triangle on the long edge has a huge circumcircle.
func ThinHull() []Point {
	return []Point{{0, 0}, {100, 0}, {50, 3}, {50, 60}}
}

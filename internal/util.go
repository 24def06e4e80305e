package internal

import (
	"fmt"
	"math"
)

// Tolerance for comparisons that don't affect the triangulation itself, like
// areas and distances in checks. The algorithm always uses exact comparisons.
const Tolerance = 1e-9

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Lexicographic ordering, X first. Only used to normalize edges and sort hulls,
// so it needs to be total, not geometrically meaningful.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Twice the signed area of abc. Positive when abc winds counterclockwise in a
// y-up frame, zero when collinear.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (r Region) Valid() bool {
	return r.Width > 0 && r.Height > 0 && isFinite(r.Width) && isFinite(r.Height)
}

func (r Region) String() string {
	return fmt.Sprintf("%gx%g", r.Width, r.Height)
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

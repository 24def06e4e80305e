package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Find the unique circle passing through a, b and c, by intersecting the
// perpendicular bisectors of ab and ac. Collinear or coincident points have no
// such circle, and produce an ErrDegenerateGeometry rather than NaN or Inf.
func Circumcircle(a, b, c Point) (Circle, error) {
	p := 2 * ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
	if p == 0 {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "no circumcircle for collinear points %s, %s, %s", a, b, c)
	}

	ab := b.X*b.X - a.X*a.X + b.Y*b.Y - a.Y*a.Y
	ac := c.X*c.X - a.X*a.X + c.Y*c.Y - a.Y*a.Y
	center := Point{
		X: ((c.Y-a.Y)*ab + (a.Y-b.Y)*ac) / p,
		Y: ((a.X-c.X)*ab + (b.X-a.X)*ac) / p,
	}
	radius := center.Distance(a)

	// A tiny but nonzero p can still blow up
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(radius) {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "circumcircle of %s, %s, %s is not finite", a, b, c)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// The inscribed circle of abc. Its center is the side-length weighted average
// of the vertices, and its radius is area / semiperimeter.
func Incircle(a, b, c Point) (Circle, error) {
	sideA := b.Distance(c)
	sideB := c.Distance(a)
	sideC := a.Distance(b)
	perimeter := sideA + sideB + sideC
	area := math.Abs(Orientation(a, b, c)) / 2
	if area == 0 || perimeter == 0 {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "no incircle for collinear points %s, %s, %s", a, b, c)
	}

	center := Point{
		X: (sideA*a.X + sideB*b.X + sideC*c.X) / perimeter,
		Y: (sideA*a.Y + sideB*b.Y + sideC*c.Y) / perimeter,
	}
	return Circle{Center: center, Radius: area / (perimeter / 2)}, nil
}

func Centroid(a, b, c Point) Point {
	return Point{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
	}
}

// Inclusive containment: a point exactly on the circle counts as inside. The
// insertion step relies on this to retriangulate cocircular configurations.
func (c Circle) Contains(p Point) bool {
	return p.Distance(c.Center) <= c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle{%s r=%g}", c.Center, c.Radius)
}

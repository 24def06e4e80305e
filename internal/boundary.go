package internal

import (
	"math"
	"math/rand"
)

// Jitter added to each step along an edge never exceeds this, or the interval
// itself if that is smaller.
const maxJitter = 5

// Produce the four corners of the region, followed by points spaced along each
// edge at roughly the given interval. Edges are walked bottom, right, top,
// left. If randomized, each step is lengthened by a uniform jitter in
// [0, min(interval, 5)).
//
// A point is only placed while at least one interval remains before the next
// corner, so edge points never sit closer than interval to a corner along
// their own edge, and never coincide with one.
func OuterVertices(region Region, interval float64, randomized bool, rng *rand.Rand) []Point {
	width, height := region.Width, region.Height
	vertices := []Point{
		{0, 0},
		{width, 0},
		{width, height},
		{0, height},
	}
	if !(interval > 0) || !isFinite(interval) {
		return vertices
	}

	jitter := math.Min(interval, maxJitter)
	sides := []struct {
		origin    Point
		direction Point
		length    float64
	}{
		{Point{0, 0}, Point{1, 0}, width},
		{Point{width, 0}, Point{0, 1}, height},
		{Point{width, height}, Point{-1, 0}, width},
		{Point{0, height}, Point{0, -1}, height},
	}

	for _, side := range sides {
		position := 0.0
		for {
			position += interval
			if randomized {
				position += rng.Float64() * jitter
			}
			if side.length-position < interval {
				break
			}
			vertices = append(vertices, Point{
				X: side.origin.X + side.direction.X*position,
				Y: side.origin.Y + side.direction.Y*position,
			})
		}
	}
	return vertices
}

// A triangle enclosing the whole region: the apex sits above the top edge and
// the base straddles the bottom edge, pushed out by margin on every side. Its
// vertices are sentinels and are stripped from the final triangulation.
//
// The winding is counterclockwise in a y-up frame, and every triangle derived
// from it during insertion keeps that winding.
func SuperTriangle(region Region, margin float64) Triangle {
	width, height := region.Width, region.Height
	halfWidth := width / 2
	return Triangle{
		A: Point{halfWidth, -height - margin},
		B: Point{width + halfWidth + margin, height + margin},
		C: Point{-halfWidth - margin, height + margin},
	}
}

// Strictly inside, so that a point on the super triangle's boundary is
// rejected. Such a point would produce a zero area triangle with two sentinels.
func (t Triangle) StrictlyContains(p Point) bool {
	ab := Orientation(t.A, t.B, p)
	bc := Orientation(t.B, t.C, p)
	ca := Orientation(t.C, t.A, p)
	return (ab > 0 && bc > 0 && ca > 0) || (ab < 0 && bc < 0 && ca < 0)
}

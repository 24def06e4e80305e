package internal

// Points are plain values. Two points are the same vertex iff their
// coordinates are exactly equal, so they can be used directly as map keys.
type Point struct {
	X float64
	Y float64
}

// The rectangle vertices are expected to live in, anchored at the origin.
type Region struct {
	Width  float64
	Height float64
}

type Circle struct {
	Center Point
	Radius float64
}

type Triangle struct {
	A, B, C Point
}

// A directed side of a triangle. Cavity merging treats (P, Q) and (Q, P) as the
// same side, see Key.
type Edge struct {
	P, Q Point
}

type Polygon struct {
	Points []Point
}

type TriangleList []Triangle

type PointSet map[Point]struct{}

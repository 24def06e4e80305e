// An incremental Delaunay triangulation package for Go.
//
// This package triangulates a set of points inside a rectangular region so
// that no point lies strictly inside the circumcircle of any triangle. Points
// are inserted one at a time into a triangulation seeded with a super triangle
// enclosing the region, and triangles touching the super triangle are removed
// at the end.
//
// Use Triangulate for a one-shot triangulation, or an Engine to keep a region
// and vertex set around, fill it with random points, and retriangulate.
package delaunay

import (
	"context"

	"github.com/osuushi/delaunay/internal"
)

type Point = internal.Point
type Region = internal.Region
type Circle = internal.Circle
type Triangle = internal.Triangle
type Edge = internal.Edge
type Polygon = internal.Polygon
type TriangleList = internal.TriangleList

var (
	ErrDegenerateGeometry = internal.ErrDegenerateGeometry
	ErrDuplicateVertex    = internal.ErrDuplicateVertex
	ErrInvalidRegion      = internal.ErrInvalidRegion
	ErrInvalidInterval    = internal.ErrInvalidInterval
)

// Triangulate the vertices inside a width by height region, using the default
// configuration. Vertices are inserted in the order given.
//
// The result is nil whenever err is non-nil.
func Triangulate(width, height float64, vertices []Point) (TriangleList, error) {
	return internal.Triangulate(context.Background(), Region{Width: width, Height: height}, vertices, internal.TriangulateOptions{
		Margin: DefaultMargin,
	})
}

// Find the circle through a, b and c. Collinear points give an error matching
// ErrDegenerateGeometry.
func Circumcircle(a, b, c Point) (Circle, error) {
	return internal.Circumcircle(a, b, c)
}

// Counterclockwise convex hull, keeping points that lie on hull edges
func ConvexHull(points []Point) Polygon {
	return internal.ConvexHull(points)
}

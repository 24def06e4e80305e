package internal

// Incremental Delaunay triangulation, in the style of Bowyer and Watson.
//
// The working set starts as a single super triangle enclosing the region.
// Each vertex is inserted in order: every triangle whose circumcircle contains
// the vertex is removed, which leaves a star-shaped cavity around it, and the
// cavity is refilled by joining the vertex to each boundary edge. Finally, any
// triangle still touching a super triangle vertex is dropped. Circles through
// super triangle vertices are tested as if those vertices were infinitely far
// away (see sentinel.go), so the result always covers the convex hull.
//
// Insertion order matters only for cocircular input. The containment test is
// inclusive, so a vertex exactly on a circumcircle always reopens that
// triangle, and which of the valid triangulations comes out depends on order.

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type TriangulateOptions struct {
	// Distance the super triangle is pushed out beyond the region. Vertices
	// must lie strictly inside it. It has no effect on the result otherwise.
	Margin float64
	Logger *zap.Logger
}

// A triangle along with its circumcircle, computed once when it's created.
// Triangles with sentinel corners have no finite circle.
type workingTriangle struct {
	Triangle
	circle    Circle
	sentinels int
}

type triangulation struct {
	super     Triangle
	sentinels sentinels
	triangles []workingTriangle
	logger    *zap.Logger
}

// Triangulate the vertices inside region. On any error, the result is nil:
// there is no meaningful partial triangulation.
func Triangulate(ctx context.Context, region Region, vertices []Point, opts TriangulateOptions) (result TriangleList, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	super := SuperTriangle(region, opts.Margin)
	if err := validateInput(region, super, vertices); err != nil {
		return nil, err
	}

	t := newTriangulation(super, logger)
	for i, v := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "triangulation interrupted after %d of %d vertices", i, len(vertices))
		}
		t.insert(v)
	}

	result = t.strip()
	logger.Debug("triangulated",
		zap.Stringer("region", region),
		zap.Int("vertices", len(vertices)),
		zap.Int("triangles", len(result)),
	)
	return result, nil
}

func newTriangulation(super Triangle, logger *zap.Logger) *triangulation {
	t := &triangulation{super: super, sentinels: newSentinels(super), logger: logger}
	t.triangles = []workingTriangle{t.makeTriangle(super.A, super.B, super.C)}
	return t
}

func (t *triangulation) makeTriangle(a, b, c Point) workingTriangle {
	tri := workingTriangle{Triangle: Triangle{a, b, c}}
	tri.sentinels = t.sentinels.count(tri.Triangle)
	if tri.sentinels == 0 {
		circle, err := tri.Circumcircle()
		if err != nil {
			throw(err)
		}
		tri.circle = circle
	}
	return tri
}

func (t *triangulation) insert(v Point) {
	var cavity, kept []workingTriangle
	for _, tri := range t.triangles {
		if t.sentinels.circleContains(tri, v) {
			cavity = append(cavity, tri)
		} else {
			kept = append(kept, tri)
		}
	}

	boundary := cavityBoundary(cavity)
	if len(boundary) == 0 {
		throwf(ErrDegenerateGeometry, "vertex %s is not inside any circumcircle", v)
	}

	for _, edge := range boundary {
		kept = append(kept, t.makeTriangle(edge.P, edge.Q, v))
	}
	t.triangles = kept

	if ce := t.logger.Check(zap.DebugLevel, "inserted vertex"); ce != nil {
		ce.Write(
			zap.Stringer("vertex", v),
			zap.Int("cavity", len(cavity)),
			zap.Int("boundary", len(boundary)),
			zap.Int("triangles", len(t.triangles)),
		)
	}
}

// The edges of the cavity triangles that appear exactly once, in the order
// they were first seen. A side shared by two cavity triangles is interior to
// the cavity, whichever direction each triangle lists it in.
func cavityBoundary(cavity []workingTriangle) []Edge {
	counts := make(map[Edge]int, len(cavity)*3)
	edges := make([]Edge, 0, len(cavity)*3)
	for _, tri := range cavity {
		for _, edge := range tri.Edges() {
			counts[edge.Key()]++
			edges = append(edges, edge)
		}
	}

	boundary := edges[:0]
	for _, edge := range edges {
		if counts[edge.Key()] == 1 {
			boundary = append(boundary, edge)
		}
	}
	return boundary
}

// Drop every triangle touching the super triangle
func (t *triangulation) strip() TriangleList {
	result := make(TriangleList, 0, len(t.triangles))
	for _, tri := range t.triangles {
		if !tri.SharesVertexWith(t.super) {
			result = append(result, tri.Triangle)
		}
	}
	return result
}

func validateInput(region Region, super Triangle, vertices []Point) error {
	if !region.Valid() {
		return errors.Wrapf(ErrInvalidRegion, "region %s must have positive, finite dimensions", region)
	}

	seen := make(map[Point]int, len(vertices))
	for i, v := range vertices {
		if j, ok := seen[v]; ok {
			return errors.Wrapf(ErrDuplicateVertex, "vertex %d %s duplicates vertex %d", i, v, j)
		}
		seen[v] = i
		if super.HasVertex(v) {
			return errors.Wrapf(ErrDuplicateVertex, "vertex %d %s coincides with a super triangle vertex", i, v)
		}
		if !super.StrictlyContains(v) {
			return errors.Wrapf(ErrInvalidRegion, "vertex %d %s is outside the triangulation bounds of region %s", i, v, region)
		}
	}

	if AllCollinear(vertices) {
		return errors.Wrapf(ErrDegenerateGeometry, "all %d vertices are collinear", len(vertices))
	}
	return nil
}

// True if there are at least three points and they all lie on one line.
// Incremental insertion never builds a triangle out of such input, so without
// this check it would silently produce an empty triangulation.
func AllCollinear(points []Point) bool {
	if len(points) < 3 {
		return false
	}
	a := points[0]
	var b Point
	found := false
	for _, p := range points[1:] {
		if p != a {
			b = p
			found = true
			break
		}
	}
	if !found {
		return true
	}
	for _, p := range points {
		if Orientation(a, b, p) != 0 {
			return false
		}
	}
	return true
}

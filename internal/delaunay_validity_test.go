package internal

// This contains no actual tests. It is just a helper for checking
// triangulation validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle vertex is one of the input vertices, and none is a super
//    triangle vertex.
// 2. Every triangle is counterclockwise, so none has zero area.
// 3. No triangle appears twice.
// 4. No input vertex lies strictly inside any triangle's circumcircle.
func AssertValidDelaunay(t *testing.T, super Triangle, vertices []Point, triangles TriangleList) {
	inputs := NewPointSet(vertices...)
	seen := make(map[[3]Point]struct{})
	for _, tri := range triangles {
		for _, p := range tri.Vertices() {
			require.True(t, inputs.Has(p), "triangle %s has a vertex that wasn't an input", tri)
		}
		require.False(t, tri.SharesVertexWith(super), "triangle %s touches the super triangle", tri)
		require.True(t, tri.IsCCW(), "clockwise or degenerate triangle: %s", tri)

		key := canonicalVertices(tri)
		_, dup := seen[key]
		require.False(t, dup, "triangle %s appears twice", tri)
		seen[key] = struct{}{}

		circle, err := tri.Circumcircle()
		require.NoError(t, err)
		epsilon := Tolerance * math.Max(1, circle.Radius)
		for _, v := range vertices {
			assert.GreaterOrEqual(t, v.Distance(circle.Center), circle.Radius-epsilon,
				"vertex %s is inside the circumcircle of %s", v, tri)
		}
	}
}

// Helper to check that the triangles tile the convex hull of the vertices
// exactly: the areas add up, and sampled points inside the hull land in
// exactly one triangle.
func AssertCoversHull(t *testing.T, vertices []Point, triangles TriangleList) {
	hull := ConvexHull(vertices)
	require.InDelta(t, hull.Area(), triangles.Area(), 1e-6, "sum of the triangle areas must equal the hull area")

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range hull.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	step := math.Max(maxX-minX, maxY-minY) / 50

	// Offset the samples differently on each axis so they don't run along
	// diagonals of the fixtures
	for y := minY + 0.61*step; y < maxY; y += step {
		for x := minX + 0.37*step; x < maxX; x += step {
			p := Point{x, y}
			if !hull.ContainsPointByEvenOdd(p) {
				continue
			}
			count := 0
			for _, tri := range triangles {
				if tri.StrictlyContains(p) {
					count++
				}
			}
			assert.Equal(t, 1, count, "point %s should be in exactly one triangle", p)
		}
	}
}

// Vertices in a rotation independent order, so the same triangle listed from a
// different starting vertex compares equal
func canonicalVertices(t Triangle) [3]Point {
	v := t.Vertices()
	start := 0
	for i := range v {
		if v[i].Less(v[start]) {
			start = i
		}
	}
	return [3]Point{v[start], v[CircularIndex(start+1, 3)], v[CircularIndex(start+2, 3)]}
}

func canonicalSet(list TriangleList) map[[3]Point]struct{} {
	set := make(map[[3]Point]struct{}, len(list))
	for _, t := range list {
		set[canonicalVertices(t)] = struct{}{}
	}
	return set
}

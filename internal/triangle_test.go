package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{
				A: Point{0, -1},
				B: Point{1, 0},
				C: Point{0, 1},
			}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.SignedArea(), Tolerance)
				assert.InDelta(t, expected, tri.Area(), Tolerance)
				assert.Equal(t, cwI == 0, tri.IsCCW())
			}
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assertArea(1)
			// Stretch the triangle out
			tri.A.Y *= 2
			tri.B.Y *= 2
			tri.C.Y *= 2
			assertArea(2)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				rotateTriangle(&tri, angle)
				assertArea(2)
			}

			// Translate the triangle and do the whole rotation thing again
			for _, p := range []*Point{&tri.A, &tri.B, &tri.C} {
				p.X += 5
				p.Y += 3
			}

			for i := 0; i < 14; i++ {
				rotateTriangle(&tri, angle)
				assertArea(2)
			}
		})
	}
}

func TestTriangleSharesVertexWith(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{1, 0}, Point{0, 1}}

	assert.True(t, tri.SharesVertexWith(Triangle{Point{5, 5}, Point{6, 5}, Point{0, 1}}))
	assert.True(t, tri.SharesVertexWith(tri))
	assert.False(t, tri.SharesVertexWith(Triangle{Point{5, 5}, Point{6, 5}, Point{0, 1.0000001}}))

	// Equality is by coordinates, not position in the triangle
	rotated := Triangle{tri.C, tri.A, tri.B}
	assert.True(t, rotated.SharesVertexWith(tri))
	assert.True(t, tri.HasVertex(Point{1, 0}))
	assert.False(t, tri.HasVertex(Point{1, 1}))
}

func TestTriangleEdges(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	tri := Triangle{a, b, c}
	assert.Equal(t, [3]Edge{{a, b}, {b, c}, {c, a}}, tri.Edges())
}

func TestEdgeKey(t *testing.T) {
	e := Edge{Point{3, 1}, Point{1, 2}}
	assert.Equal(t, e.Key(), e.Reverse().Key())
	assert.Equal(t, Edge{Point{1, 2}, Point{3, 1}}, e.Key())
	assert.InDelta(t, math.Sqrt(5), e.Length(), Tolerance)

	// Vertical edges fall back to Y
	v := Edge{Point{1, 5}, Point{1, 2}}
	assert.Equal(t, Edge{Point{1, 2}, Point{1, 5}}, v.Key())
}

func TestTriangleCircles(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 3}}

	circumcircle, err := tri.Circumcircle()
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, circumcircle.Radius, Tolerance)

	incircle, err := tri.Incircle()
	assert.NoError(t, err)
	assert.InDelta(t, 1, incircle.Radius, Tolerance)

	assert.InDelta(t, 4.0/3, tri.Centroid().X, Tolerance)
	assert.InDelta(t, 1, tri.Centroid().Y, Tolerance)
}

func TestTriangleString(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 3}}
	assert.Contains(t, tri.String(), "(0, 0), (4, 0), (0, 3)")
}

func TestStrictlyContains(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 4}}
	assert.True(t, tri.StrictlyContains(Point{1, 1}))
	assert.False(t, tri.StrictlyContains(Point{2, 0}), "points on an edge are not strictly inside")
	assert.False(t, tri.StrictlyContains(Point{0, 0}))
	assert.False(t, tri.StrictlyContains(Point{3, 3}))

	// Winding doesn't matter
	assert.True(t, Triangle{tri.A, tri.C, tri.B}.StrictlyContains(Point{1, 1}))
}

// Helpers

func rotateTriangle(tri *Triangle, angle float64) {
	for _, p := range []*Point{&tri.A, &tri.B, &tri.C} {
		rotatePoint(p, angle)
	}
}

func rotatePoint(point *Point, angle float64) {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	x := point.X
	y := point.Y
	point.X = x*cos - y*sin
	point.Y = x*sin + y*cos
}

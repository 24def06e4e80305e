package internal

import "sort"

// Winding rule point-in-polygon. This is used mostly for checking coverage of
// a triangulation; a point exactly on an edge may land either way.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a ray cast from p toward +X
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// X where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area, positive for counterclockwise polygons
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	area := poly.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

// Counterclockwise convex hull by the monotone chain method. Points lying on a
// hull edge are kept, since they are hull vertices as far as triangle counting
// is concerned.
func ConvexHull(points []Point) Polygon {
	sorted := make([]Point, 0, len(points))
	for p := range NewPointSet(points...) {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	if len(sorted) < 3 || AllCollinear(sorted) {
		return Polygon{Points: sorted}
	}

	chain := func(points []Point) []Point {
		var hull []Point
		for _, p := range points {
			for len(hull) >= 2 && Orientation(hull[len(hull)-2], hull[len(hull)-1], p) < 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	lower := chain(sorted)
	upper := chain(reversed)
	// Each chain ends where the other starts
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return Polygon{Points: hull}
}

func (list TriangleList) Area() float64 {
	var area float64
	for _, t := range list {
		area += t.Area()
	}
	return area
}

// All distinct vertices, in order of first appearance
func (list TriangleList) Vertices() []Point {
	seen := make(PointSet)
	var vertices []Point
	for _, t := range list {
		for _, p := range t.Vertices() {
			if !seen.Has(p) {
				seen.Add(p)
				vertices = append(vertices, p)
			}
		}
	}
	return vertices
}

// The outline of the triangulated area, made of the directed edges used by
// exactly one triangle and chained head to tail. For a triangulation with a
// single simply connected outline this is a counterclockwise polygon. Returns
// an empty polygon for an empty list, or if the outline doesn't close.
func (list TriangleList) Boundary() Polygon {
	counts := make(map[Edge]int)
	for _, t := range list {
		for _, e := range t.Edges() {
			counts[e.Key()]++
		}
	}

	next := make(map[Point]Point)
	var start Point
	for _, t := range list {
		for _, e := range t.Edges() {
			if counts[e.Key()] == 1 {
				if len(next) == 0 {
					start = e.P
				}
				next[e.P] = e.Q
			}
		}
	}
	if len(next) == 0 {
		return Polygon{}
	}

	points := []Point{start}
	for p := next[start]; p != start; p = next[p] {
		if len(points) > len(next) {
			return Polygon{}
		}
		if _, ok := next[p]; !ok {
			return Polygon{}
		}
		points = append(points, p)
	}
	if len(points) != len(next) {
		return Polygon{}
	}
	return Polygon{Points: points}
}

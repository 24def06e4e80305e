package internal

// The corners of the super triangle are sentinels. They have real coordinates,
// which identify them and bound where vertices may lie, but for the
// circumcircle test they behave as if the super triangle had been scaled about
// its centroid without bound. A sentinel is then farther away than any circle
// through real vertices can reach, so no hull triangle is ever swallowed by a
// sentinel's circle, whatever the margin.
//
// A circle through one sentinel degenerates into the half plane on the
// sentinel's side of the other two vertices. A circle through two sentinels
// degenerates into a half plane bounded by a line through the real vertex,
// whose direction depends only on the shape of the super triangle. Points
// exactly on that line are resolved by the next order term.

type sentinels struct {
	corners [3]Point
	center  Point
}

func newSentinels(super Triangle) sentinels {
	return sentinels{
		corners: super.Vertices(),
		center:  super.Centroid(),
	}
}

func (s sentinels) has(p Point) bool {
	return p == s.corners[0] || p == s.corners[1] || p == s.corners[2]
}

func (s sentinels) count(t Triangle) int {
	n := 0
	for _, p := range t.Vertices() {
		if s.has(p) {
			n++
		}
	}
	return n
}

// Inclusive circumcircle test for a counterclockwise triangle, with sentinel
// corners pushed out to infinity.
func (s sentinels) circleContains(t workingTriangle, v Point) bool {
	switch t.sentinels {
	case 0:
		return t.circle.Contains(v)
	case 3:
		return true
	}

	vertices := t.Vertices()
	for i := range vertices {
		a := vertices[i]
		b := vertices[CircularIndex(i+1, 3)]
		c := vertices[CircularIndex(i+2, 3)]
		if t.sentinels == 1 && s.has(c) {
			return halfPlaneContains(a, b, v)
		}
		if t.sentinels == 2 && !s.has(a) {
			return s.farCircleContains(a, b, c, v)
		}
	}
	panic("unreachable")
}

// The limit of circles through p, q and a point receding to the left of pq.
// Points on the line itself are inside only strictly between p and q, where
// every such circle has its chord.
func halfPlaneContains(p, q, v Point) bool {
	if o := Orientation(p, q, v); o != 0 {
		return o > 0
	}
	return v.Sub(p).Dot(q.Sub(p)) > 0 && v.Sub(q).Dot(p.Sub(q)) > 0
}

// The limit of circles through p and the sentinels si and sj, both receding
// from the centroid along their own directions. The circle's center runs off
// along c0, the circumcenter of the two directions and the origin, so to first
// order the circle is the half plane through p facing c0. On the boundary line,
// the center's constant offset c1 decides.
func (s sentinels) farCircleContains(p, si, sj, v Point) bool {
	di := si.Sub(s.center)
	dj := sj.Sub(s.center)
	pr := p.Sub(s.center)
	vr := v.Sub(s.center)
	step := vr.Sub(pr)

	c0 := solve2(di, dj, di.Dot(di)/2, dj.Dot(dj)/2)
	if lead := step.Dot(c0); lead != 0 {
		return lead > 0
	}
	k := c0.Dot(pr)
	c1 := solve2(di, dj, k, k)
	return vr.Dot(vr)-pr.Dot(pr) <= 2*step.Dot(c1)
}

// Solve a·x = ra, b·x = rb. a and b are sentinel directions, which are never
// parallel.
func solve2(a, b Point, ra, rb float64) Point {
	det := a.X*b.Y - a.Y*b.X
	return Point{
		X: (ra*b.Y - a.Y*rb) / det,
		Y: (a.X*rb - ra*b.X) / det,
	}
}

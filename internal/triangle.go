package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

func (t Triangle) Circumcircle() (Circle, error) {
	return Circumcircle(t.A, t.B, t.C)
}

func (t Triangle) Incircle() (Circle, error) {
	return Incircle(t.A, t.B, t.C)
}

func (t Triangle) Centroid() Point {
	return Centroid(t.A, t.B, t.C)
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// The three directed sides, in winding order
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// True if any vertex of t coincides with any vertex of other. This is
// coordinate equality, not structural equality of the triangles.
func (t Triangle) SharesVertexWith(other Triangle) bool {
	return other.HasVertex(t.A) || other.HasVertex(t.B) || other.HasVertex(t.C)
}

// Positive for counterclockwise triangles (y-up), negative for clockwise
func (t Triangle) SignedArea() float64 {
	return Orientation(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle) String() string {
	name := dbg.Name(t)
	if t.SignedArea() == 0 {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("Triangle %s <%s, %s, %s>", name, t.A, t.B, t.C)
}

// Undirected identity of an edge, so that a side shared by two cavity
// triangles matches regardless of which triangle it was read from.
func (e Edge) Key() Edge {
	if e.Q.Less(e.P) {
		return Edge{e.Q, e.P}
	}
	return e
}

func (e Edge) Reverse() Edge {
	return Edge{e.Q, e.P}
}

func (e Edge) Length() float64 {
	return e.P.Distance(e.Q)
}

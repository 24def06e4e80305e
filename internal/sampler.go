package internal

import "math/rand"

// Grow a vertex set with random interior points, keeping every accepted point
// at least interval away from every other accepted point.
//
// Sampling starts from a copy of existing, or from the jittered outer vertices
// of the region when existing is empty. Candidates are drawn uniformly from the
// open interior of the region. maxAttempts bounds the number of consecutive
// rejections: each acceptance resets the count, and sampling stops once that
// many candidates in a row have been rejected. Running out of attempts is the
// normal way to finish, so the result may be sparser than the region allows.
//
// interval must be positive, otherwise the loop would accept forever.
func RandomVertices(region Region, existing []Point, interval float64, maxAttempts int, rng *rand.Rand) []Point {
	var vertices []Point
	if len(existing) > 0 {
		vertices = append(vertices, existing...)
	} else {
		vertices = OuterVertices(region, interval, true, rng)
	}

	for rejections := 0; rejections < maxAttempts; {
		candidate := Point{
			X: rng.Float64() * region.Width,
			Y: rng.Float64() * region.Height,
		}
		if candidate.X == 0 || candidate.Y == 0 || !isSpacedFrom(candidate, vertices, interval) {
			rejections++
			continue
		}
		vertices = append(vertices, candidate)
		rejections = 0
	}
	return vertices
}

func isSpacedFrom(candidate Point, vertices []Point, interval float64) bool {
	for _, v := range vertices {
		if candidate.Distance(v) < interval {
			return false
		}
	}
	return true
}

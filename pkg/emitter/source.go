package emitter

import "math/rand"

// Source is the spawn region for new confetti: a line segment from
// (X0, Y0) to (X1, Y1). Each launch picks a uniformly random point on the
// segment. A point source is a degenerate segment.
type Source struct {
	X0, Y0 float64
	X1, Y1 float64
}

// PointSource returns a source that always spawns at (x, y).
func PointSource(x, y float64) Source {
	return Source{X0: x, Y0: y, X1: x, Y1: y}
}

// LineSource returns a source spanning the segment from (x0, y0) to
// (x1, y1). The usual confetti rain uses a horizontal segment just above
// the top of the region.
func LineSource(x0, y0, x1, y1 float64) Source {
	return Source{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// At returns a random spawn point on the segment.
func (s Source) At() (x, y float64) {
	t := rand.Float64()
	return s.X0 + (s.X1-s.X0)*t, s.Y0 + (s.Y1-s.Y0)*t
}

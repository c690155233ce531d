package bresenham

import (
	"context"
	"iter"
	"log/slog"
)

// Walker steps along the line from a start point up to but excluding an
// end point, producing one grid point per step. It is a forward-only,
// non-restartable sequence: once the end of the line is reached the
// walk stays exhausted.
//
// A Walker is a self-contained value. Independent walkers may be driven
// from separate goroutines, but a single walker must not be shared.
type Walker struct {
	// x, y is the current position in canonical (octant 0) space.
	x, y int
	// dx, dy is the canonical line vector, 0 <= dy <= dx.
	dx, dy int
	// x1 is the canonical terminal x coordinate.
	x1 int
	// diff accumulates the deviation of the true line from the
	// lattice path; a y step is due when it becomes non-negative.
	diff int

	octant Octant
}

// Walk creates a walker over the line from start to end. The walk
// yields start but not end; for start == end it yields nothing.
func Walk(start, end Point) *Walker {
	w := newWalker(start, end)
	return &w
}

func newWalker(start, end Point) Walker {
	octant := octantBetween(start, end)

	s := octant.toCanonical(start)
	e := octant.toCanonical(end)

	dx := e.X - s.X
	dy := e.Y - s.Y

	// Guarded so the arguments are not materialized when logging is off.
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("walk started",
			"start", start, "end", end, "octant", octant, "dx", dx, "dy", dy)
	}

	return Walker{
		x:      s.X,
		y:      s.Y,
		dx:     dx,
		dy:     dy,
		x1:     e.X,
		diff:   dy - dx,
		octant: octant,
	}
}

// Next returns the next point on the line, or ok == false once the walk
// is exhausted.
func (w *Walker) Next() (p Point, ok bool) {
	if w.x >= w.x1 {
		return Point{}, false
	}
	return w.Advance(), true
}

// Advance produces the next point without checking whether the walk has
// passed the end point. Advancing past the end keeps extrapolating the
// line; the Next and Points sequences never do so.
func (w *Walker) Advance() Point {
	p := Point{w.x, w.y}

	if w.diff >= 0 {
		w.y++
		w.diff -= w.dx
	}
	w.diff += w.dy
	w.x++

	return w.octant.fromCanonical(p)
}

// Steps returns the number of points remaining in the walk. For a fresh
// walker this equals max(|end.X-start.X|, |end.Y-start.Y|).
func (w *Walker) Steps() int {
	if w.x >= w.x1 {
		return 0
	}
	return w.x1 - w.x
}

// Points returns an iterator over the remaining points of the walk.
// The iterator consumes the walker: breaking out of the loop and
// ranging again resumes where the first loop stopped.
func (w *Walker) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for w.x < w.x1 {
			if !yield(w.Advance()) {
				return
			}
		}
	}
}

// InclusiveWalker wraps a Walker so that the end point is yielded as
// one additional final point. For start == end it yields exactly the
// single start point.
type InclusiveWalker struct {
	w Walker
}

// WalkInclusive creates a walker over the line from start to end,
// yielding both endpoints.
func WalkInclusive(start, end Point) *InclusiveWalker {
	return &InclusiveWalker{w: newWalker(start, end)}
}

// Next returns the next point on the line, or ok == false once the walk
// is exhausted.
func (iw *InclusiveWalker) Next() (p Point, ok bool) {
	if iw.w.x > iw.w.x1 {
		return Point{}, false
	}
	return iw.w.Advance(), true
}

// Advance produces the next point without checking whether the walk has
// passed the end point. See [Walker.Advance].
func (iw *InclusiveWalker) Advance() Point {
	return iw.w.Advance()
}

// Steps returns the number of points remaining in the walk, including
// the final end point.
func (iw *InclusiveWalker) Steps() int {
	if iw.w.x > iw.w.x1 {
		return 0
	}
	return iw.w.x1 - iw.w.x + 1
}

// Points returns an iterator over the remaining points of the walk,
// end point included. Like [Walker.Points], it consumes the walker.
func (iw *InclusiveWalker) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for iw.w.x <= iw.w.x1 {
			if !yield(iw.w.Advance()) {
				return
			}
		}
	}
}

// Points returns an iterator over the grid points on the line from
// start up to but excluding end.
func Points(start, end Point) iter.Seq[Point] {
	return Walk(start, end).Points()
}

// PointsInclusive returns an iterator over the grid points on the line
// from start to end, both endpoints included.
func PointsInclusive(start, end Point) iter.Seq[Point] {
	return WalkInclusive(start, end).Points()
}

// Package bresenham generates the integer grid points approximating a
// straight line between two points.
//
// # Overview
//
// bresenham implements the classic integer-only line algorithm as a lazy
// point generator. It calculates coordinates without knowing anything
// about drawing methods or surfaces: no pixels, no colors, no
// framebuffers. Any rasterizer, renderer, or grid consumer can take the
// produced sequence and do the actual marking.
//
// The algorithm works in two stages. A line is first classified into one
// of eight symmetric direction classes (octants) and transformed into a
// canonical orientation where it sweeps the x axis with slope between 0
// and 1. The canonical line is then walked with an incremental error
// accumulator using only integer addition and comparison, and each point
// is mapped back to the original orientation before it is yielded.
//
// # Quick Start
//
//	import "github.com/gogpu/bresenham"
//
//	for p := range bresenham.Points(bresenham.Pt(0, 1), bresenham.Pt(6, 4)) {
//	    fmt.Println(p)
//	}
//
// Will print:
//
//	(0, 1)
//	(1, 1)
//	(2, 2)
//	(3, 2)
//	(4, 3)
//	(5, 3)
//
// [Points] yields every point from start up to but excluding end;
// [PointsInclusive] also yields end as a final point. The [Walker] and
// [InclusiveWalker] types expose the same sequences through a pull-based
// Next method for callers that want to drive stepping themselves.
//
// # Coordinate System
//
// Coordinates are plain signed integers with no interpretation attached.
// Any two points are valid input, including equal points (an exclusive
// walk over a degenerate line is empty; an inclusive walk yields the
// single point). Overflow on coordinates near the integer range limits
// is not guarded.
package bresenham

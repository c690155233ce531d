package bresenham

// Octant identifies one of the eight symmetric direction classes a 2D
// line can fall into. Every line direction reduces to octant 0, where
// the line sweeps the x axis with slope between 0 and 1, through a
// fixed per-octant combination of coordinate swap and negation. The tag
// is computed once from the original start and end points and drives
// both the forward transform into canonical space and its exact
// inverse back out.
type Octant uint8

// octantBetween derives the octant of the line from start to end.
// The tie cases (dy == 0, dx == 0, dx == dy) must fall to the untaken
// branch: they decide which axis the walker sweeps.
func octantBetween(start, end Point) Octant {
	d := end.Sub(start)

	var o Octant
	if d.Y < 0 {
		d = d.Neg()
		o += 4
	}
	if d.X < 0 {
		d.X, d.Y = d.Y, -d.X
		o += 2
	}
	if d.X < d.Y {
		o++
	}
	return o
}

// toCanonical maps p from the original orientation into octant 0.
func (o Octant) toCanonical(p Point) Point {
	switch o {
	case 0:
		return Point{p.X, p.Y}
	case 1:
		return Point{p.Y, p.X}
	case 2:
		return Point{p.Y, -p.X}
	case 3:
		return Point{-p.X, p.Y}
	case 4:
		return Point{-p.X, -p.Y}
	case 5:
		return Point{-p.Y, -p.X}
	case 6:
		return Point{-p.Y, p.X}
	default:
		return Point{p.X, -p.Y}
	}
}

// fromCanonical maps p from octant 0 back to the original orientation.
// It is the exact inverse of toCanonical for every tag.
func (o Octant) fromCanonical(p Point) Point {
	switch o {
	case 0:
		return Point{p.X, p.Y}
	case 1:
		return Point{p.Y, p.X}
	case 2:
		return Point{-p.Y, p.X}
	case 3:
		return Point{-p.X, p.Y}
	case 4:
		return Point{-p.X, -p.Y}
	case 5:
		return Point{-p.Y, -p.X}
	case 6:
		return Point{p.Y, -p.X}
	default:
		return Point{p.X, -p.Y}
	}
}

// String returns the octant tag formatted as "octant N".
func (o Octant) String() string {
	return "octant " + string('0'+rune(o&7))
}

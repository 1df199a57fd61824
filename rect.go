package outline

import "math"

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// emptyRect is the identity of [Rect.Union]: its extents are inverted so that
// the union with any point is that point's zero-area rectangle.
var emptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsZeroArea reports whether the rectangle has zero area.
func (r Rect) IsZeroArea() bool {
	return r.Width()*r.Height() == 0
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// isEmpty reports whether r is still the empty rectangle, i.e. no point has
// been added to it.
func (r Rect) isEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

package outline

import "sort"

// CubicBez is a cubic Bézier curve. Curve segments of a contour are cubics
// whose P1 and P2 are the two off-curve nodes preceding the on-curve node P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the curve.
// Unlike the control box, it does not include control points that lie
// outside the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// SignedArea returns the area between the curve and the origin, by Green's
// theorem. Summed over a closed contour, this is the contour's signed area.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// lineSignedArea is the Green's theorem contribution of the line p0–p1.
func lineSignedArea(p0, p1 Point) float64 {
	return Vec2(p0).Cross(Vec2(p1)) * 0.5
}

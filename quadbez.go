package outline

// QuadBez is a quadratic Bézier curve, as found in TrueType outlines. The
// contour model is cubic only; quadratics are elevated with [QuadBez.Raise]
// before they become nodes.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

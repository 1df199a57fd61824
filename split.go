package outline

import (
	"fmt"
	"slices"
)

// SplitAt splits the curve at t into two curves, using de Casteljau.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// SplitSegment splits segment i of c at parameter t, which must lie strictly
// between 0 and 1, by inserting a new on-curve node. The shape of the
// contour does not change. A split curve yields two curves meeting at a
// smooth node; a split line yields two lines. Move segments cannot be split.
func SplitSegment(c NodeStore, i int, t float64) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	if err := checkIndex("segment", i, len(segs)); err != nil {
		return err
	}
	if !(t > 0 && t < 1) {
		return fmt.Errorf("split parameter %g outside of (0, 1)", t)
	}

	seg := segs[i]
	start := startPoints(segs)[i]
	var first Segment
	switch seg.Kind {
	case LineKind:
		first = LineSegment(start.Lerp(seg.OnCurve, t))
	case CurveKind:
		a, b := CubicBez{start, seg.Controls[0], seg.Controls[1], seg.OnCurve}.SplitAt(t)
		first = CurveSegment(a.P1, a.P2, a.P3)
		first.Smooth = true
		seg.Controls = []Point{b.P1, b.P2}
	default:
		return fmt.Errorf("%w: cannot split a %s segment", ErrSegmentType, seg.Kind)
	}
	if i == 0 {
		// the first half now owns the wrapped control points
		first.tail, seg.tail = seg.tail, 0
	}
	segs[i] = seg
	segs = slices.Insert(segs, i, first)
	return Rewrite(c, segs, c.Closed())
}

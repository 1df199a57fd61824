package outline

import "fmt"

// Draw replays the segments of c into pen.
//
// An open contour is drawn as MoveTo at its first node, one call per
// segment, and EndPath. A closed contour is drawn as MoveTo at the on-curve
// point of its last segment, one call per segment, and ClosePath, so that
// the final call explicitly returns to the starting point.
//
// Drawing a closed contour into a [ContourPen] reproduces its segments, but
// control points that wrap around to the end of the node array move to the
// front. Only [Rewrite] keeps the exact node layout.
//
// If pen implements [TangencyPen], the tangency of every on-curve point is
// reported before the call that draws it.
func Draw(c NodeReader, pen Pen) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return nil
	}
	return DrawSegments(segs, c.Closed(), pen)
}

// DrawSegments replays a segment list into pen. A list starting with a Move
// segment describes an open contour unless closed is set or the list ends
// with a Close segment. A list without a Move segment is drawn closed if
// closed is set; otherwise its first segment starts the contour, the way
// [ContourPen] treats a session without MoveTo.
//
// The list is validated before the first call is made, so pen sees either a
// complete session or nothing at all.
func DrawSegments(segs []Segment, closed bool, pen Pen) error {
	if n := len(segs); n > 0 && segs[n-1].Kind == CloseKind {
		segs = segs[:n-1]
		closed = true
	}
	if len(segs) == 0 {
		return nil
	}
	if err := validateSegments(segs); err != nil {
		return err
	}

	tp, _ := pen.(TangencyPen)
	tangent := func(s Segment) {
		if tp != nil {
			tp.SetTangency(tangency(s.Smooth))
		}
	}

	rest := segs
	switch {
	case segs[0].Kind == MoveKind:
		tangent(segs[0])
		pen.MoveTo(segs[0].OnCurve)
		rest = segs[1:]
	case closed:
		last := segs[len(segs)-1]
		tangent(last)
		pen.MoveTo(last.OnCurve)
	}
	for _, s := range rest {
		tangent(s)
		switch s.Kind {
		case LineKind:
			pen.LineTo(s.OnCurve)
		case CurveKind:
			pen.CurveTo(s.Controls[0], s.Controls[1], s.OnCurve)
		}
	}
	if closed {
		pen.ClosePath()
	} else {
		pen.EndPath()
	}
	return nil
}

func validateSegments(segs []Segment) error {
	for i, s := range segs {
		switch s.Kind {
		case MoveKind:
			if i != 0 {
				return fmt.Errorf("%w: move segment at index %d", ErrInvalidPenSequence, i)
			}
		case LineKind:
		case CurveKind:
			if len(s.Controls) != 2 {
				return fmt.Errorf("%w: curve segment %d has %d control points", ErrInvalidPenSequence, i, len(s.Controls))
			}
		case CloseKind:
			return fmt.Errorf("%w: close segment at index %d", ErrInvalidPenSequence, i)
		default:
			return fmt.Errorf("%w: invalid segment kind %v at index %d", ErrInvalidPenSequence, s.Kind, i)
		}
	}
	return nil
}

// Rewrite replaces the nodes of c with the nodes described by segs. The
// contour is closed if closed is set or segs ends with a Close segment, and
// open if segs starts with a Move segment and is not closed.
//
// Rewriting is all-or-nothing: if segs does not describe a well-formed
// contour, c is left unchanged.
//
// Rewriting the unmodified result of [Build] reproduces the contour's nodes
// exactly, including the wraparound of the first curve's control points to
// the end of a closed contour's array.
func Rewrite(c NodeStore, segs []Segment, closed bool) error {
	if len(segs) == 0 || (len(segs) == 1 && segs[0].Kind == CloseKind) {
		replaceNodes(c, nil, closed || len(segs) == 1)
		return nil
	}
	pen := NewContourPen(c)
	if segs[0].Kind == CurveKind {
		pen.rotate = segs[0].tail
	}
	if err := DrawSegments(segs, closed, pen); err != nil {
		return err
	}
	return pen.Err()
}

// DecomposeContour transforms every segment of src by aff and writes the
// result into dst, replacing its nodes. The node layout of src, including
// its open or closed state, is preserved. This is the building block of
// component decomposition, where dst is a freshly created contour.
func DecomposeContour(src NodeReader, aff Affine, dst NodeStore) error {
	segs, err := Build(src)
	if err != nil {
		return err
	}
	for i := range segs {
		segs[i] = segs[i].Transform(aff)
	}
	return Rewrite(dst, segs, src.Closed())
}

package outline

import (
	"fmt"
	"slices"
)

// Reverse reverses the direction of c.
//
// The node array is reversed and every on-curve node is retyped according
// to its new predecessor: a node that now follows an off-curve node ends a
// curve, any other ends a line. Off-curve nodes stay off-curve and tangency
// stays with its node. Applying Reverse twice restores the original nodes.
func Reverse(c NodeStore) error {
	if _, err := Build(c); err != nil {
		return err
	}
	nodes := nodesOf(c)
	if len(nodes) == 0 {
		return nil
	}
	slices.Reverse(nodes)
	closed := c.Closed()
	for i, nd := range nodes {
		if !nd.Kind.IsOnCurve() {
			continue
		}
		var prev Node
		switch {
		case i > 0:
			prev = nodes[i-1]
		case closed:
			prev = nodes[len(nodes)-1]
		default:
			nodes[i].Kind = OnLine
			continue
		}
		if prev.Kind == OffCurve {
			nodes[i].Kind = OnCurve
		} else {
			nodes[i].Kind = OnLine
		}
	}
	if _, err := Build(sliceReader{nodes, closed}); err != nil {
		return err
	}
	replaceNodes(c, nodes, closed)
	return nil
}

// SetStartSegment makes segment i the first segment of c, rotating the
// segment list and rewriting the contour. The result is always closed.
//
// If the last segment is a curve ending exactly on the first segment's
// on-curve point and the first segment has zero length, the first segment
// is redundant with it and is dropped before rotating, shifting i down by
// one. A Move segment left at the front is turned into a line.
//
// Contours with fewer than two segments are left alone, as is i == 0.
func SetStartSegment(c NodeStore, i int) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	if len(segs) < 2 {
		return nil
	}
	if err := checkIndex("segment", i, len(segs)); err != nil {
		return err
	}
	if i == 0 {
		return nil
	}

	if last := segs[len(segs)-1]; last.Kind == CurveKind && last.OnCurve == segs[0].OnCurve && zeroLength(segs[0]) {
		segs = segs[1:]
		i--
	}
	if segs[0].Kind == MoveKind {
		segs[0].Kind = LineKind
	}
	rotated := make([]Segment, 0, len(segs))
	rotated = append(rotated, segs[i:]...)
	rotated = append(rotated, segs[:i]...)
	for j := range rotated {
		rotated[j].tail = 0
	}
	return Rewrite(c, rotated, true)
}

// zeroLength reports whether s, starting on its own on-curve point, draws
// nothing.
func zeroLength(s Segment) bool {
	for _, pt := range s.Controls {
		if pt != s.OnCurve {
			return false
		}
	}
	return true
}

// SetSegmentType converts segment i of c to the given kind.
//
// Converting a line to a curve adds control points at the previous on-curve
// point and at the segment's own on-curve point, leaving the shape
// unchanged. Converting a curve to a line drops its control points and
// makes it a corner. The first segment of an open contour is its Move
// segment; turning it into a line or curve closes the contour, and turning
// the first segment of a closed contour into a Move opens it.
//
// Other conversions return an error matching [ErrSegmentType].
func SetSegmentType(c NodeStore, i int, kind SegmentKind) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	if err := checkIndex("segment", i, len(segs)); err != nil {
		return err
	}
	seg := &segs[i]
	if seg.Kind == kind {
		return nil
	}
	closed := c.Closed()
	starts := startPoints(segs)

	switch {
	case kind == CurveKind && seg.Kind == LineKind:
		seg.Controls = []Point{starts[i], seg.OnCurve}
	case kind == CurveKind && seg.Kind == MoveKind:
		seg.Controls = []Point{segs[len(segs)-1].OnCurve, seg.OnCurve}
		closed = true
	case kind == LineKind && seg.Kind == CurveKind:
		seg.Controls = nil
		seg.Smooth = false
	case kind == LineKind && seg.Kind == MoveKind:
		closed = true
	case kind == MoveKind && i == 0 && closed:
		seg.Controls = nil
		closed = false
	default:
		return fmt.Errorf("%w: %v to %v at segment %d", ErrSegmentType, seg.Kind, kind, i)
	}
	seg.Kind = kind
	seg.tail = 0
	return Rewrite(c, segs, closed)
}

// InsertSegment inserts seg before segment i of c. i may equal the number of
// segments, appending seg.
//
// Only a Move segment can be inserted at the front of a non-empty open
// contour; the old Move segment becomes a line. Move segments cannot be
// inserted anywhere else, and Close segments cannot be inserted at all.
func InsertSegment(c NodeStore, i int, seg Segment) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	if err := checkIndex("segment", i, len(segs)+1); err != nil {
		return err
	}
	closed := c.Closed()
	switch {
	case seg.Kind == CloseKind:
		return fmt.Errorf("%w: cannot insert a close segment", ErrSegmentType)
	case len(segs) == 0:
	case !closed && i == 0:
		if seg.Kind != MoveKind {
			return fmt.Errorf("%w: open contour must start with a move", ErrSegmentType)
		}
		segs[0].Kind = LineKind
	case seg.Kind == MoveKind:
		return fmt.Errorf("%w: move segment at index %d", ErrSegmentType, i)
	}
	seg.tail = 0
	seg.Controls = slices.Clone(seg.Controls)
	segs = slices.Insert(segs, i, seg)
	return Rewrite(c, segs, closed)
}

// AppendSegment appends seg to the end of c.
func AppendSegment(c NodeStore, seg Segment) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	return InsertSegment(c, len(segs), seg)
}

// RemoveSegment removes segment i from c. Removing the Move segment of an
// open contour makes the following segment the new starting point.
func RemoveSegment(c NodeStore, i int) error {
	segs, err := Build(c)
	if err != nil {
		return err
	}
	if err := checkIndex("segment", i, len(segs)); err != nil {
		return err
	}
	closed := c.Closed()
	if !closed && i == 0 && len(segs) > 1 {
		segs[1].Kind = MoveKind
		segs[1].Controls = nil
	}
	segs = slices.Delete(segs, i, i+1)
	return Rewrite(c, segs, closed)
}

// TransformContour applies aff to every node of c. The node order is kept,
// so a mirroring transform reverses the contour's winding direction.
func TransformContour(c NodeStore, aff Affine) {
	for i := range c.Len() {
		nd := c.Node(i)
		nd.Pos = nd.Pos.Transform(aff)
		c.SetNode(i, nd)
	}
}

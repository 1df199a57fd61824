package outline

import (
	"fmt"
	"slices"
)

type BPointType int

const (
	CornerBPoint BPointType = iota + 1
	CurveBPoint
)

func (t BPointType) String() string {
	switch t {
	case CornerBPoint:
		return "corner"
	case CurveBPoint:
		return "curve"
	default:
		return fmt.Sprintf("BPointType(%d)", int(t))
	}
}

// BPoint views one segment of a contour as an anchor with incoming and
// outgoing handles. Handles that do not exist, such as those of lines,
// coincide with the anchor.
//
// A BPoint remembers the version of its contour. Once the contour is
// modified by anything other than the BPoint's own setters, all methods
// return [ErrStaleView].
type BPoint struct {
	contour *Contour
	version uint64
	segment int
}

// BPoints returns one view per segment of c.
func BPoints(c *Contour) ([]BPoint, error) {
	segs, err := Build(c)
	if err != nil {
		return nil, err
	}
	bps := make([]BPoint, len(segs))
	for i := range bps {
		bps[i] = BPoint{contour: c, version: c.version, segment: i}
	}
	return bps, nil
}

// Index returns the index of the viewed segment.
func (bp BPoint) Index() int { return bp.segment }

func (bp BPoint) resolve() ([]Segment, error) {
	if bp.contour == nil || bp.contour.version != bp.version {
		return nil, ErrStaleView
	}
	segs, err := Build(bp.contour)
	if err != nil {
		return nil, err
	}
	if bp.segment >= len(segs) {
		return nil, ErrStaleView
	}
	return segs, nil
}

// next returns the index of the segment following i, if any.
func (bp BPoint) next(segs []Segment, i int) (int, bool) {
	if i+1 < len(segs) {
		return i + 1, true
	}
	if bp.contour.closed {
		return 0, true
	}
	return 0, false
}

func (bp BPoint) Anchor() (Point, error) {
	segs, err := bp.resolve()
	if err != nil {
		return Point{}, err
	}
	return segs[bp.segment].OnCurve, nil
}

// In returns the absolute position of the incoming handle.
func (bp BPoint) In() (Point, error) {
	segs, err := bp.resolve()
	if err != nil {
		return Point{}, err
	}
	s := segs[bp.segment]
	if s.Kind == CurveKind {
		return s.Controls[1], nil
	}
	return s.OnCurve, nil
}

// Out returns the absolute position of the outgoing handle.
func (bp BPoint) Out() (Point, error) {
	segs, err := bp.resolve()
	if err != nil {
		return Point{}, err
	}
	s := segs[bp.segment]
	if j, ok := bp.next(segs, bp.segment); ok && segs[j].Kind == CurveKind {
		return segs[j].Controls[0], nil
	}
	return s.OnCurve, nil
}

// BCPIn returns the incoming handle relative to the anchor.
func (bp BPoint) BCPIn() (Vec2, error) {
	in, err := bp.In()
	if err != nil {
		return Vec2{}, err
	}
	anchor, _ := bp.Anchor()
	return in.Sub(anchor), nil
}

// BCPOut returns the outgoing handle relative to the anchor.
func (bp BPoint) BCPOut() (Vec2, error) {
	out, err := bp.Out()
	if err != nil {
		return Vec2{}, err
	}
	anchor, _ := bp.Anchor()
	return out.Sub(anchor), nil
}

// Type reports CurveBPoint for smooth anchors and CornerBPoint otherwise.
func (bp BPoint) Type() (BPointType, error) {
	segs, err := bp.resolve()
	if err != nil {
		return 0, err
	}
	if segs[bp.segment].Smooth {
		return CurveBPoint, nil
	}
	return CornerBPoint, nil
}

// handleNodes returns the node indices of the incoming and outgoing handles,
// or -1 for handles that do not exist.
func (bp BPoint) handleNodes(segs []Segment) (in, out int) {
	n := bp.contour.Len()
	in, out = -1, -1
	s := segs[bp.segment]
	if s.Kind == CurveKind {
		in = (s.node - 1 + n) % n
	}
	if j, ok := bp.next(segs, bp.segment); ok && segs[j].Kind == CurveKind {
		out = (segs[j].node - 2 + n) % n
	}
	return in, out
}

// Move translates the anchor together with both handles.
func (bp *BPoint) Move(v Vec2) error {
	segs, err := bp.resolve()
	if err != nil {
		return err
	}
	in, out := bp.handleNodes(segs)
	idxs := []int{segs[bp.segment].node}
	for _, i := range []int{in, out} {
		if i >= 0 && !slices.Contains(idxs, i) {
			idxs = append(idxs, i)
		}
	}
	for _, i := range idxs {
		nd := bp.contour.nodes[i]
		nd.Pos = nd.Pos.Translate(v)
		bp.contour.SetNode(i, nd)
	}
	bp.version = bp.contour.version
	return nil
}

// SetAnchor moves the anchor to pt, carrying the handles along.
func (bp *BPoint) SetAnchor(pt Point) error {
	anchor, err := bp.Anchor()
	if err != nil {
		return err
	}
	return bp.Move(pt.Sub(anchor))
}

// SetBCPIn sets the incoming handle relative to the anchor. If the segment
// is a line, it is converted to a curve first.
func (bp *BPoint) SetBCPIn(v Vec2) error {
	segs, err := bp.resolve()
	if err != nil {
		return err
	}
	s := segs[bp.segment]
	switch s.Kind {
	case MoveKind:
		return fmt.Errorf("%w: move segment has no incoming handle", ErrSegmentType)
	case LineKind:
		if err := bp.convert(bp.segment); err != nil {
			return err
		}
		if segs, err = bp.resolve(); err != nil {
			return err
		}
	}
	in, _ := bp.handleNodes(segs)
	bp.setNodePos(in, segs[bp.segment].OnCurve.Translate(v))
	return nil
}

// SetBCPOut sets the outgoing handle relative to the anchor. If the
// following segment is a line, it is converted to a curve first.
func (bp *BPoint) SetBCPOut(v Vec2) error {
	segs, err := bp.resolve()
	if err != nil {
		return err
	}
	j, ok := bp.next(segs, bp.segment)
	if !ok {
		return fmt.Errorf("%w: last segment of an open contour has no outgoing handle", ErrSegmentType)
	}
	if segs[j].Kind == LineKind {
		if err := bp.convert(j); err != nil {
			return err
		}
		if segs, err = bp.resolve(); err != nil {
			return err
		}
	}
	_, out := bp.handleNodes(segs)
	bp.setNodePos(out, segs[bp.segment].OnCurve.Translate(v))
	return nil
}

func (bp *BPoint) convert(segment int) error {
	if err := SetSegmentType(bp.contour, segment, CurveKind); err != nil {
		return err
	}
	bp.version = bp.contour.version
	return nil
}

func (bp *BPoint) setNodePos(i int, pt Point) {
	nd := bp.contour.nodes[i]
	nd.Pos = pt
	bp.contour.SetNode(i, nd)
	bp.version = bp.contour.version
}

package outline

import (
	"fmt"
	"slices"
)

type SegmentKind int

const (
	// The synthetic first segment of an open contour.
	MoveKind SegmentKind = iota + 1
	// A straight line ending at the segment's on-curve point.
	LineKind
	// A cubic Bézier ending at the segment's on-curve point.
	CurveKind
	// Closes the contour. Build never produces it; segment lists passed to
	// Rewrite may end with one.
	CloseKind
)

func (k SegmentKind) String() string {
	switch k {
	case MoveKind:
		return "move"
	case LineKind:
		return "line"
	case CurveKind:
		return "curve"
	case CloseKind:
		return "close"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one drawing instruction derived from a contour.
//
// Segments are computed from the current nodes and are never the system of
// record. A segment list goes stale as soon as the contour it was built from
// is mutated.
type Segment struct {
	Kind    SegmentKind
	OnCurve Point
	// Controls holds the two control points of a curve segment and is empty
	// for all other kinds.
	Controls []Point
	Smooth   bool

	node int
	// tail is the number of control points that a closed contour stores at
	// the end of its node array, because they wrap around to the first
	// on-curve node.
	tail int
}

func MoveSegment(pt Point) Segment { return Segment{Kind: MoveKind, OnCurve: pt} }
func LineSegment(pt Point) Segment { return Segment{Kind: LineKind, OnCurve: pt} }
func CloseSegment() Segment        { return Segment{Kind: CloseKind} }

func CurveSegment(c1, c2, pt Point) Segment {
	return Segment{Kind: CurveKind, OnCurve: pt, Controls: []Point{c1, c2}}
}

func (s Segment) String() string {
	switch s.Kind {
	case CurveKind:
		if len(s.Controls) == 2 {
			return fmt.Sprintf("curve(%s, %s, %s)", s.Controls[0], s.Controls[1], s.OnCurve)
		}
	case CloseKind:
		return "close"
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.OnCurve)
}

// NodeIndex returns the index of the on-curve node the segment was built
// from. It is only meaningful for segments returned by [Build], and only
// until the contour is modified.
func (s Segment) NodeIndex() int { return s.node }

// Transform returns the segment with aff applied to all of its points.
func (s Segment) Transform(aff Affine) Segment {
	s.OnCurve = s.OnCurve.Transform(aff)
	if s.Controls != nil {
		ctrls := make([]Point, len(s.Controls))
		for i, pt := range s.Controls {
			ctrls[i] = pt.Transform(aff)
		}
		s.Controls = ctrls
	}
	return s
}

// Points returns the segment's points in node order: the control points
// followed by the on-curve point.
func (s Segment) Points() []Point {
	return append(slices.Clone(s.Controls), s.OnCurve)
}

// Build decomposes a contour into segments.
//
// Every on-curve node produces one segment, in array order. Curve segments
// take the two nodes preceding their on-curve node as control points; on a
// closed contour this lookup wraps around to the end of the array. An open
// contour additionally starts with a Move segment at its first node, which
// consumes that node.
//
// Build returns an error matching [ErrMalformedContour] if the nodes do not
// form a cubic contour.
func Build(c NodeReader) ([]Segment, error) {
	n := c.Len()
	if n == 0 {
		return nil, nil
	}
	closed := c.Closed()
	if closed && n < 3 {
		return nil, malformed(-1, fmt.Sprintf("closed contour has only %d nodes", n))
	}

	segs := make([]Segment, 0, n)
	start := 0
	// number of consecutive off-curve nodes immediately preceding the
	// current node
	offRun := 0
	if closed {
		for j := n - 1; j >= 0 && c.Node(j).Kind == OffCurve; j-- {
			offRun++
		}
		if offRun == n {
			return nil, malformed(-1, "contour has no on-curve node")
		}
	} else {
		first := c.Node(0)
		if !first.Kind.IsOnCurve() {
			return nil, malformed(0, "open contour starts with an off-curve node")
		}
		segs = append(segs, Segment{
			Kind:    MoveKind,
			OnCurve: first.Pos,
			Smooth:  first.Tangency == Smooth,
		})
		start = 1
	}

	for i := start; i < n; i++ {
		nd := c.Node(i)
		switch nd.Kind {
		case OffCurve:
			offRun++
			if offRun > 2 {
				return nil, malformed(i, "more than two consecutive off-curve nodes")
			}
			continue
		case OnLine:
			if offRun != 0 {
				return nil, malformed(i, "off-curve nodes followed by a line node")
			}
			segs = append(segs, Segment{
				Kind:    LineKind,
				OnCurve: nd.Pos,
				Smooth:  nd.Tangency == Smooth,
				node:    i,
			})
		case OnCurve:
			if offRun != 2 {
				return nil, malformed(i, "curve node not preceded by two off-curve nodes")
			}
			tail := 0
			if i < 2 {
				tail = 2 - i
			}
			segs = append(segs, Segment{
				Kind:     CurveKind,
				OnCurve:  nd.Pos,
				Controls: []Point{c.Node((i - 2 + n) % n).Pos, c.Node((i - 1 + n) % n).Pos},
				Smooth:   nd.Tangency == Smooth,
				node:     i,
				tail:     tail,
			})
		default:
			return nil, malformed(i, fmt.Sprintf("invalid node kind %v", nd.Kind))
		}
		offRun = 0
	}
	if offRun != 0 && !closed {
		return nil, malformed(n-1, "open contour ends with an off-curve node")
	}
	return segs, nil
}

// startPoints returns, for every segment, the on-curve point it starts from.
// The Move segment of an open contour starts from its own point.
func startPoints(segs []Segment) []Point {
	starts := make([]Point, len(segs))
	for i := range segs {
		switch {
		case i > 0:
			starts[i] = segs[i-1].OnCurve
		case segs[0].Kind == MoveKind:
			starts[i] = segs[0].OnCurve
		default:
			starts[i] = segs[len(segs)-1].OnCurve
		}
	}
	return starts
}

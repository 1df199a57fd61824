package outline

import "fmt"

type PointType int

const (
	MovePoint PointType = iota + 1
	LinePoint
	CurvePoint
	OffCurvePoint
)

func (t PointType) String() string {
	switch t {
	case MovePoint:
		return "move"
	case LinePoint:
		return "line"
	case CurvePoint:
		return "curve"
	case OffCurvePoint:
		return "offcurve"
	default:
		return fmt.Sprintf("PointType(%d)", int(t))
	}
}

// ContourPoint is a node as seen by point-based tools. It differs from
// [Node] only in reporting the first node of an open contour as a move.
type ContourPoint struct {
	Pos    Point
	Type   PointType
	Smooth bool
}

// Points returns the nodes of c as a flat list of points.
func Points(c NodeReader) []ContourPoint {
	pts := make([]ContourPoint, c.Len())
	for i := range pts {
		nd := c.Node(i)
		pt := ContourPoint{Pos: nd.Pos, Smooth: nd.Tangency == Smooth}
		switch nd.Kind {
		case OnLine:
			pt.Type = LinePoint
		case OnCurve:
			pt.Type = CurvePoint
		case OffCurve:
			pt.Type = OffCurvePoint
		}
		pts[i] = pt
	}
	if len(pts) > 0 && !c.Closed() {
		pts[0].Type = MovePoint
	}
	return pts
}

// SetPoints replaces the nodes of c with pts. A Move point at index 0 opens
// the contour; otherwise c keeps its open or closed state. Move points are
// not allowed elsewhere. If the points do not form a well-formed contour, c
// is left unchanged.
func SetPoints(c NodeStore, pts []ContourPoint) error {
	closed := c.Closed()
	nodes := make([]Node, len(pts))
	for i, pt := range pts {
		nd := Node{Pos: pt.Pos, Tangency: tangency(pt.Smooth)}
		switch pt.Type {
		case MovePoint:
			if i != 0 {
				return malformed(i, "move point after the start of the contour")
			}
			nd.Kind = OnLine
			closed = false
		case LinePoint:
			nd.Kind = OnLine
		case CurvePoint:
			nd.Kind = OnCurve
		case OffCurvePoint:
			nd.Kind = OffCurve
		default:
			return malformed(i, fmt.Sprintf("invalid point type %v", pt.Type))
		}
		nodes[i] = nd
	}
	if _, err := Build(sliceReader{nodes, closed}); err != nil {
		return err
	}
	replaceNodes(c, nodes, closed)
	return nil
}

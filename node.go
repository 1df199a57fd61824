package outline

import "fmt"

type NodeKind int

const (
	// An on-curve node ending a straight line. The first node of an open
	// contour is stored with this kind, too; openness is a property of the
	// contour.
	OnLine NodeKind = iota + 1
	// An on-curve node ending a cubic Bézier. It is preceded by exactly two
	// OffCurve nodes.
	OnCurve
	// A cubic Bézier control point.
	OffCurve
)

func (k NodeKind) String() string {
	switch k {
	case OnLine:
		return "line"
	case OnCurve:
		return "curve"
	case OffCurve:
		return "offcurve"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// IsOnCurve reports whether the outline passes through nodes of this kind.
func (k NodeKind) IsOnCurve() bool {
	return k == OnLine || k == OnCurve
}

// Tangency describes whether the handles around an on-curve node are
// constrained to be collinear.
type Tangency int

const (
	Corner Tangency = iota
	Smooth
)

func (t Tangency) String() string {
	switch t {
	case Corner:
		return "corner"
	case Smooth:
		return "smooth"
	default:
		return fmt.Sprintf("Tangency(%d)", int(t))
	}
}

func tangency(smooth bool) Tangency {
	if smooth {
		return Smooth
	}
	return Corner
}

type Node struct {
	Pos      Point
	Kind     NodeKind
	Tangency Tangency
}

func (n Node) String() string {
	if n.Tangency == Smooth {
		return fmt.Sprintf("%s %s smooth", n.Pos, n.Kind)
	}
	return fmt.Sprintf("%s %s", n.Pos, n.Kind)
}

// LineNode returns a corner on-curve line node at pt.
func LineNode(pt Point) Node { return Node{Pos: pt, Kind: OnLine} }

// CurveNode returns a corner on-curve curve node at pt.
func CurveNode(pt Point) Node { return Node{Pos: pt, Kind: OnCurve} }

// OffNode returns an off-curve control point at pt.
func OffNode(pt Point) Node { return Node{Pos: pt, Kind: OffCurve} }

// Smoothed returns n with smooth tangency.
func (n Node) Smoothed() Node {
	n.Tangency = Smooth
	return n
}

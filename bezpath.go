package outline

import "fmt"

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a sequence of path elements, the neutral form in which outlines
// are exchanged with code that knows nothing about nodes.
//
// *BezPath implements [Pen], so any glyph or contour can be drawn into one.
type BezPath []PathElement

var _ Pen = (*BezPath)(nil)

// ContourPath returns the outline of c as a path.
func ContourPath(c NodeReader) (BezPath, error) {
	var p BezPath
	if err := Draw(c, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Path returns the outlines of the glyph's contours as a single path.
func (g *Glyph) Path() (BezPath, error) {
	var p BezPath
	if err := g.Draw(&p); err != nil {
		return nil, err
	}
	return p, nil
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// CurveTo is CubicTo; it makes *BezPath a [Pen].
func (p *BezPath) CurveTo(p1, p2, p3 Point) { p.CubicTo(p1, p2, p3) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// EndPath does nothing. An open subpath ends at the next MoveTo or at the end
// of the path.
func (p *BezPath) EndPath() {}

// Truncate truncates the path, keeping the first n elements.
func (p *BezPath) Truncate(n int) {
	if n >= len(*p) {
		return
	}
	*p = (*p)[:n]
}

// Draw replays the path into pen, one session per subpath. Quadratic
// elements are elevated to cubics. Subpaths not ended by ClosePath are
// ended with EndPath.
func (p BezPath) Draw(pen Pen) {
	var start, cur Point
	open := false
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			if open {
				pen.EndPath()
			}
			pen.MoveTo(el.P0)
			start, cur = el.P0, el.P0
			open = true
			continue
		case LineToKind:
			pen.LineTo(el.P0)
		case QuadToKind:
			c := QuadBez{cur, el.P0, el.P1}.Raise()
			pen.CurveTo(c.P1, c.P2, c.P3)
		case CubicToKind:
			pen.CurveTo(el.P0, el.P1, el.P2)
		case ClosePathKind:
			if open {
				pen.ClosePath()
			}
			cur = start
			open = false
			continue
		}
		cur, _ = el.EndPoint()
		open = true
	}
	if open {
		pen.EndPath()
	}
}

// BoundingBox returns the smallest rectangle enclosing the path.
func (p BezPath) BoundingBox() Rect {
	bbox := emptyRect
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start = el.P0
			bbox = bbox.UnionPoint(el.P0)
		case LineToKind:
			bbox = bbox.UnionPoint(el.P0)
		case QuadToKind:
			bbox = bbox.Union(QuadBez{cur, el.P0, el.P1}.Raise().BoundingBox())
		case CubicToKind:
			bbox = bbox.Union(CubicBez{cur, el.P0, el.P1, el.P2}.BoundingBox())
		case ClosePathKind:
			cur = start
			continue
		}
		cur, _ = el.EndPoint()
	}
	if bbox.isEmpty() {
		return Rect{}
	}
	return bbox
}

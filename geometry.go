package outline

// ControlBox returns the smallest rectangle enclosing every node of c,
// including off-curve nodes. It returns the zero Rect for an empty contour.
func ControlBox(c NodeReader) Rect {
	if c.Len() == 0 {
		return Rect{}
	}
	bbox := emptyRect
	for i := range c.Len() {
		bbox = bbox.UnionPoint(c.Node(i).Pos)
	}
	return bbox
}

// BoundingBox returns the smallest rectangle enclosing the outline of c.
// Unlike [ControlBox], it only includes the parts of control polygons that
// the curves actually reach.
func BoundingBox(c NodeReader) (Rect, error) {
	segs, err := Build(c)
	if err != nil {
		return Rect{}, err
	}
	return segmentsBoundingBox(segs), nil
}

func segmentsBoundingBox(segs []Segment) Rect {
	if len(segs) == 0 {
		return Rect{}
	}
	bbox := emptyRect
	starts := startPoints(segs)
	for i, s := range segs {
		switch s.Kind {
		case CurveKind:
			bbox = bbox.Union(CubicBez{starts[i], s.Controls[0], s.Controls[1], s.OnCurve}.BoundingBox())
		default:
			bbox = bbox.UnionPoint(s.OnCurve)
		}
	}
	return bbox
}

// SignedArea returns the area enclosed by c. It is positive for
// counter-clockwise contours in a y-up coordinate system. Open contours are
// measured as if they were closed by a line.
func SignedArea(c NodeReader) (float64, error) {
	segs, err := Build(c)
	if err != nil {
		return 0, err
	}
	return segmentsSignedArea(segs), nil
}

func segmentsSignedArea(segs []Segment) float64 {
	if len(segs) == 0 {
		return 0
	}
	var area float64
	starts := startPoints(segs)
	for i, s := range segs {
		switch s.Kind {
		case LineKind:
			area += lineSignedArea(starts[i], s.OnCurve)
		case CurveKind:
			area += CubicBez{starts[i], s.Controls[0], s.Controls[1], s.OnCurve}.SignedArea()
		}
	}
	if segs[0].Kind == MoveKind {
		area += lineSignedArea(segs[len(segs)-1].OnCurve, segs[0].OnCurve)
	}
	return area
}

// IsClockwise reports whether c winds clockwise in a y-up coordinate
// system, the direction TrueType uses for outer contours.
func IsClockwise(c NodeReader) (bool, error) {
	area, err := SignedArea(c)
	return area < 0, err
}

// windingNumber returns how often the closed outline segs winds around pt.
// Curves are flattened for the test.
func windingNumber(segs []Segment, pt Point) int {
	const steps = 16
	w := 0
	edge := func(a, b Point) {
		side := (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
		switch {
		case a.Y <= pt.Y && b.Y > pt.Y && side > 0:
			w++
		case a.Y > pt.Y && b.Y <= pt.Y && side < 0:
			w--
		}
	}
	starts := startPoints(segs)
	for i, s := range segs {
		if s.Kind != CurveKind {
			edge(starts[i], s.OnCurve)
			continue
		}
		c := CubicBez{starts[i], s.Controls[0], s.Controls[1], s.OnCurve}
		prev := c.P0
		for k := 1; k < steps; k++ {
			next := c.Eval(float64(k) / steps)
			edge(prev, next)
			prev = next
		}
		edge(prev, c.P3)
	}
	return w
}

package outline

import (
	"fmt"
	"slices"
)

// Pen receives a contour as a sequence of drawing calls.
//
// A session is a MoveTo, followed by any number of LineTo and CurveTo calls,
// and ends with ClosePath for closed contours or EndPath for open ones.
type Pen interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	CurveTo(c1, c2, pt Point)
	ClosePath()
	EndPath()
}

// TangencyPen is implemented by pens that record whether on-curve points are
// smooth. SetTangency applies to the on-curve point of the next MoveTo,
// LineTo, or CurveTo call only; afterwards the tangency reverts to [Corner].
type TangencyPen interface {
	Pen
	SetTangency(t Tangency)
}

type penState int

const (
	penIdle penState = iota
	penDrawing
	penDone
)

// ContourPen is a [TangencyPen] that rewrites a [NodeStore].
//
// Calls are collected in a buffer. The store is only modified once ClosePath
// or EndPath completes a session that forms a well-formed contour; after an
// invalid call the pen records the error, ignores all further calls, and
// leaves the store unchanged. Every pen rewrites its store at most once.
//
// A session that starts with LineTo or CurveTo instead of MoveTo begins at
// that call's own nodes. This is an open contour starting at the line's
// point, or, for CurveTo, a closed contour whose array leads with the two
// off-curve nodes. The latter must be ended with ClosePath.
//
// When a closed session's final on-curve point coincides exactly with its
// MoveTo point, the closing segment is explicit and the node produced by
// MoveTo is dropped. Otherwise the MoveTo node stays and the contour is
// closed by an implicit line.
type ContourPen struct {
	dst     NodeStore
	nodes   []Node
	state   penState
	start   Point
	hasMove bool
	next    Tangency
	err     error

	// rotate is the number of nodes moved from the front of the buffer to
	// its end when a closed session is committed.
	rotate int
}

var _ TangencyPen = (*ContourPen)(nil)

// NewContourPen returns a pen that replaces the nodes of dst.
func NewContourPen(dst NodeStore) *ContourPen {
	return &ContourPen{dst: dst}
}

// Err returns the first error encountered by the pen, if any.
func (p *ContourPen) Err() error { return p.err }

func (p *ContourPen) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidPenSequence}, args...)...)
	}
	p.state = penDone
}

// usable reports whether a drawing call may proceed, recording an error if
// the session has already ended.
func (p *ContourPen) usable(call string) bool {
	if p.err != nil {
		return false
	}
	if p.state == penDone {
		p.fail("%s after end of contour", call)
		return false
	}
	return true
}

func (p *ContourPen) SetTangency(t Tangency) { p.next = t }

func (p *ContourPen) takeTangency() Tangency {
	t := p.next
	p.next = Corner
	return t
}

func (p *ContourPen) MoveTo(pt Point) {
	if !p.usable("MoveTo") {
		return
	}
	if p.state != penIdle {
		p.fail("MoveTo after drawing started")
		return
	}
	p.nodes = append(p.nodes[:0], Node{Pos: pt, Kind: OnLine, Tangency: p.takeTangency()})
	p.start = pt
	p.hasMove = true
	p.state = penDrawing
}

func (p *ContourPen) LineTo(pt Point) {
	if !p.usable("LineTo") {
		return
	}
	p.state = penDrawing
	p.nodes = append(p.nodes, Node{Pos: pt, Kind: OnLine, Tangency: p.takeTangency()})
}

func (p *ContourPen) CurveTo(c1, c2, pt Point) {
	if !p.usable("CurveTo") {
		return
	}
	p.state = penDrawing
	p.nodes = append(p.nodes,
		OffNode(c1),
		OffNode(c2),
		Node{Pos: pt, Kind: OnCurve, Tangency: p.takeTangency()},
	)
}

func (p *ContourPen) ClosePath() {
	if !p.usable("ClosePath") {
		return
	}
	if p.state == penIdle {
		p.fail("ClosePath without drawing")
		return
	}
	nodes := p.nodes
	if p.hasMove && len(nodes) > 1 && nodes[len(nodes)-1].Pos == p.start {
		nodes = nodes[1:]
	}
	if p.rotate > 0 && p.rotate < len(nodes) {
		nodes = append(slices.Clone(nodes[p.rotate:]), nodes[:p.rotate]...)
	}
	p.commit(nodes, true)
}

func (p *ContourPen) EndPath() {
	if !p.usable("EndPath") {
		return
	}
	if len(p.nodes) > 0 && p.nodes[0].Kind == OffCurve {
		p.fail("open contour must start with MoveTo or LineTo")
		return
	}
	p.commit(p.nodes, false)
}

func (p *ContourPen) commit(nodes []Node, closed bool) {
	p.state = penDone
	if _, err := Build(sliceReader{nodes, closed}); err != nil {
		p.err = err
		return
	}
	replaceNodes(p.dst, nodes, closed)
}

// TransformPen applies an affine transform to every point before forwarding
// it to another pen.
type TransformPen struct {
	Out Pen
	Aff Affine
}

var _ TangencyPen = (*TransformPen)(nil)

func NewTransformPen(out Pen, aff Affine) *TransformPen {
	return &TransformPen{Out: out, Aff: aff}
}

func (p *TransformPen) MoveTo(pt Point) { p.Out.MoveTo(pt.Transform(p.Aff)) }
func (p *TransformPen) LineTo(pt Point) { p.Out.LineTo(pt.Transform(p.Aff)) }
func (p *TransformPen) ClosePath()      { p.Out.ClosePath() }
func (p *TransformPen) EndPath()        { p.Out.EndPath() }

func (p *TransformPen) CurveTo(c1, c2, pt Point) {
	p.Out.CurveTo(c1.Transform(p.Aff), c2.Transform(p.Aff), pt.Transform(p.Aff))
}

// SetTangency forwards t if the underlying pen records tangency.
func (p *TransformPen) SetTangency(t Tangency) {
	if tp, ok := p.Out.(TangencyPen); ok {
		tp.SetTangency(t)
	}
}

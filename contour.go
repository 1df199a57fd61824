package outline

import (
	"fmt"
	"slices"
)

// NodeReader is read access to a contour's node sequence.
type NodeReader interface {
	Len() int
	Node(i int) Node
	Closed() bool
}

// NodeStore is the narrow interface through which contours are edited. The
// host owning the nodes implements it; [Contour] is this package's
// implementation.
type NodeStore interface {
	NodeReader
	Append(n Node)
	Remove(i int)
	SetNode(i int, n Node)
	SetClosed(closed bool)
}

// Contour is an ordered sequence of nodes plus a closed flag. A closed
// contour is logically circular.
//
// Every mutation bumps the contour's version, which invalidates [BPoint]
// views obtained earlier.
type Contour struct {
	nodes   []Node
	closed  bool
	version uint64
	glyph   *Glyph
}

var _ NodeStore = (*Contour)(nil)

// NewContour returns a contour holding a copy of nodes. The contour does not
// belong to any glyph; use [Glyph.NewContour] for that.
func NewContour(closed bool, nodes ...Node) *Contour {
	return &Contour{nodes: slices.Clone(nodes), closed: closed}
}

func (c *Contour) String() string {
	state := "open"
	if c.closed {
		state = "closed"
	}
	return fmt.Sprintf("<Contour %s with %d nodes>", state, len(c.nodes))
}

func (c *Contour) Len() int        { return len(c.nodes) }
func (c *Contour) Node(i int) Node { return c.nodes[i] }
func (c *Contour) Closed() bool    { return c.closed }

// Nodes returns a copy of the contour's nodes.
func (c *Contour) Nodes() []Node { return slices.Clone(c.nodes) }

// Version returns a counter that changes every time the contour is mutated.
func (c *Contour) Version() uint64 { return c.version }

// Glyph returns the glyph owning the contour, or nil.
func (c *Contour) Glyph() *Glyph { return c.glyph }

func (c *Contour) Append(n Node) {
	c.nodes = append(c.nodes, n)
	c.version++
}

func (c *Contour) Remove(i int) {
	c.nodes = slices.Delete(c.nodes, i, i+1)
	c.version++
}

func (c *Contour) SetNode(i int, n Node) {
	c.nodes[i] = n
	c.version++
}

func (c *Contour) SetClosed(closed bool) {
	c.closed = closed
	c.version++
}

// Clone returns a copy of the contour that does not belong to any glyph.
func (c *Contour) Clone() *Contour {
	return &Contour{nodes: slices.Clone(c.nodes), closed: c.closed}
}

// Segments builds the contour's segments. See [Build].
func (c *Contour) Segments() ([]Segment, error) { return Build(c) }

// Draw replays the contour into pen. See [Draw].
func (c *Contour) Draw(pen Pen) error { return Draw(c, pen) }

// Pen returns a pen that rewrites the contour.
func (c *Contour) Pen() *ContourPen { return NewContourPen(c) }

// Reverse reverses the direction of the contour. See [Reverse].
func (c *Contour) Reverse() error { return Reverse(c) }

// SetStartSegment makes segment i the first segment. See [SetStartSegment].
func (c *Contour) SetStartSegment(i int) error { return SetStartSegment(c, i) }

// nodesOf copies the nodes of r.
func nodesOf(r NodeReader) []Node {
	if c, ok := r.(*Contour); ok {
		return slices.Clone(c.nodes)
	}
	nodes := make([]Node, r.Len())
	for i := range nodes {
		nodes[i] = r.Node(i)
	}
	return nodes
}

// replaceNodes resets s to hold exactly nodes.
func replaceNodes(s NodeStore, nodes []Node, closed bool) {
	if c, ok := s.(*Contour); ok {
		c.nodes = slices.Clone(nodes)
		c.closed = closed
		c.version++
		return
	}
	for i := s.Len() - 1; i >= 0; i-- {
		s.Remove(i)
	}
	for _, n := range nodes {
		s.Append(n)
	}
	s.SetClosed(closed)
}

// sliceReader adapts a node slice to NodeReader, for validating buffers
// before they are committed.
type sliceReader struct {
	nodes  []Node
	closed bool
}

func (r sliceReader) Len() int        { return len(r.nodes) }
func (r sliceReader) Node(i int) Node { return r.nodes[i] }
func (r sliceReader) Closed() bool    { return r.closed }

// Package geompath converts outlines to and from the path type of
// seehuhn.de/go/geom, as used by the seehuhn font and rendering libraries.
package geompath

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/outline"
)

func toVec(pt outline.Point) vec.Vec2 { return vec.Vec2{X: pt.X, Y: pt.Y} }

func toPoint(v vec.Vec2) outline.Point { return outline.Pt(v.X, v.Y) }

// Pen is an [outline.Pen] that appends to a path.
type Pen struct {
	Data *path.Data
}

var _ outline.Pen = (*Pen)(nil)

// NewPen returns a pen that appends to d.
func NewPen(d *path.Data) *Pen { return &Pen{Data: d} }

func (p *Pen) MoveTo(pt outline.Point) { p.Data.MoveTo(toVec(pt)) }
func (p *Pen) LineTo(pt outline.Point) { p.Data.LineTo(toVec(pt)) }
func (p *Pen) ClosePath()              { p.Data.Close() }

// EndPath does nothing; open subpaths are ended by the next MoveTo.
func (p *Pen) EndPath() {}

func (p *Pen) CurveTo(c1, c2, pt outline.Point) {
	p.Data.CubeTo(toVec(c1), toVec(c2), toVec(pt))
}

// FromContour returns the path drawn by c.
func FromContour(c outline.NodeReader) (*path.Data, error) {
	d := &path.Data{}
	if err := outline.Draw(c, NewPen(d)); err != nil {
		return nil, err
	}
	return d, nil
}

// FromGlyph returns the path drawn by g, including its components, which
// are resolved through src. src may be nil to draw only g's own contours.
func FromGlyph(g *outline.Glyph, src outline.GlyphSource) (*path.Data, error) {
	d := &path.Data{}
	var err error
	if src == nil {
		err = g.Draw(NewPen(d))
	} else {
		err = g.DrawAll(NewPen(d), src)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Draw replays d into pen, one session per subpath. Quadratic segments are
// elevated to cubics, and subpaths without a close command are ended with
// EndPath. Drawing commands before the first MoveTo are ignored.
func Draw(d *path.Data, pen outline.Pen) {
	var start, cur outline.Point
	open, started := false, false
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				pen.EndPath()
			}
			start = toPoint(d.Coords[k])
			cur = start
			k++
			pen.MoveTo(start)
			open, started = true, true
		case path.CmdLineTo:
			cur = toPoint(d.Coords[k])
			k++
			if started {
				pen.LineTo(cur)
				open = true
			}
		case path.CmdQuadTo:
			q := outline.QuadBez{P0: cur, P1: toPoint(d.Coords[k]), P2: toPoint(d.Coords[k+1])}
			k += 2
			cur = q.P2
			if started {
				c := q.Raise()
				pen.CurveTo(c.P1, c.P2, c.P3)
				open = true
			}
		case path.CmdCubeTo:
			c1, c2 := toPoint(d.Coords[k]), toPoint(d.Coords[k+1])
			cur = toPoint(d.Coords[k+2])
			k += 3
			if started {
				pen.CurveTo(c1, c2, cur)
				open = true
			}
		case path.CmdClose:
			if open {
				pen.ClosePath()
			}
			cur = start
			open = false
		}
	}
	if open {
		pen.EndPath()
	}
}

// ToGlyph returns a new glyph with one contour per subpath of d. Subpaths
// that do not form a well-formed contour are dropped, and the first such
// problem is returned along with the glyph.
func ToGlyph(d *path.Data, name string) (*outline.Glyph, error) {
	g := outline.NewGlyph(name)
	pen := g.Pen()
	Draw(d, pen)
	return g, pen.Close()
}

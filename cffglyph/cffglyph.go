// Package cffglyph converts glyphs to and from CFF charstring glyphs of
// seehuhn.de/go/sfnt/cff.
//
// CFF outlines consist of closed cubic contours only. Subpaths close
// implicitly, so a final line back to a contour's start point is left out
// on export.
package cffglyph

import (
	"errors"
	"fmt"

	"seehuhn.de/go/sfnt/cff"

	"honnef.co/go/outline"
)

// ErrOpenContour is returned when exporting a glyph with an open contour.
var ErrOpenContour = errors.New("open contour in CFF glyph")

type pen struct {
	g     *cff.Glyph
	start outline.Point
	err   error
}

func (p *pen) MoveTo(pt outline.Point) {
	p.start = pt
	p.g.MoveTo(pt.X, pt.Y)
}

func (p *pen) LineTo(pt outline.Point) { p.g.LineTo(pt.X, pt.Y) }

func (p *pen) CurveTo(c1, c2, pt outline.Point) {
	p.g.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
}

func (p *pen) ClosePath() {
	n := len(p.g.Cmds)
	if n == 0 {
		return
	}
	last := p.g.Cmds[n-1]
	if last.Op == cff.OpLineTo && last.Args[0] == p.start.X && last.Args[1] == p.start.Y {
		p.g.Cmds = p.g.Cmds[:n-1]
	}
}

func (p *pen) EndPath() {
	if p.err == nil {
		p.err = fmt.Errorf("%w at %v", ErrOpenContour, p.start)
	}
}

// Export returns g as a CFF glyph. Components are resolved through src and
// drawn in place; with a nil src they are left out.
func Export(g *outline.Glyph, src outline.GlyphSource) (*cff.Glyph, error) {
	p := &pen{g: cff.NewGlyph(g.Name, g.Width)}
	var err error
	if src == nil {
		err = g.Draw(p)
	} else {
		err = g.DrawAll(p, src)
	}
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", g.Name, err)
	}
	if p.err != nil {
		return nil, fmt.Errorf("glyph %q: %w", g.Name, p.err)
	}
	return p.g, nil
}

// Import returns a new glyph with the outline, name and width of cg. Every
// subpath becomes a closed contour; subpaths without drawing operations
// and hint masks are ignored. Import fails if a subpath does not form a
// well-formed contour.
func Import(cg *cff.Glyph) (*outline.Glyph, error) {
	g := outline.NewGlyph(cg.Name)
	g.Width = cg.Width
	pen := g.Pen()

	var move outline.Point
	hasMove, drawing := false, false
	begin := func() bool {
		if !hasMove {
			return false
		}
		if !drawing {
			pen.MoveTo(move)
			drawing = true
		}
		return true
	}
	end := func() {
		if drawing {
			pen.ClosePath()
		}
		drawing = false
	}

	for i, cmd := range cg.Cmds {
		switch cmd.Op {
		case cff.OpMoveTo:
			end()
			move = outline.Pt(cmd.Args[0], cmd.Args[1])
			hasMove = true
		case cff.OpLineTo:
			if !begin() {
				return nil, fmt.Errorf("glyph %q: command %d: %s before moveto", cg.Name, i, cmd.Op)
			}
			pen.LineTo(outline.Pt(cmd.Args[0], cmd.Args[1]))
		case cff.OpCurveTo:
			if !begin() {
				return nil, fmt.Errorf("glyph %q: command %d: %s before moveto", cg.Name, i, cmd.Op)
			}
			a := cmd.Args
			pen.CurveTo(outline.Pt(a[0], a[1]), outline.Pt(a[2], a[3]), outline.Pt(a[4], a[5]))
		}
	}
	end()
	if err := pen.Close(); err != nil {
		return nil, fmt.Errorf("glyph %q: %w", cg.Name, err)
	}
	return g, nil
}

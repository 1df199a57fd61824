// Package sfntload reads glyph outlines from TrueType and OpenType fonts.
//
// Quadratic TrueType outlines are elevated to cubics. Coordinates are
// returned y-up, in font units unless [Options.Size] asks for a different
// em size.
package sfntload

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/outline"
)

// ErrNoGlyph is returned when a font has no glyph for a rune.
var ErrNoGlyph = errors.New("no glyph for rune")

type Options struct {
	// Size is the em size that outlines are scaled to. Zero means font
	// units.
	Size float64
	// KeepYDown keeps the y-down orientation of the sfnt package instead of
	// flipping outlines to the y-up convention of font sources.
	KeepYDown bool
}

var defaultOptions = &Options{}

// Font loads glyphs from a parsed font file. It is not safe for concurrent
// use.
type Font struct {
	f   *sfnt.Font
	buf sfnt.Buffer
}

// Parse parses a TrueType or OpenType font.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{f: f}, nil
}

func (f *Font) UnitsPerEm() float64 { return float64(f.f.UnitsPerEm()) }

func (f *Font) NumGlyphs() int { return f.f.NumGlyphs() }

// Family returns the font's family name, or the empty string.
func (f *Font) Family() string {
	name, err := f.f.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func (f *Font) ppem(opts *Options) fixed.Int26_6 {
	if opts.Size == 0 {
		return fixed.I(int(f.f.UnitsPerEm()))
	}
	return fixed.Int26_6(opts.Size * 64)
}

// LoadRune loads the glyph mapped to r. The glyph's Unicodes list r.
func (f *Font) LoadRune(r rune, opts *Options) (*outline.Glyph, error) {
	gid, err := f.f.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, err
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	g, err := f.LoadIndex(int(gid), opts)
	if err != nil {
		return nil, err
	}
	g.Unicodes = []rune{r}
	return g, nil
}

// LoadIndex loads the glyph with index gid. Composite glyphs are returned
// decomposed.
func (f *Font) LoadIndex(gid int, opts *Options) (*outline.Glyph, error) {
	if opts == nil {
		opts = defaultOptions
	}
	if gid < 0 || gid >= f.f.NumGlyphs() {
		return nil, fmt.Errorf("glyph index %d: %w", gid, sfnt.ErrNotFound)
	}
	x := sfnt.GlyphIndex(gid)
	ppem := f.ppem(opts)

	segs, err := f.f.LoadGlyph(&f.buf, x, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph %d: %w", gid, err)
	}
	name, err := f.f.GlyphName(&f.buf, x)
	if err != nil || name == "" {
		name = fmt.Sprintf("gid%d", gid)
	}
	adv, err := f.f.GlyphAdvance(&f.buf, x, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("glyph %d: %w", gid, err)
	}

	g := outline.NewGlyph(name)
	g.Width = float64(adv) / 64
	path := toPath(segs, !opts.KeepYDown)
	pen := g.Pen()
	path.Draw(pen)
	// degenerate contours, such as a line to the start point and back, are
	// dropped by the pen
	if err := pen.Close(); err != nil && !errors.Is(err, outline.ErrMalformedContour) {
		return nil, fmt.Errorf("glyph %d: %w", gid, err)
	}
	return g, nil
}

// LoadFont loads the glyphs of all runes into a new font. Runes without a
// glyph are skipped; glyphs shared by several runes are loaded once and
// list all of them.
func (f *Font) LoadFont(runes []rune, opts *Options) (*outline.Font, error) {
	upem := f.UnitsPerEm()
	if opts != nil && opts.Size != 0 {
		upem = opts.Size
	}
	out := outline.NewFont(upem)
	for _, r := range runes {
		g, err := f.LoadRune(r, opts)
		if errors.Is(err, ErrNoGlyph) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if old, ok := out.Glyph(g.Name); ok {
			old.Unicodes = append(old.Unicodes, r)
			continue
		}
		out.InsertGlyph(g)
	}
	return out, nil
}

// toPath converts sfnt segments to a path made of closed subpaths. Subpaths
// consisting of a lone MoveTo are dropped.
func toPath(segs sfnt.Segments, flip bool) outline.BezPath {
	pt := func(p fixed.Point26_6) outline.Point {
		x, y := float64(p.X)/64, float64(p.Y)/64
		if flip {
			y = -y
		}
		return outline.Pt(x, y)
	}

	var p outline.BezPath
	drawing := false
	closeSubpath := func() {
		if drawing {
			p.ClosePath()
		} else if n := len(p); n > 0 && p[n-1].Kind == outline.MoveToKind {
			p.Truncate(n - 1)
		}
		drawing = false
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeSubpath()
			p.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(seg.Args[0]))
			drawing = true
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
			drawing = true
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
			drawing = true
		}
	}
	closeSubpath()
	return p
}

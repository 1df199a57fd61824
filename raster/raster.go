// Package raster renders glyph outlines to coverage masks using
// golang.org/x/image/vector.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/outline"
)

type Options struct {
	// Scale is the number of pixels per font unit. Zero means 1.
	Scale float64
	// Padding is the number of empty pixels around the outline.
	Padding int
	// Source resolves components. With a nil Source only the glyph's own
	// contours are rendered.
	Source outline.GlyphSource
}

var defaultOptions = &Options{}

// Pen is an [outline.Pen] that adds contours to a rasterizer. Open contours
// are closed, since only areas can be filled.
type Pen struct {
	R *vector.Rasterizer
}

var _ outline.Pen = (*Pen)(nil)

func f32(pt outline.Point) (float32, float32) { return float32(pt.X), float32(pt.Y) }

func (p *Pen) MoveTo(pt outline.Point) {
	x, y := f32(pt)
	p.R.MoveTo(x, y)
}

func (p *Pen) LineTo(pt outline.Point) {
	x, y := f32(pt)
	p.R.LineTo(x, y)
}

func (p *Pen) CurveTo(c1, c2, pt outline.Point) {
	x1, y1 := f32(c1)
	x2, y2 := f32(c2)
	x3, y3 := f32(pt)
	p.R.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (p *Pen) ClosePath() { p.R.ClosePath() }
func (p *Pen) EndPath()   { p.R.ClosePath() }

// Render returns a coverage mask of g. The image is just large enough to
// hold the outline's bounding box plus padding, with the top left corner
// of the box at (Padding, Padding) and the y axis pointing down.
//
// A glyph without contours renders as a blank image.
func Render(g *outline.Glyph, opts *Options) (*image.Alpha, error) {
	if opts == nil {
		opts = defaultOptions
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	pad := max(opts.Padding, 0)

	var p outline.BezPath
	var err error
	if opts.Source == nil {
		err = g.Draw(&p)
	} else {
		err = g.DrawAll(&p, opts.Source)
	}
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		n := max(2*pad, 1)
		return image.NewAlpha(image.Rect(0, 0, n, n)), nil
	}

	bbox := p.BoundingBox()
	w := int(math.Ceil(bbox.Width()*scale)) + 2*pad
	h := int(math.Ceil(bbox.Height()*scale)) + 2*pad
	w, h = max(w, 1), max(h, 1)

	aff := outline.Translate(outline.Vec(-bbox.X0, -bbox.Y1)).
		ThenScale(scale, -scale).
		ThenTranslate(outline.Vec(float64(pad), float64(pad)))

	r := vector.NewRasterizer(w, h)
	p.Draw(outline.NewTransformPen(&Pen{R: r}, aff))

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst, nil
}

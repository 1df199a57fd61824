package outline

import (
	"fmt"
	"slices"
)

// Component places another glyph's outline into a glyph.
type Component struct {
	BaseGlyph string
	Offset    Vec2
	// Scale is the per-axis scale factor. The zero value is treated as
	// (1, 1).
	Scale Vec2
}

// Transform returns the transform mapping the base glyph's coordinates into
// the composite glyph.
func (c Component) Transform() Affine {
	scale := c.Scale
	if scale == (Vec2{}) {
		scale = Vec(1, 1)
	}
	return ComponentTransform(scale, c.Offset)
}

// Anchor is a named attachment point.
type Anchor struct {
	Name string
	Pos  Point
}

// GlyphSource resolves glyph names, normally to the glyphs of a font.
type GlyphSource interface {
	Glyph(name string) (*Glyph, bool)
}

// Glyph owns a set of contours, plus references to other glyphs.
//
// Contours belong to exactly one glyph. They are created through the glyph
// and stay valid until they are removed from it.
type Glyph struct {
	Name       string
	Width      float64
	Unicodes   []rune
	Components []Component
	Anchors    []Anchor

	contours []*Contour
}

func NewGlyph(name string) *Glyph {
	return &Glyph{Name: name}
}

func (g *Glyph) String() string {
	return fmt.Sprintf("<Glyph %q with %d contours, %d components>", g.Name, len(g.contours), len(g.Components))
}

// NewContour adds an empty open contour to the glyph and returns it.
func (g *Glyph) NewContour() *Contour {
	c := &Contour{glyph: g}
	g.contours = append(g.contours, c)
	return c
}

// AppendContour adds a copy of c to the glyph and returns the copy.
func (g *Glyph) AppendContour(c NodeReader) *Contour {
	nc := &Contour{nodes: nodesOf(c), closed: c.Closed(), glyph: g}
	g.contours = append(g.contours, nc)
	return nc
}

// Len returns the number of contours.
func (g *Glyph) Len() int { return len(g.contours) }

// Contour returns contour i. It panics if i is out of range.
func (g *Glyph) Contour(i int) *Contour { return g.contours[i] }

// Contours returns the glyph's contours. The slice is a copy; the contours
// are not.
func (g *Glyph) Contours() []*Contour { return slices.Clone(g.contours) }

// RemoveContour detaches contour i from the glyph.
func (g *Glyph) RemoveContour(i int) error {
	if err := checkIndex("contour", i, len(g.contours)); err != nil {
		return err
	}
	g.contours[i].detach()
	g.contours = slices.Delete(g.contours, i, i+1)
	return nil
}

func (g *Glyph) ClearContours() {
	for _, c := range g.contours {
		c.detach()
	}
	g.contours = nil
}

func (c *Contour) detach() {
	c.glyph = nil
	c.version++
}

// Draw draws every contour of the glyph into pen. Components are not drawn;
// use [Glyph.DrawAll] for that.
func (g *Glyph) Draw(pen Pen) error {
	for i, c := range g.contours {
		if err := Draw(c, pen); err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
	}
	return nil
}

// DrawAll draws the glyph's contours followed by the outlines of its
// components, resolved through src. Components whose base glyph cannot be
// found are skipped.
func (g *Glyph) DrawAll(pen Pen, src GlyphSource) error {
	return g.drawAll(pen, src, nil)
}

func (g *Glyph) drawAll(pen Pen, src GlyphSource, seen []*Glyph) error {
	if slices.Contains(seen, g) {
		return fmt.Errorf("glyph %q: %w", g.Name, ErrComponentCycle)
	}
	if err := g.Draw(pen); err != nil {
		return err
	}
	seen = append(seen, g)
	for _, comp := range g.Components {
		base, ok := src.Glyph(comp.BaseGlyph)
		if !ok {
			continue
		}
		if err := base.drawAll(NewTransformPen(pen, comp.Transform()), src, seen); err != nil {
			return err
		}
	}
	return nil
}

// Pen returns a pen that adds contours to the glyph.
func (g *Glyph) Pen() *GlyphPen { return &GlyphPen{glyph: g} }

// BoundingBox returns the bounding box of the glyph's contours. It is the
// zero Rect for a glyph without nodes.
func (g *Glyph) BoundingBox() (Rect, error) {
	bbox := emptyRect
	for i, c := range g.contours {
		segs, err := Build(c)
		if err != nil {
			return Rect{}, fmt.Errorf("contour %d: %w", i, err)
		}
		if len(segs) > 0 {
			bbox = bbox.Union(segmentsBoundingBox(segs))
		}
	}
	if bbox.isEmpty() {
		return Rect{}, nil
	}
	return bbox, nil
}

// Move translates all contours, anchors, and component offsets by v.
func (g *Glyph) Move(v Vec2) {
	aff := Translate(v)
	for _, c := range g.contours {
		TransformContour(c, aff)
	}
	for i := range g.Anchors {
		g.Anchors[i].Pos = g.Anchors[i].Pos.Translate(v)
	}
	for i := range g.Components {
		g.Components[i].Offset = g.Components[i].Offset.Add(v)
	}
}

// CorrectDirection reverses closed contours so that outer contours run
// counter-clockwise and the direction alternates with every level of
// nesting, as PostScript outlines expect. With trueType set, outer contours
// run clockwise instead. A contour's nesting depth is the number of other
// closed contours enclosing its first on-curve point. Open and zero-area
// contours are left alone.
func (g *Glyph) CorrectDirection(trueType bool) error {
	segs := make([][]Segment, len(g.contours))
	for i, c := range g.contours {
		s, err := Build(c)
		if err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
		segs[i] = s
	}
	for i, c := range g.contours {
		if !c.Closed() || len(segs[i]) == 0 {
			continue
		}
		depth := 0
		for j, other := range g.contours {
			if j != i && other.Closed() && windingNumber(segs[j], segs[i][0].OnCurve) != 0 {
				depth++
			}
		}
		area := segmentsSignedArea(segs[i])
		if area == 0 {
			continue
		}
		if ccw := (depth%2 == 0) != trueType; (area > 0) != ccw {
			if err := Reverse(c); err != nil {
				return fmt.Errorf("contour %d: %w", i, err)
			}
		}
	}
	return nil
}

// AppendComponent adds a reference to the glyph named base.
func (g *Glyph) AppendComponent(base string, offset, scale Vec2) {
	g.Components = append(g.Components, Component{BaseGlyph: base, Offset: offset, Scale: scale})
}

// DecomposeComponent replaces component i with copies of the base glyph's
// contours, transformed by the component's placement. Nested components of
// the base glyph are decomposed as well. If the base glyph cannot be
// resolved through src, the component is removed without adding anything.
func (g *Glyph) DecomposeComponent(i int, src GlyphSource) error {
	if err := checkIndex("component", i, len(g.Components)); err != nil {
		return err
	}
	comp := g.Components[i]
	base, ok := src.Glyph(comp.BaseGlyph)
	if ok {
		n := len(g.contours)
		if err := base.decomposeInto(g, comp.Transform(), src, []*Glyph{g}); err != nil {
			for _, c := range g.contours[n:] {
				c.detach()
			}
			g.contours = slices.Delete(g.contours, n, len(g.contours))
			return err
		}
	}
	g.Components = slices.Delete(g.Components, i, i+1)
	return nil
}

func (g *Glyph) decomposeInto(dst *Glyph, aff Affine, src GlyphSource, seen []*Glyph) error {
	if slices.Contains(seen, g) {
		return fmt.Errorf("glyph %q: %w", g.Name, ErrComponentCycle)
	}
	for _, c := range g.contours {
		nc := dst.NewContour()
		if err := DecomposeContour(c, aff, nc); err != nil {
			return fmt.Errorf("glyph %q: %w", g.Name, err)
		}
	}
	seen = append(seen, g)
	for _, comp := range g.Components {
		base, ok := src.Glyph(comp.BaseGlyph)
		if !ok {
			continue
		}
		if err := base.decomposeInto(dst, aff.Mul(comp.Transform()), src, seen); err != nil {
			return err
		}
	}
	return nil
}

// Decompose decomposes all components of the glyph.
func (g *Glyph) Decompose(src GlyphSource) error {
	for len(g.Components) > 0 {
		if err := g.DecomposeComponent(0, src); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a deep copy of the glyph.
func (g *Glyph) Copy() *Glyph {
	ng := &Glyph{
		Name:       g.Name,
		Width:      g.Width,
		Unicodes:   slices.Clone(g.Unicodes),
		Components: slices.Clone(g.Components),
		Anchors:    slices.Clone(g.Anchors),
	}
	for _, c := range g.contours {
		ng.AppendContour(c)
	}
	return ng
}

// GlyphPen is a [TangencyPen] that adds one contour to a glyph per session.
// Unlike [ContourPen] it accepts any number of sessions, so that it can
// receive whole glyphs from multi-contour sources.
//
// A session that fails leaves no contour behind. The first error is
// reported by [GlyphPen.Err]; later sessions are still recorded.
type GlyphPen struct {
	glyph   *Glyph
	contour *Contour
	pen     *ContourPen
	err     error
}

var _ TangencyPen = (*GlyphPen)(nil)

func (p *GlyphPen) Err() error { return p.err }

// session returns the pen of the current session, starting a new one if
// fresh is set or none is active.
func (p *GlyphPen) session(fresh bool) *ContourPen {
	if p.pen != nil && fresh {
		// MoveTo implies the end of an unfinished open contour
		p.pen.EndPath()
		p.finish()
	}
	if p.pen == nil {
		p.contour = p.glyph.NewContour()
		p.pen = NewContourPen(p.contour)
	}
	return p.pen
}

func (p *GlyphPen) finish() {
	err := p.pen.Err()
	if err != nil && p.err == nil {
		p.err = err
	}
	if err != nil || p.contour.Len() == 0 {
		if i := slices.Index(p.glyph.contours, p.contour); i >= 0 {
			p.contour.detach()
			p.glyph.contours = slices.Delete(p.glyph.contours, i, i+1)
		}
	}
	p.pen = nil
	p.contour = nil
}

func (p *GlyphPen) SetTangency(t Tangency) { p.session(false).SetTangency(t) }

func (p *GlyphPen) MoveTo(pt Point)          { p.session(p.pen != nil && p.pen.state != penIdle).MoveTo(pt) }
func (p *GlyphPen) LineTo(pt Point)          { p.session(false).LineTo(pt) }
func (p *GlyphPen) CurveTo(c1, c2, pt Point) { p.session(false).CurveTo(c1, c2, pt) }

func (p *GlyphPen) ClosePath() {
	if p.pen == nil {
		return
	}
	p.pen.ClosePath()
	p.finish()
}

func (p *GlyphPen) EndPath() {
	if p.pen == nil {
		return
	}
	p.pen.EndPath()
	p.finish()
}

// Close ends an unfinished session and returns the pen's error.
func (p *GlyphPen) Close() error {
	p.EndPath()
	return p.err
}

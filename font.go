package outline

import (
	"fmt"
	"slices"
)

// Font is an ordered collection of uniquely named glyphs.
type Font struct {
	UnitsPerEm float64

	glyphs map[string]*Glyph
	order  []string
}

var _ GlyphSource = (*Font)(nil)

func NewFont(unitsPerEm float64) *Font {
	return &Font{UnitsPerEm: unitsPerEm, glyphs: map[string]*Glyph{}}
}

// NewGlyph adds an empty glyph with the given name, replacing any existing
// glyph of that name.
func (f *Font) NewGlyph(name string) *Glyph {
	g := NewGlyph(name)
	f.InsertGlyph(g)
	return g
}

// InsertGlyph adds g to the font under its name. A glyph of the same name is
// replaced in place, keeping its position in the glyph order.
func (f *Font) InsertGlyph(g *Glyph) {
	if f.glyphs == nil {
		f.glyphs = map[string]*Glyph{}
	}
	if _, ok := f.glyphs[g.Name]; !ok {
		f.order = append(f.order, g.Name)
	}
	f.glyphs[g.Name] = g
}

func (f *Font) Glyph(name string) (*Glyph, bool) {
	g, ok := f.glyphs[name]
	return g, ok
}

func (f *Font) Has(name string) bool {
	_, ok := f.glyphs[name]
	return ok
}

func (f *Font) Remove(name string) error {
	if _, ok := f.glyphs[name]; !ok {
		return fmt.Errorf("no glyph named %q", name)
	}
	delete(f.glyphs, name)
	f.order = slices.DeleteFunc(f.order, func(s string) bool { return s == name })
	return nil
}

// Names returns the glyph names in glyph order.
func (f *Font) Names() []string { return slices.Clone(f.order) }

func (f *Font) Len() int { return len(f.order) }

// Lookup returns the first glyph in glyph order mapped to r.
func (f *Font) Lookup(r rune) (*Glyph, bool) {
	for _, name := range f.order {
		g := f.glyphs[name]
		if slices.Contains(g.Unicodes, r) {
			return g, true
		}
	}
	return nil, false
}
